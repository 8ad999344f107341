// internal/app/store/catalog/loader.go
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/eduardgagite/portfolio/internal/app/system/timeouts"
	"github.com/eduardgagite/portfolio/internal/domain/models"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Sentinel errors; check with errors.Is.
var (
	ErrIndexUnavailable   = errors.New("materials index unavailable")
	ErrMalformedIndex     = errors.New("invalid materials index payload")
	ErrContentUnavailable = errors.New("material content unavailable")
	ErrMalformedContent   = errors.New("invalid material content payload")
)

// Loader owns every runtime cache of the materials catalog: the parsed
// index, one tree per language and the article bodies.
//
// Concurrent callers share a single in-flight fetch per resource. Failures
// are never cached. Invalidate starts a new generation; a fetch that began in
// an older generation still answers its callers but is not stored.
type Loader struct {
	src Source
	log *zap.Logger

	group singleflight.Group

	mu      sync.Mutex
	gen     uint64
	index   *models.GeneratedIndex
	trees   map[models.Lang]*models.MaterialsTree
	content map[string]string
}

// NewLoader constructs a Loader over src.
func NewLoader(src Source, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		src:     src,
		log:     logger,
		trees:   make(map[models.Lang]*models.MaterialsTree),
		content: make(map[string]string),
	}
}

// Source returns the underlying artifact source.
func (l *Loader) Source() Source { return l.src }

/*─────────────────────────────────────────────────────────────────────────────*
| Index                                                                       |
*─────────────────────────────────────────────────────────────────────────────*/

// Index returns the parsed index, fetching it on first use.
func (l *Loader) Index(ctx context.Context) (*models.GeneratedIndex, error) {
	l.mu.Lock()
	if l.index != nil {
		idx := l.index
		l.mu.Unlock()
		return idx, nil
	}
	gen := l.gen
	l.mu.Unlock()

	v, err := l.shared(ctx, "index:"+strconv.FormatUint(gen, 10), func(fctx context.Context) (any, error) {
		data, err := l.src.ReadIndex(fctx)
		if err != nil {
			return nil, errors.Mark(errors.Wrap(err, "load materials index"), ErrIndexUnavailable)
		}
		idx, err := DecodeIndex(data)
		if err != nil {
			return nil, err
		}

		l.mu.Lock()
		if l.gen == gen {
			l.index = idx
		}
		l.mu.Unlock()

		l.log.Info("materials index loaded",
			zap.String("source", l.src.String()),
			zap.Int("entries", len(idx.Entries)))
		return idx, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.GeneratedIndex), nil
}

// DecodeIndex parses an index payload. Anything other than an object with an
// "entries" array is rejected.
func DecodeIndex(data []byte) (*models.GeneratedIndex, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		return nil, errors.Mark(errors.Wrap(errOrNil(err), "decode materials index"), ErrMalformedIndex)
	}
	entries, ok := raw["entries"]
	if !ok || !bytes.HasPrefix(bytes.TrimSpace(entries), []byte("[")) {
		return nil, errors.Mark(errors.New("materials index has no entries array"), ErrMalformedIndex)
	}

	idx := &models.GeneratedIndex{}
	if err := json.Unmarshal(entries, &idx.Entries); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "decode materials index entries"), ErrMalformedIndex)
	}
	return idx, nil
}

func errOrNil(err error) error {
	if err == nil {
		return errors.New("payload is not an object")
	}
	return err
}

/*─────────────────────────────────────────────────────────────────────────────*
| Tree                                                                        |
*─────────────────────────────────────────────────────────────────────────────*/

// Tree returns the catalog tree for lang, building and caching it on first
// use. The returned tree is shared and must not be modified.
func (l *Loader) Tree(ctx context.Context, lang models.Lang) (*models.MaterialsTree, error) {
	l.mu.Lock()
	if t, ok := l.trees[lang]; ok {
		l.mu.Unlock()
		return t, nil
	}
	gen := l.gen
	l.mu.Unlock()

	idx, err := l.Index(ctx)
	if err != nil {
		return nil, err
	}
	tree := BuildTree(idx.Entries, lang)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.gen != gen {
		return tree, nil
	}
	if existing, ok := l.trees[lang]; ok {
		return existing, nil
	}
	l.trees[lang] = tree
	return tree, nil
}

/*─────────────────────────────────────────────────────────────────────────────*
| Content                                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

// Content returns the markdown body of a material, fetched lazily and cached
// per canonical key and language. A failure affects only this article.
func (l *Loader) Content(ctx context.Context, meta models.MaterialMeta) (models.MaterialWithContent, error) {
	key := meta.ID.Key()

	l.mu.Lock()
	if body, ok := l.content[key]; ok {
		l.mu.Unlock()
		return models.MaterialWithContent{MaterialMeta: meta, Content: body}, nil
	}
	gen := l.gen
	l.mu.Unlock()

	v, err := l.shared(ctx, "content:"+strconv.FormatUint(gen, 10)+":"+key, func(fctx context.Context) (any, error) {
		data, err := l.src.ReadContent(fctx, meta.ContentPath)
		if err != nil {
			return nil, errors.Mark(errors.Wrapf(err, "load content for %s", key), ErrContentUnavailable)
		}
		body, err := DecodeContent(data)
		if err != nil {
			return nil, errors.Wrapf(err, "content for %s", key)
		}

		l.mu.Lock()
		if l.gen == gen {
			l.content[key] = body
		}
		l.mu.Unlock()
		return body, nil
	})
	if err != nil {
		return models.MaterialWithContent{}, err
	}
	return models.MaterialWithContent{MaterialMeta: meta, Content: v.(string)}, nil
}

// DecodeContent parses a content blob; "content" must be a string.
func DecodeContent(data []byte) (string, error) {
	var blob struct {
		Content *string `json:"content"`
	}
	if err := json.Unmarshal(data, &blob); err != nil {
		return "", errors.Mark(errors.Wrap(err, "decode content blob"), ErrMalformedContent)
	}
	if blob.Content == nil {
		return "", errors.Mark(errors.New("content blob has no content string"), ErrMalformedContent)
	}
	return *blob.Content, nil
}

/*─────────────────────────────────────────────────────────────────────────────*
| Lifecycle                                                                   |
*─────────────────────────────────────────────────────────────────────────────*/

// Invalidate drops every cached value. In-flight fetches complete for their
// callers but their results are discarded.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gen++
	l.index = nil
	l.trees = make(map[models.Lang]*models.MaterialsTree)
	l.content = make(map[string]string)
	l.log.Info("materials catalog invalidated", zap.Uint64("generation", l.gen))
}

// Warm loads the index and builds a tree for every supported language.
func (l *Loader) Warm(ctx context.Context) error {
	for _, lang := range models.SupportedLangs {
		if _, err := l.Tree(ctx, lang); err != nil {
			return err
		}
	}
	return nil
}

// shared runs fn once per key across concurrent callers. The fetch itself is
// detached from any single caller's cancellation and bounded by the fetch
// timeout; each caller still stops waiting when its own ctx ends.
func (l *Loader) shared(ctx context.Context, key string, fn func(context.Context) (any, error)) (any, error) {
	ch := l.group.DoChan(key, func() (any, error) {
		fctx, cancel := timeouts.WithTimeout(context.WithoutCancel(ctx), timeouts.Fetch(), l.log, key)
		defer cancel()
		return fn(fctx)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			l.log.Warn("catalog fetch failed", zap.String("key", key), zap.Error(res.Err))
		}
		return res.Val, res.Err
	}
}
