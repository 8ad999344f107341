// internal/app/system/contentindex/indexer.go
package contentindex

import (
	"io/fs"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/eduardgagite/portfolio/internal/domain/models"
	"go.uber.org/zap"
)

// Blob is a content file to be written below the content output directory.
type Blob struct {
	RelPath string
	Blob    models.ContentBlob
}

// Result is the output of a successful indexing run.
type Result struct {
	Index models.GeneratedIndex
	Blobs []Blob
}

// Parsed is a single source file that passed every check.
type Parsed struct {
	Meta models.MaterialMeta
	Body string
}

// ParseFile runs the per-file checks in order: empty file, frontmatter split
// and empty body, path identity, duplicate identity, then frontmatter
// validation. seen carries the identities accepted so far in the run and is
// updated in place; a nil seen skips the duplicate check.
func ParseFile(f SourceFile, seen map[string]bool) (Parsed, []Problem) {
	if strings.TrimSpace(string(f.Data)) == "" {
		return Parsed{}, []Problem{{Kind: KindEmptyFile, File: f.Path, Message: "file is empty"}}
	}

	fm, body, err := SplitDocument(f.Data)
	if err != nil {
		return Parsed{}, []Problem{{Kind: KindInvalidFrontmatter, File: f.Path, Message: err.Error()}}
	}
	if strings.TrimSpace(body) == "" {
		return Parsed{}, []Problem{{Kind: KindEmptyContent, File: f.Path, Message: "markdown content is empty"}}
	}

	id, rel, ok := DeriveIdentity(f.Path)
	if !ok {
		return Parsed{}, []Problem{{
			Kind:    KindInvalidPath,
			File:    f.Path,
			Message: "invalid material path. Expected */materials/<category>/<section>/<slug>.<ru|en>.md",
		}}
	}

	if seen != nil {
		key := id.CanonicalKey() + "/" + string(id.Lang)
		if seen[key] {
			return Parsed{}, []Problem{{
				Kind:    KindDuplicateID,
				File:    f.Path,
				Message: "duplicate material id \"" + key + "\"",
			}}
		}
		seen[key] = true
	}

	front, problems := ValidateFrontmatter(fm, id, f.Path)
	if len(problems) > 0 {
		return Parsed{}, problems
	}

	return Parsed{
		Meta: models.MaterialMeta{
			Frontmatter: front,
			ID:          id,
			Path:        WebPath(rel),
			ContentPath: ContentPath(rel),
		},
		Body: body,
	}, nil
}

// Aggregate parses every file and assembles the index. Either every file is
// valid and a Result is returned, or a *ValidationError listing all problems
// is returned and no Result exists.
func Aggregate(files []SourceFile) (*Result, error) {
	var problems []Problem
	seen := make(map[string]bool, len(files))
	res := &Result{Index: models.GeneratedIndex{Entries: []models.MaterialMeta{}}}

	for _, f := range files {
		parsed, ps := ParseFile(f, seen)
		if len(ps) > 0 {
			problems = append(problems, ps...)
			continue
		}

		res.Index.Entries = append(res.Index.Entries, parsed.Meta)
		res.Blobs = append(res.Blobs, Blob{
			RelPath: strings.TrimPrefix(parsed.Meta.ContentPath, "/materials-content/"),
			Blob:    models.ContentBlob{Content: parsed.Body},
		})
	}

	if len(problems) > 0 {
		return nil, failed(problems)
	}
	return res, nil
}

func failed(problems []Problem) error {
	return errors.WithHint(&ValidationError{Problems: problems},
		"fix the listed files and run the indexer again; nothing was written")
}

// Indexer reads content roots from a filesystem and builds the index.
type Indexer struct {
	FS    fs.FS
	Roots []string
	Log   *zap.Logger
}

// NewIndexer constructs an Indexer over the given roots.
func NewIndexer(fsys fs.FS, roots []string, logger *zap.Logger) *Indexer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Indexer{FS: fsys, Roots: roots, Log: logger}
}

// Build collects, reads, validates and aggregates every source file.
func (ix *Indexer) Build() (*Result, error) {
	paths, err := CollectPaths(ix.FS, ix.Roots...)
	if err != nil {
		return nil, err
	}
	ix.Log.Debug("collected material sources", zap.Int("files", len(paths)), zap.Strings("roots", ix.Roots))

	files, readProblems := ReadSources(ix.FS, paths)
	res, err := Aggregate(files)
	if len(readProblems) > 0 {
		var verr *ValidationError
		all := readProblems
		if errors.As(err, &verr) {
			all = append(all, verr.Problems...)
		}
		return nil, failed(all)
	}
	if err != nil {
		return nil, err
	}

	ix.Log.Info("materials indexed", zap.Int("entries", len(res.Index.Entries)))
	return res, nil
}
