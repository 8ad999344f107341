// internal/app/store/catalog/source.go
package catalog

import (
	"context"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// IndexFile is the name of the public index inside a source.
const IndexFile = "materials-index.json"

// maxPayload caps how much of a remote response is read.
const maxPayload = 32 << 20

// Source provides the raw generated artifacts: the public index and the
// per-article content blobs. Implementations do not cache or retry.
type Source interface {
	ReadIndex(ctx context.Context) ([]byte, error)
	ReadContent(ctx context.Context, contentPath string) ([]byte, error)
	String() string
}

// FileSource reads artifacts from a local directory (the public dir the
// indexer writes to).
type FileSource struct {
	Dir string
}

// NewFileSource returns a FileSource rooted at dir.
func NewFileSource(dir string) *FileSource {
	return &FileSource{Dir: dir}
}

// IndexPath is the absolute or relative path of the index file.
func (s *FileSource) IndexPath() string {
	return filepath.Join(s.Dir, IndexFile)
}

func (s *FileSource) ReadIndex(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.IndexPath())
	if err != nil {
		return nil, errors.Wrap(err, "read index file")
	}
	return data, nil
}

func (s *FileSource) ReadContent(ctx context.Context, contentPath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rel, err := cleanContentPath(contentPath)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.Dir, filepath.FromSlash(rel)))
	if err != nil {
		return nil, errors.Wrapf(err, "read content %s", contentPath)
	}
	return data, nil
}

func (s *FileSource) String() string { return "file:" + s.Dir }

// HTTPSource fetches artifacts from a static host, e.g. the deployed site.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPSource returns an HTTPSource; a nil client uses http.DefaultClient.
func NewHTTPSource(baseURL string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{BaseURL: strings.TrimRight(baseURL, "/"), Client: client}
}

func (s *HTTPSource) ReadIndex(ctx context.Context) ([]byte, error) {
	return s.get(ctx, "/"+IndexFile)
}

func (s *HTTPSource) ReadContent(ctx context.Context, contentPath string) ([]byte, error) {
	rel, err := cleanContentPath(contentPath)
	if err != nil {
		return nil, err
	}
	return s.get(ctx, "/"+rel)
}

func (s *HTTPSource) String() string { return "http:" + s.BaseURL }

func (s *HTTPSource) get(ctx context.Context, p string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+p, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "GET %s", p)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf("GET %s: unexpected status %d", p, resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPayload))
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", p)
	}
	return data, nil
}

// cleanContentPath turns "/materials-content/a/b/c.ru.json" into a relative
// slash path and rejects anything that would escape the source root.
func cleanContentPath(p string) (string, error) {
	rel := path.Clean("/" + strings.TrimSpace(p))
	rel = strings.TrimPrefix(rel, "/")
	if rel == "" || rel == "." || strings.Contains(p, "..") {
		return "", errors.WithHint(errors.Newf("invalid content path %q", p), "content paths come from the generated index")
	}
	return rel, nil
}
