// internal/app/system/contentindex/write.go
package contentindex

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Outputs names the files and directories an indexing run writes.
type Outputs struct {
	IndexFile       string // pretty-printed combined index
	PublicIndexFile string // compact copy served to clients
	ContentDir      string // one JSON blob per article; regenerated on each run
}

// DefaultOutputs mirrors the layout the site serves from.
func DefaultOutputs() Outputs {
	return Outputs{
		IndexFile:       filepath.Join("content", "generated-materials.json"),
		PublicIndexFile: filepath.Join("public", "materials-index.json"),
		ContentDir:      filepath.Join("public", "materials-content"),
	}
}

// Write persists a successful Result. Blobs are written into a staging
// directory that replaces ContentDir as a whole, so stale blobs from earlier
// runs never survive.
func Write(res *Result, out Outputs, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	pretty, err := encodeJSON(res.Index, true)
	if err != nil {
		return errors.Wrap(err, "encode index")
	}
	compact, err := encodeJSON(res.Index, false)
	if err != nil {
		return errors.Wrap(err, "encode public index")
	}

	staging := out.ContentDir + ".tmp"
	if err := os.RemoveAll(staging); err != nil {
		return errors.Wrap(err, "clear staging directory")
	}
	for _, b := range res.Blobs {
		data, err := encodeJSON(b.Blob, false)
		if err != nil {
			return errors.Wrapf(err, "encode content %s", b.RelPath)
		}
		if err := writeFile(filepath.Join(staging, filepath.FromSlash(b.RelPath)), data); err != nil {
			_ = os.RemoveAll(staging)
			return err
		}
	}
	if err := os.MkdirAll(staging, 0o755); err != nil {
		return errors.Wrap(err, "create staging directory")
	}
	if err := os.RemoveAll(out.ContentDir); err != nil {
		return errors.Wrap(err, "clear content directory")
	}
	if err := os.Rename(staging, out.ContentDir); err != nil {
		return errors.Wrap(err, "publish content directory")
	}

	if err := writeFile(out.IndexFile, pretty); err != nil {
		return err
	}
	if err := writeFile(out.PublicIndexFile, compact); err != nil {
		return err
	}

	logger.Info("materials written",
		zap.Int("entries", len(res.Index.Entries)),
		zap.String("index", out.IndexFile),
		zap.String("public_index", out.PublicIndexFile),
		zap.String("content_dir", out.ContentDir))
	return nil
}

func encodeJSON(v any, indent bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func writeFile(name string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return errors.Wrapf(err, "create directory for %s", name)
	}
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", name)
	}
	return nil
}
