// internal/app/system/contentindex/collect.go
package contentindex

import (
	"io/fs"
	"path"
	"strings"

	"github.com/cockroachdb/errors"
)

// SourceFile is one markdown file read from a content root.
type SourceFile struct {
	Path string // slash-separated, relative to the filesystem root
	Data []byte
}

// CollectPaths walks every root in fsys and returns the markdown files it
// finds, in lexical order per root. Non-markdown files are ignored.
func CollectPaths(fsys fs.FS, roots ...string) ([]string, error) {
	var out []string
	for _, root := range roots {
		root = path.Clean(root)
		err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.Type().IsRegular() && strings.HasSuffix(d.Name(), ".md") {
				out = append(out, p)
			}
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "walk content root %q", root)
		}
	}
	return out, nil
}

// ReadSources loads the collected files. Read failures are reported as
// problems so that one unreadable file does not hide the others.
func ReadSources(fsys fs.FS, paths []string) ([]SourceFile, []Problem) {
	files := make([]SourceFile, 0, len(paths))
	var problems []Problem
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			problems = append(problems, Problem{Kind: KindUnreadable, File: p, Message: "cannot read file: " + err.Error()})
			continue
		}
		files = append(files, SourceFile{Path: p, Data: data})
	}
	return files, problems
}
