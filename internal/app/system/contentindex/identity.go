// internal/app/system/contentindex/identity.go
package contentindex

import (
	"path"
	"regexp"
	"strings"

	"github.com/eduardgagite/portfolio/internal/domain/models"
)

// materialsDir is the directory name that anchors identity derivation.
const materialsDir = "materials"

var fileNamePattern = regexp.MustCompile(`^(.+)\.(ru|en)\.md$`)

// DeriveIdentity extracts the material identity from a slash-separated
// source path of the form .../materials/<category>/<section>/<slug>.<lang>.md.
// It also returns the path below the materials directory, which the web and
// content paths are built from.
func DeriveIdentity(p string) (models.MaterialID, string, bool) {
	parts := strings.Split(path.Clean(strings.ReplaceAll(p, "\\", "/")), "/")

	idx := -1
	for i, part := range parts {
		if part == materialsDir {
			idx = i
			break
		}
	}
	if idx < 0 || len(parts) != idx+4 {
		return models.MaterialID{}, "", false
	}

	category, section, file := parts[idx+1], parts[idx+2], parts[idx+3]
	if category == "" || section == "" {
		return models.MaterialID{}, "", false
	}

	m := fileNamePattern.FindStringSubmatch(file)
	if m == nil {
		return models.MaterialID{}, "", false
	}
	lang, ok := models.ParseLang(m[2])
	if !ok {
		return models.MaterialID{}, "", false
	}

	id := models.MaterialID{
		Category: category,
		Section:  section,
		Slug:     m[1],
		Lang:     lang,
	}
	return id, strings.Join(parts[idx+1:], "/"), true
}

// WebPath is the public path of the markdown source.
func WebPath(rel string) string {
	return "/content/materials/" + rel
}

// ContentPath is the public path of the content blob for rel.
func ContentPath(rel string) string {
	return "/materials-content/" + ContentRelPath(rel)
}

// ContentRelPath is the blob path relative to the content output directory.
func ContentRelPath(rel string) string {
	return strings.TrimSuffix(rel, ".md") + ".json"
}
