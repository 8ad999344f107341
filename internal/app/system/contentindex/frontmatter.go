// internal/app/system/contentindex/frontmatter.go
package contentindex

import (
	"bytes"

	"github.com/BurntSushi/toml"
	"github.com/adrg/frontmatter"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Supported header formats: YAML between "---" lines and TOML between "+++".
var formats = []*frontmatter.Format{
	frontmatter.NewFormat("---", "---", yaml.Unmarshal),
	frontmatter.NewFormat("+++", "+++", toml.Unmarshal),
}

// SplitDocument separates the frontmatter header from the markdown body.
// A file without a header yields an empty map and the whole input as body.
func SplitDocument(raw []byte) (map[string]any, string, error) {
	fm := map[string]any{}
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm, formats...)
	if err != nil {
		return nil, "", errors.Wrap(err, "parse frontmatter")
	}
	if fm == nil {
		fm = map[string]any{}
	}
	return fm, string(body), nil
}
