// internal/app/features/materials/templates.go
package materials

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "materials",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
