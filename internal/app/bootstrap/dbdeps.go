// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/eduardgagite/portfolio/internal/app/store/catalog"
	"github.com/eduardgagite/portfolio/internal/app/system/workers"
)

// DBDeps holds the backend dependencies for the app. The portfolio has no
// database; its backend is the generated materials catalog.
type DBDeps struct {
	Source  catalog.Source
	Loader  *catalog.Loader
	Watcher *workers.IndexWatcher // nil unless watch_index is on for a file source
}
