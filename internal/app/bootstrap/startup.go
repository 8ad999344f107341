// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"github.com/eduardgagite/portfolio/internal/app/resources"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after the catalog is
// configured, but before the HTTP handler is built. It registers the shared
// templates and starts the index watcher.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	if deps.Watcher != nil {
		deps.Watcher.Start()
		logger.Info("watching materials index for changes", zap.String("dir", appCfg.PublicDir))
	}
	return nil
}
