// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/dalemusser/waffle/config"
	"github.com/eduardgagite/portfolio/internal/app/store/catalog"
	"github.com/eduardgagite/portfolio/internal/app/system/timeouts"
	"github.com/eduardgagite/portfolio/internal/app/system/workers"
	"go.uber.org/zap"
)

// ConnectDB builds the catalog backend: the artifact source, the loader that
// caches it and, when enabled, the index watcher (started in Startup).
// Timeouts are applied first since the source and the warm-up in
// EnsureSchema read them.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	configureTimeouts(appCfg, logger)

	src, err := newSource(appCfg)
	if err != nil {
		return DBDeps{}, err
	}
	loader := catalog.NewLoader(src, logger.Named("catalog"))

	deps := DBDeps{Source: src, Loader: loader}

	if fileSrc, ok := src.(*catalog.FileSource); ok && appCfg.WatchIndex {
		w, err := workers.NewIndexWatcher(fileSrc.Dir, []string{catalog.IndexFile}, reloadCatalog(loader, logger), logger, 0)
		if err != nil {
			return DBDeps{}, errors.Wrap(err, "watch materials index")
		}
		deps.Watcher = w
	}

	logger.Info("materials catalog configured",
		zap.String("source", src.String()),
		zap.Bool("watch", deps.Watcher != nil))
	return deps, nil
}

// configureTimeouts applies content_timeout, then TIMEOUT_* env overrides.
func configureTimeouts(appCfg AppConfig, logger *zap.Logger) {
	timeouts.Configure(timeouts.Config{Fetch: appCfg.ContentTimeout})
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		cur := timeouts.Current()
		logger.Info("timeouts overridden from environment",
			zap.Duration("ping", cur.Ping),
			zap.Duration("fetch", cur.Fetch),
			zap.Duration("rebuild", cur.Rebuild))
	}
}

// newSource picks the artifact source named by catalog_source.
func newSource(appCfg AppConfig) (catalog.Source, error) {
	switch appCfg.CatalogSource {
	case "", "file":
		return catalog.NewFileSource(appCfg.PublicDir), nil
	case "http":
		if appCfg.CatalogBaseURL == "" {
			return nil, errors.New("catalog_source=http requires catalog_base_url")
		}
		return catalog.NewHTTPSource(appCfg.CatalogBaseURL, &http.Client{Timeout: timeouts.Fetch()}), nil
	}
	return nil, errors.Newf("unknown catalog_source %q", appCfg.CatalogSource)
}

// reloadCatalog drops every cached value and warms the index again.
func reloadCatalog(loader *catalog.Loader, logger *zap.Logger) func(context.Context) {
	return func(ctx context.Context) {
		loader.Invalidate()
		if err := loader.Warm(ctx); err != nil {
			logger.Warn("materials catalog reload failed", zap.Error(err))
			return
		}
		logger.Info("materials catalog reloaded")
	}
}

// EnsureSchema loads the index once so the first visitor does not pay for
// it. A missing index is logged, not fatal: pages report it with a retry
// link and the next request tries again.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Fetch(), logger, "warm materials catalog")
	defer cancel()

	if err := deps.Loader.Warm(ctx); err != nil {
		logger.Warn("materials catalog not available at startup", zap.Error(err))
	}
	return nil
}
