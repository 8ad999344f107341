package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/eduardgagite/portfolio/internal/app/store/catalog"
	"github.com/eduardgagite/portfolio/internal/app/system/seo"
	"github.com/eduardgagite/portfolio/internal/app/system/sitemap"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func newSitemapCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "sitemap",
		Short: "Write sitemap.xml from the generated public index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := loadOptions(v)
			logger, err := newLogger(opts.Verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			baseURL := opts.BaseURL
			if baseURL == "" {
				baseURL = seo.DefaultBaseURL
			}
			return writeSitemap(opts.Outputs.PublicIndexFile, baseURL, opts.SitemapFile, time.Now(), logger)
		},
	}
}

// writeSitemap reads the public index and writes the sitemap next to it.
func writeSitemap(indexFile, baseURL, out string, now time.Time, logger *zap.Logger) error {
	data, err := os.ReadFile(indexFile)
	if err != nil {
		return errors.WithHint(errors.Wrap(err, "read public index"), "run materialsgen build first")
	}
	idx, err := catalog.DecodeIndex(data)
	if err != nil {
		return err
	}

	xml, err := sitemap.Generate(baseURL, idx.Entries, now)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return errors.Wrap(err, "create sitemap directory")
	}
	if err := os.WriteFile(out, xml, 0o644); err != nil {
		return errors.Wrap(err, "write sitemap")
	}
	logger.Info("sitemap written", zap.String("file", out), zap.Int("materials", len(idx.Entries)))
	return nil
}
