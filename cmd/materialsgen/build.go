package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/eduardgagite/portfolio/internal/app/system/contentindex"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func newBuildCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Validate every source and write the index and content blobs",
		Long: `Scans the content roots, validates every material and writes the
combined index, the public index and one content blob per article.
With --base-url the sitemap is written as well.
Every problem found is reported; if there is any, nothing is written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := loadOptions(v)
			logger, err := newLogger(opts.Verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			_, err = runBuild(os.DirFS("."), opts, true, cmd.ErrOrStderr(), logger)
			return err
		},
	}
}

func newValidateCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check every source without writing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := loadOptions(v)
			logger, err := newLogger(opts.Verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			res, err := runBuild(os.DirFS("."), opts, false, cmd.ErrOrStderr(), logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d materials OK\n", len(res.Index.Entries))
			return nil
		},
	}
}

// runBuild indexes the roots in fsys and, when write is set, persists the
// result, plus the sitemap when a base URL is configured. Validation problems are printed one per line to problems.
func runBuild(fsys fs.FS, opts options, write bool, problems io.Writer, logger *zap.Logger) (*contentindex.Result, error) {
	res, err := contentindex.NewIndexer(fsys, opts.Roots, logger).Build()
	if err != nil {
		var verr *contentindex.ValidationError
		if errors.As(err, &verr) {
			for _, p := range verr.Problems {
				fmt.Fprintf(problems, "  - %s\n", p)
			}
			return nil, errors.Newf("material generation failed with %d validation error(s)", len(verr.Problems))
		}
		return nil, err
	}
	if !write {
		return res, nil
	}
	if err := contentindex.Write(res, opts.Outputs, logger); err != nil {
		return nil, err
	}
	if opts.BaseURL != "" {
		if err := writeSitemap(opts.Outputs.PublicIndexFile, opts.BaseURL, opts.SitemapFile, time.Now(), logger); err != nil {
			return nil, err
		}
	}
	return res, nil
}
