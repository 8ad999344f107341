package main

import (
	"path/filepath"
	"strings"

	"github.com/eduardgagite/portfolio/internal/app/system/contentindex"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config keys, also the flag names. Environment overrides use the
// MATERIALSGEN_ prefix with dashes turned into underscores
// (MATERIALSGEN_PUBLIC_INDEX).
const (
	keyRoots       = "roots"
	keyIndex       = "index"
	keyPublicIndex = "public-index"
	keyContentOut  = "content-out"
	keyBaseURL     = "base-url"
	keySitemapOut  = "sitemap-out"
	keyVerbose     = "verbose"
)

// options is the resolved configuration of one invocation.
type options struct {
	Roots   []string
	Outputs contentindex.Outputs

	// BaseURL is the absolute site URL. When set, build also writes the
	// sitemap to SitemapFile.
	BaseURL     string
	SitemapFile string

	Verbose bool
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("MATERIALSGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	defaults := contentindex.DefaultOutputs()

	root := &cobra.Command{
		Use:           "materialsgen",
		Short:         "Build the materials index from markdown sources",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return v.BindPFlags(cmd.Flags())
		},
	}

	pf := root.PersistentFlags()
	pf.StringSlice(keyRoots, []string{"content/materials"}, "Content roots to scan (slash paths relative to the working directory)")
	pf.String(keyIndex, defaults.IndexFile, "Pretty-printed combined index")
	pf.String(keyPublicIndex, defaults.PublicIndexFile, "Compact index served to clients")
	pf.String(keyContentOut, defaults.ContentDir, "Directory receiving one JSON blob per article")
	pf.String(keyBaseURL, "", "Absolute site URL; when set, build also writes the sitemap")
	pf.String(keySitemapOut, filepath.Join("public", "sitemap.xml"), "Sitemap output file")
	pf.BoolP(keyVerbose, "v", false, "Development logging")

	root.AddCommand(
		newBuildCmd(v),
		newValidateCmd(v),
		newWatchCmd(v),
		newSitemapCmd(v),
	)
	return root
}

func loadOptions(v *viper.Viper) options {
	return options{
		Roots: v.GetStringSlice(keyRoots),
		Outputs: contentindex.Outputs{
			IndexFile:       v.GetString(keyIndex),
			PublicIndexFile: v.GetString(keyPublicIndex),
			ContentDir:      v.GetString(keyContentOut),
		},
		BaseURL:     strings.TrimSpace(v.GetString(keyBaseURL)),
		SitemapFile: v.GetString(keySitemapOut),
		Verbose:     v.GetBool(keyVerbose),
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	return cfg.Build()
}
