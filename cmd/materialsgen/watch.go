package main

import (
	"context"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// watchDebounce coalesces the burst of events an editor save produces.
const watchDebounce = 300 * time.Millisecond

func newWatchCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Rebuild whenever a markdown source changes",
		Long: `Builds once, then rebuilds after every change below the content roots.
A failed rebuild reports its problems and keeps the previous output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := loadOptions(v)
			logger, err := newLogger(opts.Verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			rebuild := func() {
				if _, err := runBuild(os.DirFS("."), opts, true, cmd.ErrOrStderr(), logger); err != nil {
					logger.Warn("rebuild failed", zap.Error(err))
				}
			}
			return watchRoots(ctx, opts.Roots, watchDebounce, rebuild, logger)
		},
	}
}

// watchRoots runs rebuild once, then again after every quiet period that
// follows a change to a markdown file below roots. fsnotify does not recurse,
// so every directory is added, including ones created later.
func watchRoots(ctx context.Context, roots []string, debounce time.Duration, rebuild func(), logger *zap.Logger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create fsnotify watcher")
	}
	defer func() { _ = w.Close() }()

	for _, root := range roots {
		if err := addTree(w, filepath.FromSlash(root)); err != nil {
			return err
		}
	}

	rebuild()
	logger.Info("watching content roots", zap.Strings("roots", roots))

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			logger.Info("watch stopped")
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := addTree(w, ev.Name); err != nil {
						logger.Warn("watch new directory", zap.String("dir", ev.Name), zap.Error(err))
					}
					continue
				}
			}
			if !strings.HasSuffix(ev.Name, ".md") {
				continue
			}
			logger.Debug("source changed", zap.String("file", ev.Name), zap.String("op", ev.Op.String()))
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			rebuild()

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", zap.Error(err))
		}
	}
}

// addTree watches dir and every directory below it.
func addTree(w *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrapf(err, "walk %s", p)
		}
		if d.IsDir() {
			if err := w.Add(p); err != nil {
				return errors.Wrapf(err, "watch %s", p)
			}
		}
		return nil
	})
}
