package bootstrap

import (
	"testing"
	"time"

	"github.com/dalemusser/waffle/config"
	"github.com/eduardgagite/portfolio/internal/app/store/catalog"
	"github.com/eduardgagite/portfolio/internal/app/system/timeouts"
	"github.com/eduardgagite/portfolio/internal/domain/models"
	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func validConfig() AppConfig {
	return AppConfig{
		CatalogSource:  "file",
		PublicDir:      "public",
		ContentDir:     "content/materials",
		ContentTimeout: 10 * time.Second,
		DefaultLang:    models.LangRU,
		SessionKey:     devSessionKey,
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		mutate  func(*AppConfig)
		wantErr bool
	}{
		{name: "defaults", env: "dev", mutate: func(*AppConfig) {}},
		{name: "unknown source", env: "dev", mutate: func(c *AppConfig) { c.CatalogSource = "s3" }, wantErr: true},
		{name: "file without dir", env: "dev", mutate: func(c *AppConfig) { c.PublicDir = "" }, wantErr: true},
		{name: "http without url", env: "dev", mutate: func(c *AppConfig) { c.CatalogSource = "http" }, wantErr: true},
		{name: "http relative url", env: "dev", mutate: func(c *AppConfig) {
			c.CatalogSource = "http"
			c.CatalogBaseURL = "/materials"
		}, wantErr: true},
		{name: "http ok", env: "dev", mutate: func(c *AppConfig) {
			c.CatalogSource = "http"
			c.CatalogBaseURL = "https://eduardgagite.github.io"
		}},
		{name: "tiny timeout", env: "dev", mutate: func(c *AppConfig) { c.ContentTimeout = time.Millisecond }, wantErr: true},
		{name: "empty session key", env: "dev", mutate: func(c *AppConfig) { c.SessionKey = "" }, wantErr: true},
		{name: "dev key in prod", env: "prod", mutate: func(*AppConfig) {}, wantErr: true},
		{name: "real key in prod", env: "prod", mutate: func(c *AppConfig) { c.SessionKey = "a-real-secret-with-more-than-32-characters" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := ValidateConfig(&config.CoreConfig{Env: tt.env}, cfg, testLogger())
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewSource(t *testing.T) {
	src, err := newSource(validConfig())
	if err != nil {
		t.Fatalf("newSource(file): %v", err)
	}
	if fs, ok := src.(*catalog.FileSource); !ok || fs.Dir != "public" {
		t.Errorf("expected file source over public, got %v", src)
	}

	cfg := validConfig()
	cfg.CatalogSource = "http"
	cfg.CatalogBaseURL = "https://example.test"
	src, err = newSource(cfg)
	if err != nil {
		t.Fatalf("newSource(http): %v", err)
	}
	if _, ok := src.(*catalog.HTTPSource); !ok {
		t.Errorf("expected http source, got %T", src)
	}

	cfg.CatalogBaseURL = ""
	if _, err := newSource(cfg); err == nil {
		t.Error("expected error for http source without base URL")
	}
}

func TestConnectDB_WatcherOnlyWhenEnabled(t *testing.T) {
	cfg := validConfig()
	cfg.PublicDir = t.TempDir()

	deps, err := ConnectDB(t.Context(), &config.CoreConfig{Env: "dev"}, cfg, testLogger())
	if err != nil {
		t.Fatalf("ConnectDB: %v", err)
	}
	if deps.Loader == nil || deps.Source == nil {
		t.Fatal("expected loader and source")
	}
	if deps.Watcher != nil {
		t.Error("watcher created although watch_index is off")
	}

	cfg.WatchIndex = true
	deps, err = ConnectDB(t.Context(), &config.CoreConfig{Env: "dev"}, cfg, testLogger())
	if err != nil {
		t.Fatalf("ConnectDB with watch: %v", err)
	}
	if deps.Watcher == nil {
		t.Fatal("expected a watcher")
	}
	if err := Shutdown(t.Context(), nil, cfg, deps, testLogger()); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}

func TestConnectDB_AppliesContentTimeout(t *testing.T) {
	t.Setenv("TIMEOUT_FETCH", "")
	t.Cleanup(timeouts.Reset)

	cfg := validConfig()
	cfg.CatalogSource = "http"
	cfg.CatalogBaseURL = "https://example.test"
	cfg.ContentTimeout = 30 * time.Second

	deps, err := ConnectDB(t.Context(), &config.CoreConfig{Env: "dev"}, cfg, testLogger())
	if err != nil {
		t.Fatalf("ConnectDB: %v", err)
	}
	if got := timeouts.Fetch(); got != 30*time.Second {
		t.Errorf("timeouts.Fetch() = %v, want 30s", got)
	}
	src, ok := deps.Source.(*catalog.HTTPSource)
	if !ok {
		t.Fatalf("expected http source, got %T", deps.Source)
	}
	if src.Client.Timeout != 30*time.Second {
		t.Errorf("http client timeout = %v, want 30s", src.Client.Timeout)
	}
}

func TestEnsureSchema_MissingIndexIsNotFatal(t *testing.T) {
	cfg := validConfig()
	cfg.PublicDir = t.TempDir()

	deps, err := ConnectDB(t.Context(), &config.CoreConfig{Env: "dev"}, cfg, testLogger())
	if err != nil {
		t.Fatalf("ConnectDB: %v", err)
	}
	if err := EnsureSchema(t.Context(), nil, cfg, deps, testLogger()); err != nil {
		t.Errorf("EnsureSchema should log, not fail: %v", err)
	}
}
