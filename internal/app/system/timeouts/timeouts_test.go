package timeouts

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestConfigure_IgnoresZeroValues(t *testing.T) {
	t.Cleanup(Reset)

	Configure(Config{Fetch: 3 * time.Second})

	if Fetch() != 3*time.Second {
		t.Errorf("Fetch() = %v, want 3s", Fetch())
	}
	if Ping() != DefaultPing {
		t.Errorf("Ping() = %v, want default %v", Ping(), DefaultPing)
	}
	if Rebuild() != DefaultRebuild {
		t.Errorf("Rebuild() = %v, want default %v", Rebuild(), DefaultRebuild)
	}
}

func TestConfigureFromEnv(t *testing.T) {
	t.Cleanup(Reset)
	t.Setenv("TIMEOUT_PING", "500ms")
	t.Setenv("TIMEOUT_FETCH", "not-a-duration")
	t.Setenv("TIMEOUT_REBUILD", "-1s")

	if n := ConfigureFromEnv(); n != 1 {
		t.Errorf("ConfigureFromEnv() = %d, want 1", n)
	}
	got := Current()
	if got.Ping != 500*time.Millisecond || got.Fetch != DefaultFetch || got.Rebuild != DefaultRebuild {
		t.Errorf("Current() = %+v", got)
	}
}

func TestWithTimeout_Expires(t *testing.T) {
	ctx, cancel := WithTimeout(context.Background(), time.Millisecond, zap.NewNop(), "test")
	defer cancel()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context did not expire")
	}
	if ctx.Err() != context.DeadlineExceeded {
		t.Errorf("ctx.Err() = %v", ctx.Err())
	}
}
