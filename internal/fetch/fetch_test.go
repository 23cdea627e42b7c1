package fetch

import (
	"context"
	"testing"
	"time"
)

func TestCloseWithoutLaunch(t *testing.T) {
	t.Parallel()
	f := New(time.Second)
	if err := f.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
}

func TestFetchCancelledContext(t *testing.T) {
	t.Parallel()
	f := New(time.Second)
	defer f.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Cancellation is checked before the browser would launch.
	if _, err := f.Fetch(ctx, "https://example.com"); err == nil {
		t.Error("Fetch() with cancelled context succeeded, want error")
	}
	if f.browser != nil {
		t.Error("Fetch() launched a browser despite cancelled context")
	}
}
