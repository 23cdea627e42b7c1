package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	songtex "github.com/jvesely/go-songtex"
	"github.com/jvesely/go-songtex/internal/config"
	"github.com/jvesely/go-songtex/internal/fetch"
	"github.com/jvesely/go-songtex/internal/library"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "browser connect", err: fetch.ErrBrowserConnect, want: ExitBrowser},
		{name: "wrapped page load", err: fmt.Errorf("fetch: %w", fetch.ErrPageLoad), want: ExitBrowser},
		{name: "missing file", err: os.ErrNotExist, want: ExitIO},
		{name: "missing library", err: library.ErrLibraryNotFound, want: ExitIO},
		{name: "invalid library", err: library.ErrInvalidLibrary, want: ExitIO},
		{name: "config parse", err: config.ErrConfigParse, want: ExitUsage},
		{name: "bad tuning", err: config.ErrInvalidTuning, want: ExitUsage},
		{name: "empty source", err: songtex.ErrEmptySource, want: ExitUsage},
		{name: "unknown command", err: ErrUnknownCommand, want: ExitUsage},
		{name: "anything else", err: errors.New("boom"), want: ExitGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
