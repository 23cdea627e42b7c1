package main

import (
	"context"
	"time"

	"github.com/jvesely/go-songtex/internal/catalog"
	"github.com/jvesely/go-songtex/internal/sorter"
)

// shutdownGrace bounds how long a stopping sorter waits for in-flight
// requests.
const shutdownGrace = 5 * time.Second

// runSort serves the drag-to-reorder UI until interrupted.
func runSort(ctx context.Context, flags *sortFlags, env *Environment) error {
	cfg := env.Config

	addr := cfg.Sorter.Addr
	if flags.addr != "" {
		addr = flags.addr
	}

	store, err := catalog.Open(cfg.Output.Catalog)
	if err != nil {
		return err
	}
	defer store.Close()

	srv := sorter.New(store, addr)

	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe() }()

	env.logf(flags.common.quiet, "Sorter UI on http://%s (Ctrl-C to stop)", addr)

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-done
	}
}
