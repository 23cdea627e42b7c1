package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jvesely/go-songtex/internal/fetch"
	"github.com/jvesely/go-songtex/internal/library"
)

// runFetch fills in the chord text for library records that have a
// source URL but no chords yet. The browser starts lazily; the library
// is saved after every song so an interrupted run loses nothing.
func runFetch(ctx context.Context, flags *fetchFlags, env *Environment) error {
	cfg := env.Config

	timeout := cfg.FetchTimeout()
	if flags.timeout != "" {
		d, err := time.ParseDuration(flags.timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", flags.timeout, err)
		}
		timeout = d
	}

	records, err := library.Load(cfg.Library.Path)
	if err != nil {
		return err
	}

	f := fetch.New(timeout)
	defer f.Close()

	fetched := 0
	for i := range records {
		rec := &records[i]
		if rec.URL == "" || rec.Chords != "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		env.logf(flags.common.quiet, "Fetching %s (%s)", rec.Title, rec.URL)
		text, err := f.Fetch(ctx, rec.URL)
		if err != nil {
			fmt.Fprintf(env.Stderr, "  %s: %v\n", rec.ID(), err)
			continue
		}
		rec.Chords = text
		fetched++

		if err := library.Save(cfg.Library.Path, records); err != nil {
			return err
		}
	}

	env.logf(flags.common.quiet, "Fetched %d songs", fetched)
	return nil
}
