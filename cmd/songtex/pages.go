package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jvesely/go-songtex/internal/book"
	"github.com/jvesely/go-songtex/internal/catalog"
)

// runPages scans the rendered per-song PDFs and records their page
// counts in the catalog, so the sorter UI can show them.
func runPages(ctx context.Context, flags *pagesFlags, env *Environment) error {
	cfg := env.Config

	dir := flags.dir
	if dir == "" {
		dir = cfg.Output.Dir
	}

	store, err := catalog.Open(cfg.Output.Catalog)
	if err != nil {
		return err
	}
	defer store.Close()

	names, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read pdf dir: %w", err)
	}

	counted := 0
	for _, entry := range names {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".pdf") {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		id := strings.TrimSuffix(entry.Name(), ".pdf")
		pages, err := book.CountPages(filepath.Join(dir, entry.Name()))
		if err != nil {
			fmt.Fprintf(env.Stderr, "  %s: %v\n", id, err)
			continue
		}

		// Rendered PDFs may exist for songs not yet compiled this run.
		if _, err := store.Get(ctx, id); err != nil {
			if err := store.Upsert(ctx, id, id, ""); err != nil {
				return err
			}
		}
		if err := store.SetPageCount(ctx, id, pages); err != nil {
			return err
		}
		env.logf(!flags.common.verbose, "  %s\t%d", id, pages)
		counted++
	}

	env.logf(flags.common.quiet, "Counted pages for %d songs", counted)
	return nil
}
