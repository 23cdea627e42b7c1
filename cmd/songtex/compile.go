package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	songtex "github.com/jvesely/go-songtex"
	"github.com/jvesely/go-songtex/internal/book"
	"github.com/jvesely/go-songtex/internal/catalog"
	"github.com/jvesely/go-songtex/internal/config"
	"github.com/jvesely/go-songtex/internal/library"
	"github.com/jvesely/go-songtex/internal/preview"
)

// Sentinel errors for CLI operations.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrNothingToDo    = errors.New("no songs to compile")
	ErrAllFailed      = errors.New("every song failed to compile")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// compileResult holds the outcome of one song's compilation.
type compileResult struct {
	id   string
	file string
	err  error
}

// tuningOptions translates config overrides into compiler options.
func tuningOptions(cfg config.Config) []songtex.Option {
	t := songtex.DefaultTuning()
	if cfg.Tuning.MinReach > 0 {
		t.MinReach = cfg.Tuning.MinReach
	}
	if cfg.Tuning.QualityBonus > 0 {
		t.QualityBonus = cfg.Tuning.QualityBonus
	}
	return []songtex.Option{songtex.WithTuning(t)}
}

// runCompile compiles the whole library: one .tex per song, catalog
// bookkeeping, and the master document. Per-song failures are
// collected, not fatal.
func runCompile(ctx context.Context, flags *compileFlags, pool Pool, env *Environment) error {
	cfg := env.Config

	records, err := library.Load(cfg.Library.Path)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("%w: %s is empty", ErrNothingToDo, cfg.Library.Path)
	}

	store, err := catalog.Open(cfg.Output.Catalog)
	if err != nil {
		return err
	}
	defer store.Close()

	skip, err := finalizedSet(ctx, store, flags.force)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.Output.Dir, dirPermissions); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	results := compileBatch(ctx, records, skip, flags, pool, env)

	var failed []songtex.SongError
	failedIDs := make(map[string]bool)
	compiled := 0
	for _, res := range results {
		if res.err != nil {
			failed = append(failed, songtex.SongError{ID: res.id, Err: res.err})
			failedIDs[res.id] = true
			continue
		}
		compiled++
	}

	for _, rec := range records {
		id := rec.ID()
		// A failed song must not end up in the master document.
		file := ""
		if !failedIDs[id] {
			file = filepath.Join(cfg.Output.Dir, id+".tex")
		}
		if err := store.Upsert(ctx, id, rec.Title, file); err != nil {
			return err
		}
	}

	entries, err := store.All(ctx)
	if err != nil {
		return err
	}
	if err := book.Write(cfg.Output.Book, entries); err != nil && !errors.Is(err, book.ErrNoSongs) {
		return err
	}

	if flags.notes != "" {
		if err := renderNotes(ctx, flags.notes, cfg.Output.Dir); err != nil {
			return err
		}
	}

	env.logf(flags.common.quiet, "Compiled %d/%d songs into %s", compiled, len(records), cfg.Output.Book)
	for _, f := range failed {
		fmt.Fprintf(env.Stderr, "  %s: %v\n", f.ID, f.Err)
	}
	if compiled == 0 && len(failed) > 0 {
		return ErrAllFailed
	}
	return nil
}

// finalizedSet lists the songs compile must not touch.
func finalizedSet(ctx context.Context, store *catalog.Store, force bool) (map[string]bool, error) {
	skip := make(map[string]bool)
	if force {
		return skip, nil
	}
	entries, err := store.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.Finalized {
			skip[e.ID] = true
		}
	}
	return skip, nil
}

// compileBatch fans the records out over pool-sized workers.
func compileBatch(ctx context.Context, records []library.Record, skip map[string]bool, flags *compileFlags, pool Pool, env *Environment) []compileResult {
	jobs := make(chan library.Record)
	out := make(chan compileResult)

	var wg sync.WaitGroup
	for range pool.Size() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := pool.Acquire()
			defer pool.Release(c)
			for rec := range jobs {
				out <- compileOne(ctx, rec, c, flags, env)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, rec := range records {
			if skip[rec.ID()] {
				env.logf(!flags.common.verbose, "  skipping finalized %s", rec.ID())
				continue
			}
			select {
			case jobs <- rec:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(out)
	}()

	var results []compileResult
	for res := range out {
		results = append(results, res)
	}
	return results
}

// compileOne compiles a single record and writes its artefacts.
func compileOne(ctx context.Context, rec library.Record, c Compiler, flags *compileFlags, env *Environment) compileResult {
	id := rec.ID()
	if err := ctx.Err(); err != nil {
		return compileResult{id: id, err: err}
	}

	song, lineErrs := rec.Song()
	for _, le := range lineErrs {
		env.logf(!flags.common.verbose, "  %s: %v", id, le)
	}

	text, err := c.Compile(song)
	if err != nil {
		return compileResult{id: id, err: err}
	}

	file := filepath.Join(env.Config.Output.Dir, id+".tex")
	if err := os.WriteFile(file, []byte(text), filePermissions); err != nil {
		return compileResult{id: id, err: fmt.Errorf("write song: %w", err)}
	}

	if flags.preview {
		page, err := preview.New().Source(rec.Title, text)
		if err != nil {
			return compileResult{id: id, err: err}
		}
		htmlFile := filepath.Join(env.Config.Output.Dir, id+".html")
		if err := os.WriteFile(htmlFile, []byte(page), filePermissions); err != nil {
			return compileResult{id: id, err: fmt.Errorf("write preview: %w", err)}
		}
	}

	env.logf(!flags.common.verbose, "  compiled %s", id)
	return compileResult{id: id, file: file}
}

// renderNotes turns the markdown notes file into notes.html in the
// output directory.
func renderNotes(ctx context.Context, path, outDir string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read notes: %w", err)
	}
	page, err := preview.New().Notes(ctx, filepath.Base(path), string(content))
	if err != nil {
		return err
	}
	out := filepath.Join(outDir, "notes.html")
	if err := os.WriteFile(out, []byte(page), filePermissions); err != nil {
		return fmt.Errorf("write notes: %w", err)
	}
	return nil
}
