package main

import (
	"context"
	"fmt"

	songtex "github.com/jvesely/go-songtex"
	"github.com/jvesely/go-songtex/internal/catalog"
	"github.com/jvesely/go-songtex/internal/curation"
	"github.com/jvesely/go-songtex/internal/library"
)

// runCurate walks the not-yet-finalized songs and lets the user fix
// the line annotations: predicted classifications open in the editor,
// the saved result is parsed back, stored with the record and marked
// finalized. Positional args narrow the run to specific song ids.
func runCurate(ctx context.Context, flags *curateFlags, args []string, env *Environment) error {
	cfg := env.Config

	editor := flags.editor
	if editor == "" {
		var err error
		if editor, err = curation.EditorFromEnv(); err != nil {
			return err
		}
	}

	records, err := library.Load(cfg.Library.Path)
	if err != nil {
		return err
	}

	store, err := catalog.Open(cfg.Output.Catalog)
	if err != nil {
		return err
	}
	defer store.Close()

	only := make(map[string]bool, len(args))
	for _, id := range args {
		only[id] = true
	}

	changed := false
	for i := range records {
		rec := &records[i]
		id := rec.ID()
		if len(only) > 0 && !only[id] {
			continue
		}
		var entry catalog.Entry
		if e, err := store.Get(ctx, id); err == nil {
			entry = e
		}
		if len(only) == 0 && entry.Finalized {
			continue
		}
		if err := ctx.Err(); err != nil {
			break
		}

		env.logf(flags.common.quiet, "Curating %s (%s)", rec.Title, rec.Artist)
		lineErrs, err := curateRecord(rec, editor)
		if err != nil {
			return fmt.Errorf("%s: %w", id, err)
		}
		for _, le := range lineErrs {
			fmt.Fprintf(env.Stderr, "  line %d kept as plain text: %v\n", le.Line, le.Err)
		}
		// Keep the recorded output file: the next compile refreshes
		// the .tex, dropping it here would orphan the song in the
		// master document meanwhile.
		if err := store.Upsert(ctx, id, rec.Title, entry.File); err != nil {
			return err
		}
		if err := store.SetFinalized(ctx, id, true); err != nil {
			return err
		}
		changed = true
	}

	if changed {
		return library.Save(cfg.Library.Path, records)
	}
	env.logf(flags.common.quiet, "Nothing left to curate")
	return nil
}

// curateRecord round-trips one record's annotations through the editor.
func curateRecord(rec *library.Record, editor string) ([]curation.LineError, error) {
	song, _ := rec.Song()

	annotations := song.Annotations
	if annotations == nil {
		annotations = songtex.Classify(song.Lines)
	}

	edited, err := curation.EditText(editor, curation.Format(annotations))
	if err != nil {
		return nil, err
	}

	parsed, lineErrs := curation.Parse(edited)
	rec.Annotated = curation.Format(parsed)
	return lineErrs, nil
}
