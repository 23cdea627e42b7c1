package songtex

import "context"

// Compiler turns one song's raw lines into a typeset songbook
// document. It is stateless across songs: every Compile call is an
// independent forward pass, so callers may share one Compiler between
// goroutines or run one per worker.
type Compiler struct {
	cfg compilerConfig
}

type compilerConfig struct {
	tuning Tuning
}

// Option customizes a Compiler.
type Option func(*Compiler)

// WithTuning overrides the join-marker reach heuristics.
func WithTuning(t Tuning) Option {
	return func(c *Compiler) {
		c.cfg.tuning = t
	}
}

// New creates a Compiler with default configuration.
func New(opts ...Option) *Compiler {
	c := &Compiler{cfg: compilerConfig{tuning: DefaultTuning()}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile produces the final document text for one song. The song's
// lines are classified automatically unless it carries curated
// annotations, then folded into sections and rendered. Songs without
// text return ErrEmptySource.
func (c *Compiler) Compile(song Song) (string, error) {
	if song.Empty() {
		return "", ErrEmptySource
	}
	annotations := song.Annotations
	if annotations == nil {
		annotations = Classify(song.Lines)
	}
	asm := Assemble(annotations, c.cfg.tuning)
	return Emit(song.Title, song.Artist, song.ReleaseYear, asm), nil
}

// CompileAll compiles every song in order. Per-song failures never
// abort the batch: the successful documents come back alongside the
// (song, error) pairs of the failed ones. The context is checked
// between songs only; the per-song pass itself has no suspension
// points.
func (c *Compiler) CompileAll(ctx context.Context, songs []Song) ([]Document, []SongError) {
	var (
		docs   []Document
		failed []SongError
	)
	for _, song := range songs {
		if err := ctx.Err(); err != nil {
			failed = append(failed, SongError{ID: song.ID, Err: err})
			continue
		}
		text, err := c.Compile(song)
		if err != nil {
			failed = append(failed, SongError{ID: song.ID, Err: err})
			continue
		}
		docs = append(docs, Document{ID: song.ID, Text: text})
	}
	return docs, failed
}
