// Package songtex compiles scraped chord/lyric text into LaTeX
// songbook markup with chord symbols column-aligned above the lyric
// syllables they modify.
//
// The pipeline runs in one forward pass per song: a line classifier
// predicts each line's structural role, a tokenizer extracts
// (column, symbol) chord tokens, a merger interleaves pending chords
// into the following lyric line, and a group assembler folds the
// classified lines into verse/chorus/bridge/solo sections that the
// emitter renders as the final document.
//
// Basic usage:
//
//	c := songtex.New()
//	doc, err := c.Compile(songtex.Song{
//		Title:  "Stánky",
//		Artist: "K. Kryl",
//		Lines:  lines,
//	})
//
// Curated classifications from an external editing step can be passed
// through Song.Annotations to bypass the automatic classifier; see the
// internal curation packages of cmd/songtex for the round-trip
// encoding.
package songtex
