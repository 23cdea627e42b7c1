package songtex

import (
	"strings"
	"unicode"
)

// Tuning holds the join-marker reach heuristics. The defaults come
// straight from the source material and are untuned; callers may
// override them through WithTuning.
type Tuning struct {
	// MinReach is the minimum printed width assumed for any chord
	// command when deciding how far its join markers extend.
	MinReach int
	// QualityBonus widens the reach of minor and diminished symbols,
	// whose printed form is longer than the plain triad.
	QualityBonus int
}

// DefaultTuning returns the reach constants used by the source
// heuristic.
func DefaultTuning() Tuning {
	return Tuning{MinReach: 3, QualityBonus: 2}
}

// JoinMarker is the non-breaking glue inserted between syllables a
// chord command spans.
const JoinMarker = '~'

// formatChord renders one chord command. Mandatory chords use \mchord,
// advisory ones \ochord; a starred command marks a forced word break.
func formatChord(symbol string, optional, starred bool) string {
	name := "mchord"
	if optional {
		name = "ochord"
	}
	star := ""
	if starred {
		star = "*"
	}
	return `\` + name + star + `{` + symbol + `}`
}

// Merge interleaves chord tokens into a lyric line, keeping every chord
// command column-aligned with the syllable it modifies. The result
// contains every lyric character and every chord command in token
// order, and no two chord commands are ever textually adjacent. An
// empty token list returns the lyric unchanged.
//
// The optional flag renders every command in its advisory \ochord form;
// it is set when the enclosing group was not curated as carrying
// mandatory chords.
func Merge(tokens []ChordToken, lyric string, optional bool, tune Tuning) string {
	if len(tokens) == 0 {
		return lyric
	}

	work := []rune(lyric)
	// Every insertion point must exist in the working line; lyrics
	// shorter than the chord line get padded up to the last column.
	if need := tokens[len(tokens)-1].Column; len(work) < need {
		work = append(work, []rune(strings.Repeat(" ", need-len(work)))...)
	}

	shift := 0          // total length inserted by earlier commands
	forcedAtEnd := false // a collision forced a space at the line end
	for i, tok := range tokens {
		at := tok.Column + shift
		end := len(work)
		if i+1 < len(tokens) {
			end = tokens[i+1].Column + shift
		}
		span := work[at:end]
		forcedAtEnd = false

		// Collision: the span offers no word break for the command, so
		// the command is starred and one space is forced at the end of
		// the span (or right after the chord when the span is empty).
		starred := !hasSpace(span)
		cmd := []rune(formatChord(tok.Symbol, optional, starred))

		work = insertRunes(work, at, cmd)
		shift += len(cmd)
		end += len(cmd)

		if starred {
			work = insertRunes(work, end, []rune{' '})
			shift++
			forcedAtEnd = end == len(work)-1
			continue
		}

		// Join markers: whitespace the printed command visually reaches
		// into becomes non-breaking glue, whitespace beyond the reach
		// stays untouched.
		reach := len([]rune(tok.Symbol)) + 1
		if reach < tune.MinReach {
			reach = tune.MinReach
		}
		if minorOrDiminished(tok.Symbol) {
			reach += tune.QualityBonus
		}
		spanStart := at + len(cmd)
		limit := spanStart + reach
		if limit > end {
			limit = end
		}
		for j := spanStart; j < limit; j++ {
			if unicode.IsSpace(work[j]) {
				work[j] = JoinMarker
			}
		}
	}

	merged := strings.TrimRightFunc(string(work), unicode.IsSpace)
	if forcedAtEnd {
		// The forced break survives trimming: chords must never abut,
		// not even the line end.
		merged += " "
	}
	return merged
}

func hasSpace(runes []rune) bool {
	for _, r := range runes {
		if unicode.IsSpace(r) {
			return true
		}
	}
	return false
}

func insertRunes(dst []rune, at int, ins []rune) []rune {
	out := make([]rune, 0, len(dst)+len(ins))
	out = append(out, dst[:at]...)
	out = append(out, ins...)
	out = append(out, dst[at:]...)
	return out
}

// minorOrDiminished reports whether the symbol carries a quality suffix
// that widens its printed form.
func minorOrDiminished(symbol string) bool {
	s := strings.ToLower(symbol)
	return strings.Contains(s, "m") || strings.Contains(s, "dim")
}
