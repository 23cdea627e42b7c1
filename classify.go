package songtex

import (
	"strings"
	"unicode"
)

// Kind identifies the structural role of a song section.
type Kind int

// Section kinds, in the order they appear in typical scraped songs.
const (
	Verse Kind = iota
	Chorus
	Bridge
	Solo
)

// GroupName returns the LaTeX environment name for the section kind.
func (k Kind) GroupName() string {
	switch k {
	case Chorus:
		return "refren"
	case Bridge:
		return "deco"
	case Solo:
		return "solo"
	default:
		return "verse"
	}
}

// LineType tags the structural role of one raw song line.
type LineType int

// Line roles. SectionLabel carries a Kind and a WithChords flag in its
// ClassifiedLine; the other roles stand alone.
const (
	Empty LineType = iota
	ChordLine
	SectionLabel
	PlainText
)

// ClassifiedLine pairs one raw line with its predicted role. Kind and
// WithChords are meaningful only when Type is SectionLabel.
type ClassifiedLine struct {
	Type       LineType
	Kind       Kind
	WithChords bool
	Text       string
}

// Chord-line density thresholds. The heuristic accepts a line as chords
// when it is mostly whitespace and nearly all of its letters name
// natural notes; false positives and negatives are expected and fixed
// up by the curation step.
const (
	chordDensitySlack = 4
	chordNoiseLimit   = 8
)

// Classify predicts a structural role for every line of a song. Each
// line is judged on its own content with no lookahead, so the result is
// the same on every call; ambiguous lines default to PlainText.
func Classify(lines []string) []ClassifiedLine {
	out := make([]ClassifiedLine, len(lines))
	for i, line := range lines {
		out[i] = ClassifyLine(line)
	}
	return out
}

// ClassifyLine predicts the role of a single line. Decision order is
// fixed: empty, chord line, section label, plain text; the first match
// wins.
func ClassifyLine(line string) ClassifiedLine {
	if strings.TrimSpace(line) == "" {
		return ClassifiedLine{Type: Empty, Text: line}
	}
	if isChordLine(line) {
		return ClassifiedLine{Type: ChordLine, Text: line}
	}
	if label, ok := splitLabel(line); ok {
		return ClassifiedLine{
			Type:       SectionLabel,
			Kind:       labelKind(strings.ToLower(label)),
			WithChords: labelWithChords(label),
			Text:       line,
		}
	}
	return ClassifiedLine{Type: PlainText, Text: line}
}

// isChordLine applies the density heuristic to the left-stripped line:
// plenty of whitespace between tokens and few characters outside the
// natural note names A-H.
func isChordLine(line string) bool {
	stripped := strings.TrimLeftFunc(line, unicode.IsSpace)
	var chars, spaces, notes int
	for _, r := range stripped {
		if unicode.IsSpace(r) {
			spaces++
			continue
		}
		chars++
		if r >= 'A' && r <= 'H' {
			notes++
		}
	}
	return spaces > chars-chordDensitySlack && chars-notes < chordNoiseLimit
}

// separatorIndex returns the rune index of the label separator: the
// first ':' when present, else the first '.', or -1 when the line has
// neither.
func separatorIndex(runes []rune) int {
	dot := -1
	for i, r := range runes {
		if r == ':' {
			return i
		}
		if r == '.' && dot < 0 {
			dot = i
		}
	}
	return dot
}

// splitLabel extracts the candidate label before the separator. The
// split is rejected when the candidate has internal whitespace, which
// means the separator belongs to the lyric itself rather than to a
// label token.
func splitLabel(line string) (string, bool) {
	runes := []rune(line)
	idx := separatorIndex(runes)
	if idx < 0 {
		return "", false
	}
	label := strings.TrimSpace(string(runes[:idx]))
	if strings.ContainsFunc(label, unicode.IsSpace) {
		return "", false
	}
	return label, true
}

// labelKind maps a lowercased label to its section kind.
func labelKind(label string) Kind {
	switch {
	case isAllDigits(label):
		return Verse
	case strings.Contains(label, "bridge"),
		strings.Contains(label, "*"),
		strings.Contains(label, "intro"),
		strings.Contains(label, "outro"):
		return Bridge
	case strings.Contains(label, "chorus"),
		strings.Contains(label, "refren"),
		label == "r":
		return Chorus
	default:
		return Solo
	}
}

// labelWithChords reads the source convention that an uppercase label
// ("R:", "CHORUS:") marks a section whose chords were already curated
// inline and must render as mandatory. Labels without letters, such as
// verse numbers, never set the flag.
func labelWithChords(label string) bool {
	hasUpper := false
	for _, r := range label {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
