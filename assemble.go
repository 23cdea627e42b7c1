package songtex

import (
	"strings"
	"unicode"
)

// DefaultPadding is the label prefix width assumed when a section label
// line carries no separator, which happens only for curated labels.
const DefaultPadding = 0

// contentIndent is prepended to merged content lines so the generated
// LaTeX stays readable next to the environment markers.
const contentIndent = "   "

// Section is one contiguous block of merged content lines sharing a
// structural role.
type Section struct {
	Kind       Kind
	WithChords bool
	Lines      []string
}

// Assembly is the assembled body of one song: its ordered sections plus
// an optional trailing chord line that no lyric consumed.
type Assembly struct {
	Sections []Section
	Trailing string
}

// assembler folds classified lines into sections. The zero value is
// idle with an empty chord buffer.
type assembler struct {
	tune     Tuning
	sections []Section

	open       bool
	kind       Kind
	withChords bool
	padding    int
	lines      []string

	// buffer holds at most one pending chord line. It is consumed by
	// the very next content line or cleared on an empty line, never
	// carried further.
	buffer string
}

// Assemble runs the group-assembly state machine over the classified
// lines of one song. Lines are processed strictly in input order and
// the whole pass is a pure function of its inputs.
func Assemble(lines []ClassifiedLine, tune Tuning) Assembly {
	a := assembler{tune: tune}
	for _, cl := range lines {
		a.feed(cl)
	}
	return a.finish()
}

func (a *assembler) feed(cl ClassifiedLine) {
	switch cl.Type {
	case Empty:
		if a.open {
			a.closeGroup()
		}
		a.buffer = ""
	case ChordLine:
		a.buffer = cl.Text
	case SectionLabel:
		if a.open {
			a.closeGroup()
		}
		a.openGroup(cl.Kind, cl.WithChords, labelPadding(cl.Text))
		a.appendContent(cl.Text)
		a.buffer = ""
	case PlainText:
		if !a.open {
			// An implicit verse: scraped songs often start content
			// without any label line.
			a.openGroup(Verse, a.buffer != "", leadingSpace(cl.Text))
		}
		a.appendContent(cl.Text)
		a.buffer = ""
	}
}

func (a *assembler) openGroup(kind Kind, withChords bool, padding int) {
	a.open = true
	a.kind = kind
	a.withChords = withChords
	a.padding = padding
	a.lines = nil
}

func (a *assembler) closeGroup() {
	a.sections = append(a.sections, Section{
		Kind:       a.kind,
		WithChords: a.withChords,
		Lines:      a.lines,
	})
	a.open = false
	a.lines = nil
	a.padding = 0
}

// appendContent strips the group padding off the line, merges it
// against the pending chord buffer and adds it to the open group. The
// buffer line loses the same padding so its columns keep lining up with
// the lyric.
func (a *assembler) appendContent(line string) {
	text := dropColumns(line, a.padding)
	if a.kind == Solo && !a.withChords {
		a.lines = append(a.lines, soloLine(text))
		return
	}
	chords := dropColumns(a.buffer, a.padding)
	merged := Merge(Tokenize(chords), text, !a.withChords, a.tune)
	a.lines = append(a.lines, contentIndent+merged)
}

func (a *assembler) finish() Assembly {
	trailing := ""
	if a.open {
		withChords := a.withChords
		a.closeGroup()
		if withChords && strings.TrimSpace(a.buffer) != "" {
			// A chord line nobody consumed: surface it raw instead of
			// dropping it, the curator decides what it belongs to.
			trailing = a.buffer
		}
	}
	return Assembly{Sections: a.sections, Trailing: trailing}
}

// soloLine renders an instrumental line as inline chord commands.
func soloLine(text string) string {
	fields := strings.Fields(text)
	cmds := make([]string, len(fields))
	for i, f := range fields {
		cmds[i] = `\inlinechord{` + f + `}`
	}
	return strings.Join(cmds, " ")
}

// labelPadding is the width of the label prefix: the text up through
// the separator plus one following space, matching the "1. " and "R: "
// source convention.
func labelPadding(line string) int {
	idx := separatorIndex([]rune(line))
	if idx < 0 {
		return DefaultPadding
	}
	return idx + 2
}

// leadingSpace counts the leading whitespace columns of a line.
func leadingSpace(line string) int {
	n := 0
	for _, r := range line {
		if !unicode.IsSpace(r) {
			break
		}
		n++
	}
	return n
}

// dropColumns removes the first n character columns; lines shorter than
// the padding yield the empty string.
func dropColumns(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if n >= len(runes) {
		return ""
	}
	return string(runes[n:])
}
