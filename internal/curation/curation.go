// Package curation implements the round-trip encoding between
// classified song lines and the plain-text form a curator edits in
// their editor. Each line is rendered as a two-field record:
//
//	<type char> > <original line>
//
// The curator replaces the leading character to correct a prediction.
// Lowercase section labels leave chords advisory, uppercase ones mark
// them mandatory.
package curation

import (
	"fmt"
	"strings"

	songtex "github.com/jvesely/go-songtex"
)

// fieldSeparator sits between the type character and the line text.
const fieldSeparator = " > "

// LineError reports one annotation line that failed to parse.
type LineError struct {
	Line int // zero-based index into the edited text
	Err  error
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e LineError) Unwrap() error {
	return e.Err
}

// TypeChar encodes a classified line as its single-character
// annotation.
func TypeChar(cl songtex.ClassifiedLine) byte {
	switch cl.Type {
	case songtex.Empty:
		return 'e'
	case songtex.ChordLine:
		return 'c'
	case songtex.SectionLabel:
		c := kindChar(cl.Kind)
		if cl.WithChords {
			c = c - 'a' + 'A'
		}
		return c
	default:
		return ' '
	}
}

func kindChar(k songtex.Kind) byte {
	switch k {
	case songtex.Chorus:
		return 'r'
	case songtex.Bridge:
		return 'b'
	case songtex.Solo:
		return 's'
	default:
		return 'v'
	}
}

// parseTypeChar is the inverse of TypeChar.
func parseTypeChar(c byte) (t songtex.LineType, kind songtex.Kind, withChords bool, ok bool) {
	switch c {
	case ' ':
		return songtex.PlainText, 0, false, true
	case 'e':
		return songtex.Empty, 0, false, true
	case 'c':
		return songtex.ChordLine, 0, false, true
	}
	lower := c
	if c >= 'A' && c <= 'Z' {
		withChords = true
		lower = c - 'A' + 'a'
	}
	switch lower {
	case 'v':
		kind = songtex.Verse
	case 'r':
		kind = songtex.Chorus
	case 'b':
		kind = songtex.Bridge
	case 's':
		kind = songtex.Solo
	default:
		return 0, 0, false, false
	}
	return songtex.SectionLabel, kind, withChords, true
}

// Format renders classified lines in the editable two-field form.
func Format(lines []songtex.ClassifiedLine) string {
	var b strings.Builder
	for i, cl := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteByte(TypeChar(cl))
		b.WriteString(fieldSeparator)
		b.WriteString(cl.Text)
	}
	return b.String()
}

// Parse decodes an edited annotation text back into classified lines.
// A line that does not match the two-field encoding is reported and
// substituted with plain text so the song still compiles; parsing
// never fails outright.
func Parse(text string) ([]songtex.ClassifiedLine, []LineError) {
	if text == "" {
		return nil, nil
	}

	raw := strings.Split(text, "\n")
	out := make([]songtex.ClassifiedLine, 0, len(raw))
	var errs []LineError

	for i, line := range raw {
		cl, err := parseLine(line)
		if err != nil {
			errs = append(errs, LineError{Line: i, Err: err})
		}
		out = append(out, cl)
	}
	return out, errs
}

func parseLine(line string) (songtex.ClassifiedLine, error) {
	if len(line) < 1+len(fieldSeparator) || line[1:1+len(fieldSeparator)] != fieldSeparator {
		return songtex.ClassifiedLine{Type: songtex.PlainText, Text: line},
			fmt.Errorf("%w: %q", songtex.ErrMalformedClassification, line)
	}
	text := line[1+len(fieldSeparator):]
	t, kind, withChords, ok := parseTypeChar(line[0])
	if !ok {
		return songtex.ClassifiedLine{Type: songtex.PlainText, Text: text},
			fmt.Errorf("%w: unknown type %q", songtex.ErrMalformedClassification, line[0])
	}
	return songtex.ClassifiedLine{Type: t, Kind: kind, WithChords: withChords, Text: text}, nil
}
