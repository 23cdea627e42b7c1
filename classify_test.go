package songtex

import (
	"reflect"
	"testing"
)

func TestClassifyLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		line       string
		wantType   LineType
		wantKind   Kind
		wantChords bool
	}{
		{
			name:     "empty line",
			line:     "",
			wantType: Empty,
		},
		{
			name:     "whitespace only",
			line:     "   \t ",
			wantType: Empty,
		},
		{
			name:     "sparse chord line",
			line:     "C       G7",
			wantType: ChordLine,
		},
		{
			name:     "chord line with trailing spaces",
			line:     "Ami   ",
			wantType: ChordLine,
		},
		{
			name:     "indented chord line",
			line:     "   C      G",
			wantType: ChordLine,
		},
		{
			name:     "dense lyric is plain text",
			line:     "Hello world",
			wantType: PlainText,
		},
		{
			name:     "numeric label is a verse",
			line:     "1. Kdyby tady byla",
			wantType: SectionLabel,
			wantKind: Verse,
		},
		{
			name:       "uppercase chorus shorthand",
			line:       "R: Ref text here",
			wantType:   SectionLabel,
			wantKind:   Chorus,
			wantChords: true,
		},
		{
			name:     "mixed-case chorus label",
			line:     "Chorus: Sing now",
			wantType: SectionLabel,
			wantKind: Chorus,
		},
		{
			name:     "intro maps to bridge",
			line:     "Intro: the quiet part",
			wantType: SectionLabel,
			wantKind: Bridge,
		},
		{
			name:     "starred label maps to bridge",
			line:     "*: repeated part",
			wantType: SectionLabel,
			wantKind: Bridge,
		},
		{
			name:     "unknown label maps to solo",
			line:     "mezihra: doo doo doo",
			wantType: SectionLabel,
			wantKind: Solo,
		},
		{
			name:     "colon inside sentence is not a label",
			line:     "The end: so it goes",
			wantType: PlainText,
		},
		{
			name:     "sentence with period is not a label",
			line:     "Too many words. And more here",
			wantType: PlainText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ClassifyLine(tt.line)
			if got.Type != tt.wantType {
				t.Fatalf("ClassifyLine(%q).Type = %v, want %v", tt.line, got.Type, tt.wantType)
			}
			if got.Text != tt.line {
				t.Errorf("ClassifyLine(%q).Text = %q, want original line", tt.line, got.Text)
			}
			if got.Type != SectionLabel {
				return
			}
			if got.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", got.Kind, tt.wantKind)
			}
			if got.WithChords != tt.wantChords {
				t.Errorf("WithChords = %v, want %v", got.WithChords, tt.wantChords)
			}
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	t.Parallel()

	lines := []string{
		"C       G7",
		"Hello world today",
		"",
		"R: Ref text",
		"2. Another verse: with a twist",
	}

	first := Classify(lines)
	second := Classify(lines)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Classify is not deterministic:\nfirst:  %#v\nsecond: %#v", first, second)
	}
	if len(first) != len(lines) {
		t.Errorf("Classify returned %d results for %d lines", len(first), len(lines))
	}
}

func TestClassifyChordLineDensity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want bool
	}{
		{"single chord", "C", true},
		{"two chords far apart", "Ami       F", true},
		{"chord run with accidentals", "C#    D#mi    G#", true},
		{"prose with one capital", "Go home now", false},
		{"dense non-chord tokens", "xxxxxxxxxx yyyyyyyyy", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ClassifyLine(tt.line).Type == ChordLine
			if got != tt.want {
				t.Errorf("chord-line classification of %q = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestGroupName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want string
	}{
		{Verse, "verse"},
		{Chorus, "refren"},
		{Bridge, "deco"},
		{Solo, "solo"},
	}

	for _, tt := range tests {
		if got := tt.kind.GroupName(); got != tt.want {
			t.Errorf("GroupName(%v) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
