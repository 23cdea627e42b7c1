package songtex

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want []ChordToken
	}{
		{
			name: "empty line",
			line: "",
			want: nil,
		},
		{
			name: "whitespace only",
			line: "    ",
			want: nil,
		},
		{
			name: "two chords with gap",
			line: "C       G7",
			want: []ChordToken{{Column: 0, Symbol: "C"}, {Column: 8, Symbol: "G7"}},
		},
		{
			name: "leading whitespace keeps absolute columns",
			line: "   Ami  F",
			want: []ChordToken{{Column: 3, Symbol: "Ami"}, {Column: 8, Symbol: "F"}},
		},
		{
			name: "bare trailing m becomes mi",
			line: "Am",
			want: []ChordToken{{Column: 0, Symbol: "Ami"}},
		},
		{
			name: "explicit mi passes through",
			line: "Ami F#mi",
			want: []ChordToken{{Column: 0, Symbol: "Ami"}, {Column: 4, Symbol: "F#mi"}},
		},
		{
			name: "m followed by extension is untouched",
			line: "Dm7",
			want: []ChordToken{{Column: 0, Symbol: "Dm7"}},
		},
		{
			name: "diminished chord passes through",
			line: "Gdim",
			want: []ChordToken{{Column: 0, Symbol: "Gdim"}},
		},
		{
			name: "diminished minor spelling stays intact",
			line: "C#dim  Adim7",
			want: []ChordToken{{Column: 0, Symbol: "C#dim"}, {Column: 7, Symbol: "Adim7"}},
		},
		{
			name: "H note normalizes too",
			line: "Hm  E",
			want: []ChordToken{{Column: 0, Symbol: "Hmi"}, {Column: 4, Symbol: "E"}},
		},
		{
			name: "any non-whitespace run is a token",
			line: "??  x7",
			want: []ChordToken{{Column: 0, Symbol: "??"}, {Column: 4, Symbol: "x7"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Tokenize(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %#v, want %#v", tt.line, got, tt.want)
			}
		})
	}
}

func TestTokenizeColumnsStrictlyIncreasing(t *testing.T) {
	t.Parallel()

	lines := []string{
		"C       G7",
		"  Ami F   G  C",
		"C# D#mi G#7 A H7 E",
	}
	for _, line := range lines {
		tokens := Tokenize(line)
		for i := 1; i < len(tokens); i++ {
			if tokens[i].Column <= tokens[i-1].Column {
				t.Errorf("Tokenize(%q): columns not strictly increasing: %#v", line, tokens)
			}
		}
	}
}
