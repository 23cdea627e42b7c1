package songtex

import (
	"regexp"
	"strings"
	"testing"
)

var chordCmdRe = regexp.MustCompile(`\\[mo]chord\*?\{([^}]*)\}`)

func TestMerge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		tokens   []ChordToken
		lyric    string
		optional bool
		want     string
	}{
		{
			name:   "no tokens returns lyric unchanged",
			tokens: nil,
			lyric:  "Hello world",
			want:   "Hello world",
		},
		{
			name:   "two chords over word starts",
			tokens: []ChordToken{{Column: 0, Symbol: "C"}, {Column: 6, Symbol: "G7"}},
			lyric:  "Hello world today",
			want:   `\mchord{C}Hello \mchord{G7}world today`,
		},
		{
			name:   "collision stars the command and forces a break",
			tokens: []ChordToken{{Column: 0, Symbol: "Am"}},
			lyric:  "Go",
			want:   `\mchord*{Am}Go `,
		},
		{
			name:     "optional chords render as ochord",
			tokens:   []ChordToken{{Column: 0, Symbol: "C"}},
			lyric:    "La la",
			optional: true,
			want:     `\ochord{C}La~la`,
		},
		{
			name:   "minor quality widens the join reach",
			tokens: []ChordToken{{Column: 0, Symbol: "Ami"}},
			lyric:  "Hello world today",
			want:   `\mchord{Ami}Hello~world today`,
		},
		{
			name:   "mid-line collision splits the word",
			tokens: []ChordToken{{Column: 0, Symbol: "C"}, {Column: 2, Symbol: "D"}},
			lyric:  "Handy",
			want:   `\mchord*{C}Ha \mchord*{D}ndy `,
		},
		{
			name:   "chords beyond a short lyric pad before merging",
			tokens: []ChordToken{{Column: 0, Symbol: "C"}, {Column: 10, Symbol: "G"}},
			lyric:  "Hey",
			want:   `\mchord{C}Hey       \mchord*{G} `,
		},
		{
			name:   "trailing lyric whitespace is trimmed",
			tokens: []ChordToken{{Column: 0, Symbol: "C"}},
			lyric:  "Hello   ",
			want:   `\mchord{C}Hello`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Merge(tt.tokens, tt.lyric, tt.optional, DefaultTuning())
			if got != tt.want {
				t.Errorf("Merge(%v, %q) = %q, want %q", tt.tokens, tt.lyric, got, tt.want)
			}
		})
	}
}

func TestMergeTuningOverride(t *testing.T) {
	t.Parallel()

	tokens := []ChordToken{{Column: 0, Symbol: "C"}}
	narrow := Tuning{MinReach: 1, QualityBonus: 0}
	got := Merge(tokens, "La la", true, narrow)
	if want := `\ochord{C}La la`; got != want {
		t.Errorf("Merge with narrow tuning = %q, want %q", got, want)
	}
}

func TestMergeProperties(t *testing.T) {
	t.Parallel()

	cases := []struct {
		chords string
		lyric  string
	}{
		{"C       G7", "Hello world today"},
		{"Ami  F  G  C", "Okolo Hradce v malé zahrádce"},
		{"Hmi", "Na"},
		{"C  D  E  F  G", "a b c d e"},
		{"   F#mi7", "short"},
		{"Gdim      C", "rozvíjejí se růže dvě"},
	}

	for _, tc := range cases {
		tokens := Tokenize(tc.chords)
		merged := Merge(tokens, tc.lyric, false, DefaultTuning())

		// Order preservation: commands appear in extraction order.
		matches := chordCmdRe.FindAllStringSubmatch(merged, -1)
		if len(matches) != len(tokens) {
			t.Errorf("merge of %q over %q: %d commands for %d tokens\nmerged: %q",
				tc.chords, tc.lyric, len(matches), len(tokens), merged)
			continue
		}
		for i, m := range matches {
			if m[1] != tokens[i].Symbol {
				t.Errorf("merge of %q over %q: command %d is %q, want %q\nmerged: %q",
					tc.chords, tc.lyric, i, m[1], tokens[i].Symbol, merged)
			}
		}

		// No collision: commands never abut.
		stripped := chordCmdRe.ReplaceAllString(merged, "\x00")
		if strings.Contains(stripped, "\x00\x00") {
			t.Errorf("merge of %q over %q has adjacent chord commands: %q", tc.chords, tc.lyric, merged)
		}

		// No information loss: every non-whitespace lyric character
		// survives, in order, outside the markup.
		plain := strings.ReplaceAll(chordCmdRe.ReplaceAllString(merged, ""), string(JoinMarker), " ")
		if got, want := squash(plain), squash(tc.lyric); got != want {
			t.Errorf("merge of %q over %q lost lyric text: %q != %q\nmerged: %q",
				tc.chords, tc.lyric, got, want, merged)
		}
	}
}

// squash drops all whitespace, leaving the ordered character content.
func squash(s string) string {
	return strings.Join(strings.Fields(s), "")
}
