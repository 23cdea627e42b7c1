package songtex

import (
	"strings"
	"unicode"
)

// ChordToken is one chord symbol at its absolute character column in
// the chord line. Tokens extracted from one line are strictly
// increasing in column.
type ChordToken struct {
	Column int
	Symbol string
}

// Tokenize splits a chord line on whitespace runs. Every non-whitespace
// run becomes a token at its starting column; no grammar validation is
// applied, the density classifier already decided the line holds
// chords. Columns are rune offsets so that accented lyrics line up.
func Tokenize(line string) []ChordToken {
	runes := []rune(line)
	var tokens []ChordToken
	for i := 0; i < len(runes); {
		if unicode.IsSpace(runes[i]) {
			i++
			continue
		}
		start := i
		for i < len(runes) && !unicode.IsSpace(runes[i]) {
			i++
		}
		tokens = append(tokens, ChordToken{
			Column: start,
			Symbol: normalizeMinor(string(runes[start:i])),
		})
	}
	return tokens
}

// normalizeMinor rewrites a bare trailing "m" to the explicit minor
// spelling "mi" ("Am" -> "Ami"). A trailing "m" preceded by "i" is not
// bare: "Ami" and "Gdim" pass through unchanged.
func normalizeMinor(symbol string) string {
	if strings.HasSuffix(symbol, "m") && !strings.HasSuffix(symbol, "im") {
		return symbol + "i"
	}
	return symbol
}
