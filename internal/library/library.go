// Package library reads and writes the scraped song records the rest
// of the toolchain works from. The records live in one JSON file, the
// schema the scrapers have always produced; the file is validated on
// load so a broken scrape run is caught before curation starts.
package library

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	songtex "github.com/jvesely/go-songtex"
	"github.com/jvesely/go-songtex/internal/curation"
)

// Sentinel errors for library operations.
var (
	ErrLibraryNotFound = errors.New("song library not found")
	ErrInvalidLibrary  = errors.New("song library does not match schema")
)

// Record is one scraped song as stored on disk. Annotated and
// Formatted hold the curation round-trip state so unfinished songs can
// be resumed.
type Record struct {
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	ReleaseYear string `json:"release_year,omitempty"`
	URL         string `json:"url,omitempty"`
	Chords      string `json:"chords"`
	Annotated   string `json:"annotated_lines,omitempty"`
	Formatted   string `json:"formatted_lines,omitempty"`
}

// ID is the stable per-song identifier: the slugified title.
func (r Record) ID() string {
	return Slug(r.Title)
}

// Song converts the record into the compiler's input. Stored
// annotations are decoded and passed through; decode errors surface so
// the caller can report them, the song itself still compiles.
func (r Record) Song() (songtex.Song, []curation.LineError) {
	song := songtex.Song{
		ID:          r.ID(),
		Title:       r.Title,
		Artist:      r.Artist,
		ReleaseYear: r.ReleaseYear,
		Lines:       splitLines(r.Chords),
	}
	var errs []curation.LineError
	if r.Annotated != "" {
		song.Annotations, errs = curation.Parse(r.Annotated)
	}
	return song, errs
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

// Load reads and validates the song library at path.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrLibraryNotFound, path)
		}
		return nil, fmt.Errorf("read library: %w", err)
	}
	if err := validateSchema(data); err != nil {
		return nil, err
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode library: %w", err)
	}
	return records, nil
}

// Save writes the records back, pretty-printed the way the scrapers
// do so diffs stay readable.
func Save(path string, records []Record) error {
	data, err := json.MarshalIndent(records, "", "   ")
	if err != nil {
		return fmt.Errorf("encode library: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write library: %w", err)
	}
	return nil
}

var slugStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slug derives a filesystem-safe identifier from a song title:
// diacritics stripped, lowercased, non-alphanumeric runs collapsed to
// single dashes.
func Slug(title string) string {
	stripped, _, err := transform.String(slugStripper, title)
	if err != nil {
		stripped = title
	}
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(stripped) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
