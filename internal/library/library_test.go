package library

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeLibrary(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "songs.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write library: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeLibrary(t, `[
		{"title": "Stánky", "artist": "K. Kryl", "release_year": "1969",
		 "chords": "Ami\nU stánků na knedlíky"}
	]`)

	records, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	r := records[0]
	if r.Title != "Stánky" || r.Artist != "K. Kryl" {
		t.Errorf("record = %+v", r)
	}
	if r.ID() != "stanky" {
		t.Errorf("ID = %q, want %q", r.ID(), "stanky")
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, ErrLibraryNotFound) {
		t.Errorf("Load error = %v, want ErrLibraryNotFound", err)
	}
}

func TestLoadRejectsSchemaViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"not an array", `{"title": "x"}`},
		{"missing chords", `[{"title": "x", "artist": "y"}]`},
		{"empty title", `[{"title": "", "artist": "y", "chords": "z"}]`},
		{"wrong field type", `[{"title": "x", "artist": "y", "chords": 7}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(writeLibrary(t, tt.content))
			if !errors.Is(err, ErrInvalidLibrary) {
				t.Errorf("Load error = %v, want ErrInvalidLibrary", err)
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "songs.json")
	in := []Record{
		{Title: "Okolo Hradce", Artist: "lidová", Chords: "C G\nOkolo Hradce"},
		{Title: "Stánky", Artist: "K. Kryl", Chords: "Ami", Annotated: "c > Ami"},
	}
	if err := Save(path, in); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(out) != len(in) || out[0] != in[0] || out[1] != in[1] {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestRecordSong(t *testing.T) {
	t.Parallel()

	r := Record{
		Title:  "Stánky",
		Artist: "K. Kryl",
		Chords: "Ami\r\nU stánků",
	}
	song, errs := r.Song()
	if len(errs) != 0 {
		t.Fatalf("Song reported errors: %v", errs)
	}
	if song.ID != "stanky" {
		t.Errorf("ID = %q", song.ID)
	}
	if len(song.Lines) != 2 || song.Lines[0] != "Ami" || song.Lines[1] != "U stánků" {
		t.Errorf("Lines = %q", song.Lines)
	}
	if song.Annotations != nil {
		t.Errorf("Annotations = %v, want nil", song.Annotations)
	}
}

func TestRecordSongWithAnnotations(t *testing.T) {
	t.Parallel()

	r := Record{
		Title:     "X",
		Artist:    "Y",
		Chords:    "Ami\nla",
		Annotated: "c > Ami\n  > la",
	}
	song, errs := r.Song()
	if len(errs) != 0 {
		t.Fatalf("Song reported errors: %v", errs)
	}
	if len(song.Annotations) != 2 {
		t.Fatalf("got %d annotations, want 2", len(song.Annotations))
	}
}

func TestSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Stánky", "stanky"},
		{"Okolo Hradce", "okolo-hradce"},
		{"Žízeň (live) '77", "zizen-live-77"},
		{"  --  ", ""},
		{"Déjà Vu", "deja-vu"},
	}
	for _, tt := range tests {
		if got := Slug(tt.in); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
