package songtex

import "strings"

// Song is one scraped song: opaque metadata plus its raw text lines,
// exactly as the acquisition stage delivered them.
type Song struct {
	ID          string
	Title       string
	Artist      string
	ReleaseYear string
	Lines       []string

	// Annotations, when non-nil, carry curated line classifications
	// and bypass the automatic classifier.
	Annotations []ClassifiedLine
}

// Empty reports whether the song carries no usable text.
func (s Song) Empty() bool {
	if len(s.Annotations) > 0 {
		return false
	}
	for _, line := range s.Lines {
		if strings.TrimSpace(line) != "" {
			return false
		}
	}
	return true
}

// SongError pairs a failed song with its error. Batch compilation
// accumulates these instead of aborting.
type SongError struct {
	ID  string
	Err error
}

func (e SongError) Error() string {
	return e.ID + ": " + e.Err.Error()
}

func (e SongError) Unwrap() error {
	return e.Err
}

// Document is one compiled song: its identifier and the final markup.
type Document struct {
	ID   string
	Text string
}
