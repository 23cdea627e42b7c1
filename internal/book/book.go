// Package book assembles the songbook master file from per-song TeX
// fragments and reads page counts back from the rendered PDFs.
package book

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/jvesely/go-songtex/internal/catalog"
)

// ErrNoSongs marks an assembly with nothing to include.
var ErrNoSongs = errors.New("no songs to assemble")

// ErrNotPDF marks a file without a PDF header.
var ErrNotPDF = errors.New("not a PDF file")

// Write renders the master file: one \input per song, in catalog
// order, so LaTeX picks up the fragments without re-listing them by
// hand. Entries without an output file are skipped.
func Write(path string, entries []catalog.Entry) error {
	var b strings.Builder
	n := 0
	for _, e := range entries {
		if e.File == "" {
			continue
		}
		// \input wants the path without the extension.
		fmt.Fprintf(&b, "\\input{%s}\n", strings.TrimSuffix(filepath.ToSlash(e.File), ".tex"))
		n++
	}
	if n == 0 {
		return ErrNoSongs
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		return fmt.Errorf("write master file: %w", err)
	}
	return nil
}

// pageObject matches a page object declaration in an uncompressed PDF
// cross-reference body. Whitespace between name and value varies by
// producer.
var pageObject = regexp.MustCompile(`/Type\s*/Page[^s]`)

// pageTreeCount matches the /Count of a page tree root, the fallback
// when page objects live inside compressed object streams.
var pageTreeCount = regexp.MustCompile(`/Type\s*/Pages[^/]*/Count\s+(\d+)`)

// CountPages reports how many pages a PDF has. It scans the raw file
// for page object markers, which covers the output of TeX engines;
// fully compressed documents fall back to the page tree /Count.
func CountPages(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read pdf: %w", err)
	}
	if !strings.HasPrefix(string(data[:min(len(data), 5)]), "%PDF-") {
		return 0, fmt.Errorf("%w: %s", ErrNotPDF, path)
	}
	if n := len(pageObject.FindAll(data, -1)); n > 0 {
		return n, nil
	}
	if m := pageTreeCount.FindSubmatch(data); m != nil {
		n, err := strconv.Atoi(string(m[1]))
		if err == nil {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: no page objects found in %s", ErrNotPDF, path)
}
