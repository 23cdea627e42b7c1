package main

import (
	"errors"
	"os"

	songtex "github.com/jvesely/go-songtex"
	"github.com/jvesely/go-songtex/internal/book"
	"github.com/jvesely/go-songtex/internal/config"
	"github.com/jvesely/go-songtex/internal/fetch"
	"github.com/jvesely/go-songtex/internal/library"
)

// Exit codes for the songtex CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All songs processed
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied, bad library
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, fetch.ErrBrowserConnect) ||
		errors.Is(err, fetch.ErrPageLoad) {
		return ExitBrowser
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, library.ErrLibraryNotFound) ||
		errors.Is(err, library.ErrInvalidLibrary) ||
		errors.Is(err, book.ErrNotPDF) {
		return ExitIO
	}

	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidTuning) ||
		errors.Is(err, songtex.ErrEmptySource) ||
		errors.Is(err, ErrUnknownCommand) {
		return ExitUsage
	}

	return ExitGeneral
}
