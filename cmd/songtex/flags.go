package main

import (
	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-song detail")
}

// compileFlags holds flags for the compile command.
type compileFlags struct {
	common  commonFlags
	workers int
	force   bool
	preview bool
	notes   string
}

// parseCompileFlags parses compile command flags and returns positional args.
func parseCompileFlags(args []string) (*compileFlags, []string, error) {
	fs := flag.NewFlagSet("compile", flag.ContinueOnError)
	f := &compileFlags{}

	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVarP(&f.force, "force", "f", false, "recompile finalized songs too")
	fs.BoolVar(&f.preview, "preview", false, "write an HTML preview next to each song")
	fs.StringVar(&f.notes, "notes", "", "markdown notes file to render into the output dir")
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// curateFlags holds flags for the curate command.
type curateFlags struct {
	common commonFlags
	editor string
}

// parseCurateFlags parses curate command flags and returns positional args.
func parseCurateFlags(args []string) (*curateFlags, []string, error) {
	fs := flag.NewFlagSet("curate", flag.ContinueOnError)
	f := &curateFlags{}

	fs.StringVarP(&f.editor, "editor", "e", "", "editor command (default $VISUAL or $EDITOR)")
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// fetchFlags holds flags for the fetch command.
type fetchFlags struct {
	common  commonFlags
	timeout string
}

// parseFetchFlags parses fetch command flags and returns positional args.
func parseFetchFlags(args []string) (*fetchFlags, []string, error) {
	fs := flag.NewFlagSet("fetch", flag.ContinueOnError)
	f := &fetchFlags{}

	fs.StringVarP(&f.timeout, "timeout", "t", "", "page load timeout (e.g. 30s, 2m)")
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// sortFlags holds flags for the sort command.
type sortFlags struct {
	common commonFlags
	addr   string
}

// parseSortFlags parses sort command flags and returns positional args.
func parseSortFlags(args []string) (*sortFlags, []string, error) {
	fs := flag.NewFlagSet("sort", flag.ContinueOnError)
	f := &sortFlags{}

	fs.StringVarP(&f.addr, "addr", "a", "", "listen address for the sorter UI")
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// pagesFlags holds flags for the pages command.
type pagesFlags struct {
	common commonFlags
	dir    string
}

// parsePagesFlags parses pages command flags and returns positional args.
func parsePagesFlags(args []string) (*pagesFlags, []string, error) {
	fs := flag.NewFlagSet("pages", flag.ContinueOnError)
	f := &pagesFlags{}

	fs.StringVarP(&f.dir, "dir", "d", "", "directory with rendered per-song PDFs")
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
