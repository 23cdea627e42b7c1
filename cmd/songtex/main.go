package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func usage(w *os.File) {
	fmt.Fprintf(w, `songtex %s - chord sheet to LaTeX songbook compiler

Usage:
  songtex [compile] [flags]   compile the song library into per-song .tex files and the master document
  songtex curate [flags] [id ...]  review line annotations in your editor
  songtex fetch [flags]       fetch missing chord sheets from song URLs
  songtex pages [flags]       record per-song PDF page counts
  songtex sort [flags]        serve the drag-to-reorder UI
  songtex version             print the version

Run any command with --help for its flags.
`, Version)
}

func main() {
	os.Exit(run(os.Args[1:], DefaultEnv()))
}

// run dispatches to the subcommands; compile is the default.
func run(args []string, env *Environment) int {
	cmd := "compile"
	if len(args) > 0 {
		switch args[0] {
		case "compile", "curate", "fetch", "pages", "sort", "version", "help":
			cmd, args = args[0], args[1:]
		case "-h", "--help":
			usage(os.Stdout)
			return ExitSuccess
		}
	}

	switch cmd {
	case "version":
		fmt.Fprintln(env.Stdout, Version)
		return ExitSuccess
	case "help":
		usage(os.Stdout)
		return ExitSuccess
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := runCommand(ctx, cmd, args, env)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
	}
	return exitCodeFor(err)
}

func runCommand(ctx context.Context, cmd string, args []string, env *Environment) error {
	switch cmd {
	case "compile":
		flags, _, err := parseCompileFlags(args)
		if err != nil {
			return err
		}
		if err := env.loadConfig(flags.common.config); err != nil {
			return err
		}
		setupMaxProcs(env, flags.common.verbose)
		pool := NewCompilerPool(resolvePoolSize(flags.workers), tuningOptions(env.Config)...)
		env.logf(!flags.common.verbose, "Pool size: %d", pool.Size())
		return runCompile(ctx, flags, pool, env)

	case "curate":
		flags, ids, err := parseCurateFlags(args)
		if err != nil {
			return err
		}
		if err := env.loadConfig(flags.common.config); err != nil {
			return err
		}
		return runCurate(ctx, flags, ids, env)

	case "fetch":
		flags, _, err := parseFetchFlags(args)
		if err != nil {
			return err
		}
		if err := env.loadConfig(flags.common.config); err != nil {
			return err
		}
		return runFetch(ctx, flags, env)

	case "pages":
		flags, _, err := parsePagesFlags(args)
		if err != nil {
			return err
		}
		if err := env.loadConfig(flags.common.config); err != nil {
			return err
		}
		return runPages(ctx, flags, env)

	case "sort":
		flags, _, err := parseSortFlags(args)
		if err != nil {
			return err
		}
		if err := env.loadConfig(flags.common.config); err != nil {
			return err
		}
		return runSort(ctx, flags, env)
	}
	return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
}

// setupMaxProcs aligns GOMAXPROCS with container CPU limits.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func setupMaxProcs(env *Environment, verbose bool) {
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}
}
