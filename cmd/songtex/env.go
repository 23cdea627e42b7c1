package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jvesely/go-songtex/internal/config"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer
	Config config.Config
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Config: config.Default(),
	}
}

// loadConfig resolves the project configuration. An explicit --config
// path must exist; the default path falls back to defaults when absent.
func (env *Environment) loadConfig(path string) error {
	explicit := path != ""
	if !explicit {
		path = config.DefaultPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		if !explicit && errors.Is(err, config.ErrConfigNotFound) {
			env.Config = config.Default()
			return nil
		}
		return err
	}
	env.Config = cfg
	return nil
}

// logf writes progress output to stderr unless quiet is set.
func (env *Environment) logf(quiet bool, format string, args ...any) {
	if !quiet {
		fmt.Fprintf(env.Stderr, format+"\n", args...)
	}
}
