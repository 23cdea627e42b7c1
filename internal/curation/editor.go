package curation

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// ErrNoEditor means neither $VISUAL nor $EDITOR is set.
var ErrNoEditor = errors.New("no editor configured (set VISUAL or EDITOR)")

// EditorFromEnv resolves the curator's editor command.
func EditorFromEnv() (string, error) {
	if e := os.Getenv("VISUAL"); e != "" {
		return e, nil
	}
	if e := os.Getenv("EDITOR"); e != "" {
		return e, nil
	}
	return "", ErrNoEditor
}

// EditText writes content to a temporary file, hands it to the
// curator's editor and returns the text after the editor exits. The
// editor inherits the terminal, so the call blocks until the curator
// is done.
func EditText(editor, content string) (string, error) {
	tmp, err := os.CreateTemp("", "songtex-*.txt")
	if err != nil {
		return "", fmt.Errorf("create annotation file: %w", err)
	}
	path := tmp.Name()
	defer os.Remove(path)

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write annotation file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close annotation file: %w", err)
	}

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("run editor %q: %w", editor, err)
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read edited annotations: %w", err)
	}
	return string(edited), nil
}
