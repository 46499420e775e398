// Package iojson provides JSON IO helpers for CLI commands: a generic
// file-or-stdin reader and pretty-printed writers.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Read decodes a T from the file at path, or from stdin when path is
// empty. Reading from stdin requires piped input; an interactive
// terminal is rejected with a hint to use the file flag.
func Read[T any](path string) (T, error) {
	var input T
	var reader io.Reader

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return input, fmt.Errorf("open file: %w", err)
		}
		defer func() { _ = f.Close() }()
		reader = f
	} else {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return input, fmt.Errorf("no input provided (stdin is a terminal); use -f or pipe JSON input")
		}
		reader = os.Stdin
	}

	if err := json.NewDecoder(reader).Decode(&input); err != nil {
		return input, fmt.Errorf("decode JSON: %w", err)
	}

	return input, nil
}

// WriteWith pretty-prints obj as JSON to w.
func WriteWith(w io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}

// Write calls WriteWith with [os.Stdout].
func Write(obj any) error {
	return WriteWith(os.Stdout, obj)
}
