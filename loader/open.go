package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/allpairs/core"
)

// Decoder yields graph descriptions one at a time, io.EOF at the end.
type Decoder interface {
	Next() (core.Description, error)
}

// Format names accepted by NewDecoder.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// FormatFor returns the format implied by a file name.
func FormatFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// NewDecoder returns a Decoder for the named format.
func NewDecoder(r io.Reader, format string) (Decoder, error) {
	switch format {
	case FormatText, "":
		return NewTextDecoder(r), nil
	case FormatYAML:
		return NewYAMLDecoder(r), nil
	default:
		return nil, fmt.Errorf("loader: unknown format %q", format)
	}
}

// ReadAll drains dec.
func ReadAll(dec Decoder) ([]core.Description, error) {
	var out []core.Description
	for {
		desc, err := dec.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, desc)
	}
}

// Open reads every graph from the file at path. An empty format means
// "guess from the extension".
func Open(path, format string) ([]core.Description, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	if format == "" {
		format = FormatFor(path)
	}
	dec, err := NewDecoder(f, format)
	if err != nil {
		return nil, err
	}

	return ReadAll(dec)
}
