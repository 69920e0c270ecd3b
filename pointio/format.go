package pointio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format names an encoding.
type Format string

// Supported formats.
const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	// ErrUnknownFormat indicates an unsupported format name or extension.
	ErrUnknownFormat = errors.New("pointio: unknown format")
	// ErrMalformed indicates input that does not match any accepted shape.
	ErrMalformed = errors.New("pointio: malformed input")
)

// ParseFormat maps a user-supplied name ("csv", "json", "yaml", "yml",
// case-insensitive) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%q has no extension: %w", path, ErrUnknownFormat)
	}

	return ParseFormat(ext)
}
