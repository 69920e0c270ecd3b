package pointio

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rngraph/geom"
)

// ReadPoints decodes a point sequence in format f. Order is preserved and
// defines point indices.
//
// Errors: ErrUnknownFormat, ErrMalformed (wrapped with position details),
// or the underlying reader error.
func ReadPoints(r io.Reader, f Format) ([]geom.Point, error) {
	switch f {
	case FormatCSV:
		return readCSV(r)
	case FormatJSON:
		return readJSON(r)
	case FormatYAML:
		return readYAML(r)
	default:
		return nil, fmt.Errorf("read %q: %w", f, ErrUnknownFormat)
	}
}

func readCSV(r io.Reader) ([]geom.Point, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	pts := make([]geom.Point, 0)
records:
	for row := 0; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: %v: %w", err, ErrMalformed)
		}
		if len(rec) != 3 {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("csv line %d: %d fields, want 3: %w", line, len(rec), ErrMalformed)
		}
		var xyz [3]float64
		for c, field := range rec {
			v, perr := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if perr != nil {
				if row == 0 {
					continue records // header
				}
				line, _ := cr.FieldPos(c)
				return nil, fmt.Errorf("csv line %d field %d: %q: %w", line, c+1, field, ErrMalformed)
			}
			xyz[c] = v
		}
		pts = append(pts, geom.Pt(xyz[0], xyz[1], xyz[2]))
	}

	return pts, nil
}

func readJSON(r io.Reader) ([]geom.Point, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, fmt.Errorf("json: empty document: %w", ErrMalformed)
	}

	var ws []wirePoint
	if raw[0] == '{' {
		var doc wireDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, wrapDecode("json", err)
		}
		ws = doc.Points
	} else if err := json.Unmarshal(raw, &ws); err != nil {
		return nil, wrapDecode("json", err)
	}

	return toPoints(ws), nil
}

func readYAML(r io.Reader) ([]geom.Point, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("yaml: empty document: %w", ErrMalformed)
		}
		return nil, wrapDecode("yaml", err)
	}
	doc := &root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) == 1 {
		doc = doc.Content[0]
	}

	var ws []wirePoint
	switch doc.Kind {
	case yaml.MappingNode:
		var env wireDoc
		if err := doc.Decode(&env); err != nil {
			return nil, wrapDecode("yaml", err)
		}
		ws = env.Points
	case yaml.SequenceNode:
		if err := doc.Decode(&ws); err != nil {
			return nil, wrapDecode("yaml", err)
		}
	default:
		return nil, fmt.Errorf("yaml line %d: want a list or a points mapping: %w", doc.Line, ErrMalformed)
	}

	return toPoints(ws), nil
}

// wrapDecode keeps ErrMalformed from custom unmarshalers and adds it to
// plain syntax errors.
func wrapDecode(format string, err error) error {
	if errors.Is(err, ErrMalformed) {
		return fmt.Errorf("%s: %w", format, err)
	}

	return fmt.Errorf("%s: %v: %w", format, err, ErrMalformed)
}
