package pointio

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rngraph/geom"
	"github.com/katalvlaran/rngraph/rng"
)

// WritePoints encodes pts in format f, in a shape ReadPoints accepts.
func WritePoints(w io.Writer, pts []geom.Point, f Format) error {
	switch f {
	case FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"x", "y", "z"}); err != nil {
			return err
		}
		for _, p := range pts {
			if err := cw.Write([]string{ftoa(p.X), ftoa(p.Y), ftoa(p.Z)}); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	case FormatJSON, FormatYAML:
		list := make([]xyz, len(pts))
		for i, p := range pts {
			list[i] = toXYZ(p)
		}
		return encode(w, f, list)
	default:
		return fmt.Errorf("write %q: %w", f, ErrUnknownFormat)
	}
}

// WriteGraph encodes g in format f: every index in [0, n) appears, in order.
func WriteGraph(w io.Writer, g *rng.Graph, f Format) error {
	switch f {
	case FormatCSV:
		return writeGraphCSV(w, g)
	case FormatJSON, FormatYAML:
		doc := graphDoc{
			Count:     g.Len(),
			EdgeCount: g.EdgeCount(),
			Edges:     make([][][2]xyz, g.Len()),
			Indices:   g.Indices(),
		}
		for i, segs := range g.Edges() {
			row := make([][2]xyz, len(segs))
			for k, s := range segs {
				row[k] = [2]xyz{toXYZ(s.From), toXYZ(s.To)}
			}
			doc.Edges[i] = row
		}
		return encode(w, f, doc)
	default:
		return fmt.Errorf("write %q: %w", f, ErrUnknownFormat)
	}
}

func writeGraphCSV(w io.Writer, g *rng.Graph) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"source", "target", "x1", "y1", "z1", "x2", "y2", "z2"}); err != nil {
		return err
	}
	edges, indices := g.Edges(), g.Indices()
	for i := range indices {
		src := strconv.Itoa(i)
		if len(indices[i]) == 0 {
			if err := cw.Write([]string{src, "", "", "", "", "", "", ""}); err != nil {
				return err
			}
			continue
		}
		for k, j := range indices[i] {
			s := edges[i][k]
			rec := []string{
				src, strconv.Itoa(j),
				ftoa(s.From.X), ftoa(s.From.Y), ftoa(s.From.Z),
				ftoa(s.To.X), ftoa(s.To.Y), ftoa(s.To.Z),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()

	return cw.Error()
}

func encode(w io.Writer, f Format, v any) error {
	if f == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}

// ftoa formats v with the shortest representation that round-trips.
func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
