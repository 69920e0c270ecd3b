package pointio

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rngraph/geom"
)

// wirePoint decodes either [x, y, z] or {x:, y:, z:}.
type wirePoint geom.Point

// wireObject is the keyed form; pointers detect missing coordinates.
type wireObject struct {
	X *float64 `json:"x" yaml:"x"`
	Y *float64 `json:"y" yaml:"y"`
	Z *float64 `json:"z" yaml:"z"`
}

// wireDoc is the {"points": [...]} envelope.
type wireDoc struct {
	Points []wirePoint `json:"points" yaml:"points"`
}

// UnmarshalJSON accepts the list and object forms.
func (p *wirePoint) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		var xyz []float64
		if err := json.Unmarshal(b, &xyz); err != nil {
			return fmt.Errorf("point %s: %w", b, ErrMalformed)
		}
		return p.fromList(xyz)
	}
	var o wireObject
	if err := json.Unmarshal(b, &o); err != nil {
		return fmt.Errorf("point %s: %w", b, ErrMalformed)
	}

	return p.fromObject(o)
}

// UnmarshalYAML accepts the list and object forms.
func (p *wirePoint) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.SequenceNode:
		var xyz []float64
		if err := n.Decode(&xyz); err != nil {
			return fmt.Errorf("line %d: %v: %w", n.Line, err, ErrMalformed)
		}
		return p.fromList(xyz)
	case yaml.MappingNode:
		var o wireObject
		if err := n.Decode(&o); err != nil {
			return fmt.Errorf("line %d: %v: %w", n.Line, err, ErrMalformed)
		}
		return p.fromObject(o)
	default:
		return fmt.Errorf("line %d: point must be a list or mapping: %w", n.Line, ErrMalformed)
	}
}

func (p *wirePoint) fromList(xyz []float64) error {
	if len(xyz) != 3 {
		return fmt.Errorf("point has %d coordinates, want 3: %w", len(xyz), ErrMalformed)
	}
	*p = wirePoint{X: xyz[0], Y: xyz[1], Z: xyz[2]}

	return nil
}

func (p *wirePoint) fromObject(o wireObject) error {
	if o.X == nil || o.Y == nil || o.Z == nil {
		return fmt.Errorf("point needs x, y and z: %w", ErrMalformed)
	}
	*p = wirePoint{X: *o.X, Y: *o.Y, Z: *o.Z}

	return nil
}

func toPoints(ws []wirePoint) []geom.Point {
	pts := make([]geom.Point, len(ws))
	for i, w := range ws {
		pts[i] = geom.Point(w)
	}

	return pts
}

// xyz is the list form used for output.
type xyz [3]float64

func toXYZ(p geom.Point) xyz {
	return xyz{p.X, p.Y, p.Z}
}

// graphDoc is the JSON/YAML graph document.
type graphDoc struct {
	Count     int        `json:"count" yaml:"count"`
	EdgeCount int        `json:"edge_count" yaml:"edge_count"`
	Edges     [][][2]xyz `json:"edges" yaml:"edges"`
	Indices   [][]int    `json:"indices" yaml:"indices"`
}
