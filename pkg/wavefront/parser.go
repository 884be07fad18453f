// Package wavefront parses Wavefront OBJ meshes into triangle groups.
// Only the records the tracer can use are honored: vertices, vertex
// normals, faces, and named groups. Everything else is counted and
// skipped.
package wavefront

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mboyd/go-whitted-raytracer/pkg/math"
	"github.com/mboyd/go-whitted-raytracer/pkg/shapes"
)

// Parser holds the results of parsing one OBJ stream.
type Parser struct {
	// Vertices and Normals are 1-indexed as in the file format; index 0
	// is a placeholder.
	Vertices []math.Tuple
	Normals  []math.Tuple
	// DefaultGroup collects faces that precede any g record.
	DefaultGroup *shapes.Group
	// Groups maps g record names to their groups.
	Groups map[string]*shapes.Group
	// IgnoredLines counts unrecognized records.
	IgnoredLines int

	current *shapes.Group
}

// Parse reads an OBJ stream. Parse errors carry the offending line number.
func Parse(r io.Reader) (*Parser, error) {
	p := &Parser{
		Vertices:     []math.Tuple{math.NewPoint(0, 0, 0)},
		Normals:      []math.Tuple{math.NewVector(0, 0, 0)},
		DefaultGroup: shapes.NewGroup(),
		Groups:       map[string]*shapes.Group{},
	}
	p.current = p.DefaultGroup

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := p.parseLine(scanner.Text()); err != nil {
			return nil, fmt.Errorf("obj line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading obj: %w", err)
	}
	return p, nil
}

// ParseFile reads an OBJ file from disk.
func ParseFile(path string) (*Parser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening obj: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// ParseString reads an OBJ document from a string.
func ParseString(s string) (*Parser, error) {
	return Parse(strings.NewReader(s))
}

func (p *Parser) parseLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "v":
		t, err := parseTriple(fields[1:], math.NewPoint)
		if err != nil {
			return err
		}
		p.Vertices = append(p.Vertices, t)
	case "vn":
		t, err := parseTriple(fields[1:], math.NewVector)
		if err != nil {
			return err
		}
		p.Normals = append(p.Normals, t)
	case "f":
		return p.parseFace(fields[1:])
	case "g":
		if len(fields) < 2 {
			return fmt.Errorf("g record without a name")
		}
		name := fields[1]
		g, ok := p.Groups[name]
		if !ok {
			g = shapes.NewGroup()
			p.Groups[name] = g
		}
		p.current = g
	default:
		p.IgnoredLines++
	}
	return nil
}

func parseTriple(fields []string, make func(x, y, z float64) math.Tuple) (math.Tuple, error) {
	if len(fields) < 3 {
		return math.Tuple{}, fmt.Errorf("expected 3 coordinates, got %d", len(fields))
	}
	var vals [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return math.Tuple{}, fmt.Errorf("bad coordinate %q: %w", fields[i], err)
		}
		vals[i] = v
	}
	return make(vals[0], vals[1], vals[2]), nil
}

// parseFace fan-triangulates a face record. Vertex references are either
// "i" or "i/t/n" triplets; a normal index on the face selects smooth
// triangles.
func (p *Parser) parseFace(fields []string) error {
	if len(fields) < 3 {
		return fmt.Errorf("face with %d vertices", len(fields))
	}

	vertexIdx := make([]int, len(fields))
	normalIdx := make([]int, len(fields)) // 0 means no normal

	for i, field := range fields {
		parts := strings.Split(field, "/")
		vi, err := strconv.Atoi(parts[0])
		if err != nil {
			return fmt.Errorf("bad vertex reference %q: %w", field, err)
		}
		if vi < 1 || vi >= len(p.Vertices) {
			return fmt.Errorf("vertex index %d out of range", vi)
		}
		vertexIdx[i] = vi

		if len(parts) >= 3 && parts[2] != "" {
			ni, err := strconv.Atoi(parts[2])
			if err != nil {
				return fmt.Errorf("bad normal reference %q: %w", field, err)
			}
			if ni < 1 || ni >= len(p.Normals) {
				return fmt.Errorf("normal index %d out of range", ni)
			}
			normalIdx[i] = ni
		}
	}

	for i := 1; i < len(vertexIdx)-1; i++ {
		var tri shapes.Shape
		var err error
		if normalIdx[0] != 0 && normalIdx[i] != 0 && normalIdx[i+1] != 0 {
			tri, err = shapes.NewSmoothTriangle(
				p.Vertices[vertexIdx[0]], p.Vertices[vertexIdx[i]], p.Vertices[vertexIdx[i+1]],
				p.Normals[normalIdx[0]], p.Normals[normalIdx[i]], p.Normals[normalIdx[i+1]],
			)
		} else {
			tri, err = shapes.NewTriangle(
				p.Vertices[vertexIdx[0]], p.Vertices[vertexIdx[i]], p.Vertices[vertexIdx[i+1]],
			)
		}
		if err != nil {
			return fmt.Errorf("face triangle %d: %w", i, err)
		}
		p.current.AddChild(tri)
	}
	return nil
}

// Group gathers every parsed group into one shape suitable for adding
// to a world.
func (p *Parser) Group() *shapes.Group {
	g := shapes.NewGroup()
	if len(p.DefaultGroup.Children()) > 0 {
		g.AddChild(p.DefaultGroup)
	}
	for _, named := range p.Groups {
		if len(named.Children()) > 0 {
			g.AddChild(named)
		}
	}
	return g
}
