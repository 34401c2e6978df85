package meshio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/smcoctree/vec"
)

// ReadOBJ parses a minimal Wavefront OBJ stream (v / f lines only, no
// normals, no texture coordinates, no materials) into a Mesh usable as a
// TriangleSource. Faces with more than three vertices are fan-triangulated.
// This is ambient I/O tooling outside the core extraction contract.
func ReadOBJ(r io.Reader) (*Mesh, error) {
	m := NewMesh()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("meshio: line %d: malformed vertex", lineNo)
			}
			x, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, fmt.Errorf("meshio: line %d: %w", lineNo, err)
			}
			y, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("meshio: line %d: %w", lineNo, err)
			}
			z, err := strconv.ParseFloat(fields[3], 64)
			if err != nil {
				return nil, fmt.Errorf("meshio: line %d: %w", lineNo, err)
			}
			m.Points = append(m.Points, vec.New(x, y, z))
		case "f":
			idx := make([]int, 0, len(fields)-1)
			for _, f := range fields[1:] {
				tok := strings.SplitN(f, "/", 2)[0]
				n, err := strconv.Atoi(tok)
				if err != nil {
					return nil, fmt.Errorf("meshio: line %d: %w", lineNo, err)
				}
				if n < 0 {
					n = len(m.Points) + n + 1
				}
				idx = append(idx, n-1)
			}
			// m.Points was appended directly above (0-based storage), so
			// the 1-based VertexID convention Point() expects is idx+1.
			for i := 1; i+1 < len(idx); i++ {
				m.Faces = append(m.Faces, Face{
					ID:       len(m.Faces) + 1,
					Vertices: [3]VertexID{VertexID(idx[0] + 1), VertexID(idx[i] + 1), VertexID(idx[i+1] + 1)},
				})
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

// WriteOBJ serializes a Mesh as a minimal Wavefront OBJ (v/f lines, 1-based
// indices). This is ambient I/O tooling outside the core contract.
func WriteOBJ(w io.Writer, m *Mesh) error {
	bw := bufio.NewWriter(w)
	for _, p := range m.Points {
		if _, err := fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z); err != nil {
			return err
		}
	}
	for _, f := range m.Faces {
		// VertexID is already 1-based, matching OBJ indices directly.
		if _, err := fmt.Fprintf(bw, "f %d %d %d\n", f.Vertices[0], f.Vertices[1], f.Vertices[2]); err != nil {
			return err
		}
	}
	return bw.Flush()
}
