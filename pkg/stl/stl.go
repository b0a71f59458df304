// Package stl parses binary STL triangle-mesh files.
package stl

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"
)

// Binary STL layout: 80-byte header, uint32 triangle count, then one 50-byte
// record per triangle (normal, 3 vertices, 2 attribute bytes), little-endian.
const (
	headerSize = 80
	countSize  = 4
	recordSize = 50
)

// STL format errors.
var (
	ErrTruncated = errors.New("truncated STL data")
	ErrASCIISTL  = errors.New("ASCII STL is not supported")
)

// Mesh holds a decoded triangle soup as flat parallel float arrays, ready for
// GPU upload. Vertex i occupies indices [3i, 3i+2] of both slices; the facet
// normal is repeated for all three vertices of its triangle (flat shading).
type Mesh struct {
	Positions []float32
	Normals   []float32
}

// TriangleCount returns the number of decoded triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Positions) / 9
}

// VertexCount returns the number of vertices (3 per triangle, no sharing).
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// Decode parses a binary STL file from raw bytes.
func Decode(data []byte) (*Mesh, error) {
	// The ASCII variant starts with the keyword "solid".
	if bytes.HasPrefix(data, []byte("solid")) {
		return nil, ErrASCIISTL
	}

	if len(data) < headerSize+countSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d for header", ErrTruncated, len(data), headerSize+countSize)
	}

	count := binary.LittleEndian.Uint32(data[headerSize : headerSize+countSize])

	// Validate the full extent before touching any record, so a bogus count
	// can never cause an out-of-bounds read.
	need := uint64(headerSize+countSize) + uint64(count)*recordSize
	if uint64(len(data)) < need {
		return nil, fmt.Errorf("%w: %d triangles need %d bytes, have %d", ErrTruncated, count, need, len(data))
	}

	m := &Mesh{
		Positions: make([]float32, 0, count*9),
		Normals:   make([]float32, 0, count*9),
	}

	for i := uint32(0); i < count; i++ {
		rec := data[headerSize+countSize+i*recordSize:]

		var normal [3]float32
		for c := 0; c < 3; c++ {
			normal[c] = math.Float32frombits(binary.LittleEndian.Uint32(rec[4*c:]))
		}

		// 3 vertices follow the normal; the trailing 2 attribute bytes are
		// ignored.
		for v := 0; v < 3; v++ {
			for c := 0; c < 3; c++ {
				f := math.Float32frombits(binary.LittleEndian.Uint32(rec[12+12*v+4*c:]))
				m.Positions = append(m.Positions, f)
			}
			m.Normals = append(m.Normals, normal[0], normal[1], normal[2])
		}
	}

	return m, nil
}

// DecodeFile parses a binary STL file from disk.
func DecodeFile(path string) (*Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading STL file: %w", err)
	}
	return Decode(data)
}
