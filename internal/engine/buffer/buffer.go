// Package buffer owns the GPU-resident vertex storage for a loaded mesh.
package buffer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/hexlab/stlglitch/internal/logger"
)

// Attribute locations matched by the vertex shader's layout qualifiers.
const (
	PositionLocation = 0
	NormalLocation   = 1
)

// BufferSet holds the VAO and the two static vertex buffers (position and
// normal) for one mesh. Created exactly once per mesh, released exactly once.
type BufferSet struct {
	vao         uint32
	positionVBO uint32
	normalVBO   uint32
	vertexCount int32
}

// Upload creates GPU buffers for the given flat float arrays. Both slices
// must be the same length, a non-zero multiple of 9 (3 vertices per triangle,
// 3 components per vertex).
func Upload(positions, normals []float32) (*BufferSet, error) {
	if len(positions) == 0 {
		return nil, fmt.Errorf("uploading mesh: no vertex data")
	}
	if len(positions) != len(normals) {
		return nil, fmt.Errorf("uploading mesh: positions (%d) and normals (%d) differ in length",
			len(positions), len(normals))
	}
	if len(positions)%9 != 0 {
		return nil, fmt.Errorf("uploading mesh: %d floats is not whole triangles", len(positions))
	}

	b := &BufferSet{vertexCount: int32(len(positions) / 3)}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.positionVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.positionVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, unsafe.Pointer(&positions[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointer(PositionLocation, 3, gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(PositionLocation)

	gl.GenBuffers(1, &b.normalVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.normalVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(normals)*4, unsafe.Pointer(&normals[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointer(NormalLocation, 3, gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(NormalLocation)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("mesh uploaded",
		zap.Uint32("vao", b.vao),
		zap.Int32("vertices", b.vertexCount),
	)
	return b, nil
}

// Bind makes this buffer set the active vertex source.
func (b *BufferSet) Bind() {
	gl.BindVertexArray(b.vao)
}

// VertexCount returns the number of vertices in the set.
func (b *BufferSet) VertexCount() int32 {
	return b.vertexCount
}

// Release frees the GPU buffers. Safe to call more than once; only the first
// call touches OpenGL.
func (b *BufferSet) Release() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
	if b.positionVBO != 0 {
		gl.DeleteBuffers(1, &b.positionVBO)
		b.positionVBO = 0
	}
	if b.normalVBO != 0 {
		gl.DeleteBuffers(1, &b.normalVBO)
		b.normalVBO = 0
	}
}
