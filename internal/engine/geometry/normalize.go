// Package geometry normalizes decoded mesh geometry into the canonical
// viewing space: recentered at the origin with the largest axis extent
// mapped to TargetExtent.
package geometry

import (
	"errors"

	"github.com/chewxy/math32"

	"github.com/hexlab/stlglitch/pkg/math"
)

// TargetExtent is the size the largest bounding-box axis is scaled to.
const TargetExtent = 10

// ErrDegenerateGeometry is returned when all vertices are coincident (or the
// mesh is empty), leaving no extent to scale.
var ErrDegenerateGeometry = errors.New("degenerate geometry: bounding box has zero extent")

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min, Max math.Vec3
}

// Center returns the box midpoint.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the per-axis extents.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// MaxExtent returns the largest axis extent.
func (b Bounds) MaxExtent() float32 {
	return b.Size().MaxComponent()
}

// ComputeBounds computes the bounding box of flat xyz positions in one pass.
func ComputeBounds(positions []float32) Bounds {
	b := Bounds{
		Min: math.Vec3{X: math32.Inf(1), Y: math32.Inf(1), Z: math32.Inf(1)},
		Max: math.Vec3{X: math32.Inf(-1), Y: math32.Inf(-1), Z: math32.Inf(-1)},
	}

	for i := 0; i+2 < len(positions); i += 3 {
		b.Min.X = math32.Min(b.Min.X, positions[i])
		b.Min.Y = math32.Min(b.Min.Y, positions[i+1])
		b.Min.Z = math32.Min(b.Min.Z, positions[i+2])
		b.Max.X = math32.Max(b.Max.X, positions[i])
		b.Max.Y = math32.Max(b.Max.Y, positions[i+1])
		b.Max.Z = math32.Max(b.Max.Z, positions[i+2])
	}

	return b
}

// Normalize recenters the positions at the origin and uniformly scales them
// so the largest bounding-box axis spans TargetExtent units. The slice is
// updated in place.
//
// Normals are deliberately left alone: a uniform scale preserves direction.
func Normalize(positions []float32) error {
	if len(positions) == 0 {
		return ErrDegenerateGeometry
	}

	bounds := ComputeBounds(positions)
	size := bounds.MaxExtent()
	if size == 0 {
		return ErrDegenerateGeometry
	}

	center := bounds.Center()
	scale := float32(TargetExtent) / size

	for i := 0; i+2 < len(positions); i += 3 {
		positions[i] = (positions[i] - center.X) * scale
		positions[i+1] = (positions[i+1] - center.Y) * scale
		positions[i+2] = (positions[i+2] - center.Z) * scale
	}

	return nil
}
