package geometry

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-4

func extent(positions []float32, axis int) float64 {
	lo, hi := math.Inf(1), math.Inf(-1)
	for i := axis; i < len(positions); i += 3 {
		lo = math.Min(lo, float64(positions[i]))
		hi = math.Max(hi, float64(positions[i]))
	}
	return hi - lo
}

func TestNormalize_SingleTriangle(t *testing.T) {
	// Unit right triangle in the XY plane: extent 1 on X and Y, 0 on Z.
	positions := []float32{
		0, 0, 0,
		1, 0, 0,
		0, 1, 0,
	}

	if err := Normalize(positions); err != nil {
		t.Fatalf("normalize failed: %v", err)
	}

	// center = (0.5, 0.5, 0), scale = 10/1: vertices land at ±5.
	want := []float32{
		-5, -5, 0,
		5, -5, 0,
		-5, 5, 0,
	}
	for i := range want {
		if math.Abs(float64(positions[i]-want[i])) > epsilon {
			t.Errorf("positions[%d]: got %f, want %f", i, positions[i], want[i])
		}
	}
}

func TestNormalize_LargestExtentIsTarget(t *testing.T) {
	positions := []float32{
		-3, 100, 7,
		5, 40, 9,
		1, 70, 8,
		2, 55, 7.5,
	}

	if err := Normalize(positions); err != nil {
		t.Fatalf("normalize failed: %v", err)
	}

	largest := 0.0
	for axis := 0; axis < 3; axis++ {
		e := extent(positions, axis)
		if e > TargetExtent+epsilon {
			t.Errorf("axis %d extent %f exceeds target", axis, e)
		}
		largest = math.Max(largest, e)
	}
	if math.Abs(largest-TargetExtent) > epsilon {
		t.Errorf("largest extent: got %f, want %d", largest, TargetExtent)
	}
}

func TestNormalize_Recenters(t *testing.T) {
	positions := []float32{
		10, 20, 30,
		14, 26, 38,
	}

	if err := Normalize(positions); err != nil {
		t.Fatalf("normalize failed: %v", err)
	}

	for axis := 0; axis < 3; axis++ {
		lo, hi := math.Inf(1), math.Inf(-1)
		for i := axis; i < len(positions); i += 3 {
			lo = math.Min(lo, float64(positions[i]))
			hi = math.Max(hi, float64(positions[i]))
		}
		if mid := (lo + hi) / 2; math.Abs(mid) > epsilon {
			t.Errorf("axis %d midpoint: got %f, want 0", axis, mid)
		}
	}
}

func TestNormalize_FixedPoint(t *testing.T) {
	// Normalizing already-normalized geometry must be (near) the identity.
	positions := []float32{
		-3, 1, 7,
		5, 4, 9,
		1, 7, 8,
	}
	if err := Normalize(positions); err != nil {
		t.Fatalf("first normalize failed: %v", err)
	}

	snapshot := make([]float32, len(positions))
	copy(snapshot, positions)

	if err := Normalize(positions); err != nil {
		t.Fatalf("second normalize failed: %v", err)
	}

	for i := range positions {
		if math.Abs(float64(positions[i]-snapshot[i])) > epsilon {
			t.Errorf("positions[%d] drifted on re-normalize: %f -> %f", i, snapshot[i], positions[i])
		}
	}
}

func TestNormalize_Degenerate(t *testing.T) {
	// All vertices coincident: no extent to scale.
	positions := []float32{
		2, 2, 2,
		2, 2, 2,
		2, 2, 2,
	}

	err := Normalize(positions)
	if !errors.Is(err, ErrDegenerateGeometry) {
		t.Fatalf("expected ErrDegenerateGeometry, got %v", err)
	}

	// The input must be untouched, never NaN or Inf.
	for i, p := range positions {
		if p != 2 {
			t.Errorf("positions[%d] modified on degenerate input: got %f", i, p)
		}
		if math.IsNaN(float64(p)) || math.IsInf(float64(p), 0) {
			t.Errorf("positions[%d] is not finite: %f", i, p)
		}
	}
}

func TestNormalize_Empty(t *testing.T) {
	if err := Normalize(nil); !errors.Is(err, ErrDegenerateGeometry) {
		t.Errorf("expected ErrDegenerateGeometry for empty input, got %v", err)
	}
}

func TestComputeBounds(t *testing.T) {
	positions := []float32{
		1, -2, 3,
		-4, 5, -6,
		0, 0, 0,
	}
	b := ComputeBounds(positions)

	if b.Min.X != -4 || b.Min.Y != -2 || b.Min.Z != -6 {
		t.Errorf("min: got %v", b.Min)
	}
	if b.Max.X != 1 || b.Max.Y != 5 || b.Max.Z != 3 {
		t.Errorf("max: got %v", b.Max)
	}
	if b.MaxExtent() != 9 {
		t.Errorf("max extent: got %f, want 9", b.MaxExtent())
	}
}
