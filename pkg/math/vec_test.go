package math

import "testing"

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	if got := a.Add(b); got != (Vec3{5, 7, 9}) {
		t.Errorf("Add: got %v", got)
	}
	if got := b.Sub(a); got != (Vec3{3, 3, 3}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Scale(2); got != (Vec3{2, 4, 6}) {
		t.Errorf("Scale: got %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot: got %f, want 32", got)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}

	if got := x.Cross(y); got != (Vec3{0, 0, 1}) {
		t.Errorf("X cross Y: got %v, want Z", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 0, 4}
	n := v.Normalize()

	if !approxEq(n.Length(), 1) {
		t.Errorf("normalized length: got %f, want 1", n.Length())
	}

	// Zero vector must not produce NaN
	z := Vec3{}.Normalize()
	if z != (Vec3{}) {
		t.Errorf("normalizing zero vector: got %v, want zero", z)
	}
}

func TestVec3MaxComponent(t *testing.T) {
	v := Vec3{2, 7, 5}
	if got := v.MaxComponent(); got != 7 {
		t.Errorf("MaxComponent: got %f, want 7", got)
	}
}
