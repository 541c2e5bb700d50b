package dircos

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestRotZ_QuarterTurn(t *testing.T) {
	// A frame yawed +90° about Z sees the global +X axis along its -Y axis.
	got := RotZ(math.Pi / 2).MulVec(r3.Vec{X: 1})
	want := r3.Vec{Y: -1}

	if !vecNear(got, want, 1e-12) {
		t.Errorf("RotZ(π/2)·(1,0,0) = %+v, want %+v", got, want)
	}
}

func TestRotX_RotY_QuarterTurns(t *testing.T) {
	tests := []struct {
		name string
		m    *r3.Mat
		in   r3.Vec
		want r3.Vec
	}{
		{"RotX maps +Y to -Z", RotX(math.Pi / 2), r3.Vec{Y: 1}, r3.Vec{Z: -1}},
		{"RotX maps +Z to +Y", RotX(math.Pi / 2), r3.Vec{Z: 1}, r3.Vec{Y: 1}},
		{"RotY maps +Z to -X", RotY(math.Pi / 2), r3.Vec{Z: 1}, r3.Vec{X: -1}},
		{"RotY maps +X to +Z", RotY(math.Pi / 2), r3.Vec{X: 1}, r3.Vec{Z: 1}},
	}

	for _, tt := range tests {
		got := tt.m.MulVec(tt.in)
		if !vecNear(got, tt.want, 1e-12) {
			t.Errorf("%s: got %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestEulerZYX_SingleAxis(t *testing.T) {
	probe := r3.Vec{X: 0.3, Y: -1.2, Z: 2.5}

	tests := []struct {
		name string
		got  *r3.Mat
		want *r3.Mat
	}{
		{"yaw only", EulerZYX(0.8, 0, 0), RotZ(0.8)},
		{"pitch only", EulerZYX(0, -0.4, 0), RotY(-0.4)},
		{"roll only", EulerZYX(0, 0, 1.3), RotX(1.3)},
	}

	for _, tt := range tests {
		if !vecNear(tt.got.MulVec(probe), tt.want.MulVec(probe), 1e-12) {
			t.Errorf("%s: composed matrix disagrees with single-axis rotation", tt.name)
		}
	}
}

func TestEulerZYX_AppliesYawFirst(t *testing.T) {
	// yaw then pitch: the composed matrix must act like pitch∘yaw, not
	// yaw∘pitch.
	yaw, pitch := 0.6, -0.9
	probe := r3.Vec{X: 1, Y: 2, Z: 3}

	want := RotY(pitch).MulVec(RotZ(yaw).MulVec(probe))
	got := EulerZYX(yaw, pitch, 0).MulVec(probe)

	if !vecNear(got, want, 1e-12) {
		t.Errorf("EulerZYX order: got %+v, want %+v", got, want)
	}
}

func TestRotationConstructors_AreRotations(t *testing.T) {
	angles := []float64{0, 0.1, -0.7, math.Pi / 2, math.Pi, 2.9, -3.1}

	for _, a := range angles {
		if !IsRotationMatrix(RotX(a)) {
			t.Errorf("RotX(%v) failed rotation check", a)
		}
		if !IsRotationMatrix(RotY(a)) {
			t.Errorf("RotY(%v) failed rotation check", a)
		}
		if !IsRotationMatrix(RotZ(a)) {
			t.Errorf("RotZ(%v) failed rotation check", a)
		}
	}

	if !IsRotationMatrix(EulerZYX(0.5, -1.1, 2.2)) {
		t.Error("EulerZYX composition failed rotation check")
	}
}

func TestIsRotationMatrix_Rejections(t *testing.T) {
	tests := []struct {
		name string
		m    *r3.Mat
	}{
		{"nil matrix", nil},
		{"reflection", r3.NewMat([]float64{-1, 0, 0, 0, 1, 0, 0, 0, 1})},
		{"uniform scale", r3.NewMat([]float64{2, 0, 0, 0, 2, 0, 0, 0, 2})},
		{"shear", r3.NewMat([]float64{1, 0.5, 0, 0, 1, 0, 0, 0, 1})},
		{"zero matrix", r3.NewMat(nil)},
	}

	for _, tt := range tests {
		if IsRotationMatrix(tt.m) {
			t.Errorf("%s should not pass the rotation check", tt.name)
		}
	}

	identity := r3.NewMat([]float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	if !IsRotationMatrix(identity) {
		t.Error("identity should pass the rotation check")
	}
}

func vecNear(a, b r3.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}
