package dircos

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// rotTol is the tolerance applied when checking a matrix for orthonormality.
const rotTol = 1e-9

// RotX returns the matrix that expresses global-frame vectors in a frame
// rotated by rad about the X axis.
func RotX(rad float64) *r3.Mat {
	s, c := math.Sincos(rad)
	return r3.NewMat([]float64{
		1, 0, 0,
		0, c, s,
		0, -s, c,
	})
}

// RotY returns the matrix that expresses global-frame vectors in a frame
// rotated by rad about the Y axis.
func RotY(rad float64) *r3.Mat {
	s, c := math.Sincos(rad)
	return r3.NewMat([]float64{
		c, 0, -s,
		0, 1, 0,
		s, 0, c,
	})
}

// RotZ returns the matrix that expresses global-frame vectors in a frame
// rotated by rad about the Z axis.
func RotZ(rad float64) *r3.Mat {
	s, c := math.Sincos(rad)
	return r3.NewMat([]float64{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	})
}

// EulerZYX composes a receiver orientation from yaw, pitch and roll angles in
// radians: first yaw about the global Z axis, then pitch about the
// intermediate Y axis, then roll about the resulting X axis.
func EulerZYX(yaw, pitch, roll float64) *r3.Mat {
	return mul(RotX(roll), mul(RotY(pitch), RotZ(yaw)))
}

// mul returns the matrix product a*b.
func mul(a, b *r3.Mat) *r3.Mat {
	var p mat.Dense
	p.Mul(a, b)
	return r3.NewMat(p.RawMatrix().Data)
}

// IsRotationMatrix reports whether m is a proper rotation: rows of unit
// length, mutually orthogonal, determinant +1. Reflections and scaled
// matrices are rejected. A nil matrix is not a rotation.
func IsRotationMatrix(m *r3.Mat) bool {
	if m == nil {
		return false
	}
	rows := [3]r3.Vec{
		{X: m.At(0, 0), Y: m.At(0, 1), Z: m.At(0, 2)},
		{X: m.At(1, 0), Y: m.At(1, 1), Z: m.At(1, 2)},
		{X: m.At(2, 0), Y: m.At(2, 1), Z: m.At(2, 2)},
	}
	for _, r := range rows {
		if !scalar.EqualWithinAbs(r3.Norm(r), 1, rotTol) {
			return false
		}
	}
	if !scalar.EqualWithinAbs(rows[0].Dot(rows[1]), 0, rotTol) ||
		!scalar.EqualWithinAbs(rows[0].Dot(rows[2]), 0, rotTol) ||
		!scalar.EqualWithinAbs(rows[1].Dot(rows[2]), 0, rotTol) {
		return false
	}
	return scalar.EqualWithinAbs(m.Det(), 1, rotTol)
}
