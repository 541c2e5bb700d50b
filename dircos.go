// Package dircos converts target positions in a global Cartesian frame into
// direction cosines relative to one or more receivers.
//
// A receiver is described by its position in the global frame and by a 3x3
// rotation matrix that maps global-frame displacement vectors into the
// receiver's local frame, whose +Z axis is the receiver boresight. For a
// target point p seen from a receiver at q with rotation R, the direction
// cosines (u, v, w) are the components of the unit vector R(p-q)/|R(p-q)|.
//
// Conversions operate on batches. Receiver positions and rotations broadcast:
// an empty slice applies the default (origin position, identity rotation) to
// every point, a single element applies to every point, and a slice of
// exactly len(points) elements pairs up index by index. Any other length is a
// ShapeMismatchError.
package dircos

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// UV holds the first two direction cosines of a target: the X and Y
// components of the receiver-to-target unit vector in the receiver's local
// frame. U*U + V*V <= 1 always holds.
type UV struct {
	U, V float64
}

// UVW holds all three direction cosines. U*U + V*V + W*W = 1 up to rounding.
// W > 0 means the target is on the boresight side of the receiver.
type UVW struct {
	U, V, W float64
}

// Options carries the optional receiver inputs for ConvertUV and ConvertUVW.
type Options struct {
	// Positions are receiver positions in the global frame. Empty means
	// every receiver sits at the origin.
	Positions []r3.Vec

	// Rotations map global-frame displacements into each receiver's local
	// frame. Empty means identity (local frame aligned with the global
	// frame). A nil element is likewise treated as identity.
	Rotations []*r3.Mat
}

// ConvertUV converts a batch of global-frame target points into two-component
// direction cosines. Output order follows input order: out[i] is the
// conversion of points[i].
//
// The batch fails as a whole: a ShapeMismatchError is returned before any
// point is converted, and a DegenerateGeometryError on the first point that
// coincides with its receiver.
func ConvertUV(points []r3.Vec, opt Options) ([]UV, error) {
	if err := opt.validate(len(points)); err != nil {
		return nil, err
	}
	out := make([]UV, len(points))
	for i, p := range points {
		d, ok := unitToward(p, opt.position(i), opt.rotation(i))
		if !ok {
			return nil, &DegenerateGeometryError{Index: i}
		}
		out[i] = UV{U: d.X, V: d.Y}
	}
	return out, nil
}

// ConvertUVW converts a batch of global-frame target points into
// three-component direction cosines. It behaves exactly like ConvertUV but
// additionally reports the boresight component w.
func ConvertUVW(points []r3.Vec, opt Options) ([]UVW, error) {
	if err := opt.validate(len(points)); err != nil {
		return nil, err
	}
	out := make([]UVW, len(points))
	for i, p := range points {
		d, ok := unitToward(p, opt.position(i), opt.rotation(i))
		if !ok {
			return nil, &DegenerateGeometryError{Index: i}
		}
		out[i] = UVW{U: d.X, V: d.Y, W: d.Z}
	}
	return out, nil
}

// unitToward returns the unit vector from the receiver at position toward
// target, expressed in the receiver's local frame. ok is false when the two
// coincide and the direction is undefined.
func unitToward(target, position r3.Vec, rotation *r3.Mat) (r3.Vec, bool) {
	d := target.Sub(position)
	if rotation != nil {
		d = rotation.MulVec(d)
	}
	n := r3.Norm(d)
	if n == 0 {
		return r3.Vec{}, false
	}
	return d.Scale(1 / n), true
}

// validate checks the broadcast lengths against the batch size up front so a
// bad batch never produces partial output.
func (o Options) validate(n int) error {
	if l := len(o.Positions); l > 1 && l != n {
		return &ShapeMismatchError{Input: "positions", Got: l, Want: n}
	}
	if l := len(o.Rotations); l > 1 && l != n {
		return &ShapeMismatchError{Input: "rotations", Got: l, Want: n}
	}
	return nil
}

func (o Options) position(i int) r3.Vec {
	switch len(o.Positions) {
	case 0:
		return r3.Vec{}
	case 1:
		return o.Positions[0]
	}
	return o.Positions[i]
}

func (o Options) rotation(i int) *r3.Mat {
	switch len(o.Rotations) {
	case 0:
		return nil
	case 1:
		return o.Rotations[0]
	}
	return o.Rotations[i]
}
