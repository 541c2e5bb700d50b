package dircos

import "fmt"

// ShapeMismatchError reports a broadcast input whose length is neither 0, 1
// nor the number of points in the batch.
type ShapeMismatchError struct {
	Input string // "positions" or "rotations"
	Got   int
	Want  int // batch size
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("dircos: %s has %d entries for %d points (want 0, 1 or %d)",
		e.Input, e.Got, e.Want, e.Want)
}

// DegenerateGeometryError reports a target that coincides with its receiver,
// leaving the receiver-to-target direction undefined.
type DegenerateGeometryError struct {
	Index int // index of the offending point in the batch
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("dircos: target %d coincides with its receiver, direction undefined", e.Index)
}
