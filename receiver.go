package dircos

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// ReceiverPose is the position and orientation of a single receiver.
// Rotation maps global-frame displacement vectors into the receiver's local
// frame; the local +Z axis is the boresight. A nil Rotation leaves the local
// frame aligned with the global frame.
type ReceiverPose struct {
	Position r3.Vec
	Rotation *r3.Mat
}

// Validate checks that the pose orientation is a proper rotation matrix.
// A nil Rotation is valid (identity orientation).
func (rp ReceiverPose) Validate() error {
	if rp.Rotation == nil {
		return nil
	}
	if !IsRotationMatrix(rp.Rotation) {
		return fmt.Errorf("receiver pose: orientation is not a proper rotation matrix")
	}
	return nil
}

// UV returns the two-component direction cosines of target seen from the
// receiver.
func (rp ReceiverPose) UV(target r3.Vec) (UV, error) {
	d, ok := unitToward(target, rp.Position, rp.Rotation)
	if !ok {
		return UV{}, &DegenerateGeometryError{}
	}
	return UV{U: d.X, V: d.Y}, nil
}

// UVW returns the three-component direction cosines of target seen from the
// receiver.
func (rp ReceiverPose) UVW(target r3.Vec) (UVW, error) {
	d, ok := unitToward(target, rp.Position, rp.Rotation)
	if !ok {
		return UVW{}, &DegenerateGeometryError{}
	}
	return UVW{U: d.X, V: d.Y, W: d.Z}, nil
}
