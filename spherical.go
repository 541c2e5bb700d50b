package dircos

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// SphericalToCartesian converts a range (meters), azimuth (degrees) and
// elevation (degrees) report into a Cartesian point.
// Coordinate convention: X=right, Y=forward, Z=up; azimuth is measured from
// +Y toward +X, elevation from the XY plane toward +Z.
func SphericalToCartesian(rangeMeters, azimuthDeg, elevationDeg float64) r3.Vec {
	azimuthRad := azimuthDeg * math.Pi / 180.0
	elevationRad := elevationDeg * math.Pi / 180.0

	sinAzimuth, cosAzimuth := math.Sincos(azimuthRad)
	sinElevation, cosElevation := math.Sincos(elevationRad)

	return r3.Vec{
		X: rangeMeters * cosElevation * sinAzimuth,
		Y: rangeMeters * cosElevation * cosAzimuth,
		Z: rangeMeters * sinElevation,
	}
}
