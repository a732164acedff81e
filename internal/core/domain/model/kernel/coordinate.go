package kernel

import (
	"fmt"
	"math"

	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

const (
	// LatitudeMin and LatitudeMax bound valid latitudes in degrees.
	LatitudeMin = -90.0
	LatitudeMax = 90.0
	// LongitudeMin and LongitudeMax bound valid longitudes in degrees.
	LongitudeMin = -180.0
	LongitudeMax = 180.0

	// earthRadiusMeters is Earth's mean radius used by the haversine formula.
	earthRadiusMeters = 6371000.0
)

// ErrCoordinateIsNotConstructed is returned when attempting to use an
// improperly initialized Coordinate. Coordinates must be created via
// NewCoordinate to ensure their components are within geographic bounds.
var ErrCoordinateIsNotConstructed = errs.NewInvalidStateError(
	"coordinate must be created via the NewCoordinate constructor")

// Coordinate is an immutable geographic point (latitude/longitude in
// degrees). The zero value is invalid and fails Validate; use NewCoordinate.
//
// Distances between coordinates are great-circle distances in meters, which
// is the only geometric operation the delivery domain needs: ranking drones
// by proximity to a pickup point and estimating remaining flight distance.
type Coordinate struct {
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewCoordinate creates a Coordinate after checking geographic bounds.
func NewCoordinate(lat, lng float64) (Coordinate, error) {
	if lat < LatitudeMin || lat > LatitudeMax || math.IsNaN(lat) {
		return Coordinate{}, errs.NewInvalidStateError(
			fmt.Sprintf("latitude %v is outside [%v, %v]", lat, LatitudeMin, LatitudeMax))
	}
	if lng < LongitudeMin || lng > LongitudeMax || math.IsNaN(lng) {
		return Coordinate{}, errs.NewInvalidStateError(
			fmt.Sprintf("longitude %v is outside [%v, %v]", lng, LongitudeMin, LongitudeMax))
	}

	return Coordinate{
		lat:   lat,
		lng:   lng,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Coordinate was created through NewCoordinate.
func (c Coordinate) Validate() error {
	return c.guard.Validate(ErrCoordinateIsNotConstructed)
}

// Lat returns the latitude in degrees.
func (c Coordinate) Lat() float64 {
	return c.lat
}

// Lng returns the longitude in degrees.
func (c Coordinate) Lng() float64 {
	return c.lng
}

// IsEqual compares two coordinates component-wise.
func (c Coordinate) IsEqual(other Coordinate) bool {
	return c.lat == other.lat && c.lng == other.lng
}

// String returns a compact "lat,lng" rendering for logs.
func (c Coordinate) String() string {
	return fmt.Sprintf("%v,%v", c.lat, c.lng)
}

// DistanceMeters returns the great-circle distance to target in meters,
// computed with the haversine formula.
func (c Coordinate) DistanceMeters(target Coordinate) (float64, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	const degToRad = math.Pi / 180

	dLat := (target.lat - c.lat) * degToRad
	dLng := (target.lng - c.lng) * degToRad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(c.lat*degToRad)*math.Cos(target.lat*degToRad)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	arc := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * arc, nil
}
