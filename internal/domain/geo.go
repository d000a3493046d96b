package domain

import (
	"fmt"
	"math"

	"github.com/golang/geo/s2"

	"github.com/wamique00786/wesalvator/pkg/e"
)

// EarthRadiusKM is the mean Earth radius used for great-circle distances.
const EarthRadiusKM = 6371.0088

// Point is a WGS-84 coordinate.
type Point struct {
	Lat float64 `json:"latitude"`
	Lng float64 `json:"longitude"`
}

func (p Point) Validate() error {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lng) || math.IsInf(p.Lat, 0) || math.IsInf(p.Lng, 0) {
		return fmt.Errorf("%w: not a number", e.ErrInvalidCoordinates)
	}
	if p.Lat < -90 || p.Lat > 90 {
		return fmt.Errorf("%w: latitude %v out of range", e.ErrInvalidCoordinates, p.Lat)
	}
	if p.Lng < -180 || p.Lng > 180 {
		return fmt.Errorf("%w: longitude %v out of range", e.ErrInvalidCoordinates, p.Lng)
	}
	return nil
}

func (p Point) latLng() s2.LatLng {
	return s2.LatLngFromDegrees(p.Lat, p.Lng)
}

// DistanceKM returns the great-circle distance between two points.
func (p Point) DistanceKM(other Point) float64 {
	return p.latLng().Distance(other.latLng()).Radians() * EarthRadiusKM
}

// PathKM sums the segment lengths of a track in the given order.
func PathKM(points []Point) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += points[i-1].DistanceKM(points[i])
	}
	return total
}
