package geowords

import (
	"fmt"
	"math"
)

// Normalize shifts (lat, lon) into non-negative ranges and quantizes them to
// integer units of 10^-DecimalPlaces degrees.
//
// Longitude +180 lies on the same meridian as -180; a value that rounds to a
// full stride is folded back onto unit 0 so the linear address stays inside
// the row it belongs to.
func (p Params) Normalize(lat, lon float64) (latUnits, lonUnits uint64, err error) {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return 0, 0, fmt.Errorf("%w: (%v, %v)", ErrCoordinateOutOfRange, lat, lon)
	}
	if lat < -90 || lat > 90 {
		return 0, 0, fmt.Errorf("%w: latitude %v not in [-90, 90]", ErrCoordinateOutOfRange, lat)
	}
	if lon < -180 || lon > 180 {
		return 0, 0, fmt.Errorf("%w: longitude %v not in [-180, 180]", ErrCoordinateOutOfRange, lon)
	}
	scale := float64(p.Scale)
	latUnits = uint64(math.Round((lat + 90) * scale))
	lonUnits = uint64(math.Round((lon + 180) * scale))
	if lonUnits >= p.Stride {
		lonUnits -= p.Stride
	}
	return latUnits, lonUnits, nil
}

// Denormalize is the inverse of the scaling in Normalize.
func (p Params) Denormalize(latUnits, lonUnits uint64) (lat, lon float64) {
	scale := float64(p.Scale)
	return float64(latUnits)/scale - 90, float64(lonUnits)/scale - 180
}

// Linearize folds normalized units into a single address.
func (p Params) Linearize(latUnits, lonUnits uint64) uint64 {
	return latUnits*p.Stride + lonUnits
}

// Delinearize splits an address back into normalized units.
func (p Params) Delinearize(num uint64) (latUnits, lonUnits uint64) {
	return num / p.Stride, num % p.Stride
}

// Address returns the linear address of a geographic coordinate.
func (p Params) Address(lat, lon float64) (uint64, error) {
	latUnits, lonUnits, err := p.Normalize(lat, lon)
	if err != nil {
		return 0, err
	}
	return p.Linearize(latUnits, lonUnits), nil
}

// Coordinate returns the geographic coordinate of a linear address.
func (p Params) Coordinate(num uint64) (lat, lon float64, err error) {
	if num > p.MaxAddress {
		return 0, 0, fmt.Errorf("%w: %d > %d", ErrAddressOutOfRange, num, p.MaxAddress)
	}
	lat, lon = p.Denormalize(p.Delinearize(num))
	return lat, lon, nil
}
