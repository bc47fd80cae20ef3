package geowords

import (
	"fmt"
	"math"
	"strings"

	gh "github.com/TomiHiltunen/geohash-golang"
	"github.com/golang/geo/s2"
)

// earthRadiusMeters is the mean radius used to turn s2 angles into meters.
const earthRadiusMeters = 6371010.0

// defaultGeohashPrecision gives cells of roughly 153m x 153m, the closest
// geohash length to the default 100m precision.
const defaultGeohashPrecision = 7

const geohashAlphabet = "0123456789bcdefghjkmnpqrstuvwxyz"

// Name is an ordered triple of distinct vocabulary words.
type Name [3]string

// String renders the name as dot-separated words.
func (n Name) String() string {
	return n[0] + "." + n[1] + "." + n[2]
}

// ParseName splits a name written with dots, slashes, commas or whitespace
// between its words.
func ParseName(s string) (Name, error) {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case '.', '/', ',', ' ', '\t', '\n', '\r':
			return true
		}
		return false
	})
	if len(parts) != 3 {
		return Name{}, fmt.Errorf("%w: %q has %d words, want 3", ErrWordNotFound, s, len(parts))
	}
	return Name{parts[0], parts[1], parts[2]}, nil
}

// Location is a decoded geographic coordinate in degrees.
type Location struct {
	Lat float64
	Lng float64
}

// LatLng converts the location to an s2 point.
func (l Location) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(l.Lat, l.Lng)
}

// IsValid reports whether the location lies within [-90, 90] x [-180, 180].
func (l Location) IsValid() bool {
	if math.IsNaN(l.Lat) || math.IsNaN(l.Lng) {
		return false
	}
	return l.LatLng().IsValid()
}

// DistanceMeters returns the great-circle distance to o.
func (l Location) DistanceMeters(o Location) float64 {
	return l.LatLng().Distance(o.LatLng()).Radians() * earthRadiusMeters
}

// CellID returns the s2 cell containing the location at the given level.
func (l Location) CellID(level int) s2.CellID {
	return s2.CellIDFromLatLng(l.LatLng()).Parent(level)
}

// Geohash returns the geohash of the location at a length suited to the
// default precision.
func (l Location) Geohash() string {
	return gh.EncodeWithPrecision(l.Lat, l.Lng, defaultGeohashPrecision)
}

// GeohashWithPrecision returns the geohash of the location with the given
// number of characters.
func (l Location) GeohashWithPrecision(chars int) string {
	return gh.EncodeWithPrecision(l.Lat, l.Lng, chars)
}

// EncodeGeohash names the centre of a geohash cell.
func (c *Codec) EncodeGeohash(hash string) (Name, error) {
	hash = strings.ToLower(hash)
	if hash == "" || strings.Trim(hash, geohashAlphabet) != "" {
		return Name{}, fmt.Errorf("%w: invalid geohash %q", ErrCoordinateOutOfRange, hash)
	}
	bbox := gh.Decode(hash)
	if bbox == nil {
		return Name{}, fmt.Errorf("%w: invalid geohash %q", ErrCoordinateOutOfRange, hash)
	}
	center := bbox.Center()
	return c.Encode(center.Lat(), center.Lng())
}
