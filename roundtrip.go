package geowords

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

// RoundTripReport summarizes a randomized encode/decode run.
type RoundTripReport struct {
	Samples        int     // Coordinates checked
	Unaddressable  int     // Coordinates past the vocabulary's capacity
	MaxLatError    float64 // Largest latitude difference in degrees
	MaxLngError    float64 // Largest longitude difference in degrees
	MaxErrorMeters float64 // Largest great-circle distance in meters
}

// RoundTrip encodes and decodes n uniformly random coordinates drawn from rng
// and checks that each decoded axis is within 10^-DecimalPlaces of the
// original. Coordinates the vocabulary cannot address are counted, not
// failed.
func (c *Codec) RoundTrip(n int, rng *rand.Rand) (RoundTripReport, error) {
	var rep RoundTripReport
	for range n {
		lat := rng.Float64()*180 - 90
		lon := rng.Float64()*360 - 180
		if err := c.checkRoundTrip(lat, lon, &rep); err != nil {
			return rep, err
		}
	}
	return rep, nil
}

// CheckRoundTrip runs a single coordinate through Encode and Decode.
func (c *Codec) CheckRoundTrip(lat, lon float64) (Name, Location, error) {
	name, err := c.Encode(lat, lon)
	if err != nil {
		return Name{}, Location{}, err
	}
	loc, err := c.DecodeName(name)
	if err != nil {
		return name, Location{}, fmt.Errorf("decoding %s: %w", name, err)
	}
	res := c.params.Resolution()
	if dLat, dLng := math.Abs(lat-loc.Lat), lngDelta(lon, loc.Lng); dLat >= res || dLng >= res {
		return name, loc, fmt.Errorf("round trip (%v, %v) -> %s -> (%v, %v) exceeds %v degrees",
			lat, lon, name, loc.Lat, loc.Lng, res)
	}
	return name, loc, nil
}

func (c *Codec) checkRoundTrip(lat, lon float64, rep *RoundTripReport) error {
	_, loc, err := c.CheckRoundTrip(lat, lon)
	if errors.Is(err, ErrAddressOutOfRange) {
		rep.Unaddressable++
		return nil
	}
	if err != nil {
		return err
	}
	rep.Samples++
	rep.MaxLatError = math.Max(rep.MaxLatError, math.Abs(lat-loc.Lat))
	rep.MaxLngError = math.Max(rep.MaxLngError, lngDelta(lon, loc.Lng))
	rep.MaxErrorMeters = math.Max(rep.MaxErrorMeters, Location{Lat: lat, Lng: lon}.DistanceMeters(loc))
	return nil
}

// lngDelta is the absolute difference between two longitudes on the circle,
// so +180 and -180 compare equal.
func lngDelta(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	return math.Min(d, 360-d)
}
