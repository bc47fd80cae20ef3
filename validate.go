package geowords

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
)

// validationCoord is a known coordinate used to check a codec end to end.
type validationCoord struct {
	name     string
	lat, lng float64
}

// knownCoords cover both hemispheres, the equator and the antimeridian.
var knownCoords = []validationCoord{
	{"London", 51.5007, -0.1246},
	{"Sydney", -33.8688, 151.2093},
	{"Austin", 30.26715, -97.74306},
	{"Null Island", 0, 0},
	{"South Pole", -90, 0},
	{"Antimeridian west", 0, -180},
	{"Antimeridian east", 0, 180},
	{"Tierra del Fuego", -54.8019, -68.3030},
}

// validationSamples is the size of the random round trip in Validate.
const validationSamples = 2000

// Validate checks a codec: the known coordinates round trip within
// precision, the address boundaries behave, and a seeded random sample round
// trips. Progress lines go to w.
func (c *Codec) Validate(w io.Writer) error {
	p := c.params
	fmt.Fprintf(w, "      Parameters: %s\n", p)
	if c.vocab.Len() != p.VocabSize {
		return fmt.Errorf("vocabulary has %d words, want %d", c.vocab.Len(), p.VocabSize)
	}

	fmt.Fprintf(w, "      Known coordinates: ")
	for _, tc := range knownCoords {
		if _, _, err := c.CheckRoundTrip(tc.lat, tc.lng); err != nil {
			return fmt.Errorf("%s: %w", tc.name, err)
		}
	}
	fmt.Fprintf(w, "%d OK\n", len(knownCoords))

	fmt.Fprintf(w, "      Address bounds: ")
	for _, num := range []uint64{0, p.Capacity - 1} {
		name, err := c.EncodeAddress(num)
		if err != nil {
			return fmt.Errorf("address %d: %w", num, err)
		}
		got, err := c.DecodeAddress(name[0], name[1], name[2])
		if err != nil {
			return fmt.Errorf("address %d: %w", num, err)
		}
		if got != num {
			return fmt.Errorf("address %d decoded as %d", num, got)
		}
	}
	if _, err := c.EncodeAddress(p.Capacity); !errors.Is(err, ErrAddressOutOfRange) {
		return fmt.Errorf("address %d: got %v, want %v", p.Capacity, err, ErrAddressOutOfRange)
	}
	fmt.Fprintf(w, "OK\n")

	fmt.Fprintf(w, "      Random round trip: ")
	rep, err := c.RoundTrip(validationSamples, rand.New(rand.NewPCG(1, 2)))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%d OK, %d unaddressable, max error %.1fm\n", rep.Samples, rep.Unaddressable, rep.MaxErrorMeters)
	return nil
}
