package geowords

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	c, err := GetDefaultCodec()
	if err != nil {
		t.Fatalf("Failed to create codec: %v", err)
	}

	// ──────────────────────────────────────────────
	// Round-trip: encode → decode → same place
	// ──────────────────────────────────────────────

	t.Run("KnownPlaces", func(t *testing.T) {
		places := []struct {
			name     string
			lat, lng float64
		}{
			{"London", 51.5007, -0.1246},
			{"Tokyo", 35.6762, 139.6503},
			{"Sydney", -33.8688, 151.2093},
			{"Austin", 30.26715, -97.74306},
			{"Buenos Aires", -34.6037, -58.3816},
			{"Nairobi", -1.2921, 36.8219},
			{"Reykjavik", 64.1466, -21.9426},
			{"McMurdo", -77.8419, 166.6863},
			{"Null Island", 0, 0},
			{"South Pole", -90, 0},
			{"Antimeridian", 0, 180},
		}
		for _, p := range places {
			t.Run(p.name, func(t *testing.T) {
				name, loc, err := c.CheckRoundTrip(p.lat, p.lng)
				if err != nil {
					t.Fatalf("CheckRoundTrip(%v, %v) error: %v", p.lat, p.lng, err)
				}
				if d := loc.DistanceMeters(Location{Lat: p.lat, Lng: p.lng}); d > 100 {
					t.Errorf("%s decodes %.1fm away", name, d)
				}
			})
		}
	})

	// ──────────────────────────────────────────────
	// Random sample over the whole globe
	// ──────────────────────────────────────────────

	t.Run("Random", func(t *testing.T) {
		rep, err := c.RoundTrip(5000, rand.New(rand.NewPCG(42, 1024)))
		if err != nil {
			t.Fatalf("RoundTrip() error: %v", err)
		}
		if rep.Samples+rep.Unaddressable != 5000 {
			t.Errorf("report covers %d samples, want 5000", rep.Samples+rep.Unaddressable)
		}
		if rep.Samples < 4950 {
			t.Errorf("only %d of 5000 samples addressable", rep.Samples)
		}
		res := c.Params().Resolution()
		if rep.MaxLatError >= res || rep.MaxLngError >= res {
			t.Errorf("max error (%v, %v) >= %v", rep.MaxLatError, rep.MaxLngError, res)
		}
		if rep.MaxErrorMeters > 100 {
			t.Errorf("max error %.1fm, want under 100m", rep.MaxErrorMeters)
		}
	})

	// ──────────────────────────────────────────────
	// Deterministic: same input → same name
	// ──────────────────────────────────────────────

	t.Run("Deterministic", func(t *testing.T) {
		n1, err1 := c.Encode(48.8566, 2.3522)
		n2, err2 := c.Encode(48.8566, 2.3522)
		if err1 != nil || err2 != nil {
			t.Fatalf("Encode errors: %v, %v", err1, err2)
		}
		if n1 != n2 {
			t.Errorf("non-deterministic: %s vs %s", n1, n2)
		}
	})
}

// TestRoundTrip_AllPrecisions checks the precision guarantee for every
// decimal place count the embedded word list can serve.
func TestRoundTrip_AllPrecisions(t *testing.T) {
	for _, precision := range []float64{111320, 10000, 1000, 100} {
		c, err := NewCodec(WithPrecision(precision))
		if err != nil {
			t.Fatalf("NewCodec(%v) error: %v", precision, err)
		}
		rep, err := c.RoundTrip(2000, rand.New(rand.NewPCG(uint64(precision), 7)))
		if err != nil {
			t.Fatalf("dp=%d RoundTrip() error: %v", c.Params().DecimalPlaces, err)
		}
		if rep.Samples == 0 {
			t.Fatalf("dp=%d: no addressable samples", c.Params().DecimalPlaces)
		}
	}
}

// TestRoundTrip_AddressBijection decodes the triple of every address of a
// small vocabulary and re-derives the address.
func TestRoundTrip_AddressBijection(t *testing.T) {
	c, err := NewCodec(WithPrecision(DefaultDegreeLengthMeters), WithWords(strings.NewReader(smallWords(40))))
	if err != nil {
		t.Fatal(err)
	}
	p := c.Params()
	seen := make(map[Name]bool, p.Capacity)
	for num := uint64(0); num < p.Capacity; num++ {
		name, err := c.EncodeAddress(num)
		if err != nil {
			t.Fatalf("EncodeAddress(%d) error: %v", num, err)
		}
		if seen[name] {
			t.Fatalf("EncodeAddress(%d) = %s, already produced", num, name)
		}
		seen[name] = true
		got, err := c.DecodeAddress(name[0], name[1], name[2])
		if err != nil {
			t.Fatalf("DecodeAddress(%s) error: %v", name, err)
		}
		if got != num {
			t.Fatalf("DecodeAddress(EncodeAddress(%d)) = %d", num, got)
		}
	}
	if _, err := c.EncodeAddress(p.Capacity); !errors.Is(err, ErrAddressOutOfRange) {
		t.Errorf("EncodeAddress(capacity) error = %v, want ErrAddressOutOfRange", err)
	}
}

func TestLngDelta(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{10, 10, 0},
		{180, -180, 0},
		{179.9999, -180, 0.0001},
		{-170, 170, 20},
	}
	for _, tt := range tests {
		if got := lngDelta(tt.a, tt.b); abs64(got-tt.want) > 1e-9 {
			t.Errorf("lngDelta(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
