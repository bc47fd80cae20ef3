package geowords

import (
	"context"
	"errors"
	"testing"
)

func TestEncodeDecodeBatch(t *testing.T) {
	c, err := GetDefaultCodec()
	if err != nil {
		t.Fatal(err)
	}

	var locs []Location
	for lat := -89.0; lat < 89; lat += 0.37 {
		for lon := -179.0; lon < 180; lon += 11.3 {
			locs = append(locs, Location{Lat: lat, Lng: lon})
		}
	}
	if len(locs) <= batchChunk {
		t.Fatalf("want more than one chunk, got %d items", len(locs))
	}

	names, err := c.EncodeBatch(context.Background(), locs)
	if err != nil {
		t.Fatalf("EncodeBatch() error: %v", err)
	}
	if len(names) != len(locs) {
		t.Fatalf("EncodeBatch() returned %d names, want %d", len(names), len(locs))
	}
	for i, l := range locs {
		want, err := c.Encode(l.Lat, l.Lng)
		if err != nil {
			t.Fatal(err)
		}
		if names[i] != want {
			t.Fatalf("EncodeBatch()[%d] = %s, want %s", i, names[i], want)
		}
	}

	decoded, err := c.DecodeBatch(context.Background(), names)
	if err != nil {
		t.Fatalf("DecodeBatch() error: %v", err)
	}
	res := c.Params().Resolution()
	for i, l := range locs {
		if d := decoded[i]; abs64(d.Lat-l.Lat) >= res || lngDelta(d.Lng, l.Lng) >= res {
			t.Fatalf("DecodeBatch()[%d] = %+v, want within %v of %+v", i, d, res, l)
		}
	}
}

func TestEncodeBatch_FailsOnBadItem(t *testing.T) {
	c, err := GetDefaultCodec()
	if err != nil {
		t.Fatal(err)
	}
	locs := []Location{{Lat: 1, Lng: 1}, {Lat: 2, Lng: 2}, {Lat: 95, Lng: 0}}
	if _, err := c.EncodeBatch(context.Background(), locs); !errors.Is(err, ErrCoordinateOutOfRange) {
		t.Errorf("EncodeBatch() error = %v, want ErrCoordinateOutOfRange", err)
	}

	names := []Name{{"hogi", "dilu", "peta"}, {"hogi", "hogi", "peta"}}
	if _, err := c.DecodeBatch(context.Background(), names); !errors.Is(err, ErrWordNotFound) {
		t.Errorf("DecodeBatch() error = %v, want ErrWordNotFound", err)
	}
}

func TestEncodeBatch_Canceled(t *testing.T) {
	c, err := GetDefaultCodec()
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.EncodeBatch(ctx, []Location{{Lat: 1, Lng: 1}}); !errors.Is(err, context.Canceled) {
		t.Errorf("EncodeBatch(canceled) error = %v, want context.Canceled", err)
	}
}

func TestEncodeBatch_Empty(t *testing.T) {
	c, err := GetDefaultCodec()
	if err != nil {
		t.Fatal(err)
	}
	names, err := c.EncodeBatch(context.Background(), nil)
	if err != nil || len(names) != 0 {
		t.Errorf("EncodeBatch(nil) = %v, %v", names, err)
	}
}

func abs64(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
