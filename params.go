package geowords

import (
	"fmt"
	"math"
	"math/bits"
)

// Default configuration values.
const (
	// DefaultPrecisionMeters is the linear distance a decoded coordinate
	// must stay within.
	DefaultPrecisionMeters = 100.0

	// DefaultDegreeLengthMeters is the length of one degree of latitude or
	// longitude at the equator.
	DefaultDegreeLengthMeters = 111320.0
)

// maxDecimalPlaces bounds the quantization so that every derived constant
// fits in a uint64. At 7 places the coordinate count is 6.48e18.
const maxDecimalPlaces = 7

// Rounding selects how a real-valued logarithm becomes a decimal place count.
type Rounding uint8

const (
	// RoundHalfEven rounds exact .5 ties to the nearest even integer.
	RoundHalfEven Rounding = iota
	// RoundHalfAwayFromZero rounds exact .5 ties away from zero.
	RoundHalfAwayFromZero
)

func (r Rounding) String() string {
	switch r {
	case RoundHalfEven:
		return "half-even"
	case RoundHalfAwayFromZero:
		return "half-away-from-zero"
	}
	return fmt.Sprintf("Rounding(%d)", uint8(r))
}

func (r Rounding) round(x float64) float64 {
	if r == RoundHalfAwayFromZero {
		return math.Round(x)
	}
	return math.RoundToEven(x)
}

// Params holds every constant derived from the configured precision. A Params
// value is immutable once returned by NewParams.
type Params struct {
	PrecisionMeters    float64
	DegreeLengthMeters float64
	Rounding           Rounding

	DecimalPlaces    int    // Fractional digits kept per axis
	Scale            uint64 // 10^DecimalPlaces
	Stride           uint64 // Longitude units per latitude row: 360*Scale
	TotalCoordinates uint64 // (180*Scale) * (360*Scale)
	VocabSize        int    // floor(cbrt(TotalCoordinates))
	PerPrimary       uint64 // Ordered pairs behind each first word: (V-2)(V-1)
	Capacity         uint64 // Addresses representable by a triple: V*PerPrimary
	MaxAddress       uint64 // Largest linear address of a normalized coordinate
}

// DecimalPlaces returns round(log10(degreeLength / precision)) using the
// given rounding convention.
func DecimalPlaces(precisionMeters, degreeLengthMeters float64, r Rounding) (int, error) {
	if !(precisionMeters > 0) || math.IsInf(precisionMeters, 0) {
		return 0, fmt.Errorf("%w: precision %v meters", ErrInvalidPrecision, precisionMeters)
	}
	if !(degreeLengthMeters > 0) || math.IsInf(degreeLengthMeters, 0) {
		return 0, fmt.Errorf("%w: degree length %v meters", ErrInvalidPrecision, degreeLengthMeters)
	}
	arg := degreeLengthMeters / precisionMeters
	if !(arg > 0) || math.IsInf(arg, 0) {
		return 0, fmt.Errorf("%w: log argument %v", ErrInvalidPrecision, arg)
	}
	dp := r.round(math.Log10(arg))
	if dp < 0 {
		return 0, fmt.Errorf("%w: precision %v meters is coarser than one degree", ErrInvalidPrecision, precisionMeters)
	}
	if dp > maxDecimalPlaces {
		return 0, fmt.Errorf("%w: precision %v meters needs %v decimal places (max %d)",
			ErrInvalidPrecision, precisionMeters, dp, maxDecimalPlaces)
	}
	return int(dp), nil
}

// NewParams derives the codec constants for the requested precision.
func NewParams(precisionMeters, degreeLengthMeters float64, r Rounding) (Params, error) {
	dp, err := DecimalPlaces(precisionMeters, degreeLengthMeters, r)
	if err != nil {
		return Params{}, err
	}
	p, err := paramsForDecimalPlaces(dp)
	if err != nil {
		return Params{}, err
	}
	p.PrecisionMeters = precisionMeters
	p.DegreeLengthMeters = degreeLengthMeters
	p.Rounding = r
	return p, nil
}

func paramsForDecimalPlaces(dp int) (Params, error) {
	scale := pow10(dp)
	latSpan := 180 * scale
	stride := 360 * scale
	total := latSpan * stride

	v := icbrt(total)
	if v < 3 {
		return Params{}, fmt.Errorf("%w: %d coordinates give %d words", ErrVocabularyTooSmall, total, v)
	}
	per := (v - 2) * (v - 1)
	return Params{
		DecimalPlaces:    dp,
		Scale:            scale,
		Stride:           stride,
		TotalCoordinates: total,
		VocabSize:        int(v),
		PerPrimary:       per,
		Capacity:         v * per,
		MaxAddress:       latSpan*stride + stride - 1,
	}, nil
}

// check rejects hand-built parameters whose constants disagree with the ones
// derived for DecimalPlaces.
func (p Params) check() error {
	if p.VocabSize < 3 {
		return fmt.Errorf("%w: vocabSize=%d", ErrVocabularyTooSmall, p.VocabSize)
	}
	if p.DecimalPlaces < 0 || p.DecimalPlaces > maxDecimalPlaces {
		return fmt.Errorf("%w: decimalPlaces=%d outside [0, %d]", ErrInvalidPrecision, p.DecimalPlaces, maxDecimalPlaces)
	}
	want, err := paramsForDecimalPlaces(p.DecimalPlaces)
	if err != nil {
		return err
	}
	if p.Scale != want.Scale || p.Stride != want.Stride || p.TotalCoordinates != want.TotalCoordinates ||
		p.VocabSize != want.VocabSize || p.PerPrimary != want.PerPrimary ||
		p.Capacity != want.Capacity || p.MaxAddress != want.MaxAddress {
		return fmt.Errorf("%w: parameters %s do not match decimalPlaces=%d (%s)", ErrStaleVocabulary, p, p.DecimalPlaces, want)
	}
	return nil
}

// Resolution is the quantization step in degrees, 10^-DecimalPlaces.
func (p Params) Resolution() float64 {
	return 1 / float64(p.Scale)
}

func (p Params) String() string {
	return fmt.Sprintf("decimalPlaces=%d vocabSize=%d capacity=%d rounding=%s",
		p.DecimalPlaces, p.VocabSize, p.Capacity, p.Rounding)
}

func pow10(n int) uint64 {
	r := uint64(1)
	for i := 0; i < n; i++ {
		r *= 10
	}
	return r
}

// icbrt returns floor(cbrt(n)) exactly. The floating estimate is corrected in
// both directions since math.Cbrt can land one off near perfect cubes.
func icbrt(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	r := uint64(math.Cbrt(float64(n)))
	for r > 0 && !cubeAtMost(r, n) {
		r--
	}
	for cubeAtMost(r+1, n) {
		r++
	}
	return r
}

// cubeAtMost reports whether r^3 <= n without overflowing.
func cubeAtMost(r, n uint64) bool {
	hi, sq := bits.Mul64(r, r)
	if hi != 0 {
		return false
	}
	hi, cube := bits.Mul64(sq, r)
	return hi == 0 && cube <= n
}
