// Package geowords gives every point on the Earth's surface, quantized to a
// fixed precision, a reversible three-word name.
//
// A coordinate is shifted and scaled into integer units, folded into a single
// linear address, and that address is ranked into an ordered triple of
// distinct words from a fixed vocabulary. Decoding runs the same steps in
// reverse.
//
//	c, err := geowords.NewCodec()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	name, _ := c.Encode(51.5007, -0.1246)
//	loc, _ := c.DecodeName(name)
package geowords

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/andreiashu/geowords/internal/logging"
)

// Config contains configuration options for Codec initialization.
type Config struct {
	PrecisionMeters    float64   // Required linear precision (default: 100)
	DegreeLengthMeters float64   // Length of one degree at the equator (default: 111320)
	Rounding           Rounding  // Convention for deriving decimal places (default: half-even)
	WordFile           string    // Word list path (default: embedded list)
	SnapshotFile       string    // Tagged gob snapshot; takes precedence over WordFile
	Words              io.Reader // Word source; takes precedence over both files
	Logger             *slog.Logger
}

// Option is a functional option for configuring a Codec.
type Option func(*Config)

// WithPrecision sets the required precision in meters.
func WithPrecision(meters float64) Option {
	return func(c *Config) {
		c.PrecisionMeters = meters
	}
}

// WithDegreeLength sets the length of one degree at the equator in meters.
func WithDegreeLength(meters float64) Option {
	return func(c *Config) {
		c.DegreeLengthMeters = meters
	}
}

// WithRounding sets the rounding convention used for decimal places.
func WithRounding(r Rounding) Option {
	return func(c *Config) {
		c.Rounding = r
	}
}

// WithWordFile reads the vocabulary from a newline-delimited file.
func WithWordFile(path string) Option {
	return func(c *Config) {
		c.WordFile = path
	}
}

// WithSnapshot reads the vocabulary from a snapshot written by Vocabulary.Store.
func WithSnapshot(path string) Option {
	return func(c *Config) {
		c.SnapshotFile = path
	}
}

// WithWords reads the vocabulary from r.
func WithWords(r io.Reader) Option {
	return func(c *Config) {
		c.Words = r
	}
}

// WithLogger sets the logger used during initialization.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

func defaultConfig() *Config {
	return &Config{
		PrecisionMeters:    DefaultPrecisionMeters,
		DegreeLengthMeters: DefaultDegreeLengthMeters,
		Rounding:           RoundHalfEven,
		WordFile:           defaultWordFile,
		Logger:             logging.Noop(),
	}
}

// Codec converts between coordinates and three-word names. All state is fixed
// at construction, so a Codec is safe for concurrent use.
type Codec struct {
	params Params
	vocab  *Vocabulary
}

// Singleton pattern for the default Codec.
var (
	defaultCodec     *Codec
	defaultCodecOnce sync.Once
	defaultCodecErr  error
)

// GetDefaultCodec returns a shared Codec built with default options,
// initializing it on first call.
func GetDefaultCodec() (*Codec, error) {
	defaultCodecOnce.Do(func() {
		defaultCodec, defaultCodecErr = NewCodec()
	})
	return defaultCodec, defaultCodecErr
}

// NewCodec derives the precision parameters, loads a vocabulary of the
// matching size and returns a ready Codec. Any failure leaves no Codec.
func NewCodec(opts ...Option) (*Codec, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Noop()
	}

	p, err := NewParams(cfg.PrecisionMeters, cfg.DegreeLengthMeters, cfg.Rounding)
	if err != nil {
		return nil, err
	}

	var v *Vocabulary
	switch {
	case cfg.Words != nil:
		v, err = LoadVocabulary(cfg.Words, p)
	case cfg.SnapshotFile != "":
		v, err = LoadVocabularySnapshot(cfg.SnapshotFile, p)
	default:
		v, err = LoadVocabularyFile(cfg.WordFile, p)
	}
	if err != nil {
		return nil, fmt.Errorf("loading vocabulary: %w", err)
	}

	c, err := NewCodecWithVocabulary(p, v)
	if err != nil {
		return nil, err
	}
	cfg.Logger.Debug("codec ready",
		slog.Int("decimal_places", p.DecimalPlaces),
		slog.Int("vocab_size", p.VocabSize),
		slog.Uint64("capacity", p.Capacity),
		slog.String("rounding", p.Rounding.String()),
		slog.String("source", v.Source()),
	)
	return c, nil
}

// NewCodecWithVocabulary pairs already derived parameters with a vocabulary.
// The vocabulary must have been built for the same parameters, and p must
// hold the constants NewParams derives for its DecimalPlaces.
func NewCodecWithVocabulary(p Params, v *Vocabulary) (*Codec, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil vocabulary", ErrInsufficientVocabulary)
	}
	if err := p.check(); err != nil {
		return nil, err
	}
	if err := v.compatible(p); err != nil {
		return nil, err
	}
	return &Codec{params: p, vocab: v}, nil
}

// Params returns the constants the codec was built with.
func (c *Codec) Params() Params { return c.params }

// Vocabulary returns the codec's word list.
func (c *Codec) Vocabulary() *Vocabulary { return c.vocab }

// Encode returns the three-word name of (lat, lon).
func (c *Codec) Encode(lat, lon float64) (Name, error) {
	num, err := c.params.Address(lat, lon)
	if err != nil {
		return Name{}, err
	}
	name, err := c.EncodeAddress(num)
	if err != nil {
		return Name{}, fmt.Errorf("encoding (%v, %v): %w", lat, lon, err)
	}
	return name, nil
}

// Decode returns the quantized coordinate named by three words.
func (c *Codec) Decode(w1, w2, w3 string) (Location, error) {
	num, err := c.DecodeAddress(w1, w2, w3)
	if err != nil {
		return Location{}, err
	}
	lat, lon, err := c.params.Coordinate(num)
	if err != nil {
		return Location{}, err
	}
	return Location{Lat: lat, Lng: lon}, nil
}

// DecodeName is Decode for a Name value.
func (c *Codec) DecodeName(n Name) (Location, error) {
	return c.Decode(n[0], n[1], n[2])
}

// EncodeAddress maps a linear address to its word triple.
func (c *Codec) EncodeAddress(num uint64) (Name, error) {
	i, j, k, err := unrankTriple(num, c.vocab.Len())
	if err != nil {
		return Name{}, err
	}
	return Name{c.vocab.Word(i), c.vocab.Word(j), c.vocab.Word(k)}, nil
}

// DecodeAddress maps a word triple back to its linear address.
func (c *Codec) DecodeAddress(w1, w2, w3 string) (uint64, error) {
	i := c.vocab.Index(w1)
	if i < 0 {
		return 0, c.wordError(w1, 1, false)
	}
	j := c.vocab.Index(w2)
	if j < 0 {
		return 0, c.wordError(w2, 2, false)
	}
	if j == i {
		return 0, c.wordError(w2, 2, true)
	}
	k := c.vocab.Index(w3)
	if k < 0 {
		return 0, c.wordError(w3, 3, false)
	}
	if k == i || k == j {
		return 0, c.wordError(w3, 3, true)
	}
	return rankTriple(i, j, k, c.vocab.Len()), nil
}

func (c *Codec) wordError(w string, pos int, dup bool) error {
	e := &WordError{Word: w, Position: pos, Duplicate: dup}
	if !dup {
		e.Suggestions = c.Suggest(w, maxSuggestions)
	}
	return e
}
