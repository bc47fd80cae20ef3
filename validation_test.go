package geowords

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

// TestValidation runs all validation checks on the default codec.
// This is the same validation used by the update-vocab tool.
func TestValidation(t *testing.T) {
	c, err := GetDefaultCodec()
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := c.Validate(&out); err != nil {
		t.Fatalf("Validation failed: %v\n%s", err, out.String())
	}
	for _, want := range []string{"decimalPlaces=3", "Known coordinates: 8 OK", "Address bounds: OK", "Random round trip:"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("validation output missing %q:\n%s", want, out.String())
		}
	}
}

func TestValidation_SmallVocabulary(t *testing.T) {
	c, err := NewCodec(WithPrecision(DefaultDegreeLengthMeters), WithWords(strings.NewReader(smallWords(40))))
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := c.Validate(&out); err != nil {
		t.Fatalf("Validation failed: %v\n%s", err, out.String())
	}
}

func TestRegenerateSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geowords-cache", "vocab.gob")

	c, err := RegenerateSnapshot(path, WithPrecision(1000))
	if err != nil {
		t.Fatalf("RegenerateSnapshot() error: %v", err)
	}
	if c.Params().VocabSize != 865 {
		t.Fatalf("VocabSize = %d, want 865", c.Params().VocabSize)
	}

	var out bytes.Buffer
	if err := ValidateSnapshot(path, &out, WithPrecision(1000)); err != nil {
		t.Fatalf("ValidateSnapshot() error: %v\n%s", err, out.String())
	}
	if !strings.Contains(out.String(), "(865 words)") {
		t.Errorf("validation output missing word count:\n%s", out.String())
	}

	// The same snapshot cannot serve a different precision.
	if err := ValidateSnapshot(path, &out); !errors.Is(err, ErrStaleVocabulary) {
		t.Errorf("ValidateSnapshot(default precision) error = %v, want ErrStaleVocabulary", err)
	}
}

func TestValidateSnapshot_IgnoresWordSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vocab.gob")
	words := func() Option { return WithWords(strings.NewReader(smallWords(40))) }

	if _, err := RegenerateSnapshot(path, WithPrecision(DefaultDegreeLengthMeters), words()); err != nil {
		t.Fatalf("RegenerateSnapshot() error: %v", err)
	}
	var out bytes.Buffer
	if err := ValidateSnapshot(path, &out, WithPrecision(DefaultDegreeLengthMeters), words()); err != nil {
		t.Fatalf("ValidateSnapshot() error: %v\n%s", err, out.String())
	}

	// With no snapshot on disk the word list must not stand in for it.
	missing := filepath.Join(dir, "missing.gob")
	if err := ValidateSnapshot(missing, &out, WithPrecision(DefaultDegreeLengthMeters), words()); err == nil {
		t.Errorf("ValidateSnapshot(%s) succeeded without a snapshot", missing)
	}
}

func TestRegenerateSnapshot_BadSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.gob")
	_, err := RegenerateSnapshot(path, WithWords(strings.NewReader("only\nthree\nwords\n")))
	if !errors.Is(err, ErrInsufficientVocabulary) {
		t.Errorf("RegenerateSnapshot() error = %v, want ErrInsufficientVocabulary", err)
	}
}
