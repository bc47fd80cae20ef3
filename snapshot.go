package geowords

import (
	"fmt"
	"io"
)

// DefaultSnapshotFile is where update-vocab writes the tagged vocabulary.
const DefaultSnapshotFile = "geowords-cache/vocab.gob"

// RegenerateSnapshot loads the word list selected by opts, writes a tagged
// snapshot of it to path and returns the codec built from it.
//
// After running, the snapshot can be compressed with bzip2; readers accept
// both forms:
//
//	bzip2 -f geowords-cache/vocab.gob
func RegenerateSnapshot(path string, opts ...Option) (*Codec, error) {
	c, err := NewCodec(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load vocabulary: %w", err)
	}
	if err := c.vocab.Store(path); err != nil {
		return nil, fmt.Errorf("failed to store snapshot: %w", err)
	}
	return c, nil
}

// ValidateSnapshot reloads the snapshot at path for the parameters selected
// by opts and runs Validate against it. A word source set in opts is
// ignored; the codec always reads the snapshot.
func ValidateSnapshot(path string, w io.Writer, opts ...Option) error {
	c, err := NewCodec(append(opts[:len(opts):len(opts)], WithWords(nil), WithSnapshot(path))...)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}
	fmt.Fprintf(w, "      Snapshot: %s (%d words)\n", path, c.vocab.Len())
	return c.Validate(w)
}
