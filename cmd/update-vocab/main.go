// Command update-vocab regenerates the tagged geowords vocabulary snapshot
// from a raw word list and validates it.
//
// Usage:
//
//	go run ./cmd/update-vocab [snapshot-path]
//
// The word list and precision come from GEOWORDS_WORD_FILE and
// GEOWORDS_PRECISION_METERS; the embedded list is used when no file is set.
// The snapshot defaults to geowords-cache/vocab.gob.
package main

import (
	"fmt"
	"os"

	"github.com/andreiashu/geowords"
	"github.com/andreiashu/geowords/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	path := geowords.DefaultSnapshotFile
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	// The snapshot replaces the word file, so it must not be read back here.
	cfg.SnapshotFile = ""
	logger := cfg.Logger()
	opts, err := cfg.Options(logger)
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	fmt.Println("Regenerating geowords vocabulary snapshot...")
	c, err := geowords.RegenerateSnapshot(path, opts...)
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	logger.Info("snapshot written", "path", path, "vocab_size", c.Params().VocabSize)

	fmt.Println("Validating snapshot...")
	if err := geowords.ValidateSnapshot(path, os.Stdout, opts...); err != nil {
		config.Exitf("Error: validation failed: %v", err)
	}
	fmt.Println("Snapshot regenerated successfully.")
}
