package geowords

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"embed"
	"encoding/gob"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed geowords-data
var wordData embed.FS

// defaultWordFile is the word list shipped with the package. A plain or
// bzip2-compressed file at the same path on disk takes precedence.
const defaultWordFile = "geowords-data/words.txt"

// Vocabulary is an ordered, duplicate-free word list tagged with the
// parameters it was built for. Word order is significant: positions are the
// combinatorial identifiers used by the codec. Safe for concurrent use.
type Vocabulary struct {
	words         []string
	index         map[string]int
	decimalPlaces int
	rounding      Rounding
	source        string
}

// vocabularyGob is the on-disk snapshot form of a Vocabulary.
type vocabularyGob struct {
	DecimalPlaces int
	VocabSize     int
	Rounding      Rounding
	Source        string
	Words         []string
}

// LoadVocabulary reads the first p.VocabSize lines of r. Line terminators are
// stripped and nothing else is normalized. Every entry must be non-empty and
// distinct from the ones before it.
func LoadVocabulary(r io.Reader, p Params) (*Vocabulary, error) {
	n := p.VocabSize
	words := make([]string, 0, n)
	index := make(map[string]int, n)

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanLines)
	line := 0
	for len(words) < n && scanner.Scan() {
		line++
		w := scanner.Text()
		if w == "" {
			return nil, fmt.Errorf("%w: line %d is empty", ErrInsufficientVocabulary, line)
		}
		if prev, ok := index[w]; ok {
			return nil, fmt.Errorf("%w: line %d repeats %q from line %d", ErrInsufficientVocabulary, line, w, prev+1)
		}
		index[w] = len(words)
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading words: %w", err)
	}
	if len(words) < n {
		return nil, fmt.Errorf("%w: got %d words, need %d", ErrInsufficientVocabulary, len(words), n)
	}
	return &Vocabulary{
		words:         words,
		index:         index,
		decimalPlaces: p.DecimalPlaces,
		rounding:      p.Rounding,
	}, nil
}

// LoadVocabularyFile loads a word list from path. Files ending in .bz2 are
// decompressed. If the file does not exist on disk the embedded copy at the
// same path is used.
func LoadVocabularyFile(path string, p Params) (*Vocabulary, error) {
	r, cleanup, err := openOptionallyBzippedFile(path)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	v, err := LoadVocabulary(r, p)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	v.source = path
	return v, nil
}

// Len returns the number of words.
func (v *Vocabulary) Len() int { return len(v.words) }

// Word returns the word at position i.
func (v *Vocabulary) Word(i int) string { return v.words[i] }

// Index returns the position of w, or -1 if w is not in the vocabulary.
func (v *Vocabulary) Index(w string) int {
	if i, ok := v.index[w]; ok {
		return i
	}
	return -1
}

// Words returns a copy of the word list.
func (v *Vocabulary) Words() []string {
	return append([]string(nil), v.words...)
}

// DecimalPlaces returns the decimal place count the vocabulary was sized for.
func (v *Vocabulary) DecimalPlaces() int { return v.decimalPlaces }

// Source names where the words came from, empty for readers.
func (v *Vocabulary) Source() string { return v.source }

// compatible reports whether v was built for p.
func (v *Vocabulary) compatible(p Params) error {
	if v.decimalPlaces != p.DecimalPlaces || len(v.words) != p.VocabSize {
		return fmt.Errorf("%w: built for decimalPlaces=%d vocabSize=%d, codec needs decimalPlaces=%d vocabSize=%d",
			ErrStaleVocabulary, v.decimalPlaces, len(v.words), p.DecimalPlaces, p.VocabSize)
	}
	return nil
}

// Store writes a tagged gob snapshot of the vocabulary to path.
func (v *Vocabulary) Store(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating snapshot directory: %w", err)
		}
	}

	b := new(bytes.Buffer)
	err := gob.NewEncoder(b).Encode(vocabularyGob{
		DecimalPlaces: v.decimalPlaces,
		VocabSize:     len(v.words),
		Rounding:      v.rounding,
		Source:        v.source,
		Words:         v.words,
	})
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := os.WriteFile(path, b.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing snapshot %s: %w", path, err)
	}
	return nil
}

// LoadVocabularySnapshot reads a snapshot written by Store. The snapshot's
// tag must match p.
func LoadVocabularySnapshot(path string, p Params) (*Vocabulary, error) {
	fh, cleanup, err := openOptionallyBzippedFile(path)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	var snap vocabularyGob
	if err := gob.NewDecoder(fh).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot %s: %w", path, err)
	}
	if snap.VocabSize != len(snap.Words) {
		return nil, fmt.Errorf("%w: snapshot %s declares %d words, holds %d",
			ErrInsufficientVocabulary, path, snap.VocabSize, len(snap.Words))
	}

	index := make(map[string]int, len(snap.Words))
	for i, w := range snap.Words {
		if w == "" {
			return nil, fmt.Errorf("%w: snapshot %s entry %d is empty", ErrInsufficientVocabulary, path, i)
		}
		if _, ok := index[w]; ok {
			return nil, fmt.Errorf("%w: snapshot %s repeats %q", ErrInsufficientVocabulary, path, w)
		}
		index[w] = i
	}
	v := &Vocabulary{
		words:         snap.Words,
		index:         index,
		decimalPlaces: snap.DecimalPlaces,
		rounding:      snap.Rounding,
		source:        snap.Source,
	}
	if err := v.compatible(p); err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", path, err)
	}
	return v, nil
}

// openOptionallyCachedFile prefers the filesystem so a regenerated word list
// can override the embedded one.
func openOptionallyCachedFile(file string) (fs.File, error) {
	if fh, err := os.Open(file); err == nil {
		return fh, nil
	}
	return wordData.Open(filepath.ToSlash(filepath.Clean(file)))
}

func openOptionallyBzippedFile(file string) (io.Reader, func() error, error) {
	if strings.HasSuffix(file, ".bz2") {
		fh, err := openOptionallyCachedFile(file)
		if err != nil {
			return nil, nil, fmt.Errorf("opening %s: %w", file, err)
		}
		return bzip2.NewReader(fh), fh.Close, nil
	}

	fh, err := openOptionallyCachedFile(file + ".bz2")
	if err != nil {
		fh, err = openOptionallyCachedFile(file)
		if err != nil {
			return nil, nil, fmt.Errorf("opening %s: %w", file, err)
		}
		return fh, fh.Close, nil
	}
	return bzip2.NewReader(fh), fh.Close, nil
}
