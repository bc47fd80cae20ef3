package geowords

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance caps the edit distance of a suggestion.
const maxSuggestDistance = 2

// maxSuggestions is the number of suggestions attached to a WordError.
const maxSuggestions = 3

// maxSuggestInputLen limits the query length to keep the distance
// computation bounded.
const maxSuggestInputLen = 64

type suggestion struct {
	word string
	idx  int
	dist int
}

// Suggest returns up to limit vocabulary words within a small edit distance of
// w, closest first. Ties keep vocabulary order. It scans the whole
// vocabulary and is meant for error paths, not for decoding.
func (c *Codec) Suggest(w string, limit int) []string {
	if limit <= 0 || w == "" {
		return nil
	}
	if runes := []rune(w); len(runes) > maxSuggestInputLen {
		return nil
	}
	query := strings.ToLower(w)

	var found []suggestion
	for i, cand := range c.vocab.words {
		if abs(len(cand)-len(query)) > maxSuggestDistance {
			continue
		}
		d := levenshtein.ComputeDistance(query, strings.ToLower(cand))
		if d <= maxSuggestDistance {
			found = append(found, suggestion{word: cand, idx: i, dist: d})
		}
	}

	sort.SliceStable(found, func(a, b int) bool {
		if found[a].dist != found[b].dist {
			return found[a].dist < found[b].dist
		}
		return found[a].idx < found[b].idx
	})
	if len(found) > limit {
		found = found[:limit]
	}
	out := make([]string, len(found))
	for i, s := range found {
		out[i] = s.word
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
