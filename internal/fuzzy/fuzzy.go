// Package fuzzy builds weighted multi-field fuzzy-match indexes.
//
// The character-level matching is delegated to github.com/sahilm/fuzzy;
// this package layers field weighting, score normalisation, and
// thresholding on top. Scores follow the convention that lower is more
// relevant: 0 means an exact field match and values approach 1 as the
// match weakens. Matches scoring above the similarity threshold are
// dropped.
package fuzzy

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Tuning constants shared by every index.
const (
	// DefaultThreshold is the similarity cut-off: 0 keeps exact matches
	// only, 1 keeps anything the matcher accepts.
	DefaultThreshold = 0.4
	// MinMatchLength is the minimum query length (in runes) that can
	// produce a match.
	MinMatchLength = 2
)

// Field is one weighted, named text field of an indexed document.
// A higher weight pulls the effective score of a match on this field
// closer to 0.
type Field struct {
	Name   string
	Text   string
	Weight float64
}

// Match is one index hit. Doc is the position of the document in the
// slice the index was built from.
type Match struct {
	Doc    int
	Score  float64
	Fields []string
}

// Index is an immutable fuzzy-match index over a slice of multi-field
// documents. Build a new one whenever the underlying collection changes;
// there is no incremental update path.
type Index struct {
	docs      [][]Field
	threshold float64
}

// NewIndex builds an index over docs, one []Field per document, using
// [DefaultThreshold].
func NewIndex(docs [][]Field) *Index {
	return &Index{docs: docs, threshold: DefaultThreshold}
}

// Len returns the number of indexed documents.
func (ix *Index) Len() int { return len(ix.docs) }

// Search matches query against every document and returns hits whose best
// field score is within the threshold, in document order. Matching is
// case-insensitive and position-independent. The caller is responsible
// for ranking across indexes.
func (ix *Index) Search(query string) []Match {
	query = strings.ToLower(strings.TrimSpace(query))
	if len([]rune(query)) < MinMatchLength {
		return nil
	}

	// The best score the matcher can award this query: matching it
	// against itself. Used to normalise raw matcher scores into [0, 1].
	self := rawScore(query, query)
	if self <= 0 {
		return nil
	}

	var out []Match
	for i, fields := range ix.docs {
		best := 2.0 // above any valid score
		var matched []string
		for _, f := range fields {
			if f.Text == "" {
				continue
			}
			score, ok := ix.fieldScore(query, f, self)
			if !ok {
				continue
			}
			matched = append(matched, f.Name)
			if score < best {
				best = score
			}
		}
		if len(matched) > 0 {
			out = append(out, Match{Doc: i, Score: best, Fields: matched})
		}
	}
	return out
}

// fieldScore normalises one field match. Exact equality short-circuits to
// 0. Otherwise the raw matcher score is scaled against the query's
// self-match score, inverted so that lower is better, and weighted so
// that heavier fields rank better at equal raw quality.
func (ix *Index) fieldScore(query string, f Field, self int) (float64, bool) {
	text := strings.ToLower(f.Text)
	if text == query {
		return 0, true
	}

	raw := rawScore(query, text)
	if raw < 0 {
		return 0, false
	}

	norm := 1 - float64(raw)/float64(self)
	if norm < 0 {
		norm = 0
	}
	if norm > 1 {
		norm = 1
	}

	score := norm * (1 - f.Weight)
	if score > ix.threshold {
		return 0, false
	}
	return score, true
}

// rawScore runs the underlying matcher for a single pattern/text pair.
// Returns -1 when the pattern does not match at all.
func rawScore(pattern, text string) int {
	matches := fuzzy.Find(pattern, []string{text})
	if len(matches) == 0 {
		return -1
	}
	return matches[0].Score
}
