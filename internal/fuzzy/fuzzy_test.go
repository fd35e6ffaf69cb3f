package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildIndex(docs ...[]Field) *Index {
	return NewIndex(docs)
}

func TestSearchExactMatch(t *testing.T) {
	ix := buildIndex(
		[]Field{{Name: "title", Text: "report", Weight: 0.4}},
	)

	matches := ix.Search("report")
	require.Len(t, matches, 1)
	assert.Equal(t, 0, matches[0].Doc)
	assert.Equal(t, 0.0, matches[0].Score)
	assert.Equal(t, []string{"title"}, matches[0].Fields)
}

func TestSearchCaseInsensitive(t *testing.T) {
	ix := buildIndex(
		[]Field{{Name: "title", Text: "Quarterly Report", Weight: 0.4}},
	)

	matches := ix.Search("QUARTERLY REPORT")
	require.Len(t, matches, 1)
	assert.Equal(t, 0.0, matches[0].Score)
}

func TestSearchMinLength(t *testing.T) {
	ix := buildIndex(
		[]Field{{Name: "title", Text: "report", Weight: 0.4}},
	)

	assert.Nil(t, ix.Search("r"))
	assert.Nil(t, ix.Search(""))
	assert.Nil(t, ix.Search("   "))
}

func TestSearchNoMatch(t *testing.T) {
	ix := buildIndex(
		[]Field{{Name: "title", Text: "report", Weight: 0.4}},
	)

	assert.Empty(t, ix.Search("xyzzy"))
}

func TestSearchSkipsEmptyFields(t *testing.T) {
	ix := buildIndex(
		[]Field{
			{Name: "title", Text: "", Weight: 0.4},
			{Name: "description", Text: "", Weight: 0.3},
		},
	)

	assert.Empty(t, ix.Search("report"))
}

func TestSearchScoresWithinThreshold(t *testing.T) {
	ix := buildIndex(
		[]Field{{Name: "title", Text: "draft quarterly report", Weight: 0.4}},
		[]Field{{Name: "title", Text: "weekly review", Weight: 0.4}},
		[]Field{{Name: "title", Text: "report assessment", Weight: 0.4}},
	)

	for _, m := range ix.Search("report") {
		assert.GreaterOrEqual(t, m.Score, 0.0)
		assert.LessOrEqual(t, m.Score, DefaultThreshold)
	}
}

func TestSearchBestFieldWins(t *testing.T) {
	// Exact title match must pin the doc score at 0 regardless of how the
	// other fields score.
	ix := buildIndex(
		[]Field{
			{Name: "title", Text: "report", Weight: 0.4},
			{Name: "description", Text: "the annual report covers everything", Weight: 0.3},
		},
	)

	matches := ix.Search("report")
	require.Len(t, matches, 1)
	assert.Equal(t, 0.0, matches[0].Score)
	assert.Contains(t, matches[0].Fields, "title")
}

func TestSearchHeavierFieldNeverRanksWorse(t *testing.T) {
	// Same text, matched fuzzily, in a heavy field vs a light field. The
	// heavy field either scores better or the light one is dropped by the
	// threshold; the heavy one must survive whenever the light one does.
	ix := buildIndex(
		[]Field{{Name: "title", Text: "report", Weight: 0.4}},
		[]Field{{Name: "tags", Text: "report", Weight: 0.1}},
	)

	matches := ix.Search("rpt")
	byDoc := make(map[int]Match)
	for _, m := range matches {
		byDoc[m.Doc] = m
	}

	light, lightOK := byDoc[1]
	if lightOK {
		heavy, heavyOK := byDoc[0]
		require.True(t, heavyOK, "light field matched but heavy field dropped")
		assert.LessOrEqual(t, heavy.Score, light.Score)
	}
}

func TestSearchMultipleDocs(t *testing.T) {
	ix := buildIndex(
		[]Field{{Name: "title", Text: "buy groceries", Weight: 0.4}},
		[]Field{{Name: "title", Text: "groceries list", Weight: 0.4}},
		[]Field{{Name: "title", Text: "call dentist", Weight: 0.4}},
	)

	matches := ix.Search("groceries")
	require.Len(t, matches, 2)
	docs := []int{matches[0].Doc, matches[1].Doc}
	assert.ElementsMatch(t, []int{0, 1}, docs)
}

func TestIndexLen(t *testing.T) {
	ix := buildIndex(
		[]Field{{Name: "title", Text: "a thing", Weight: 0.4}},
		[]Field{{Name: "title", Text: "another", Weight: 0.4}},
	)
	assert.Equal(t, 2, ix.Len())
	assert.Equal(t, 0, NewIndex(nil).Len())
}
