package facet

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpl-au/sift/internal/entity"
)

func testActions() []entity.Action {
	return []entity.Action{
		{ID: "a1", ContextID: "ctx-office", Priority: entity.PriorityHigh, Status: entity.StatusNext, Tags: []string{"work", "urgent"}},
		{ID: "a2", ContextID: "ctx-office", Priority: entity.PriorityLow, Status: entity.StatusNext, Tags: []string{"work"}},
		{ID: "a3", ContextID: "ctx-home", Priority: entity.PriorityHigh, Status: entity.StatusCompleted, Tags: []string{"home"}},
		{ID: "a4", Priority: entity.PriorityMedium, Status: entity.StatusWaiting},
	}
}

func testContexts() []entity.Context {
	return []entity.Context{
		{ID: "ctx-office", Name: "Office"},
		{ID: "ctx-home", Name: "Home"},
		{ID: "ctx-errands", Name: "Errands"},
	}
}

func groupByDimension(t *testing.T, groups []Group, dim string) Group {
	t.Helper()
	for _, g := range groups {
		if g.Dimension == dim {
			return g
		}
	}
	t.Fatalf("no group %q", dim)
	return Group{}
}

func TestGenerateGroups(t *testing.T) {
	groups := Generate(testActions(), testContexts())
	require.Len(t, groups, 5)

	dims := make([]string, len(groups))
	for i, g := range groups {
		dims[i] = g.Dimension
	}
	assert.Equal(t, []string{"contexts", "priorities", "statuses", "tags", "dates"}, dims)
}

func TestContextCounts(t *testing.T) {
	g := groupByDimension(t, Generate(testActions(), testContexts()), "contexts")
	require.Len(t, g.Options, 3)
	assert.True(t, g.Counted)

	counts := make(map[string]int)
	for _, o := range g.Options {
		counts[o.ID] = o.Count
	}
	assert.Equal(t, 2, counts["ctx-office"])
	assert.Equal(t, 1, counts["ctx-home"])
	assert.Equal(t, 0, counts["ctx-errands"], "unused contexts still listed")
}

func TestPriorityCounts(t *testing.T) {
	g := groupByDimension(t, Generate(testActions(), testContexts()), "priorities")
	require.Len(t, g.Options, 3)

	counts := make(map[string]int)
	for _, o := range g.Options {
		counts[o.ID] = o.Count
	}
	assert.Equal(t, 1, counts["low"])
	assert.Equal(t, 1, counts["medium"])
	assert.Equal(t, 2, counts["high"])
}

func TestStatusCounts(t *testing.T) {
	g := groupByDimension(t, Generate(testActions(), testContexts()), "statuses")
	require.Len(t, g.Options, 5)

	counts := make(map[string]int)
	for _, o := range g.Options {
		counts[o.ID] = o.Count
	}
	assert.Equal(t, 2, counts["next"])
	assert.Equal(t, 1, counts["waiting"])
	assert.Equal(t, 1, counts["completed"])
	assert.Equal(t, 0, counts["scheduled"])
}

func TestTagsRankedByFrequency(t *testing.T) {
	g := groupByDimension(t, Generate(testActions(), testContexts()), "tags")
	require.Len(t, g.Options, 3)

	assert.Equal(t, Option{ID: "work", Label: "work", Count: 2}, g.Options[0])
	// Ties break alphabetically.
	assert.Equal(t, "home", g.Options[1].ID)
	assert.Equal(t, "urgent", g.Options[2].ID)
}

func TestTagsTruncatedToTop(t *testing.T) {
	var actions []entity.Action
	for i := 0; i < MaxTags+15; i++ {
		actions = append(actions, entity.Action{
			ID:   fmt.Sprintf("a%d", i),
			Tags: []string{fmt.Sprintf("tag-%02d", i)},
		})
	}

	g := groupByDimension(t, Generate(actions, nil), "tags")
	assert.Len(t, g.Options, MaxTags)
}

func TestDateBucketsUncounted(t *testing.T) {
	g := groupByDimension(t, Generate(nil, nil), "dates")
	assert.False(t, g.Counted)

	ids := make([]string, len(g.Options))
	for i, o := range g.Options {
		ids[i] = o.ID
	}
	assert.Equal(t, []string{"today", "tomorrow", "this-week", "next-week", "this-month", "custom"}, ids)
}

func TestGenerateEmptyWorkspace(t *testing.T) {
	groups := Generate(nil, nil)
	require.Len(t, groups, 5)

	tags := groupByDimension(t, groups, "tags")
	assert.Empty(t, tags.Options)
}
