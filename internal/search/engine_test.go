package search

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpl-au/sift/internal/entity"
	"github.com/jpl-au/sift/internal/filter"
	"github.com/jpl-au/sift/internal/history"
	"github.com/jpl-au/sift/internal/store"
)

func testCollections() entity.Collections {
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return entity.Collections{
		Actions: []entity.Action{
			{ID: "a1", Title: "Draft quarterly report", Priority: entity.PriorityHigh, Status: entity.StatusNext, ContextID: "ctx-office", Tags: []string{"work"}, CreatedAt: created},
			{ID: "a2", Title: "Buy groceries", Priority: entity.PriorityLow, Status: entity.StatusNext, ContextID: "ctx-errands", CreatedAt: created},
		},
		Projects: []entity.Project{
			{ID: "p1", Title: "Quarterly report review", Status: entity.ProjectActive, CreatedAt: created},
		},
		Waiting: []entity.WaitingItem{
			{ID: "w1", Title: "Report feedback from Sam", CreatedAt: created},
		},
		Calendar: []entity.CalendarItem{
			{ID: "c1", Title: "Report planning meeting", StartTime: created},
		},
		Inbox: []entity.InboxItem{
			{ID: "i1", Content: "remember the report appendix", CreatedAt: created},
		},
	}
}

func newTestEngine(t *testing.T) (*Engine, *history.History) {
	t.Helper()
	h := history.New(store.NewMemStore())
	e := New(h)
	e.InitializeIndexes(testCollections())
	return e, h
}

func TestSearchFindsAcrossDefaultTypes(t *testing.T) {
	e, _ := newTestEngine(t)

	results := e.Search("report", Options{})
	require.NotEmpty(t, results)

	types := make(map[entity.Type]bool)
	ids := make(map[string]bool)
	for _, r := range results {
		types[r.Type] = true
		ids[r.Entity.EntityID()] = true
	}
	assert.True(t, ids["a1"])
	assert.True(t, ids["p1"])
	assert.True(t, ids["w1"])
	assert.True(t, ids["c1"])
	assert.False(t, types[entity.TypeInbox], "inbox is opt-in")
}

func TestSearchInboxOptIn(t *testing.T) {
	e, _ := newTestEngine(t)

	results := e.Search("report", Options{Types: []entity.Type{entity.TypeInbox}})
	require.Len(t, results, 1)
	assert.Equal(t, "i1", results[0].Entity.EntityID())
	assert.Equal(t, entity.TypeInbox, results[0].Type)
}

func TestSearchEmptyQuery(t *testing.T) {
	e, h := newTestEngine(t)

	assert.Nil(t, e.Search("", Options{}))
	assert.Nil(t, e.Search("   ", Options{}))
	assert.Empty(t, h.Items(), "empty queries are not recorded")
}

func TestSearchRecordsHistory(t *testing.T) {
	e, h := newTestEngine(t)

	results := e.Search("  report  ", Options{})

	items := h.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "report", items[0].Query, "query is trimmed before recording")
	assert.Equal(t, len(results), items[0].ResultCount)
}

func TestSearchRecordsTruncatedCount(t *testing.T) {
	e, h := newTestEngine(t)

	results := e.Search("report", Options{Limit: 2})
	require.Len(t, results, 2)

	items := h.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].ResultCount)
}

func TestSearchSortedAscending(t *testing.T) {
	e, _ := newTestEngine(t)

	results := e.Search("report", Options{})
	for i := 1; i < len(results); i++ {
		assert.LessOrEqual(t, results[i-1].Score, results[i].Score)
	}
}

func TestSearchDefaultLimit(t *testing.T) {
	cols := entity.Collections{}
	for i := 0; i < DefaultLimit+20; i++ {
		cols.Actions = append(cols.Actions, entity.Action{
			ID:     fmt.Sprintf("a%d", i),
			Title:  "report",
			Status: entity.StatusNext,
		})
	}

	e := New(nil)
	e.InitializeIndexes(cols)

	results := e.Search("report", Options{})
	assert.Len(t, results, DefaultLimit)
}

func TestSearchPostFilter(t *testing.T) {
	e, _ := newTestEngine(t)

	crit := filter.Criteria{Priorities: []entity.Priority{entity.PriorityHigh}}
	results := e.Search("report", Options{
		Types:   []entity.Type{entity.TypeAction},
		Filters: &crit,
	})

	require.Len(t, results, 1)
	assert.Equal(t, "a1", results[0].Entity.EntityID())
}

func TestSearchStatusFilterExcludesProjects(t *testing.T) {
	// The search path treats any statuses dimension as excluding projects
	// entirely, unlike the smart-list path which translates statuses.
	e, _ := newTestEngine(t)

	crit := filter.Criteria{Statuses: []entity.ActionStatus{entity.StatusNext}}
	results := e.Search("report", Options{Filters: &crit})

	for _, r := range results {
		assert.NotEqual(t, entity.TypeProject, r.Type)
	}
}

func TestSearchNilHistory(t *testing.T) {
	e := New(nil)
	e.InitializeIndexes(testCollections())

	assert.NotPanics(t, func() {
		e.Search("report", Options{})
	})
}

func TestUpdateIndexReplaces(t *testing.T) {
	e, _ := newTestEngine(t)

	e.UpdateIndex(entity.TypeAction, []entity.Entity{
		entity.Action{ID: "a9", Title: "fresh report", Status: entity.StatusNext},
	})

	results := e.Search("report", Options{Types: []entity.Type{entity.TypeAction}})
	require.Len(t, results, 1)
	assert.Equal(t, "a9", results[0].Entity.EntityID())
}
