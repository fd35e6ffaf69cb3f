package smartlist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpl-au/sift/internal/entity"
	"github.com/jpl-au/sift/internal/filter"
	"github.com/jpl-au/sift/internal/store"
)

func fixedClock() func() time.Time {
	now := time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC)
	return func() time.Time { return now }
}

func newTestRegistry(t *testing.T) (*Registry, store.Store) {
	t.Helper()
	st := store.NewMemStore()
	return NewRegistry(st, WithClock(fixedClock())), st
}

func TestSystemListsPresent(t *testing.T) {
	r, _ := newTestRegistry(t)

	system := r.SystemLists()
	require.Len(t, system, 6)

	ids := make([]string, len(system))
	for i, l := range system {
		ids[i] = l.ID
		assert.True(t, l.IsSystem)
	}
	assert.Equal(t, []string{
		SystemToday, SystemHighPriority, SystemOverdue,
		SystemWaiting, SystemNoContext, SystemCompletedToday,
	}, ids)
}

func TestSystemTodayRange(t *testing.T) {
	r, _ := newTestRegistry(t)

	today := r.ByID(SystemToday)
	require.NotNil(t, today)
	require.NotNil(t, today.Filters.DateRange)

	start := *today.Filters.DateRange.Start
	end := *today.Filters.DateRange.End
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), start)
	assert.True(t, end.After(start))
	assert.True(t, end.Before(start.Add(24*time.Hour)))
}

func TestCreate(t *testing.T) {
	r, _ := newTestRegistry(t)

	l := r.Create(Input{
		Name:    "Deep work",
		Filters: filter.Criteria{Priorities: []entity.Priority{entity.PriorityHigh}},
		Color:   "#112233",
	})

	require.NotNil(t, l)
	assert.Len(t, l.ID, 8)
	assert.False(t, l.IsSystem)
	assert.Equal(t, "Deep work", l.Name)

	found := r.ByID(l.ID)
	require.NotNil(t, found)
	assert.Equal(t, l.ID, found.ID)
	assert.Len(t, r.UserLists(), 1)
}

func TestUpdate(t *testing.T) {
	r, _ := newTestRegistry(t)
	l := r.Create(Input{Name: "Original", Description: "before"})

	name := "Renamed"
	got := r.Update(l.ID, Update{Name: &name})
	require.NotNil(t, got)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, "before", got.Description, "unset fields stay unchanged")

	t.Run("system lists are immutable", func(t *testing.T) {
		assert.Nil(t, r.Update(SystemToday, Update{Name: &name}))
	})

	t.Run("unknown id", func(t *testing.T) {
		assert.Nil(t, r.Update("nope", Update{Name: &name}))
	})
}

func TestDelete(t *testing.T) {
	r, _ := newTestRegistry(t)
	l := r.Create(Input{Name: "Ephemeral"})

	assert.True(t, r.Delete(l.ID))
	assert.Nil(t, r.ByID(l.ID))

	assert.False(t, r.Delete(SystemToday), "system lists cannot be deleted")
	assert.False(t, r.Delete("nope"))
	assert.Len(t, r.SystemLists(), 6)
}

func TestDuplicate(t *testing.T) {
	r, _ := newTestRegistry(t)

	t.Run("system list duplicates as user list", func(t *testing.T) {
		dup := r.Duplicate(SystemHighPriority, "")
		require.NotNil(t, dup)
		assert.False(t, dup.IsSystem)
		assert.Equal(t, "High Priority (copy)", dup.Name)
		assert.Equal(t, r.ByID(SystemHighPriority).Filters, dup.Filters)
	})

	t.Run("explicit name", func(t *testing.T) {
		dup := r.Duplicate(SystemWaiting, "My waiting")
		require.NotNil(t, dup)
		assert.Equal(t, "My waiting", dup.Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		assert.Nil(t, r.Duplicate("nope", ""))
	})
}

func TestPersistenceRoundTrip(t *testing.T) {
	st := store.NewMemStore()
	r := NewRegistry(st, WithClock(fixedClock()))
	l := r.Create(Input{
		Name:    "Persisted",
		Filters: filter.Criteria{Tags: []string{"work"}},
		Icon:    "star",
	})

	reloaded := NewRegistry(st, WithClock(fixedClock()))
	got := reloaded.ByID(l.ID)
	require.NotNil(t, got)
	assert.Equal(t, "Persisted", got.Name)
	assert.Equal(t, []string{"work"}, got.Filters.Tags)
	assert.Equal(t, "star", got.Icon)
	assert.False(t, got.IsSystem)
}

func TestSystemListsNotPersisted(t *testing.T) {
	st := store.NewMemStore()
	r := NewRegistry(st, WithClock(fixedClock()))
	r.Create(Input{Name: "User list"})

	data, err := st.Get(store.KeySmartLists)
	require.NoError(t, err)
	assert.NotContains(t, string(data), SystemToday)
	assert.Contains(t, string(data), "User list")
}

func TestMalformedPersistedDataStartsEmpty(t *testing.T) {
	st := store.NewMemStore()
	require.NoError(t, st.Put(store.KeySmartLists, []byte("[broken")))

	r := NewRegistry(st)
	assert.Empty(t, r.UserLists())
	assert.Len(t, r.SystemLists(), 6)
}

func TestNoContextListIsInert(t *testing.T) {
	// The shipped no-context template uses an empty contexts slice, which
	// the evaluator treats as "no filter". The list must exist but match
	// everything.
	r, _ := newTestRegistry(t)
	l := r.ByID(SystemNoContext)
	require.NotNil(t, l)
	assert.True(t, l.Filters.IsEmpty())
}
