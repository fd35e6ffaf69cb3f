package history

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpl-au/sift/internal/store"
)

// testClock returns a clock that advances one second per call.
func testClock() func() time.Time {
	t := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func newTestHistory(t *testing.T) (*History, store.Store) {
	t.Helper()
	st := store.NewMemStore()
	return New(st, WithClock(testClock())), st
}

func TestRecordNewestFirst(t *testing.T) {
	h, _ := newTestHistory(t)

	h.Record("first", 3)
	h.Record("second", 5)

	items := h.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "second", items[0].Query)
	assert.Equal(t, 5, items[0].ResultCount)
	assert.Equal(t, "first", items[1].Query)
}

func TestRecordDeduplicates(t *testing.T) {
	h, _ := newTestHistory(t)

	h.Record("report", 3)
	h.Record("other", 1)
	h.Record("report", 7)

	items := h.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "report", items[0].Query)
	assert.Equal(t, 7, items[0].ResultCount, "re-running refreshes the count")
	assert.True(t, items[0].Timestamp.After(items[1].Timestamp))
}

func TestRecordCap(t *testing.T) {
	h, _ := newTestHistory(t)

	for i := 0; i < MaxEntries+10; i++ {
		h.Record(fmt.Sprintf("query-%d", i), i)
	}

	items := h.Items()
	require.Len(t, items, MaxEntries)
	assert.Equal(t, fmt.Sprintf("query-%d", MaxEntries+9), items[0].Query)
	assert.Equal(t, "query-10", items[len(items)-1].Query, "oldest entries fall off")
}

func TestPersistenceRoundTrip(t *testing.T) {
	st := store.NewMemStore()

	h := New(st, WithClock(testClock()))
	h.Record("report", 3)
	h.Record("groceries", 1)

	reloaded := New(st, WithClock(testClock()))
	items := reloaded.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "groceries", items[0].Query)
	assert.Equal(t, "report", items[1].Query)
	assert.Equal(t, 3, items[1].ResultCount)
}

func TestMalformedPersistedDataStartsEmpty(t *testing.T) {
	st := store.NewMemStore()
	require.NoError(t, st.Put(store.KeyHistory, []byte("{not json")))

	h := New(st)
	assert.Empty(t, h.Items())
}

func TestBadTimestampEntriesDropped(t *testing.T) {
	st := store.NewMemStore()
	raw := `[{"query":"ok","timestamp":"2026-03-01T09:00:00Z","resultCount":1},
	         {"query":"bad","timestamp":"yesterday","resultCount":2}]`
	require.NoError(t, st.Put(store.KeyHistory, []byte(raw)))

	h := New(st)
	items := h.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "ok", items[0].Query)
}

func TestClear(t *testing.T) {
	h, st := newTestHistory(t)
	h.Record("report", 3)

	h.Clear()
	assert.Empty(t, h.Items())
	assert.Empty(t, h.Popular(0))

	reloaded := New(st)
	assert.Empty(t, reloaded.Items())
}

func TestRemove(t *testing.T) {
	h, _ := newTestHistory(t)
	h.Record("keep", 1)
	h.Record("drop", 2)

	h.Remove("drop")

	items := h.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "keep", items[0].Query)

	for _, p := range h.Popular(0) {
		assert.NotEqual(t, "drop", p.Query)
	}
}

func TestPopularCountsRepeats(t *testing.T) {
	h, _ := newTestHistory(t)

	h.Record("foo", 1)
	h.Record("foo", 1)
	h.Record("foo", 1)
	h.Record("bar", 2)
	h.Record("bar", 2)
	h.Record("baz", 3)

	popular := h.Popular(2)
	require.Len(t, popular, 2)
	assert.Equal(t, PopularSearch{Query: "foo", Count: 3}, popular[0])
	assert.Equal(t, PopularSearch{Query: "bar", Count: 2}, popular[1])
}

func TestPopularTiesFavourRecent(t *testing.T) {
	h, _ := newTestHistory(t)

	h.Record("old", 1)
	h.Record("new", 1)

	popular := h.Popular(0)
	require.Len(t, popular, 2)
	assert.Equal(t, "new", popular[0].Query)
	assert.Equal(t, "old", popular[1].Query)
}

func TestPopularSeedsLoadedEntries(t *testing.T) {
	st := store.NewMemStore()
	h := New(st, WithClock(testClock()))
	h.Record("persisted", 4)

	reloaded := New(st, WithClock(testClock()))
	popular := reloaded.Popular(0)
	require.Len(t, popular, 1)
	assert.Equal(t, 1, popular[0].Count, "loaded entries start at one execution")
}
