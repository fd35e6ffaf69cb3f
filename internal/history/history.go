// Package history records executed search queries and derives completion
// suggestions and popularity rankings from them.
//
// History is capped at 50 entries, newest first, deduplicated by exact
// query string: re-running a query moves it to the front and refreshes
// its timestamp and result count instead of adding a duplicate. The
// backing store write is synchronous after each mutation; failures are
// logged as warnings and never propagated.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/jpl-au/sift/internal/store"
)

// MaxEntries is the history cap. The oldest entries fall off the end.
const MaxEntries = 50

// Item is one executed search.
type Item struct {
	Query       string
	Timestamp   time.Time
	ResultCount int
}

// itemJSON is the persisted shape, with an ISO 8601 timestamp.
type itemJSON struct {
	Query       string `json:"query"`
	Timestamp   string `json:"timestamp"`
	ResultCount int    `json:"resultCount"`
}

// History owns the recorded queries. Construct once via New and share the
// handle; it is not safe for concurrent mutation.
type History struct {
	st    store.Store
	now   func() time.Time
	items []Item

	// hits counts executions per distinct query within this session.
	// The persisted history is deduplicated, so popularity cannot be
	// recovered from it; counts start from the loaded entries (one each)
	// and grow as queries are re-run.
	hits map[string]int
}

// Option customises History construction.
type Option func(*History)

// WithClock overrides the time source. Tests use this for deterministic
// timestamps.
func WithClock(now func() time.Time) Option {
	return func(h *History) { h.now = now }
}

// New loads persisted history from st. Malformed or unreadable persisted
// data is logged as a warning and treated as empty, never fatal.
func New(st store.Store, opts ...Option) *History {
	h := &History{st: st, now: time.Now, hits: make(map[string]int)}
	for _, o := range opts {
		o(h)
	}
	h.items = load(st)
	for _, it := range h.items {
		h.hits[it.Query] = 1
	}
	return h
}

func load(st store.Store) []Item {
	data, err := st.Get(store.KeyHistory)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: reading search history: %v\n", err)
		return nil
	}

	var raw []itemJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		fmt.Fprintf(os.Stderr, "warning: malformed search history, starting empty: %v\n", err)
		return nil
	}

	items := make([]Item, 0, len(raw))
	for _, r := range raw {
		ts, err := time.Parse(time.RFC3339, r.Timestamp)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: dropping history entry with bad timestamp %q\n", r.Timestamp)
			continue
		}
		items = append(items, Item{Query: r.Query, Timestamp: ts, ResultCount: r.ResultCount})
	}
	if len(items) > MaxEntries {
		items = items[:MaxEntries]
	}
	return items
}

// Record notes an executed query and its post-truncation result count.
// A repeated query moves to the front with a fresh timestamp and count.
func (h *History) Record(query string, resultCount int) {
	for i, it := range h.items {
		if it.Query == query {
			h.items = append(h.items[:i], h.items[i+1:]...)
			break
		}
	}
	h.items = append([]Item{{Query: query, Timestamp: h.now(), ResultCount: resultCount}}, h.items...)
	if len(h.items) > MaxEntries {
		h.items = h.items[:MaxEntries]
	}
	h.hits[query]++
	h.persist()
}

// Items returns the recorded history, newest first.
func (h *History) Items() []Item {
	out := make([]Item, len(h.items))
	copy(out, h.items)
	return out
}

// Clear removes all history entries and popularity counts.
func (h *History) Clear() {
	h.items = nil
	h.hits = make(map[string]int)
	h.persist()
}

// Remove deletes every entry recorded for the exact query string.
func (h *History) Remove(query string) {
	kept := h.items[:0]
	for _, it := range h.items {
		if it.Query != query {
			kept = append(kept, it)
		}
	}
	h.items = kept
	delete(h.hits, query)
	h.persist()
}

// PopularSearch is a distinct query with its occurrence count.
type PopularSearch struct {
	Query string `json:"query"`
	Count int    `json:"count"`
}

// Popular returns the top limit distinct queries by execution count,
// descending. Ties keep the more recently executed query first.
func (h *History) Popular(limit int) []PopularSearch {
	out := make([]PopularSearch, 0, len(h.hits))
	for _, it := range h.items {
		out = append(out, PopularSearch{Query: it.Query, Count: h.hits[it.Query]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (h *History) persist() {
	raw := make([]itemJSON, len(h.items))
	for i, it := range h.items {
		raw[i] = itemJSON{
			Query:       it.Query,
			Timestamp:   it.Timestamp.UTC().Format(time.RFC3339),
			ResultCount: it.ResultCount,
		}
	}
	data, err := json.Marshal(raw)
	if err == nil {
		err = h.st.Put(store.KeyHistory, data)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: persisting search history: %v\n", err)
	}
}

// stringsContainsFold reports whether s contains substr, ignoring case.
func stringsContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
