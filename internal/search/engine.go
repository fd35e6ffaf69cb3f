// Package search implements the query engine: weighted fuzzy full-text
// search across the entity collections, with an optional criteria
// post-filter, ranking, truncation, and history recording.
package search

import (
	"sort"
	"strings"

	"github.com/jpl-au/sift/internal/entity"
	"github.com/jpl-au/sift/internal/filter"
	"github.com/jpl-au/sift/internal/fuzzy"
	"github.com/jpl-au/sift/internal/history"
)

// DefaultLimit caps result sets when the caller does not ask for a limit.
const DefaultLimit = 50

// DefaultTypes returns the entity types searched when the caller does not
// name any. Inbox is opt-in: raw captures are noise in everyday search.
func DefaultTypes() []entity.Type {
	return []entity.Type{entity.TypeAction, entity.TypeProject, entity.TypeWaiting, entity.TypeCalendar}
}

// Result is one ranked hit. Score follows the lower-is-better convention
// of the fuzzy index: 0 is an exact field match.
type Result struct {
	Entity entity.Entity `json:"entity"`
	Type   entity.Type   `json:"type"`
	Score  float64       `json:"score"`
	Fields []string      `json:"fields"`
}

// Options controls a single Search call. The zero value means: default
// types, default limit, no post-filter.
type Options struct {
	Types   []entity.Type
	Limit   int
	Filters *filter.Criteria
}

// typeIndex pairs one collection with its fuzzy index. Both are replaced
// wholesale on update; matches reference items by position.
type typeIndex struct {
	items []entity.Entity
	idx   *fuzzy.Index
}

// Engine holds one fuzzy index per entity type and records executed
// queries into history. Construct once, then rebuild indexes whenever the
// snapshot changes.
//
// The engine is single-threaded: callers serialise Search against
// index updates.
type Engine struct {
	indexes map[entity.Type]*typeIndex
	history *history.History
}

// New returns an engine with empty indexes. h may be nil, in which case
// queries are not recorded.
func New(h *history.History) *Engine {
	return &Engine{
		indexes: make(map[entity.Type]*typeIndex),
		history: h,
	}
}

// InitializeIndexes builds a fresh index for every registered entity type
// from the given snapshot, discarding any previous indexes.
func (e *Engine) InitializeIndexes(cols entity.Collections) {
	e.indexes = make(map[entity.Type]*typeIndex)
	for _, t := range entity.Types() {
		e.UpdateIndex(t, cols.Entities(t))
	}
}

// UpdateIndex rebuilds the index for one entity type from items. The
// previous index for that type is discarded.
func (e *Engine) UpdateIndex(t entity.Type, items []entity.Entity) {
	d, ok := entity.Describe(t)
	if !ok {
		return
	}
	docs := make([][]fuzzy.Field, len(items))
	for i, it := range items {
		fields := d.Fields(it)
		doc := make([]fuzzy.Field, len(fields))
		for j, f := range fields {
			doc[j] = fuzzy.Field{Name: f.Name, Text: f.Text, Weight: f.Weight}
		}
		docs[i] = doc
	}
	e.indexes[t] = &typeIndex{items: items, idx: fuzzy.NewIndex(docs)}
}

// Search runs query against the indexed types, applies the optional
// criteria post-filter, ranks by ascending score, truncates to the limit,
// and records the query in history with the truncated result count.
//
// An empty or whitespace-only query returns nil without touching history.
func (e *Engine) Search(query string, opts Options) []Result {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	types := opts.Types
	if len(types) == 0 {
		types = DefaultTypes()
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	var out []Result
	for _, t := range types {
		ti, ok := e.indexes[t]
		if !ok {
			continue
		}
		for _, m := range ti.idx.Search(query) {
			r := Result{Entity: ti.items[m.Doc], Type: t, Score: m.Score, Fields: m.Fields}
			if opts.Filters != nil && !opts.Filters.IsEmpty() &&
				!filter.Matches(r.Entity, *opts.Filters, filter.StrictProjectStatuses()) {
				continue
			}
			out = append(out, r)
		}
	}

	// Stable sort keeps equal-scored hits in type then index order.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score < out[j].Score })
	if len(out) > limit {
		out = out[:limit]
	}

	if e.history != nil {
		e.history.Record(query, len(out))
	}
	return out
}
