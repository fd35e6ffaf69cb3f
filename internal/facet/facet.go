// Package facet derives filter option groups with usage counts from an
// action snapshot, for filter-panel UIs. Counting is a pure O(n)
// aggregation; no index is consulted.
package facet

import (
	"sort"

	"github.com/jpl-au/sift/internal/entity"
)

// MaxTags caps the tags group at the most frequent tags.
const MaxTags = 20

// Option is one selectable filter value with its usage count.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Group is one filter dimension. Counted is false for the date-bucket
// group: buckets are resolved to concrete ranges at selection time, so no
// count is computed here.
type Group struct {
	Dimension string   `json:"dimension"`
	Label     string   `json:"label"`
	Options   []Option `json:"options"`
	Counted   bool     `json:"counted"`
}

// Generate builds one group per dimension: contexts, priorities,
// statuses, tags (top MaxTags by frequency), and the fixed relative
// date buckets.
func Generate(actions []entity.Action, contexts []entity.Context) []Group {
	return []Group{
		contextGroup(actions, contexts),
		priorityGroup(actions),
		statusGroup(actions),
		tagGroup(actions),
		dateGroup(),
	}
}

func contextGroup(actions []entity.Action, contexts []entity.Context) Group {
	counts := make(map[string]int)
	for _, a := range actions {
		if a.ContextID != "" {
			counts[a.ContextID]++
		}
	}
	opts := make([]Option, len(contexts))
	for i, c := range contexts {
		opts[i] = Option{ID: c.ID, Label: c.Name, Count: counts[c.ID]}
	}
	return Group{Dimension: "contexts", Label: "Contexts", Options: opts, Counted: true}
}

func priorityGroup(actions []entity.Action) Group {
	counts := make(map[entity.Priority]int)
	for _, a := range actions {
		counts[a.Priority]++
	}
	var opts []Option
	for _, p := range entity.Priorities() {
		opts = append(opts, Option{ID: string(p), Label: string(p), Count: counts[p]})
	}
	return Group{Dimension: "priorities", Label: "Priority", Options: opts, Counted: true}
}

func statusGroup(actions []entity.Action) Group {
	counts := make(map[entity.ActionStatus]int)
	for _, a := range actions {
		counts[a.Status]++
	}
	var opts []Option
	for _, s := range entity.ActionStatuses() {
		opts = append(opts, Option{ID: string(s), Label: string(s), Count: counts[s]})
	}
	return Group{Dimension: "statuses", Label: "Status", Options: opts, Counted: true}
}

func tagGroup(actions []entity.Action) Group {
	counts := make(map[string]int)
	for _, a := range actions {
		for _, t := range a.Tags {
			counts[t]++
		}
	}
	opts := make([]Option, 0, len(counts))
	for t, n := range counts {
		opts = append(opts, Option{ID: t, Label: t, Count: n})
	}
	// Frequency descending; ties alphabetical for determinism.
	sort.Slice(opts, func(i, j int) bool {
		if opts[i].Count != opts[j].Count {
			return opts[i].Count > opts[j].Count
		}
		return opts[i].ID < opts[j].ID
	})
	if len(opts) > MaxTags {
		opts = opts[:MaxTags]
	}
	return Group{Dimension: "tags", Label: "Tags", Options: opts, Counted: true}
}

func dateGroup() Group {
	buckets := []struct{ id, label string }{
		{"today", "Today"},
		{"tomorrow", "Tomorrow"},
		{"this-week", "This Week"},
		{"next-week", "Next Week"},
		{"this-month", "This Month"},
		{"custom", "Custom Range"},
	}
	opts := make([]Option, len(buckets))
	for i, b := range buckets {
		opts[i] = Option{ID: b.id, Label: b.label}
	}
	return Group{Dimension: "dates", Label: "Due", Options: opts, Counted: false}
}
