// Package filter implements the multi-criteria filter evaluator: one
// canonical predicate with a specialisation per entity type, plus bulk
// application over whole snapshots.
//
// Convention: a dimension that is nil or an empty slice means "do not
// filter on this dimension". This is load-bearing - smart lists, the
// search post-filter, and the facet UI all rely on it. Dimensions that do
// not apply to an entity type (e.g. priorities on calendar items) are
// always satisfied.
package filter

import (
	"time"

	"github.com/jpl-au/sift/internal/entity"
)

// DateRange bounds a date dimension. Either side may be nil (unbounded).
// Both bounds are inclusive.
type DateRange struct {
	Start *time.Time `json:"start,omitempty" yaml:"start,omitempty"`
	End   *time.Time `json:"end,omitempty" yaml:"end,omitempty"`
}

// Contains reports whether t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && t.After(*r.End) {
		return false
	}
	return true
}

// Criteria is a persistable multi-dimension filter. All dimensions are
// ANDed; absent dimensions are always satisfied.
type Criteria struct {
	Contexts   []string              `json:"contexts,omitempty" yaml:"contexts,omitempty"`
	Priorities []entity.Priority     `json:"priorities,omitempty" yaml:"priorities,omitempty"`
	Statuses   []entity.ActionStatus `json:"statuses,omitempty" yaml:"statuses,omitempty"`
	DateRange  *DateRange            `json:"dateRange,omitempty" yaml:"dateRange,omitempty"`
	Tags       []string              `json:"tags,omitempty" yaml:"tags,omitempty"`
	SearchText string                `json:"searchText,omitempty" yaml:"searchText,omitempty"`
}

// IsEmpty reports whether no dimension is active, i.e. the criteria
// matches every entity.
func (c Criteria) IsEmpty() bool {
	return len(c.Contexts) == 0 &&
		len(c.Priorities) == 0 &&
		len(c.Statuses) == 0 &&
		c.DateRange == nil &&
		len(c.Tags) == 0 &&
		c.SearchText == ""
}
