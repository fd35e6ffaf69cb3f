// system.go defines the fixed system smart list templates.
//
// Separated from smartlist.go so the template set reads as data. The six
// templates are instantiated at registry construction: their ids, names,
// and cosmetics are constant, while "now"-relative date ranges are
// resolved against the construction instant.
package smartlist

import (
	"time"

	"github.com/jpl-au/sift/internal/entity"
	"github.com/jpl-au/sift/internal/filter"
)

// System list ids. Stable across sessions so UI state can reference them.
const (
	SystemToday          = "system-today"
	SystemHighPriority   = "system-high-priority"
	SystemOverdue        = "system-overdue"
	SystemWaiting        = "system-waiting"
	SystemNoContext      = "system-no-context"
	SystemCompletedToday = "system-completed-today"
)

func systemLists(now time.Time) []SmartList {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)

	build := func(id, name, desc, color, icon string, c filter.Criteria) SmartList {
		return SmartList{
			ID:          id,
			Name:        name,
			Description: desc,
			Filters:     c,
			Color:       color,
			Icon:        icon,
			CreatedAt:   now,
			UpdatedAt:   now,
			IsSystem:    true,
		}
	}

	return []SmartList{
		build(SystemToday, "Today", "Everything due or happening today", "#3b82f6", "calendar",
			filter.Criteria{DateRange: &filter.DateRange{Start: &dayStart, End: &dayEnd}}),
		build(SystemHighPriority, "High Priority", "Actions marked high priority", "#ef4444", "flame",
			filter.Criteria{Priorities: []entity.Priority{entity.PriorityHigh}}),
		build(SystemOverdue, "Overdue", "Next actions whose due date has passed", "#f97316", "alert",
			filter.Criteria{
				Statuses:  []entity.ActionStatus{entity.StatusNext},
				DateRange: &filter.DateRange{End: &now},
			}),
		build(SystemWaiting, "Waiting", "Delegated work pending a response", "#eab308", "hourglass",
			filter.Criteria{Statuses: []entity.ActionStatus{entity.StatusWaiting}}),
		// The empty Contexts slice makes this a no-op under the
		// empty-means-no-filter convention. Kept as shipped: changing the
		// convention to "must have zero contexts" would alter behaviour
		// for every other criteria consumer.
		build(SystemNoContext, "No Context", "Actions not yet assigned a context", "#6b7280", "tag",
			filter.Criteria{Contexts: []string{}}),
		build(SystemCompletedToday, "Completed Today", "Actions finished today", "#22c55e", "check",
			filter.Criteria{
				Statuses:  []entity.ActionStatus{entity.StatusCompleted},
				DateRange: &filter.DateRange{Start: &dayStart, End: &dayEnd},
			}),
	}
}
