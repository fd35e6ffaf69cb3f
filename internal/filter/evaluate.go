// evaluate.go implements the per-type filter predicates and bulk
// application.
//
// Separated from criteria.go so that the criteria value type (which is
// persisted inside smart lists) stays free of evaluation logic.
//
// Design: the repository historically grew two divergent copies of "apply
// criteria to an entity" - one in the search post-filter path, one in the
// smart-list path - differing in how an active statuses dimension treats
// projects. They are unified here behind one predicate; the divergence is
// expressed as the explicit StrictProjectStatuses option so each call site
// keeps the semantics it has always had.
package filter

import (
	"strings"

	"github.com/jpl-au/sift/internal/entity"
)

// Option adjusts predicate evaluation for a specific call site.
type Option func(*settings)

type settings struct {
	strictProjectStatuses bool
}

// StrictProjectStatuses reproduces the search post-filter path's handling
// of projects: any active statuses dimension excludes every project,
// instead of translating project status into action-status space. This is
// a preserved discrepancy of that call path, not a rule of the data model;
// the smart-list path must not pass it.
func StrictProjectStatuses() Option {
	return func(s *settings) { s.strictProjectStatuses = true }
}

// Matches reports whether e satisfies every active dimension of c.
// Inbox items are not evaluated by this predicate set and always pass;
// they are reachable through fuzzy search only.
func Matches(e entity.Entity, c Criteria, opts ...Option) bool {
	var s settings
	for _, o := range opts {
		o(&s)
	}

	switch v := e.(type) {
	case entity.Action:
		return matchAction(v, c)
	case entity.Project:
		return matchProject(v, c, s)
	case entity.WaitingItem:
		return matchWaiting(v, c)
	case entity.CalendarItem:
		return matchCalendar(v, c)
	default:
		return true
	}
}

// Apply filters a whole snapshot through the canonical (smart-list path)
// predicate. Inbox items pass through untouched.
func Apply(cols entity.Collections, c Criteria) entity.Collections {
	out := entity.Collections{Inbox: cols.Inbox}
	for _, a := range cols.Actions {
		if matchAction(a, c) {
			out.Actions = append(out.Actions, a)
		}
	}
	for _, p := range cols.Projects {
		if matchProject(p, c, settings{}) {
			out.Projects = append(out.Projects, p)
		}
	}
	for _, w := range cols.Waiting {
		if matchWaiting(w, c) {
			out.Waiting = append(out.Waiting, w)
		}
	}
	for _, ci := range cols.Calendar {
		if matchCalendar(ci, c) {
			out.Calendar = append(out.Calendar, ci)
		}
	}
	return out
}

func matchAction(a entity.Action, c Criteria) bool {
	if len(c.Contexts) > 0 && !containsString(c.Contexts, a.ContextID) {
		return false
	}
	if len(c.Priorities) > 0 && !containsPriority(c.Priorities, a.Priority) {
		return false
	}
	if len(c.Statuses) > 0 && !containsStatus(c.Statuses, a.Status) {
		return false
	}
	if c.DateRange != nil {
		// An action satisfies a date range either by when it is due or,
		// once completed, by when it finished.
		ok := a.DueDate != nil && c.DateRange.Contains(*a.DueDate)
		if !ok && a.Status == entity.StatusCompleted && a.CompletedAt != nil {
			ok = c.DateRange.Contains(*a.CompletedAt)
		}
		if !ok {
			return false
		}
	}
	if len(c.Tags) > 0 && !anyOverlap(c.Tags, a.Tags) {
		return false
	}
	return matchText(a.SearchText(), c.SearchText)
}

func matchProject(p entity.Project, c Criteria, s settings) bool {
	if len(c.Statuses) > 0 {
		if s.strictProjectStatuses {
			return false
		}
		if !containsStatus(c.Statuses, translateProjectStatus(p.Status)) {
			return false
		}
	}
	if c.DateRange != nil {
		ok := c.DateRange.Contains(p.CreatedAt)
		if !ok && p.Status == entity.ProjectCompleted && p.CompletedAt != nil {
			ok = c.DateRange.Contains(*p.CompletedAt)
		}
		if !ok {
			return false
		}
	}
	if len(c.Tags) > 0 && !anyOverlap(c.Tags, p.Tags) {
		return false
	}
	return matchText(p.SearchText(), c.SearchText)
}

func matchWaiting(w entity.WaitingItem, c Criteria) bool {
	if c.DateRange != nil {
		ok := c.DateRange.Contains(w.CreatedAt)
		if !ok && w.FollowUpDate != nil {
			ok = c.DateRange.Contains(*w.FollowUpDate)
		}
		if !ok {
			return false
		}
	}
	return matchText(w.SearchText(), c.SearchText)
}

func matchCalendar(ci entity.CalendarItem, c Criteria) bool {
	if c.DateRange != nil && !c.DateRange.Contains(ci.StartTime) {
		return false
	}
	return matchText(ci.SearchText(), c.SearchText)
}

// translateProjectStatus maps project lifecycle states onto the action
// status values carried by Criteria.Statuses.
func translateProjectStatus(s entity.ProjectStatus) entity.ActionStatus {
	switch s {
	case entity.ProjectActive:
		return entity.StatusNext
	case entity.ProjectOnHold:
		return entity.StatusWaiting
	case entity.ProjectCompleted:
		return entity.StatusCompleted
	case entity.ProjectCancelled:
		return entity.StatusCancelled
	default:
		return ""
	}
}

func matchText(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func containsPriority(list []entity.Priority, v entity.Priority) bool {
	for _, p := range list {
		if p == v {
			return true
		}
	}
	return false
}

func containsStatus(list []entity.ActionStatus, v entity.ActionStatus) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func anyOverlap(want, have []string) bool {
	for _, w := range want {
		for _, h := range have {
			if strings.EqualFold(w, h) {
				return true
			}
		}
	}
	return false
}
