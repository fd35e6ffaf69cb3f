// Package entity defines the five searchable GTD entity types as a tagged
// union. Each type lives in its own file alongside its index-field
// descriptor, which it registers during init(). Consumers switch on
// [Type] or use the descriptor registry rather than duck-typing the five
// shapes into one generic record.
package entity

// Type discriminates the five entity kinds in search results and indexes.
type Type string

const (
	TypeAction   Type = "action"
	TypeProject  Type = "project"
	TypeWaiting  Type = "waiting"
	TypeCalendar Type = "calendar"
	TypeInbox    Type = "inbox"
)

// Entity is the common surface of the five GTD types. Implementations are
// value types; the engine never mutates them (the entity store owns them).
type Entity interface {
	// EntityType returns the discriminator for this entity.
	EntityType() Type
	// EntityID returns the stable identifier assigned by the entity store.
	EntityID() string
	// EntityTitle returns a short human-readable label for display.
	EntityTitle() string
}

// Priority is the urgency level of an action.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists all priority values in display order.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// ActionStatus is the GTD workflow state of an action.
type ActionStatus string

const (
	StatusNext      ActionStatus = "next"
	StatusWaiting   ActionStatus = "waiting"
	StatusScheduled ActionStatus = "scheduled"
	StatusCompleted ActionStatus = "completed"
	StatusCancelled ActionStatus = "cancelled"
)

// ActionStatuses lists all action status values in display order.
func ActionStatuses() []ActionStatus {
	return []ActionStatus{StatusNext, StatusWaiting, StatusScheduled, StatusCompleted, StatusCancelled}
}

// ProjectStatus is the lifecycle state of a project. It is a separate enum
// from ActionStatus; filter evaluation translates between the two.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectOnHold    ProjectStatus = "on-hold"
	ProjectCompleted ProjectStatus = "completed"
	ProjectCancelled ProjectStatus = "cancelled"
)

// Context is a situational tag describing where or how an action can be
// performed (e.g. @home, @errands). Supplied by the entity store.
type Context struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
}

// Collections is a snapshot of all five entity collections. The engine
// treats it as read-only input; the entity store is the sole mutator.
type Collections struct {
	Actions  []Action
	Projects []Project
	Waiting  []WaitingItem
	Calendar []CalendarItem
	Inbox    []InboxItem
}

// Entities returns one collection as the generic union type.
func (c Collections) Entities(t Type) []Entity {
	switch t {
	case TypeAction:
		out := make([]Entity, len(c.Actions))
		for i := range c.Actions {
			out[i] = c.Actions[i]
		}
		return out
	case TypeProject:
		out := make([]Entity, len(c.Projects))
		for i := range c.Projects {
			out[i] = c.Projects[i]
		}
		return out
	case TypeWaiting:
		out := make([]Entity, len(c.Waiting))
		for i := range c.Waiting {
			out[i] = c.Waiting[i]
		}
		return out
	case TypeCalendar:
		out := make([]Entity, len(c.Calendar))
		for i := range c.Calendar {
			out[i] = c.Calendar[i]
		}
		return out
	case TypeInbox:
		out := make([]Entity, len(c.Inbox))
		for i := range c.Inbox {
			out[i] = c.Inbox[i]
		}
		return out
	default:
		return nil
	}
}
