package entity

import (
	"strings"
	"time"
)

// Action is an atomic, executable next step, tied to a context and
// optionally a project.
type Action struct {
	ID          string       `json:"id" yaml:"id"`
	Title       string       `json:"title" yaml:"title"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Notes       string       `json:"notes,omitempty" yaml:"notes,omitempty"`
	Tags        []string     `json:"tags,omitempty" yaml:"tags,omitempty"`
	ContextID   string       `json:"contextId,omitempty" yaml:"contextId,omitempty"`
	ProjectID   string       `json:"projectId,omitempty" yaml:"projectId,omitempty"`
	Priority    Priority     `json:"priority,omitempty" yaml:"priority,omitempty"`
	Status      ActionStatus `json:"status" yaml:"status"`
	DueDate     *time.Time   `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
	CompletedAt *time.Time   `json:"completedAt,omitempty" yaml:"completedAt,omitempty"`
	CreatedAt   time.Time    `json:"createdAt" yaml:"createdAt"`
}

func (a Action) EntityType() Type    { return TypeAction }
func (a Action) EntityID() string    { return a.ID }
func (a Action) EntityTitle() string { return a.Title }

// SearchText returns the concatenated free-text surface used by the
// filter evaluator's searchText dimension.
func (a Action) SearchText() string {
	return strings.Join([]string{a.Title, a.Description, a.Notes, strings.Join(a.Tags, " ")}, " ")
}

func init() {
	register(Descriptor{
		Type: TypeAction,
		Fields: func(e Entity) []Field {
			a := e.(Action)
			return []Field{
				{Name: "title", Text: a.Title, Weight: 0.4},
				{Name: "description", Text: a.Description, Weight: 0.3},
				{Name: "notes", Text: a.Notes, Weight: 0.2},
				{Name: "tags", Text: strings.Join(a.Tags, " "), Weight: 0.1},
			}
		},
	})
}
