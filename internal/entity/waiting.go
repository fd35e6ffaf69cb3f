package entity

import (
	"strings"
	"time"
)

// WaitingItem is a delegated task pending a response from a third party.
// Waiting items carry no context, priority, status, or tags; those filter
// dimensions never apply to them.
type WaitingItem struct {
	ID           string     `json:"id" yaml:"id"`
	Title        string     `json:"title" yaml:"title"`
	Description  string     `json:"description,omitempty" yaml:"description,omitempty"`
	WaitingFor   string     `json:"waitingFor,omitempty" yaml:"waitingFor,omitempty"`
	Notes        string     `json:"notes,omitempty" yaml:"notes,omitempty"`
	FollowUpDate *time.Time `json:"followUpDate,omitempty" yaml:"followUpDate,omitempty"`
	CreatedAt    time.Time  `json:"createdAt" yaml:"createdAt"`
}

func (w WaitingItem) EntityType() Type    { return TypeWaiting }
func (w WaitingItem) EntityID() string    { return w.ID }
func (w WaitingItem) EntityTitle() string { return w.Title }

// SearchText returns the concatenated free-text surface used by the
// filter evaluator's searchText dimension.
func (w WaitingItem) SearchText() string {
	return strings.Join([]string{w.Title, w.Description, w.WaitingFor, w.Notes}, " ")
}

func init() {
	register(Descriptor{
		Type: TypeWaiting,
		Fields: func(e Entity) []Field {
			w := e.(WaitingItem)
			return []Field{
				{Name: "title", Text: w.Title, Weight: 0.4},
				{Name: "description", Text: w.Description, Weight: 0.3},
				{Name: "waitingFor", Text: w.WaitingFor, Weight: 0.3},
				{Name: "notes", Text: w.Notes, Weight: 0.2},
			}
		},
	})
}
