package entity

import (
	"strings"
	"time"
)

// Project is a multi-step outcome composed of actions.
type Project struct {
	ID          string        `json:"id" yaml:"id"`
	Title       string        `json:"title" yaml:"title"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Notes       string        `json:"notes,omitempty" yaml:"notes,omitempty"`
	Tags        []string      `json:"tags,omitempty" yaml:"tags,omitempty"`
	Status      ProjectStatus `json:"status" yaml:"status"`
	CompletedAt *time.Time    `json:"completedAt,omitempty" yaml:"completedAt,omitempty"`
	CreatedAt   time.Time     `json:"createdAt" yaml:"createdAt"`
}

func (p Project) EntityType() Type    { return TypeProject }
func (p Project) EntityID() string    { return p.ID }
func (p Project) EntityTitle() string { return p.Title }

// SearchText returns the concatenated free-text surface used by the
// filter evaluator's searchText dimension.
func (p Project) SearchText() string {
	return strings.Join([]string{p.Title, p.Description, p.Notes, strings.Join(p.Tags, " ")}, " ")
}

func init() {
	register(Descriptor{
		Type: TypeProject,
		Fields: func(e Entity) []Field {
			p := e.(Project)
			return []Field{
				{Name: "title", Text: p.Title, Weight: 0.4},
				{Name: "description", Text: p.Description, Weight: 0.3},
				{Name: "notes", Text: p.Notes, Weight: 0.2},
				{Name: "tags", Text: strings.Join(p.Tags, " "), Weight: 0.1},
			}
		},
	})
}
