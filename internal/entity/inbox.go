package entity

import (
	"strings"
	"time"
)

// InboxItem is a raw captured thought awaiting processing. Inbox items are
// reachable through fuzzy search only; the filter evaluator has no inbox
// specialisation.
type InboxItem struct {
	ID        string    `json:"id" yaml:"id"`
	Content   string    `json:"content" yaml:"content"`
	Processed bool      `json:"processed,omitempty" yaml:"processed,omitempty"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

func (i InboxItem) EntityType() Type { return TypeInbox }
func (i InboxItem) EntityID() string { return i.ID }

// EntityTitle returns a truncated single-line view of the captured content.
func (i InboxItem) EntityTitle() string {
	const maxLabel = 60
	label := i.Content
	if nl := strings.IndexByte(label, '\n'); nl >= 0 {
		label = label[:nl]
	}
	if len(label) > maxLabel {
		label = label[:maxLabel-3] + "..."
	}
	return label
}

func init() {
	register(Descriptor{
		Type: TypeInbox,
		Fields: func(e Entity) []Field {
			i := e.(InboxItem)
			return []Field{
				{Name: "content", Text: i.Content, Weight: 0.4},
			}
		},
	})
}
