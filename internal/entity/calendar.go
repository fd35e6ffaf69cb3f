package entity

import (
	"strings"
	"time"
)

// CalendarItem is a day- or time-specific commitment. Date filters match
// its start time only.
type CalendarItem struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Location    string     `json:"location,omitempty" yaml:"location,omitempty"`
	StartTime   time.Time  `json:"startTime" yaml:"startTime"`
	EndTime     *time.Time `json:"endTime,omitempty" yaml:"endTime,omitempty"`
	CreatedAt   time.Time  `json:"createdAt" yaml:"createdAt"`
}

func (c CalendarItem) EntityType() Type    { return TypeCalendar }
func (c CalendarItem) EntityID() string    { return c.ID }
func (c CalendarItem) EntityTitle() string { return c.Title }

// SearchText returns the concatenated free-text surface used by the
// filter evaluator's searchText dimension.
func (c CalendarItem) SearchText() string {
	return strings.Join([]string{c.Title, c.Description, c.Location}, " ")
}

func init() {
	register(Descriptor{
		Type: TypeCalendar,
		Fields: func(e Entity) []Field {
			c := e.(CalendarItem)
			return []Field{
				{Name: "title", Text: c.Title, Weight: 0.4},
				{Name: "description", Text: c.Description, Weight: 0.3},
				{Name: "location", Text: c.Location, Weight: 0.1},
			}
		},
	})
}
