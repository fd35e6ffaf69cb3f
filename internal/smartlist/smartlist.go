// Package smartlist manages named, persisted saved filters ("smart
// lists"). A fixed set of system lists is rebuilt from templates every
// time the registry is constructed; user-defined lists are layered on top
// and persisted through the durable store.
//
// System lists are immutable through the API: update and delete are
// defined rejections (nil/false), never exceptions. Duplication is
// allowed even for system lists; the copy is always a user list.
package smartlist

import (
	"crypto/rand"
	"encoding/base32"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jpl-au/sift/internal/filter"
	"github.com/jpl-au/sift/internal/store"
)

// SmartList is a named, saved filter. System lists are reconstructed from
// templates at registry construction time and never persisted; any
// "now"-relative date ranges in their criteria are computed at that
// instant and can go stale within a long-lived session.
type SmartList struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Filters     filter.Criteria `json:"filters"`
	Color       string          `json:"color,omitempty"`
	Icon        string          `json:"icon,omitempty"`
	CreatedAt   time.Time       `json:"-"`
	UpdatedAt   time.Time       `json:"-"`
	IsSystem    bool            `json:"isSystem"`
}

// listJSON is the persisted shape, with ISO 8601 date fields.
type listJSON struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Filters     filter.Criteria `json:"filters"`
	Color       string          `json:"color,omitempty"`
	Icon        string          `json:"icon,omitempty"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt"`
}

// Input carries the caller-supplied fields for Create.
type Input struct {
	Name        string
	Description string
	Filters     filter.Criteria
	Color       string
	Icon        string
}

// Update carries partial updates; nil fields are left unchanged.
type Update struct {
	Name        *string
	Description *string
	Filters     *filter.Criteria
	Color       *string
	Icon        *string
}

// Registry owns all smart lists for a session. Construct once at the
// composition root and pass the handle to consumers.
type Registry struct {
	st    store.Store
	now   func() time.Time
	lists []SmartList
}

// Option customises Registry construction.
type Option func(*Registry)

// WithClock overrides the time source used for system-list date ranges
// and timestamps. Tests use this for determinism.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

// NewRegistry builds the system lists at the current instant and merges
// in persisted user lists. Malformed or unreadable persisted data is
// logged as a warning and treated as an empty user list set.
func NewRegistry(st store.Store, opts ...Option) *Registry {
	r := &Registry{st: st, now: time.Now}
	for _, o := range opts {
		o(r)
	}
	r.lists = systemLists(r.now())
	r.lists = append(r.lists, r.loadUserLists()...)
	return r
}

func (r *Registry) loadUserLists() []SmartList {
	data, err := r.st.Get(store.KeySmartLists)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: reading smart lists: %v\n", err)
		return nil
	}

	var raw []listJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		fmt.Fprintf(os.Stderr, "warning: malformed smart lists, starting empty: %v\n", err)
		return nil
	}

	lists := make([]SmartList, 0, len(raw))
	for _, l := range raw {
		created, err1 := time.Parse(time.RFC3339, l.CreatedAt)
		updated, err2 := time.Parse(time.RFC3339, l.UpdatedAt)
		if err1 != nil || err2 != nil {
			fmt.Fprintf(os.Stderr, "warning: dropping smart list %q with bad timestamps\n", l.Name)
			continue
		}
		lists = append(lists, SmartList{
			ID:          l.ID,
			Name:        l.Name,
			Description: l.Description,
			Filters:     l.Filters,
			Color:       l.Color,
			Icon:        l.Icon,
			CreatedAt:   created,
			UpdatedAt:   updated,
			IsSystem:    false,
		})
	}
	return lists
}

// Lists returns all smart lists, system lists first.
func (r *Registry) Lists() []SmartList {
	out := make([]SmartList, len(r.lists))
	copy(out, r.lists)
	return out
}

// SystemLists returns the system-defined lists.
func (r *Registry) SystemLists() []SmartList {
	var out []SmartList
	for _, l := range r.lists {
		if l.IsSystem {
			out = append(out, l)
		}
	}
	return out
}

// UserLists returns the user-defined lists.
func (r *Registry) UserLists() []SmartList {
	var out []SmartList
	for _, l := range r.lists {
		if !l.IsSystem {
			out = append(out, l)
		}
	}
	return out
}

// ByID returns the list with the given id, or nil.
func (r *Registry) ByID(id string) *SmartList {
	for i := range r.lists {
		if r.lists[i].ID == id {
			l := r.lists[i]
			return &l
		}
	}
	return nil
}

// Create adds a user list with a fresh id and timestamps and persists the
// user list set synchronously.
func (r *Registry) Create(in Input) *SmartList {
	now := r.now()
	l := SmartList{
		ID:          newID(),
		Name:        in.Name,
		Description: in.Description,
		Filters:     in.Filters,
		Color:       in.Color,
		Icon:        in.Icon,
		CreatedAt:   now,
		UpdatedAt:   now,
		IsSystem:    false,
	}
	r.lists = append(r.lists, l)
	r.persist()
	return &l
}

// Update merges u into the target list and refreshes UpdatedAt. Returns
// nil without effect when the target is a system list or does not exist.
func (r *Registry) Update(id string, u Update) *SmartList {
	for i := range r.lists {
		if r.lists[i].ID != id {
			continue
		}
		if r.lists[i].IsSystem {
			return nil
		}
		l := &r.lists[i]
		if u.Name != nil {
			l.Name = *u.Name
		}
		if u.Description != nil {
			l.Description = *u.Description
		}
		if u.Filters != nil {
			l.Filters = *u.Filters
		}
		if u.Color != nil {
			l.Color = *u.Color
		}
		if u.Icon != nil {
			l.Icon = *u.Icon
		}
		l.UpdatedAt = r.now()
		r.persist()
		out := *l
		return &out
	}
	return nil
}

// Delete removes a user list. Returns false for system lists and unknown
// ids.
func (r *Registry) Delete(id string) bool {
	for i := range r.lists {
		if r.lists[i].ID != id {
			continue
		}
		if r.lists[i].IsSystem {
			return false
		}
		r.lists = append(r.lists[:i], r.lists[i+1:]...)
		r.persist()
		return true
	}
	return false
}

// Duplicate copies a list's filters and cosmetics under a new id. The
// copy is always a user list, even when the source is a system list.
// When name is empty the copy is named "<source> (copy)".
func (r *Registry) Duplicate(id, name string) *SmartList {
	src := r.ByID(id)
	if src == nil {
		return nil
	}
	if name == "" {
		name = src.Name + " (copy)"
	}
	return r.Create(Input{
		Name:        name,
		Description: src.Description,
		Filters:     src.Filters,
		Color:       src.Color,
		Icon:        src.Icon,
	})
}

func (r *Registry) persist() {
	user := r.UserLists()
	raw := make([]listJSON, len(user))
	for i, l := range user {
		raw[i] = listJSON{
			ID:          l.ID,
			Name:        l.Name,
			Description: l.Description,
			Filters:     l.Filters,
			Color:       l.Color,
			Icon:        l.Icon,
			CreatedAt:   l.CreatedAt.UTC().Format(time.RFC3339),
			UpdatedAt:   l.UpdatedAt.UTC().Format(time.RFC3339),
		}
	}
	data, err := json.Marshal(raw)
	if err == nil {
		err = r.st.Put(store.KeySmartLists, data)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: persisting smart lists: %v\n", err)
	}
}

// newID returns a random 8-character lowercase base32 identifier.
func newID() string {
	b := make([]byte, 5) // 5 bytes = 8 base32 chars
	if _, err := rand.Read(b); err != nil {
		panic("smartlist: reading random bytes: " + err.Error())
	}
	return strings.ToLower(base32.StdEncoding.EncodeToString(b))
}
