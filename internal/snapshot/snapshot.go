// Package snapshot loads the entity data file. The file is a single YAML
// document holding every collection; the engine treats it as a read-only
// snapshot and rebuilds indexes from it. Editing the data is out of
// scope; another tool (or the user) owns the file.
package snapshot

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jpl-au/sift/internal/entity"
)

// Data is the on-disk shape of the entity data file.
type Data struct {
	Actions  []entity.Action       `yaml:"actions,omitempty"`
	Projects []entity.Project      `yaml:"projects,omitempty"`
	Waiting  []entity.WaitingItem  `yaml:"waiting,omitempty"`
	Calendar []entity.CalendarItem `yaml:"calendar,omitempty"`
	Inbox    []entity.InboxItem    `yaml:"inbox,omitempty"`
	Contexts []entity.Context      `yaml:"contexts,omitempty"`
}

// Load reads and parses the data file at path. A missing file is an
// error; callers that tolerate absence check os.IsNotExist themselves.
func Load(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading data file: %w", err)
	}
	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("parsing data file %s: %w", path, err)
	}
	return &d, nil
}

// Collections returns the entity collections of the snapshot.
func (d *Data) Collections() entity.Collections {
	return entity.Collections{
		Actions:  d.Actions,
		Projects: d.Projects,
		Waiting:  d.Waiting,
		Calendar: d.Calendar,
		Inbox:    d.Inbox,
	}
}

// ContextNames returns the display names of all contexts, in file order.
func (d *Data) ContextNames() []string {
	out := make([]string, len(d.Contexts))
	for i, c := range d.Contexts {
		out[i] = c.Name
	}
	return out
}

// ProjectTitles returns the titles of all projects, in file order.
func (d *Data) ProjectTitles() []string {
	out := make([]string, len(d.Projects))
	for i, p := range d.Projects {
		out[i] = p.Title
	}
	return out
}

// Tags returns the distinct tags used across actions and projects, in
// first-seen order.
func (d *Data) Tags() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(tags []string) {
		for _, t := range tags {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	for _, a := range d.Actions {
		add(a.Tags)
	}
	for _, p := range d.Projects {
		add(p.Tags)
	}
	return out
}
