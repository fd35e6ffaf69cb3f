// Package format provides output formatting utilities for CLI display.
//
// Centralises formatting logic so that command implementations focus on
// business logic while this package handles presentation concerns like
// column alignment and score rendering.
package format

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jpl-au/sift/internal/entity"
	"github.com/jpl-au/sift/internal/facet"
	"github.com/jpl-au/sift/internal/filter"
	"github.com/jpl-au/sift/internal/history"
	"github.com/jpl-au/sift/internal/search"
	"github.com/jpl-au/sift/internal/smartlist"
)

// SearchResults prints ranked hits with type, score, and matched fields.
func SearchResults(w io.Writer, results []search.Result) error {
	if len(results) == 0 {
		fmt.Fprintln(w, "no matches")
		return nil
	}

	// Find max title length for alignment
	maxTitle := 5 // minimum "TITLE"
	for _, r := range results {
		if len(r.Entity.EntityTitle()) > maxTitle {
			maxTitle = len(r.Entity.EntityTitle())
		}
	}

	fmt.Fprintf(w, "%-8s  %-8s  %5s  %-*s  %s\n", "ID", "TYPE", "SCORE", maxTitle, "TITLE", "FIELDS")
	for _, r := range results {
		fmt.Fprintf(w, "%-8s  %-8s  %.3f  %-*s  %s\n",
			r.Entity.EntityID(), r.Type, r.Score, maxTitle, r.Entity.EntityTitle(),
			strings.Join(r.Fields, ","))
	}
	return nil
}

// SmartLists prints smart lists in long format.
func SmartLists(w io.Writer, lists []smartlist.SmartList) error {
	if len(lists) == 0 {
		return nil
	}

	maxName := 4 // minimum "NAME"
	for _, l := range lists {
		if len(l.Name) > maxName {
			maxName = len(l.Name)
		}
	}

	fmt.Fprintf(w, "%-22s  %-*s  %-6s  %s\n", "ID", maxName, "NAME", "KIND", "DESCRIPTION")
	for _, l := range lists {
		kind := "user"
		if l.IsSystem {
			kind = "system"
		}
		fmt.Fprintf(w, "%-22s  %-*s  %-6s  %s\n", l.ID, maxName, l.Name, kind, l.Description)
	}
	return nil
}

// SmartList prints one smart list with its criteria dimensions.
func SmartList(w io.Writer, l *smartlist.SmartList) error {
	fmt.Fprintf(w, "ID:          %s\n", l.ID)
	fmt.Fprintf(w, "Name:        %s\n", l.Name)
	if l.Description != "" {
		fmt.Fprintf(w, "Description: %s\n", l.Description)
	}
	kind := "user"
	if l.IsSystem {
		kind = "system"
	}
	fmt.Fprintf(w, "Kind:        %s\n", kind)
	if l.Color != "" {
		fmt.Fprintf(w, "Color:       %s\n", l.Color)
	}
	if l.Icon != "" {
		fmt.Fprintf(w, "Icon:        %s\n", l.Icon)
	}
	fmt.Fprintf(w, "Filters:     %s\n", criteriaSummary(l.Filters))
	return nil
}

// criteriaSummary renders active filter dimensions on one line.
func criteriaSummary(c filter.Criteria) string {
	if c.IsEmpty() {
		return "(none)"
	}
	var parts []string
	if len(c.Contexts) > 0 {
		parts = append(parts, "contexts="+strings.Join(c.Contexts, ","))
	}
	if len(c.Priorities) > 0 {
		ps := make([]string, len(c.Priorities))
		for i, p := range c.Priorities {
			ps[i] = string(p)
		}
		parts = append(parts, "priorities="+strings.Join(ps, ","))
	}
	if len(c.Statuses) > 0 {
		ss := make([]string, len(c.Statuses))
		for i, s := range c.Statuses {
			ss[i] = string(s)
		}
		parts = append(parts, "statuses="+strings.Join(ss, ","))
	}
	if c.DateRange != nil {
		parts = append(parts, "dates="+rangeSummary(*c.DateRange))
	}
	if len(c.Tags) > 0 {
		parts = append(parts, "tags="+strings.Join(c.Tags, ","))
	}
	if c.SearchText != "" {
		parts = append(parts, fmt.Sprintf("text=%q", c.SearchText))
	}
	return strings.Join(parts, " ")
}

func rangeSummary(r filter.DateRange) string {
	const day = "2006-01-02"
	start, end := "*", "*"
	if r.Start != nil {
		start = r.Start.Format(day)
	}
	if r.End != nil {
		end = r.End.Format(day)
	}
	return start + ".." + end
}

// Collections prints filtered entity collections grouped by type.
func Collections(w io.Writer, cols entity.Collections) error {
	printGroup := func(label string, entities []entity.Entity) {
		if len(entities) == 0 {
			return
		}
		fmt.Fprintf(w, "%s (%d)\n", label, len(entities))
		for _, e := range entities {
			fmt.Fprintf(w, "  %-8s  %s\n", e.EntityID(), e.EntityTitle())
		}
	}
	printGroup("Actions", cols.Entities(entity.TypeAction))
	printGroup("Projects", cols.Entities(entity.TypeProject))
	printGroup("Waiting", cols.Entities(entity.TypeWaiting))
	printGroup("Calendar", cols.Entities(entity.TypeCalendar))
	printGroup("Inbox", cols.Entities(entity.TypeInbox))
	return nil
}

// HistoryItems prints search history, newest first.
func HistoryItems(w io.Writer, items []history.Item) error {
	for _, it := range items {
		fmt.Fprintf(w, "%s  %4d  %s\n",
			it.Timestamp.Local().Format("2006-01-02 15:04"),
			it.ResultCount,
			it.Query,
		)
	}
	return nil
}

// PopularSearches prints popularity rankings.
func PopularSearches(w io.Writer, popular []history.PopularSearch) error {
	for _, p := range popular {
		fmt.Fprintf(w, "%4d  %s\n", p.Count, p.Query)
	}
	return nil
}

// Suggestions prints completion suggestions with their kinds.
func Suggestions(w io.Writer, suggestions []history.Suggestion) error {
	for _, s := range suggestions {
		fmt.Fprintf(w, "%-8s  %s\n", s.Kind, s.Text)
	}
	return nil
}

// Facets prints filter option groups with counts.
func Facets(w io.Writer, groups []facet.Group) error {
	for _, g := range groups {
		fmt.Fprintf(w, "%s\n", g.Label)
		for _, o := range g.Options {
			if g.Counted {
				fmt.Fprintf(w, "  %4d  %s\n", o.Count, o.Label)
			} else {
				fmt.Fprintf(w, "        %s\n", o.Label)
			}
		}
	}
	return nil
}

// Timestamp renders a time for display, local and minute-precise.
func Timestamp(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}
