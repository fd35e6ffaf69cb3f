/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// search.go implements the "sift search" command.

package cmd

import (
	"fmt"
	"strings"

	"github.com/jpl-au/sift/internal/entity"
	"github.com/jpl-au/sift/internal/filter"
	"github.com/jpl-au/sift/internal/format"
	"github.com/jpl-au/sift/internal/log"
	"github.com/jpl-au/sift/internal/search"
	"github.com/spf13/cobra"
)

var (
	searchTypes      []string
	searchLimit      int
	searchContexts   []string
	searchPriorities []string
	searchStatuses   []string
	searchTags       []string
	searchList       string
	searchHighlight  bool
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy full-text search across the workspace",
	Long: `Fuzzy full-text search across actions, projects, waiting items, and
calendar items. Inbox captures are searched only when requested with
--type inbox.

Results are ranked by match score (0 is an exact match) and recorded in
search history.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(c *cobra.Command, args []string) error {
	query := args[0]

	opts := search.Options{Limit: searchLimit}
	for _, t := range searchTypes {
		opts.Types = append(opts.Types, entity.Type(t))
	}
	var crit filter.Criteria
	if searchList != "" {
		sl := appInstance.Lists.ByID(searchList)
		if sl == nil {
			err := fmt.Errorf("smart list not found: %s", searchList)
			log.Event("search:run", "search").Query(query).List(searchList).Write(err)
			return err
		}
		crit = sl.Filters
	}
	// Explicit dimension flags override the same dimension of --list.
	if len(searchContexts) > 0 {
		crit.Contexts = searchContexts
	}
	if len(searchTags) > 0 {
		crit.Tags = searchTags
	}
	if len(searchPriorities) > 0 {
		crit.Priorities = nil
		for _, p := range searchPriorities {
			crit.Priorities = append(crit.Priorities, entity.Priority(p))
		}
	}
	if len(searchStatuses) > 0 {
		crit.Statuses = nil
		for _, s := range searchStatuses {
			crit.Statuses = append(crit.Statuses, entity.ActionStatus(s))
		}
	}
	if !crit.IsEmpty() {
		opts.Filters = &crit
	}

	results := appInstance.Engine.Search(query, opts)

	log.Event("search:run", "search").Query(query).Count(len(results)).Write(nil)

	if JSON() {
		return PrintJSON(results)
	}

	if searchHighlight {
		for _, r := range results {
			fmt.Fprintf(Out(), "%-8s  %-8s  %.3f  %s\n",
				r.Entity.EntityID(), r.Type, r.Score,
				search.Highlight(r.Entity.EntityTitle(), query))
		}
		return nil
	}
	return format.SearchResults(Out(), results)
}

func init() {
	searchCmd.Flags().StringSliceVarP(&searchTypes, "type", "t", nil,
		fmt.Sprintf("Entity types to search (%s)", strings.Join(typeNames(), ", ")))
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "Maximum results (default 50)")
	searchCmd.Flags().StringSliceVar(&searchContexts, "context", nil, "Filter by context id")
	searchCmd.Flags().StringSliceVar(&searchPriorities, "priority", nil, "Filter by priority (low, medium, high)")
	searchCmd.Flags().StringSliceVar(&searchStatuses, "status", nil, "Filter by status (next, waiting, scheduled, completed, cancelled)")
	searchCmd.Flags().StringSliceVar(&searchTags, "tag", nil, "Filter by tag")
	searchCmd.Flags().StringVar(&searchList, "list", "", "Post-filter through a smart list's criteria")
	searchCmd.Flags().BoolVar(&searchHighlight, "highlight", false, "Wrap matched terms in markers")

	rootCmd.AddCommand(searchCmd)
}

func typeNames() []string {
	types := entity.Types()
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}
