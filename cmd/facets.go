/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// facets.go implements the "sift facets" command.

package cmd

import (
	"github.com/jpl-au/sift/internal/facet"
	"github.com/jpl-au/sift/internal/format"
	"github.com/jpl-au/sift/internal/log"
	"github.com/spf13/cobra"
)

var facetsCmd = &cobra.Command{
	Use:   "facets",
	Short: "Show filter options with usage counts",
	Long: `Show filter option groups derived from the workspace: contexts,
priorities, and statuses with usage counts, the twenty most frequent
tags, and the fixed relative date buckets.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		groups := facet.Generate(appInstance.Data.Actions, appInstance.Data.Contexts)
		log.Event("facets:run", "list").Count(len(groups)).Write(nil)
		if JSON() {
			return PrintJSON(groups)
		}
		return format.Facets(Out(), groups)
	},
}

func init() {
	rootCmd.AddCommand(facetsCmd)
}
