/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// suggest.go implements the "sift suggest" command.

package cmd

import (
	"github.com/jpl-au/sift/internal/format"
	"github.com/jpl-au/sift/internal/log"
	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <partial-query>",
	Short: "Suggest completions for a partial query",
	Long: `Suggest completions for a partial query, blending matching history
entries with known context names (@-prefixed), project titles and tags
(#-prefixed), capped at ten suggestions.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		suggestions := appInstance.History.Suggestions(args[0], appInstance.SuggestionData())
		log.Event("suggest:run", "suggest").Query(args[0]).Count(len(suggestions)).Write(nil)
		if JSON() {
			return PrintJSON(suggestions)
		}
		return format.Suggestions(Out(), suggestions)
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}
