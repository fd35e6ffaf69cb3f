/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// history.go implements the "sift history" command group.

package cmd

import (
	"fmt"

	"github.com/jpl-au/sift/internal/format"
	"github.com/jpl-au/sift/internal/log"
	"github.com/spf13/cobra"
)

var (
	historyLimit int
	popularLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage search history",
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

var historyLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List recent searches, newest first",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		items := appInstance.History.Items()
		if historyLimit > 0 && len(items) > historyLimit {
			items = items[:historyLimit]
		}
		log.Event("history:ls", "list").Count(len(items)).Write(nil)
		if JSON() {
			return PrintJSON(items)
		}
		return format.HistoryItems(Out(), items)
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all search history",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		appInstance.History.Clear()
		log.Event("history:clear", "clear").Write(nil)
		if JSON() {
			return PrintJSON(map[string]string{"cleared": "all"})
		}
		fmt.Fprintln(Out(), "history cleared")
		return nil
	},
}

var historyRmCmd = &cobra.Command{
	Use:   "rm <query>",
	Short: "Remove one query from history",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		appInstance.History.Remove(args[0])
		log.Event("history:rm", "delete").Query(args[0]).Write(nil)
		if JSON() {
			return PrintJSON(map[string]string{"removed": args[0]})
		}
		fmt.Fprintf(Out(), "removed %q\n", args[0])
		return nil
	},
}

var historyPopularCmd = &cobra.Command{
	Use:   "popular",
	Short: "Show the most frequently run queries this session",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		popular := appInstance.History.Popular(popularLimit)
		log.Event("history:popular", "list").Count(len(popular)).Write(nil)
		if JSON() {
			return PrintJSON(popular)
		}
		return format.PopularSearches(Out(), popular)
	},
}

func init() {
	historyLsCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "Maximum entries to show")
	historyPopularCmd.Flags().IntVarP(&popularLimit, "limit", "n", 10, "Maximum entries to show")

	historyCmd.AddCommand(historyLsCmd, historyClearCmd, historyRmCmd, historyPopularCmd)
	rootCmd.AddCommand(historyCmd)
}
