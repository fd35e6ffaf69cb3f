/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Design: PersistentPreRunE handles workspace initialisation lazily - only
// commands that need the data file and store trigger it. This enables
// bootstrap commands (guide, config) to work without a data file existing.
// The noStoreCommands map controls which commands skip initialisation.

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/jpl-au/sift/internal/app"
	"github.com/jpl-au/sift/internal/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sift",
	Short: "Search and saved filters for GTD workspaces",
	Long:  `Fuzzy full-text search across actions, projects, waiting items, calendar items, and inbox captures, with smart lists (saved filters), search history, and facet generation.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}

		cmdName := topLevelCmdName(cmd)
		if !noStoreCommands[cmdName] {
			if err := initApp(); err != nil {
				if JSON() {
					_ = PrintJSON(map[string]string{"error": err.Error()})
					cmd.SilenceErrors = true
					cmd.SilenceUsage = true
				}
				return fmt.Errorf("opening workspace: %w", err)
			}
		}
		return nil
	},
}

// noStoreCommands work without a data file or store.
var noStoreCommands = map[string]bool{
	"guide":      true,
	"config":     true,
	"mcp":        true, // opens its own app so it can log startup failures over stderr
	"help":       true,
	"completion": true,
}

// appInstance is the lazily wired engine shared by all commands in one
// invocation.
var appInstance *app.App

func initApp() error {
	if appInstance != nil {
		return nil
	}
	a, err := app.New(DataPath(), DBPath())
	if err != nil {
		return err
	}
	if abs, err := filepath.Abs(filepath.Dir(DataPath())); err == nil {
		log.SetWorkspace(abs)
	}
	appInstance = a
	return nil
}

// topLevelCmdName returns the name of the top-level command (direct child of root).
// For "sift lists rm <id>", returns "lists".
func topLevelCmdName(cmd *cobra.Command) string {
	for cmd.HasParent() && cmd.Parent().HasParent() {
		cmd = cmd.Parent()
	}
	return cmd.Name()
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging, executes the command, and ensures the store is
// closed before exit. Exit code 1 indicates error.
func Execute() {
	// Initialise audit logger (warn if it fails, but continue)
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}
	defer log.Close()

	err := rootCmd.Execute()

	if appInstance != nil {
		if closeErr := appInstance.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "warning: closing store: %v\n", closeErr)
		}
	}

	if err != nil {
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing.
func RootCmd() *cobra.Command {
	return rootCmd
}
