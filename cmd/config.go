/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// config.go implements the "sift config" command for reading and writing
// configuration keys.

package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jpl-au/sift/internal/config"
	"github.com/spf13/cobra"
)

var configLocal bool

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set configuration values",
	Long: `Get or set configuration values.

  sift config                      # show all values
  sift config search.limit         # show one value
  sift config search.limit 100     # set a value (global by default)
  sift config data.path gtd.yaml --local

Valid keys: ` + strings.Join(config.ValidKeys(), ", "),
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		cfg, err := config.Load()
		if err != nil {
			return PrintJSONError(err)
		}
		all := cfg.All()
		if JSON() {
			return PrintJSON(all)
		}
		keys := make([]string, 0, len(all))
		for k := range all {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(Out(), "%s = %s\n", k, all[k])
		}
		return nil

	case 1:
		cfg, err := config.Load()
		if err != nil {
			return PrintJSONError(err)
		}
		v, err := cfg.Get(args[0])
		if err != nil {
			return PrintJSONError(err)
		}
		if JSON() {
			return PrintJSON(map[string]string{args[0]: v})
		}
		fmt.Fprintln(Out(), v)
		return nil

	default:
		scope := config.ScopeGlobal
		if configLocal {
			scope = config.ScopeLocal
		}
		cfg, err := config.LoadScope(scope)
		if err != nil {
			return PrintJSONError(err)
		}
		if err := cfg.Set(args[0], args[1]); err != nil {
			return PrintJSONError(err)
		}
		if err := cfg.Save(); err != nil {
			return PrintJSONError(err)
		}
		if JSON() {
			return PrintJSON(map[string]string{args[0]: args[1]})
		}
		fmt.Fprintf(Out(), "%s = %s\n", args[0], args[1])
		return nil
	}
}

func init() {
	configCmd.Flags().BoolVar(&configLocal, "local", false, "Write to .sift/config.yaml instead of ~/.sift/config.yaml")
	rootCmd.AddCommand(configCmd)
}
