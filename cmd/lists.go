/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// lists.go implements the "sift lists" command group for smart list
// management.
//
// Design: system list immutability is reported as a plain error rather
// than a usage failure; the registry's nil/false rejections map directly
// onto error messages here.

package cmd

import (
	"fmt"

	"github.com/jpl-au/sift/internal/entity"
	"github.com/jpl-au/sift/internal/filter"
	"github.com/jpl-au/sift/internal/format"
	"github.com/jpl-au/sift/internal/log"
	"github.com/jpl-au/sift/internal/smartlist"
	"github.com/spf13/cobra"
)

var (
	listName        string
	listDescription string
	listColor       string
	listIcon        string
	listContexts    []string
	listPriorities  []string
	listStatuses    []string
	listTags        []string
	listText        string
)

var listsCmd = &cobra.Command{
	Use:   "lists",
	Short: "Manage smart lists (saved filters)",
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

var listsLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all smart lists",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		lists := appInstance.Lists.Lists()
		log.Event("lists:ls", "list").Count(len(lists)).Write(nil)
		if JSON() {
			return PrintJSON(lists)
		}
		return format.SmartLists(Out(), lists)
	},
}

var listsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one smart list with its filters",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		l := appInstance.Lists.ByID(args[0])
		log.Event("lists:show", "read").List(args[0]).Write(nil)
		if l == nil {
			return PrintJSONError(fmt.Errorf("list %q not found", args[0]))
		}
		if JSON() {
			return PrintJSON(l)
		}
		return format.SmartList(Out(), l)
	},
}

var listsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user smart list",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		if listName == "" {
			return PrintJSONError(fmt.Errorf("--name is required"))
		}
		l := appInstance.Lists.Create(smartlist.Input{
			Name:        listName,
			Description: listDescription,
			Filters:     listCriteria(),
			Color:       listColor,
			Icon:        listIcon,
		})
		log.Event("lists:create", "create").List(l.ID).Write(nil)
		if JSON() {
			return PrintJSON(l)
		}
		fmt.Fprintf(Out(), "created %s  %s\n", l.ID, l.Name)
		return nil
	},
}

var listsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a user smart list",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		u := smartlist.Update{}
		if c.Flags().Changed("name") {
			u.Name = &listName
		}
		if c.Flags().Changed("description") {
			u.Description = &listDescription
		}
		if c.Flags().Changed("color") {
			u.Color = &listColor
		}
		if c.Flags().Changed("icon") {
			u.Icon = &listIcon
		}
		if criteriaFlagsChanged(c) {
			crit := listCriteria()
			u.Filters = &crit
		}

		l := appInstance.Lists.Update(args[0], u)
		log.Event("lists:update", "update").List(args[0]).Write(nil)
		if l == nil {
			return PrintJSONError(fmt.Errorf("list %q not found or is a system list (system lists are immutable)", args[0]))
		}
		if JSON() {
			return PrintJSON(l)
		}
		fmt.Fprintf(Out(), "updated %s  %s\n", l.ID, l.Name)
		return nil
	},
}

var listsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a user smart list",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		ok := appInstance.Lists.Delete(args[0])
		log.Event("lists:rm", "delete").List(args[0]).Write(nil)
		if !ok {
			return PrintJSONError(fmt.Errorf("list %q not found or is a system list (system lists cannot be deleted)", args[0]))
		}
		if JSON() {
			return PrintJSON(map[string]string{"deleted": args[0]})
		}
		fmt.Fprintf(Out(), "deleted %s\n", args[0])
		return nil
	},
}

var listsDupCmd = &cobra.Command{
	Use:   "dup <id>",
	Short: "Duplicate a smart list as a new user list",
	Long: `Duplicate a smart list as a new user list. System lists can be
duplicated; the copy is a normal user list. Without --name the copy is
named "<source> (copy)".`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		l := appInstance.Lists.Duplicate(args[0], listName)
		log.Event("lists:dup", "duplicate").List(args[0]).Write(nil)
		if l == nil {
			return PrintJSONError(fmt.Errorf("list %q not found", args[0]))
		}
		if JSON() {
			return PrintJSON(l)
		}
		fmt.Fprintf(Out(), "created %s  %s\n", l.ID, l.Name)
		return nil
	},
}

var listsApplyCmd = &cobra.Command{
	Use:   "apply <id>",
	Short: "Apply a smart list's filters to the workspace",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		l := appInstance.Lists.ByID(args[0])
		if l == nil {
			log.Event("lists:apply", "apply").List(args[0]).Write(fmt.Errorf("not found"))
			return PrintJSONError(fmt.Errorf("list %q not found", args[0]))
		}

		cols := filter.Apply(appInstance.Collections(), l.Filters)
		total := len(cols.Actions) + len(cols.Projects) + len(cols.Waiting) + len(cols.Calendar)
		log.Event("lists:apply", "apply").List(args[0]).Count(total).Write(nil)

		if JSON() {
			return PrintJSON(map[string]any{
				"list":     l,
				"actions":  cols.Actions,
				"projects": cols.Projects,
				"waiting":  cols.Waiting,
				"calendar": cols.Calendar,
			})
		}
		return format.Collections(Out(), cols)
	},
}

// listCriteria assembles filter criteria from the list flag values.
func listCriteria() filter.Criteria {
	c := filter.Criteria{
		Contexts:   listContexts,
		Tags:       listTags,
		SearchText: listText,
	}
	for _, p := range listPriorities {
		c.Priorities = append(c.Priorities, entity.Priority(p))
	}
	for _, s := range listStatuses {
		c.Statuses = append(c.Statuses, entity.ActionStatus(s))
	}
	return c
}

func criteriaFlagsChanged(c *cobra.Command) bool {
	for _, name := range []string{"context", "priority", "status", "tag", "text"} {
		if c.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func addCriteriaFlags(c *cobra.Command) {
	c.Flags().StringSliceVar(&listContexts, "context", nil, "Filter by context id")
	c.Flags().StringSliceVar(&listPriorities, "priority", nil, "Filter by priority")
	c.Flags().StringSliceVar(&listStatuses, "status", nil, "Filter by status")
	c.Flags().StringSliceVar(&listTags, "tag", nil, "Filter by tag")
	c.Flags().StringVar(&listText, "text", "", "Free-text filter dimension")
}

func init() {
	for _, c := range []*cobra.Command{listsCreateCmd, listsUpdateCmd, listsDupCmd} {
		c.Flags().StringVar(&listName, "name", "", "List name")
	}
	for _, c := range []*cobra.Command{listsCreateCmd, listsUpdateCmd} {
		c.Flags().StringVar(&listDescription, "description", "", "List description")
		c.Flags().StringVar(&listColor, "color", "", "Display colour (hex)")
		c.Flags().StringVar(&listIcon, "icon", "", "Display icon name")
		addCriteriaFlags(c)
	}

	listsCmd.AddCommand(listsLsCmd, listsShowCmd, listsCreateCmd, listsUpdateCmd, listsRmCmd, listsDupCmd, listsApplyCmd)
	rootCmd.AddCommand(listsCmd)
}
