package main

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/utkarsh5026/coderoast/cmd/ui"
	"github.com/utkarsh5026/coderoast/pkg/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit configuration",
		Long: `Inspect and edit CodeRoast configuration.

Values are resolved from, highest precedence first: command-line flags,
CODEROAST_* environment variables (and .env), the project file
(.coderoast.json or .coderoast.yaml), the user file and the builtin defaults.`,
	}

	cmd.AddCommand(newConfigListCmd(a))
	cmd.AddCommand(newConfigGetCmd(a))
	cmd.AddCommand(newConfigSetCmd(a))
	cmd.AddCommand(newConfigUnsetCmd(a))

	return cmd
}

func newConfigListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List every effective value and its source",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Key", "Value", "Level", "Source")
			for _, entry := range a.manager.List() {
				table.Append(entry.Key, entry.Value, entry.Level.String(), entry.Source.String())
			}
			return table.Render()
		},
	}
}

func newConfigGetCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Show the value of a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			out := cmd.OutOrStdout()

			if all {
				entries := a.manager.GetAll(key)
				if len(entries) == 0 {
					return config.NewNotFoundError(key, "")
				}
				for _, entry := range entries {
					fmt.Fprintf(out, "%s %s\n", ui.KeyValue(key, entry.Value), ui.Gray("("+entry.Level.String()+")"))
				}
				return nil
			}

			entry := a.manager.Get(key)
			if entry == nil {
				return config.NewNotFoundError(key, "")
			}
			fmt.Fprintln(out, entry.Value)
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Show the value at every level that sets it")

	return cmd
}

func newConfigSetCmd(a *app) *cobra.Command {
	var scope string

	cmd := &cobra.Command{
		Use:     "set <key> <value>",
		Short:   "Write a value to the project or user file",
		Example: "  coderoast config set output.snippet true --scope project",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := writableLevel(scope)
			if err != nil {
				return err
			}
			if err := a.manager.Set(args[0], args[1], target); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessMessage("Set", ui.KeyValue(args[0], args[1]), "("+target.String()+")"))
			return nil
		},
	}
	cmd.Flags().StringVar(&scope, "scope", "user", "File to write (project, user)")

	return cmd
}

func newConfigUnsetCmd(a *app) *cobra.Command {
	var scope string

	cmd := &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a value from the project or user file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := writableLevel(scope)
			if err != nil {
				return err
			}
			if err := a.manager.Unset(args[0], target); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessMessage("Unset", args[0], "("+target.String()+")"))
			return nil
		},
	}
	cmd.Flags().StringVar(&scope, "scope", "user", "File to edit (project, user)")

	return cmd
}
