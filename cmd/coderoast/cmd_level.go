package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/utkarsh5026/coderoast/cmd/ui"
	"github.com/utkarsh5026/coderoast/pkg/config"
	"github.com/utkarsh5026/coderoast/pkg/level"
)

func newLevelCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "level",
		Short: "Show or persist the roast level",
		Long: `Show the effective roast level and where it comes from, or persist a
new level to the project or user configuration file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showLevel(cmd, a)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Show the effective roast level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showLevel(cmd, a)
		},
	})

	var scope string
	setCmd := &cobra.Command{
		Use:       "set <level>",
		Short:     "Persist the roast level",
		Example:   "  coderoast level set brutal --scope project",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"mild", "medium", "brutal"},
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := level.Parse(args[0])
			if err != nil {
				return err
			}
			target, err := writableLevel(scope)
			if err != nil {
				return err
			}
			if err := a.manager.Set(config.KeyRoastLevel, lvl.String(), target); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessMessage("Roast level set to", lvl.String(), "("+target.String()+")"))
			return nil
		},
	}
	setCmd.Flags().StringVar(&scope, "scope", "user", "Where to persist the level (project, user)")
	cmd.AddCommand(setCmd)

	return cmd
}

func showLevel(cmd *cobra.Command, a *app) error {
	lvl := a.roaster.Engine().RoastLevel()
	source := config.BuiltinLevel.String()
	if entry := a.manager.Get(config.KeyRoastLevel); entry != nil {
		source = entry.Level.String()
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Roast level: %s %s\n", ui.LevelBadge(lvl), ui.Gray("(from "+source+")"))
	return nil
}
