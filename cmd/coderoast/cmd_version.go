package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/utkarsh5026/coderoast/cmd/ui"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.KeyValue("version", Version))
			fmt.Fprintln(out, ui.KeyValue("built", BuildTime))
			fmt.Fprintln(out, ui.KeyValue("commit", CommitSHA))
			fmt.Fprintln(out, ui.KeyValue("go", runtime.Version()))
			return nil
		},
	}
}
