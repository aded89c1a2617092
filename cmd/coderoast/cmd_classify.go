package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/utkarsh5026/coderoast/cmd/ui"
	"github.com/utkarsh5026/coderoast/pkg/classify"
)

func newClassifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <kind>...",
		Short: "Show which category an error kind maps to",
		Long: `Show the insult category each error kind maps to. Kinds are matched
case-insensitively; unknown kinds fall back to the general category.`,
		Example: `  coderoast classify DIVIDE_BY_ZERO NIL_POINTER
  coderoast classify teapot`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			classifier := a.roaster.Engine().Classifier()
			out := cmd.OutOrStdout()

			for _, arg := range args {
				kind := classify.Kind(arg)
				line := ui.FormatMapping(string(kind.Normalize()), classifier.Classify(kind))
				if !classifier.Known(kind) {
					line += " " + ui.Magenta("(fallback)")
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}
