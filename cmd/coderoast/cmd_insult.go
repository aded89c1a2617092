package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/utkarsh5026/coderoast/cmd/ui"
	"github.com/utkarsh5026/coderoast/pkg/classify"
	"github.com/utkarsh5026/coderoast/pkg/level"
	"github.com/utkarsh5026/coderoast/pkg/roast"
)

func newInsultCmd(a *app) *cobra.Command {
	var (
		category string
		kind     string
		lvlName  string
		count    int
	)

	cmd := &cobra.Command{
		Use:   "insult",
		Short: "Print a random insult",
		Long: `Print a random insult from the corpus.

By default the insult comes from the generic pool at the configured roast
level. Use --category to pick from one category, or --error to pick the
insult an error kind would get.`,
		Example: `  coderoast insult
  coderoast insult --level brutal
  coderoast insult --category syntax
  coderoast insult --error DIVIDE_BY_ZERO -n 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", count)
			}

			engine := a.roaster.Engine()
			if lvlName != "" {
				lvl, err := level.Parse(lvlName)
				if err != nil {
					return err
				}
				restore, err := engine.Override(lvl)
				if err != nil {
					return err
				}
				defer restore()
			}

			for i := 0; i < count; i++ {
				text, tag, err := pickInsult(engine, category, classify.Kind(kind))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.FormatInsult(text, tag))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Pick from this category")
	cmd.Flags().StringVarP(&kind, "error", "e", "", "Pick the insult this error kind gets (e.g. DIVIDE_BY_ZERO)")
	cmd.Flags().StringVarP(&lvlName, "level", "l", "", "Roast level for this insult (mild, medium, brutal)")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of insults to print")
	cmd.MarkFlagsMutuallyExclusive("category", "error")

	return cmd
}

// pickInsult returns an insult and the tag it is printed with.
func pickInsult(engine *roast.Engine, category string, kind classify.Kind) (string, string, error) {
	switch {
	case category != "":
		text, err := engine.GetInsultByCategory(category)
		return text, category, err
	case kind != "":
		r, err := engine.RoastKind(kind)
		if err != nil {
			return "", "", err
		}
		return r.Text, fmt.Sprintf("%s/%s", r.Level, r.Category), nil
	default:
		text, err := engine.GetInsult()
		return text, engine.RoastLevel().String(), err
	}
}
