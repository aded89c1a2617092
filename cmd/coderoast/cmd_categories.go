package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/utkarsh5026/coderoast/cmd/ui"
)

func newCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "categories",
		Aliases: []string{"cats"},
		Short:   "List insult categories",
		Long: `List every insult category with the number of insults it holds and
the error kinds that map to it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := a.roaster.Engine()
			store := engine.Store()
			classifier := engine.Classifier()

			kinds := make(map[string][]string)
			for _, kind := range classifier.Kinds() {
				category := classifier.Classify(kind)
				kinds[category] = append(kinds[category], string(kind))
			}

			categories := engine.AvailableCategories()
			if len(categories) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.WarningMessage("No categories registered"))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Header(fmt.Sprintf("%d categories", len(categories))))

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Category", "Insults", "Error Kinds")
			for _, category := range categories {
				mapped := kinds[category]
				sort.Strings(mapped)
				table.Append(category, strconv.Itoa(store.CategoryLen(category)), strings.Join(mapped, ", "))
			}
			return table.Render()
		},
	}
}
