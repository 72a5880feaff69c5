package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aliskhannn/portfolio-bot/internal/domain/entities"
)

var gradeCmd = &cobra.Command{
	Use:   "grade <mark>",
	Short: "Convert a percentage to an HSC grade and band",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := entities.ConvertInput(strings.Join(args, " "))
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s%%: %s (%s)\n", formatMark(g.Mark), g.Letter, g.Band)
		return nil
	},
}

func formatMark(mark float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", mark), "0"), ".")
}
