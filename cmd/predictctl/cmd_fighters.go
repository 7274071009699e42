package main

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fightcast/predictor-api/internal/history"
)

func newFightersCommand(e *env) *cobra.Command {
	var weightClass string
	cmd := &cobra.Command{
		Use:   "fighters",
		Short: "List known fighters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := e.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			names, err := a.Fighters.ListFighters(cmd.Context(), weightClass)
			if err != nil {
				return err
			}
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&weightClass, "weight-class", "w", history.AllClasses, "Only list fighters who appeared in this weight class")
	return cmd
}

func newProfileCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "profile <fighter>",
		Short: "Show a fighter's appearances and career stats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := e.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			p, err := a.Fighters.Profile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s: %d fights (%d red, %d blue)\n", p.Name, p.TotalFights, p.FightsAsRed, p.FightsAsBlue)
			fmt.Fprintf(w, "Weight classes: %s\n", strings.Join(p.WeightClasses, ", "))
			if p.CareerStats == nil {
				return nil
			}
			cs := p.CareerStats
			table := tablewriter.NewWriter(w)
			table.Header("Stat", "Value")
			table.Append("Fights", fmt.Sprintf("%d", cs.Fights))
			table.Append("Wins", fmt.Sprintf("%d", cs.Wins))
			table.Append("Losses", fmt.Sprintf("%d", cs.Losses))
			table.Append("Win rate", fmt.Sprintf("%.3f", cs.WinRate))
			table.Append("Strikes per fight", fmt.Sprintf("%.2f", cs.AvgStrikes))
			table.Append("Takedowns per fight", fmt.Sprintf("%.2f", cs.AvgTakedowns))
			table.Append("Knockdowns per fight", fmt.Sprintf("%.2f", cs.AvgKnockdowns))
			return table.Render()
		},
	}
}
