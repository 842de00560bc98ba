package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/intray/internal/cli/formatter"
	"github.com/alexanderramin/intray/internal/domain"
)

func newGoalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage goals",
	}
	cmd.AddCommand(
		newGoalAddCmd(app),
		newGoalListCmd(app),
	)
	return cmd
}

func newGoalAddCmd(app *App) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a new goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			goal := app.Planning.CreateGoal(args[0], description)
			if err := saveRepo(app); err != nil {
				return err
			}
			fmt.Printf("Created goal %s\n", goal.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "What this goal is about")
	return cmd
}

func newGoalListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			goals := app.Planning.Goals()
			if len(goals) == 0 {
				fmt.Println("No goals yet.")
				return nil
			}
			counts := make(map[string]int)
			for _, p := range app.Repo.Content().Projects {
				if p.GoalID != "" {
					counts[p.GoalID]++
				}
			}
			fmt.Print(formatter.FormatGoalList(goals, counts))
			return nil
		},
	}
}

// resolveGoal accepts a goal id or an exact goal name.
func resolveGoal(app *App, input string) (*domain.Goal, error) {
	for _, g := range app.Repo.Content().Goals {
		if g.ID == input || g.Name == input {
			return g, nil
		}
	}
	return nil, fmt.Errorf("goal not found: %q", input)
}
