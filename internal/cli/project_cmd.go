package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/intray/internal/cli/formatter"
	"github.com/alexanderramin/intray/internal/domain"
	"github.com/alexanderramin/intray/internal/service"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}
	cmd.AddCommand(
		newProjectListCmd(app),
		newProjectCreateCmd(app),
		newProjectMoveCmd(app),
		newProjectGoalCmd(app),
		newProjectAddResourceCmd(app),
		newProjectAddReferenceCmd(app),
	)
	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects grouped by goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			content := app.Repo.Content()
			if len(content.Projects) == 0 {
				fmt.Println("No projects yet.")
				return nil
			}
			fmt.Print(formatter.FormatProjectList(content.Projects, content.Goals))
			return nil
		},
	}
}

func newProjectCreateCmd(app *App) *cobra.Command {
	var goalRef string

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a new project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project := app.Repo.CreateProject(args[0])
			if goalRef != "" {
				goal, err := resolveGoal(app, goalRef)
				if err != nil {
					return err
				}
				if err := app.Planning.AssignProjectToGoal(project.ID, goal.ID); err != nil {
					return err
				}
			}
			if err := saveRepo(app); err != nil {
				return err
			}
			fmt.Printf("Created project %s (#%d)\n", project.Name, project.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&goalRef, "goal", "", "Goal to attach the project to (name or id)")
	return cmd
}

func newProjectMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move PROJECT up|down",
		Short: "Reorder a project among its siblings",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := resolveProject(app, args[0])
			if err != nil {
				return err
			}
			var direction service.MoveDirection
			switch args[1] {
			case "up":
				direction = service.MoveUp
			case "down":
				direction = service.MoveDown
			default:
				return fmt.Errorf("direction must be up or down, got %q", args[1])
			}
			app.Planning.MoveProject(project.ID, direction)
			if err := saveRepo(app); err != nil {
				return err
			}
			fmt.Printf("Moved %s %s\n", project.Name, args[1])
			return nil
		},
	}
}

func newProjectGoalCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "goal PROJECT [GOAL]",
		Short: "Attach a project to a goal, or detach it",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := resolveProject(app, args[0])
			if err != nil {
				return err
			}

			goalID := ""
			label := "no goal"
			if len(args) == 2 {
				goal, err := resolveGoal(app, args[1])
				if err != nil {
					return err
				}
				goalID = goal.ID
				label = goal.Name
			}

			if err := app.Planning.AssignProjectToGoal(project.ID, goalID); err != nil {
				return err
			}
			if err := saveRepo(app); err != nil {
				return err
			}
			fmt.Printf("%s -> %s\n", project.Name, label)
			return nil
		},
	}
}

func newProjectAddResourceCmd(app *App) *cobra.Command {
	var store string
	var gather bool

	cmd := &cobra.Command{
		Use:   "add-resource PROJECT NAME",
		Short: "Add a material or tool to a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := resolveProject(app, args[0])
			if err != nil {
				return err
			}
			resType := domain.ResourceToBuy
			if gather {
				resType = domain.ResourceToGather
			}
			res, err := app.Planning.AddResource(project.ID, args[1], resType, store)
			if err != nil {
				return err
			}
			if err := saveRepo(app); err != nil {
				return err
			}
			fmt.Printf("Added %s to %s (%s)\n", res.Name, project.Name, res.Store)
			return nil
		},
	}

	cmd.Flags().StringVar(&store, "store", "", "Where to get it (default General)")
	cmd.Flags().BoolVar(&gather, "gather", false, "Already owned, just needs gathering")
	return cmd
}

func newProjectAddReferenceCmd(app *App) *cobra.Command {
	var content string

	cmd := &cobra.Command{
		Use:   "add-reference PROJECT NAME",
		Short: "Add a link or note to a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := resolveProject(app, args[0])
			if err != nil {
				return err
			}
			ref, err := app.Planning.AddReference(project.ID, args[1], content)
			if err != nil {
				return err
			}
			if err := saveRepo(app); err != nil {
				return err
			}
			fmt.Printf("Added reference %s to %s\n", ref.Name, project.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "Reference body (URL or note text)")
	return cmd
}
