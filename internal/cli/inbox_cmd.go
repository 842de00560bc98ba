package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/intray/internal/cli/formatter"
)

func newInboxCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inbox",
		Short: "Work with captured inbox items",
	}
	cmd.AddCommand(
		newInboxListCmd(app),
		newInboxSkipCmd(app),
		newInboxDeleteCmd(app),
		newInboxMoveCmd(app),
	)
	return cmd
}

func newInboxListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List inbox items",
		RunE: func(cmd *cobra.Command, args []string) error {
			items := app.Triage.InboxItems()
			if len(items) == 0 {
				fmt.Println("Inbox is empty.")
				return nil
			}
			fmt.Print(formatter.FormatInbox(items))
			return nil
		},
	}
}

func newInboxSkipCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "skip ITEM",
		Short: "Move an inbox item to the back of the queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := resolveInboxItem(app, args[0])
			if err != nil {
				return err
			}
			app.Triage.SkipInboxItem(text)
			if err := saveRepo(app); err != nil {
				return err
			}
			fmt.Printf("Skipped %q\n", text)
			return nil
		},
	}
}

func newInboxDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ITEM",
		Short: "Discard an inbox item permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := resolveInboxItem(app, args[0])
			if err != nil {
				return err
			}
			app.Triage.DeleteInboxItem(text)
			if err := saveRepo(app); err != nil {
				return err
			}
			fmt.Printf("Deleted %q\n", text)
			return nil
		},
	}
}

func newInboxMoveCmd(app *App) *cobra.Command {
	var tags []string

	cmd := &cobra.Command{
		Use:   "move ITEM PROJECT",
		Short: "File an inbox item into a project as a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := resolveInboxItem(app, args[0])
			if err != nil {
				return err
			}
			project, err := resolveProject(app, args[1])
			if err != nil {
				return err
			}
			if err := app.Triage.MoveInboxItemToProject(text, project.ID, tags); err != nil {
				return err
			}
			if err := saveRepo(app); err != nil {
				return err
			}
			fmt.Printf("Moved %q to %s\n", text, project.Name)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tags to attach to the new task")
	return cmd
}
