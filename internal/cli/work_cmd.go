package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/intray/internal/cli/formatter"
	"github.com/alexanderramin/intray/internal/domain"
)

func newNextCmd(app *App) *cobra.Command {
	var tag string

	cmd := &cobra.Command{
		Use:   "next",
		Short: "List next actions across active projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks := app.Execution.NextActions(tag)
			if len(tasks) == 0 {
				fmt.Println("Nothing to do. Capture something!")
				return nil
			}

			owner := make(map[string]string)
			for _, p := range app.Repo.Content().Projects {
				for _, item := range p.Items {
					owner[item.Base().ID] = p.Name
				}
			}

			fmt.Println(formatter.Header(fmt.Sprintf("Next Actions (%d)", len(tasks))))
			fmt.Print(formatter.FormatTaskList(tasks, func(t *domain.Task) string {
				return owner[t.ID]
			}))
			return nil
		},
	}

	cmd.Flags().StringVar(&tag, "tag", "", "Only tasks carrying this tag")
	return cmd
}

func newShoppingCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shopping",
		Short: "List unacquired purchases grouped by store",
		RunE: func(cmd *cobra.Command, args []string) error {
			list := app.Execution.ShoppingList()
			if len(list) == 0 {
				fmt.Println("Nothing to buy.")
				return nil
			}
			fmt.Print(formatter.FormatShoppingList(list))
			return nil
		},
	}
}

func newCompleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete ITEM_ID",
		Short: "Toggle completion on a task or resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, err := resolveItemID(app, args[0])
			if err != nil {
				return err
			}
			if err := app.Execution.CompleteItem(itemID); err != nil {
				return err
			}
			if err := saveRepo(app); err != nil {
				return err
			}

			item, _ := app.Repo.FindItem(itemID)
			switch it := item.(type) {
			case *domain.Task:
				state := "open"
				if it.Completed {
					state = "done"
				}
				fmt.Printf("%s is now %s\n", it.Name, state)
			case *domain.Resource:
				state := "needed"
				if it.Acquired {
					state = "acquired"
				}
				fmt.Printf("%s is now %s\n", it.Name, state)
			default:
				fmt.Printf("%s left unchanged\n", item.Base().Name)
			}
			return nil
		},
	}
}
