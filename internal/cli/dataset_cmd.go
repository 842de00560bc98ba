package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newDatasetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Manage datasets and snapshots",
	}
	cmd.AddCommand(
		newDatasetListCmd(app),
		newDatasetSnapshotCmd(app),
		newDatasetRestoreCmd(app),
	)
	return cmd
}

func newDatasetListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available datasets",
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := app.Manager.ListDatasets()
			if err != nil {
				return err
			}
			if len(names) == 0 {
				fmt.Println("No datasets yet.")
				return nil
			}
			for _, name := range names {
				marker := "  "
				if name == app.Repo.Name() {
					marker = "* "
				}
				fmt.Printf("%s%s\n", marker, name)
			}
			return nil
		},
	}
}

func newDatasetSnapshotCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Export the current dataset as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := app.Snapshot.Export()
			if err != nil {
				return err
			}
			if out == "" {
				fmt.Print(data)
				return nil
			}
			if err := os.WriteFile(out, []byte(data), 0o644); err != nil {
				return fmt.Errorf("writing snapshot: %w", err)
			}
			fmt.Printf("Snapshot written to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to a file instead of stdout")
	return cmd
}

func newDatasetRestoreCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "restore FILE",
		Short: "Replace the current dataset from a JSON snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading snapshot: %w", err)
			}
			if err := app.Snapshot.Restore(data); err != nil {
				return err
			}
			if err := saveRepo(app); err != nil {
				return err
			}
			fmt.Printf("Restored dataset %s from %s\n", app.Repo.Name(), args[0])
			return nil
		},
	}
}
