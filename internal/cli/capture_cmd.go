package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCaptureCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "capture TEXT...",
		Short: "Add a thought to the inbox",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" {
				return fmt.Errorf("nothing to capture")
			}
			app.Triage.AddToInbox(text)
			if err := saveRepo(app); err != nil {
				return err
			}
			fmt.Printf("Captured %q (%d in inbox)\n", text, len(app.Triage.InboxItems()))
			return nil
		},
	}
}
