package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/intray/internal/dataset"
	"github.com/alexanderramin/intray/internal/intelligence"
	"github.com/alexanderramin/intray/internal/repository"
	"github.com/alexanderramin/intray/internal/service"
	"github.com/alexanderramin/intray/internal/snapshot"
)

// App holds references to the services and infrastructure used by CLI
// commands. Classifier is nil when no model endpoint is available;
// commands that need it degrade to manual flows.
type App struct {
	Repo      *repository.Repository
	Manager   *dataset.Manager
	Triage    service.TriageService
	Planning  service.PlanningService
	Execution service.ExecutionService
	Snapshot  *snapshot.Service

	Classifier    intelligence.Classifier
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "intray" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "intray",
		Short: "Capture-first personal organizer",
	}

	root.AddCommand(
		newCaptureCmd(app),
		newInboxCmd(app),
		newTriageCmd(app),
		newProjectCmd(app),
		newGoalCmd(app),
		newNextCmd(app),
		newShoppingCmd(app),
		newCompleteCmd(app),
		newDatasetCmd(app),
	)

	return root
}

// saveRepo persists the aggregate after a mutating command. A clean
// repository makes this a no-op.
func saveRepo(app *App) error {
	return app.Repo.Save()
}
