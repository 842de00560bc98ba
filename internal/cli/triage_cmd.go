package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/intray/internal/cli/formatter"
	"github.com/alexanderramin/intray/internal/domain"
	"github.com/alexanderramin/intray/internal/service"
)

type triageAction string

const (
	actionAccept  triageAction = "accept"
	actionProject triageAction = "project"
	actionNew     triageAction = "new"
	actionSkip    triageAction = "skip"
	actionTrash   triageAction = "trash"
	actionQuit    triageAction = "quit"
)

func newTriageCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "triage",
		Short: "Process the inbox one item at a time",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("triage needs an interactive terminal; use 'inbox move' instead")
			}
			return runTriage(cmd.Context(), app)
		},
	}
}

func runTriage(ctx context.Context, app *App) error {
	processed := 0
	for {
		inbox := app.Triage.InboxItems()
		if len(inbox) == 0 {
			break
		}
		text := inbox[0]

		draft, err := classifyText(ctx, app, text)
		if err != nil {
			fmt.Println(formatter.Dim(fmt.Sprintf("classification unavailable: %v", err)))
			draft = app.Triage.CreateDraft(text, domain.Classification{Category: domain.CategoryTask})
		}

		fmt.Println(formatter.FormatClassification(draft))

		done, err := triageOne(app, draft)
		if err != nil {
			return err
		}
		if done {
			break
		}
		processed++
	}

	if err := saveRepo(app); err != nil {
		return err
	}
	fmt.Printf("Triage done: %d processed, %d remaining.\n", processed, len(app.Triage.InboxItems()))
	return nil
}

func classifyText(ctx context.Context, app *App, text string) (*domain.DraftItem, error) {
	if app.Classifier == nil {
		return nil, fmt.Errorf("no model configured")
	}
	classification, err := app.Classifier.ClassifyItem(ctx, text, app.Repo.Content())
	if err != nil {
		return nil, err
	}
	return app.Triage.CreateDraft(text, *classification), nil
}

// triageOne presents the action menu for a single draft and applies the
// chosen action. Returns true when the session should end.
func triageOne(app *App, draft *domain.DraftItem) (bool, error) {
	var action triageAction
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[triageAction]().
				Title(draft.Text).
				Options(
					huh.NewOption("Accept suggestion", actionAccept),
					huh.NewOption("File into another project", actionProject),
					huh.NewOption("Create a new project", actionNew),
					huh.NewOption("Skip for now", actionSkip),
					huh.NewOption("Trash it", actionTrash),
					huh.NewOption("Quit triage", actionQuit),
				).
				Value(&action),
		),
	).WithTheme(intrayHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return true, nil
		}
		return true, err
	}

	switch action {
	case actionAccept:
		item, err := app.Triage.ApplyDraft(draft, nil)
		if errors.Is(err, service.ErrTargetNotFound) {
			fmt.Println(formatter.Dim(err.Error()))
			return triagePickProject(app, draft)
		}
		if err != nil {
			return true, err
		}
		fmt.Printf("Filed %q\n", item.Base().Name)
	case actionProject:
		return triagePickProject(app, draft)
	case actionNew:
		return triageNewProject(app, draft)
	case actionSkip:
		app.Triage.SkipInboxItem(draft.Text)
	case actionTrash:
		app.Triage.DeleteInboxItem(draft.Text)
		fmt.Println("Trashed.")
	case actionQuit:
		return true, nil
	}
	return false, nil
}

func triagePickProject(app *App, draft *domain.DraftItem) (bool, error) {
	var projectID int
	form := wizardSelectProject(app, "Which project?", &projectID)
	if form == nil {
		return triageNewProject(app, draft)
	}
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return true, err
	}

	item, err := app.Triage.ApplyDraft(draft, &projectID)
	if err != nil {
		return true, err
	}
	fmt.Printf("Filed %q\n", item.Base().Name)
	return false, nil
}

func triageNewProject(app *App, draft *domain.DraftItem) (bool, error) {
	name := draft.Classification.SuggestedNewProjectName
	form := wizardInput("New project name", "Workshop cleanup", &name)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return true, err
	}
	if name == "" {
		return false, nil
	}

	project, err := app.Triage.CreateProjectFromDraft(draft, name)
	if err != nil {
		return true, err
	}
	fmt.Printf("Created %s and filed %q\n", project.Name, draft.DisplayName())
	return false, nil
}
