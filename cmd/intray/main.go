package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/intray/internal/cli"
	"github.com/alexanderramin/intray/internal/config"
	"github.com/alexanderramin/intray/internal/dataset"
	"github.com/alexanderramin/intray/internal/domain"
	"github.com/alexanderramin/intray/internal/intelligence"
	"github.com/alexanderramin/intray/internal/llm"
	"github.com/alexanderramin/intray/internal/repository"
	"github.com/alexanderramin/intray/internal/service"
	"github.com/alexanderramin/intray/internal/snapshot"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.Init(os.Getenv("INTRAY_CONFIG")); err != nil {
		return err
	}
	if err := config.SetupLogging(); err != nil {
		return err
	}
	settings := config.Load()

	manager := dataset.NewManager(settings.DataDir)
	repo, err := repository.Open(manager, settings.Dataset)
	if errors.Is(err, dataset.ErrNotFound) {
		// First run: start an empty dataset, persisted on first save.
		repo = repository.New(manager, settings.Dataset, &domain.DatasetContent{})
	} else if err != nil {
		return fmt.Errorf("opening dataset %q: %w", settings.Dataset, err)
	}

	app := &cli.App{
		Repo:      repo,
		Manager:   manager,
		Triage:    service.NewTriageService(repo),
		Planning:  service.NewPlanningService(repo),
		Execution: service.NewExecutionService(repo),
		Snapshot:  snapshot.NewService(repo),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Wire the classifier only when the model endpoint answers; triage
	// still works manually without it.
	client := llm.NewOllamaClient(settings.LLM, llm.NewSlogObserver(nil))
	if client.Available(context.Background()) {
		app.Classifier = intelligence.NewClassifier(client)
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
