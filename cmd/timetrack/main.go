package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/saish1609/timetrack/internal/cli"
	"github.com/saish1609/timetrack/internal/config"
	"github.com/saish1609/timetrack/internal/db"
	"github.com/saish1609/timetrack/internal/repository"
	"github.com/saish1609/timetrack/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	entryRepo := repository.NewSQLiteEntryRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Timer:    service.NewTimerService(entryRepo, taskRepo, uow, observer),
		Entries:  service.NewEntryService(entryRepo, taskRepo),
		Tasks:    service.NewTaskService(taskRepo, projectRepo),
		Projects: service.NewProjectService(projectRepo),
		Reports:  service.NewReportService(entryRepo, taskRepo, projectRepo, observer),
		User:     cfg.User,
	}

	// Detect interactive terminal for forms and the live watch view.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
