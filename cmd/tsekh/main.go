package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/vkravets/tsekh/internal/cli"
	"github.com/vkravets/tsekh/internal/db"
	"github.com/vkravets/tsekh/internal/repository"
	"github.com/vkravets/tsekh/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.tsekh/tsekh.db
	dbPath := os.Getenv("TSEKH_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".tsekh", "tsekh.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	orderRepo := repository.NewSQLiteOrderRepo(database)
	opRepo := repository.NewSQLiteOperationRepo(database)
	sectionRepo := repository.NewSQLiteSectionRepo(database)
	workerRepo := repository.NewSQLiteWorkerRepo(database)

	// Unit of work for the multi-write section/worker label flows
	uow := db.NewSQLiteUnitOfWork(database)

	// Scheduling runs log through slog when requested.
	var observers []service.UseCaseObserver
	if os.Getenv("TSEKH_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Orders:     service.NewOrderService(orderRepo),
		Operations: service.NewOperationService(opRepo),
		Sections:   service.NewSectionService(sectionRepo, uow),
		Workers:    service.NewWorkerService(workerRepo, uow),
		Schedule:   service.NewScheduleService(orderRepo, opRepo, sectionRepo, workerRepo, observers...),
		Location:   service.NewLocationService(orderRepo, opRepo, sectionRepo),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
