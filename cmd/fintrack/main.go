package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iho/fintrack/internal/adapter/console"
	"github.com/iho/fintrack/internal/adapter/repository/memory"
	"github.com/iho/fintrack/internal/adapter/snapshot"
	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/infrastructure/config"
	"github.com/iho/fintrack/internal/infrastructure/logger"
	"github.com/iho/fintrack/internal/usecase"
)

// app is the object graph for one process run. Everything lives in memory;
// state survives only through an explicit export.
type app struct {
	cfg *config.Config
	log zerolog.Logger

	accountRepo   *memory.AccountRepository
	categoryRepo  *memory.CategoryRepository
	operationRepo *memory.OperationRepository

	accounts       *usecase.AccountUseCase
	categories     *usecase.CategoryUseCase
	operations     *usecase.OperationUseCase
	analytics      *usecase.AnalyticsUseCase
	reconciliation *usecase.ReconciliationUseCase

	exporter *snapshot.Exporter
	importer *snapshot.Importer
}

func buildApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	accountRepo := memory.NewAccountRepository()
	categoryRepo := memory.NewCategoryRepository()
	operationRepo := memory.NewOperationRepository()
	factory := domain.NewFactory(memory.NewULIDGenerator())

	accounts := usecase.NewAccountUseCase(accountRepo, operationRepo, factory)
	categories := usecase.NewCategoryUseCase(categoryRepo, operationRepo, factory)
	operations := usecase.NewOperationUseCase(accountRepo, categoryRepo, operationRepo, factory)
	analytics := usecase.NewAnalyticsUseCase(operationRepo, categoryRepo)
	reconciliation := usecase.NewReconciliationUseCase(accountRepo, operationRepo)

	return &app{
		cfg:            cfg,
		log:            log,
		accountRepo:    accountRepo,
		categoryRepo:   categoryRepo,
		operationRepo:  operationRepo,
		accounts:       accounts,
		categories:     categories,
		operations:     operations,
		analytics:      analytics,
		reconciliation: reconciliation,
		exporter:       snapshot.NewExporter(accountRepo, categoryRepo, operationRepo),
		importer:       snapshot.NewImporter(accounts, categories, operations),
	}, nil
}

func (a *app) runMenu(ctx context.Context) error {
	io := console.New(os.Stdin, os.Stdout)
	menu := console.NewMenu(io, a.log,
		console.NewAccountsScreen(io, a.accounts),
		console.NewCategoriesScreen(io, a.categories),
		console.NewOperationsScreen(io, a.accounts, a.categories, a.operations),
		console.NewReportsScreen(io, a.analytics),
		console.NewSnapshotScreen(io, a.exporter, a.importer, a.cfg.SnapshotPath, a.cfg.SnapshotFormat),
		console.NewDataToolsScreen(io, a.accounts, a.reconciliation),
	)
	return menu.Run(ctx)
}

// convert replays one snapshot file into a fresh store and exports it
// again, converting between interchange formats on the way.
func (a *app) convert(ctx context.Context, fromPath, toPath string) error {
	if err := a.importer.Run(ctx, fromPath); err != nil {
		return err
	}
	return a.exporter.Run(ctx, toPath)
}

// check replays a snapshot file into a fresh store and reports per-account
// drift between stored balances and the ledger.
func (a *app) check(ctx context.Context, path string) error {
	if err := a.importer.Run(ctx, path); err != nil {
		return err
	}
	accounts, err := a.accounts.List(ctx)
	if err != nil {
		return err
	}
	for _, account := range accounts {
		diff, err := a.reconciliation.Verify(ctx, account.ID)
		if err != nil {
			return err
		}
		status := "ok"
		if !diff.IsZero() {
			status = "drift " + diff.String()
		}
		fmt.Printf("%s\t%s\t%s\n", account.Name, account.Balance.String(), status)
	}
	return nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "fintrack",
		Short: "Personal finance tracker",
		Long:  `An interactive console tracker for bank accounts, categories and dated operations.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			return a.runMenu(cmd.Context())
		},
	}

	var fromPath, toPath string
	convertCmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a snapshot file between formats",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			return a.convert(cmd.Context(), fromPath, toPath)
		},
	}
	convertCmd.Flags().StringVar(&fromPath, "from", "", "source snapshot file (format by extension)")
	convertCmd.Flags().StringVar(&toPath, "to", "", "target snapshot file (format by extension)")
	_ = convertCmd.MarkFlagRequired("from")
	_ = convertCmd.MarkFlagRequired("to")

	checkCmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Validate a snapshot file and report balance drift",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			return a.check(cmd.Context(), args[0])
		},
	}

	rootCmd.AddCommand(convertCmd, checkCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
