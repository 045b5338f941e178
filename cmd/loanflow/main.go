// Package main provides the loanflow console CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/loanflow/loanflow/internal/application/service"
	"github.com/loanflow/loanflow/internal/application/session"
	"github.com/loanflow/loanflow/internal/config"
	"github.com/loanflow/loanflow/internal/domain/navigation"
	"github.com/loanflow/loanflow/internal/export"
	"github.com/loanflow/loanflow/internal/fixture"
	"github.com/loanflow/loanflow/internal/interfaces/console"
	"github.com/loanflow/loanflow/pkg/utils"
)

const version = "1.0.0"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		seed       int64
		role       string
	)

	cmd := &cobra.Command{
		Use:   "loanflow",
		Short: "Interactive loan-management console over a synthetic dataset",
		Long: `loanflow generates an internally consistent in-memory loan dataset and
lets a simulated role browse it through dashboard, list, detail, activity
and settings screens. Nothing is persisted; decisions are simulated.

Examples:
  loanflow                     # run the console with defaults
  loanflow --seed 42           # reproducible fixture
  loanflow --role ADMIN        # start as admin
  loanflow export              # write the loan list to an .xlsx file`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(configPath, seed)
			if err != nil {
				return err
			}
			defer logger.Sync()

			startRole := navigation.Role(cfg.Session.DefaultRole)
			if role != "" {
				startRole = navigation.Role(role)
				if !startRole.IsValid() {
					return fmt.Errorf("%w: %s", navigation.ErrUnknownRole, role)
				}
			}

			return runConsole(cfg, startRole, logger)
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "configs/config.yaml", "Config file path")
	cmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Fixture seed override (0 keeps the configured seed)")
	cmd.Flags().StringVar(&role, "role", "", "Starting role (default from config)")

	cmd.AddCommand(exportCmd(&configPath, &seed))
	cmd.AddCommand(versionCmd())

	return cmd
}

func exportCmd(configPath *string, seed *int64) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Generate the fixture and export the loan list to .xlsx",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(*configPath, *seed)
			if err != nil {
				return err
			}
			defer logger.Sync()

			data := generate(cfg, logger)

			dir := cfg.Export.OutputDir
			if output != "" {
				dir = output
			}

			loans := service.NewLoanService(data, logger).List(service.ListQuery{})
			path, err := export.NewLoanExporter(dir, logger).Export(loans)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "Output directory (default from config)")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the loanflow version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

func setup(configPath string, seed int64) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if seed != 0 {
		cfg.Fixture.Seed = seed
	}

	logger, err := utils.NewLogger(utils.LoggerConfig{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, logger, nil
}

func generate(cfg *config.Config, logger *zap.Logger) *fixture.Dataset {
	gen := fixture.NewGenerator(cfg.Fixture.Seed)
	data := gen.Generate(fixture.Config{
		CustomerCount: cfg.Fixture.CustomerCount,
		LoanCount:     cfg.Fixture.LoanCount,
	})
	logger.Info("fixture generated",
		zap.Int64("seed", cfg.Fixture.Seed),
		zap.Int("customers", len(data.Customers)),
		zap.Int("loans", len(data.Loans)),
		zap.Int("documents", len(data.Documents)),
		zap.Int("activities", len(data.Activities)),
		zap.Int("approvals", len(data.Approvals)))
	return data
}

func runConsole(cfg *config.Config, role navigation.Role, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	data := generate(cfg, logger)
	sess := session.New(role, logger)

	ui := console.New(
		sess,
		service.NewLoanService(data, logger),
		service.NewDashboardService(data, logger),
		service.NewActivityService(data, logger),
		service.NewDecisionService(logger),
		export.NewLoanExporter(cfg.Export.OutputDir, logger),
		logger,
		os.Stdin,
		os.Stdout,
	)

	return ui.Run(ctx)
}
