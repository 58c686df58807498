// Command ingest loads NFL reference data and weekly player statistics into
// Postgres.
//
// Usage:
//
//	gridiron-ingest teams
//	gridiron-ingest schedule --year 2024
//	gridiron-ingest depthcharts --year 2024 --week 3
//	gridiron-ingest injuries --year 2024 --week 3
//	gridiron-ingest stats --year 2024 --week 3
//	gridiron-ingest stats --year 2024 --season
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/riskibarqy/gridiron-ingest/external/sportradar"
	"github.com/riskibarqy/gridiron-ingest/internal/config"
	"github.com/riskibarqy/gridiron-ingest/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/gridiron-ingest/internal/observability"
	"github.com/riskibarqy/gridiron-ingest/internal/platform/logging"
	"github.com/riskibarqy/gridiron-ingest/internal/snapshot"
	"github.com/riskibarqy/gridiron-ingest/internal/usecase"
)

func main() {
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:           "gridiron-ingest",
		Short:         "NFL statistics ingestion CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(teamsCmd())
	root.AddCommand(scheduleCmd())
	root.AddCommand(depthChartsCmd())
	root.AddCommand(injuriesCmd())
	root.AddCommand(statsCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func teamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "teams",
		Short: "Load the league team list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIngest(func(ctx context.Context, deps *dependencies) error {
				service := usecase.NewTeamLoadService(
					postgres.NewTeamRepository(deps.db),
					deps.client,
					deps.snapshot,
					deps.logger.Zap(),
				)
				_, err := service.Run(ctx)
				return err
			})
		},
	}
}

func scheduleCmd() *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Load the season schedule into weeks and games",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIngest(func(ctx context.Context, deps *dependencies) error {
				service := usecase.NewScheduleLoadService(
					postgres.NewTeamRepository(deps.db),
					postgres.NewScheduleRepository(deps.db),
					deps.client,
					deps.snapshot,
					deps.logger.Zap(),
				)
				_, err := service.Run(ctx, usecase.ScheduleLoadOptions{Year: year})
				return err
			})
		},
	}
	cmd.Flags().IntVar(&year, "year", time.Now().Year(), "Season year")
	return cmd
}

func depthChartsCmd() *cobra.Command {
	var year, week int
	cmd := &cobra.Command{
		Use:   "depthcharts",
		Short: "Load one week's depth charts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIngest(func(ctx context.Context, deps *dependencies) error {
				service := usecase.NewDepthChartLoadService(
					postgres.NewTeamRepository(deps.db),
					postgres.NewPlayerRepository(deps.db),
					postgres.NewDepthChartRepository(deps.db),
					deps.client,
					deps.snapshot,
					deps.logger.Zap(),
				)
				_, err := service.Run(ctx, usecase.DepthChartLoadOptions{Year: year, Week: week})
				return err
			})
		},
	}
	cmd.Flags().IntVar(&year, "year", time.Now().Year(), "Season year")
	cmd.Flags().IntVar(&week, "week", 0, "Week number (required)")
	_ = cmd.MarkFlagRequired("week")
	return cmd
}

func injuriesCmd() *cobra.Command {
	var year, week int
	cmd := &cobra.Command{
		Use:   "injuries",
		Short: "Load one week's practice injury reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIngest(func(ctx context.Context, deps *dependencies) error {
				service := usecase.NewInjuryLoadService(
					postgres.NewTeamRepository(deps.db),
					postgres.NewPlayerRepository(deps.db),
					postgres.NewScheduleRepository(deps.db),
					postgres.NewInjuryRepository(deps.db),
					deps.client,
					deps.snapshot,
					deps.logger.Zap(),
					deps.cfg.RateLimitBackoff,
				)
				_, err := service.Run(ctx, usecase.InjuryLoadOptions{Year: year, Week: week})
				return err
			})
		},
	}
	cmd.Flags().IntVar(&year, "year", time.Now().Year(), "Season year")
	cmd.Flags().IntVar(&week, "week", 0, "Week number (required)")
	_ = cmd.MarkFlagRequired("week")
	return cmd
}

func statsCmd() *cobra.Command {
	var (
		year       int
		week       int
		fullSeason bool
	)
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Load weekly player statistics game by game",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIngest(func(ctx context.Context, deps *dependencies) error {
				if err := confirmStatsRun(deps.cfg.AppEnv, year); err != nil {
					return err
				}

				mode := usecase.StatsModeWeek
				if fullSeason {
					mode = usecase.StatsModeSeason
				}

				service := usecase.NewStatsIngestService(
					postgres.NewGameRepository(deps.db),
					postgres.NewStatsStore(deps.db),
					deps.client,
					deps.snapshot,
					deps.logger.Zap(),
					deps.cfg.RateLimitBackoff,
				)
				result, err := service.Run(ctx, usecase.StatsRunOptions{Mode: mode, Year: year, Week: week})
				if err != nil {
					return err
				}
				deps.logger.Info("stats run finished",
					"games_processed", result.GamesProcessed,
					"games_failed", result.GamesFailed,
					"rows_upserted", result.RowsUpserted,
					"fumbles_updated", result.FumblesUpdated,
					"fumbles_inserted", result.FumblesInserted,
				)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&year, "year", time.Now().Year(), "Season year")
	cmd.Flags().IntVar(&week, "week", 0, "Week number")
	cmd.Flags().BoolVar(&fullSeason, "season", false, "Process every game of the season")
	return cmd
}

type dependencies struct {
	cfg      config.Config
	logger   *logging.Logger
	db       *sqlx.DB
	client   *sportradar.Client
	snapshot usecase.SnapshotWriter
}

// runIngest handles config loading, logging, observability, and the database
// connection, then hands a ready dependency set to the command body.
func runIngest(fn func(ctx context.Context, deps *dependencies) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	shutdownUptrace, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		return fmt.Errorf("init uptrace: %w", err)
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		_ = shutdownUptrace(shutdownCtx)
	}()

	stopPyroscope, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		return fmt.Errorf("init pyroscope: %w", err)
	}
	defer func() { _ = stopPyroscope() }()

	db, err := postgres.Open(ctx, cfg.DBURL)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	deps := &dependencies{
		cfg:    cfg,
		logger: logger,
		db:     db,
		client: sportradar.NewClient(sportradar.ClientConfig{
			BaseURL:           cfg.SportradarBaseURL,
			APIKey:            cfg.SportradarAPIKey,
			Timeout:           cfg.SportradarTimeout,
			RequestsPerMinute: cfg.RequestsPerMinute,
			Logger:            logger,
		}),
	}
	if cfg.SnapshotEnabled {
		deps.snapshot = snapshot.NewWriter(cfg.SnapshotDir)
	}

	return fn(ctx, deps)
}

// confirmStatsRun guards the expensive stats run: a prod target needs an
// explicit "yes", and a target year other than the current one needs a nod.
func confirmStatsRun(appEnv string, year int) error {
	reader := bufio.NewReader(os.Stdin)

	if appEnv == config.EnvProd {
		fmt.Printf("You are about to write to the %s database. Type 'yes' to continue: ", appEnv)
		answer, _ := reader.ReadString('\n')
		if strings.TrimSpace(answer) != "yes" {
			return fmt.Errorf("aborted")
		}
	}

	if current := time.Now().Year(); year != current {
		fmt.Printf("Target year %d differs from the current year %d. Continue? [y/N]: ", year, current)
		answer, _ := reader.ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
		default:
			return fmt.Errorf("aborted")
		}
	}

	return nil
}
