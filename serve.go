package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle-solver/internal/db"
	"github.com/robalobadob/wordle-solver/internal/httpserver"
	"github.com/robalobadob/wordle-solver/internal/store"
)

func newServeCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long:  "Serve solver sessions, stateless filter/rank, the daily benchmark and accounts over HTTP until SIGINT/SIGTERM.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), v)
		},
	}
	cmd.Flags().String("port", "", "Port to listen on (overrides PORT)")
	cmd.Flags().String("db", "", "SQLite database path (overrides DB_PATH)")
	cmd.Flags().Duration("daily-every", time.Hour, "How often to check for and record the daily run")
	_ = v.BindPFlag("PORT", cmd.Flags().Lookup("port"))
	_ = v.BindPFlag("DB_PATH", cmd.Flags().Lookup("db"))
	_ = v.BindPFlag("DAILY_EVERY", cmd.Flags().Lookup("daily-every"))
	return cmd
}

func runServe(ctx context.Context, v *viper.Viper) error {
	cfg, err := loadConfig(v)
	if err != nil {
		return err
	}

	sqlDB, err := db.OpenAndMigrate(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer sqlDB.Close()

	lists, err := loadWords(cfg)
	if err != nil {
		return err
	}
	sol, valid := lists.Stats()
	log.Info().Int("solutions", sol).Int("valid", valid).Msg("word lists loaded")

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := httpserver.New(cfg, lists, store.NewMemoryStore(), sqlDB)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Msg("starting wordle-solver")
		return srv.Run(gctx, ":"+cfg.Port)
	})
	g.Go(func() error {
		return srv.DailyLoop(gctx, v.GetDuration("DAILY_EVERY"))
	})
	return g.Wait()
}
