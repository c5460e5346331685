package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/praxislabs/praxis/internal/assistant"
	"github.com/praxislabs/praxis/internal/auth"
	"github.com/praxislabs/praxis/internal/config"
	"github.com/praxislabs/praxis/internal/httpapi"
	"github.com/praxislabs/praxis/internal/llm"
	"github.com/praxislabs/praxis/internal/store"
	"github.com/praxislabs/praxis/internal/tutor"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides PRAXIS_ADDR)")
}

func runServe(cmd *cobra.Command) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Addr = addr
	}
	if err := cfg.ValidateForServe(); err != nil {
		return err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()

	ctx := context.Background()
	if err := s.Seed(ctx); err != nil {
		return fmt.Errorf("seed catalogs: %w", err)
	}

	provider, err := llm.NewProvider(ctx, cfg.LLM, log)
	if err != nil {
		return fmt.Errorf("init oracle provider: %w", err)
	}

	svc := tutor.New(s, assistant.New(provider), log)
	am := auth.New(s.Users(), []byte(cfg.JWTSecret), cfg.TokenTTL)
	server := httpapi.New(s, svc, am, log)

	log.Infow("starting praxis",
		"db", dbPath,
		"provider", cfg.LLM.Provider,
		"model", provider.ModelID(),
	)
	return server.Run(cfg.Addr)
}
