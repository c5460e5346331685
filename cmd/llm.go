package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/praxislabs/praxis/internal/llm"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Verify oracle provider configuration and connectivity",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			if discovered, ok := llm.DiscoverConfig(); ok {
				cfg = discovered
			} else {
				return err
			}
		}

		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer logger.Sync()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		provider, err := llm.NewProvider(ctx, cfg, logger.Sugar())
		if err != nil {
			return fmt.Errorf("init provider: %w", err)
		}

		fmt.Printf("Provider: %s\nModel:    %s\n", cfg.Provider, provider.ModelID())

		resp, err := provider.Generate(llm.WithPurpose(ctx, "connectivity-check"), llm.Request{
			Messages:  []llm.Message{{Role: llm.RoleUser, Content: "Reply with the single word: ok"}},
			MaxTokens: 10,
		})
		if err != nil {
			return fmt.Errorf("oracle request failed: %w", err)
		}

		fmt.Printf("Response: %s\nTokens:   %d in / %d out\n",
			resp.Text(), resp.Usage.InputTokens, resp.Usage.OutputTokens)
		return nil
	},
}
