package main

import (
	"context"
	"os"
	"pneuma_bot/internal/config"
	"pneuma_bot/internal/infrastructure"
	"pneuma_bot/internal/repository"
	"pneuma_bot/internal/usecases"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "pneuma-bot",
	Short: "Pneuma FAQ Bot - WhatsApp-style webhook answering points & miles questions",
	Long: `pneuma-bot receives chat messages on a webhook, picks a fixed block of
factual context by keyword, and asks Gemini to answer from that context.

Running without a subcommand starts the HTTP server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd, classifyCmd, askCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// newMessageService wires the Gemini client, router, catalog and generator.
// Everything it builds is shared read-only for the process lifetime.
func newMessageService(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*usecases.MessageService, error) {
	gemini, err := infrastructure.NewGeminiClient(ctx, infrastructure.GeminiOptions{
		APIKey: cfg.GeminiAPIKey,
		Model:  cfg.GeminiModel,
	})
	if err != nil {
		return nil, err
	}
	logger.Info("gemini client ready", zap.String("model", gemini.Model()))

	generator := usecases.NewResponseGenerator(gemini, logger, usecases.GeneratorOptions{
		MaxConcurrent: cfg.MaxConcurrentGenerations,
		Timeout:       cfg.GenerationTimeout,
	})
	return usecases.NewMessageService(usecases.NewIntentRouter(), repository.NewContextCatalog(), generator, logger), nil
}
