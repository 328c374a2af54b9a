package main

import (
	"fmt"
	"pneuma_bot/internal/config"
	"pneuma_bot/internal/entities"
	"pneuma_bot/internal/infrastructure"
	"strings"

	"github.com/spf13/cobra"
)

var askFrom string

var askCmd = &cobra.Command{
	Use:   "ask [message]",
	Short: "Answer one message end to end, as the webhook would",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

func init() {
	askCmd.Flags().StringVar(&askFrom, "from", "cli:local", "sender identifier to log")
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	logger, err := infrastructure.NewLogger(cfg.LogLevel, cfg.Development())
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	service, err := newMessageService(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}

	reply := service.ProcessMessage(cmd.Context(), entities.InboundMessage{
		Body: strings.Join(args, " "),
		From: askFrom,
	})
	fmt.Fprintln(cmd.OutOrStdout(), reply.Text)
	if reply.Failed() {
		return fmt.Errorf("generation failed: %w", reply.Err)
	}
	return nil
}
