package main

import (
	"fmt"
	"pneuma_bot/internal/repository"
	"pneuma_bot/internal/usecases"
	"strings"

	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [message]",
	Short: "Show which intent and context a message would get",
	Long: `Runs only the keyword router and context lookup. No API key needed.

Example:
  pneuma-bot classify "any good deals to Tokyo?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func runClassify(cmd *cobra.Command, args []string) error {
	message := strings.Join(args, " ")
	intent := usecases.NewIntentRouter().Classify(message)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "intent: %s\n", intent)
	fmt.Fprintf(out, "context:\n%s\n", repository.NewContextCatalog().Lookup(intent))
	return nil
}
