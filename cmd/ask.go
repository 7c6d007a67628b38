package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"triptrack/internal/assistant"
	"triptrack/internal/config"
	"triptrack/internal/model"
)

var flagAskTopic string

// topicQuestions expands --topic presets into full questions.
var topicQuestions = map[string]string{
	"budget":      "How is my spending tracking against the trip budget? Call out any categories that look high.",
	"weather":     "What weather should we expect at the destination during the trip dates, and what should we pack?",
	"suggestions": "Suggest activities and food worth trying at the destination, keeping the remaining budget in mind.",
}

var askCmd = &cobra.Command{
	Use:   "ask [question...]",
	Short: "Ask the travel assistant about the active trip",
	RunE:  runAsk,
}

func init() {
	askCmd.Flags().StringVar(&flagAskTopic, "topic", "", "Preset question: budget, weather or suggestions")
	rootCmd.AddCommand(askCmd)
}

func runAsk(_ *cobra.Command, args []string) error {
	question := strings.TrimSpace(strings.Join(args, " "))
	if flagAskTopic != "" {
		preset, ok := topicQuestions[strings.ToLower(flagAskTopic)]
		if !ok {
			return fmt.Errorf("unknown topic %q, want budget, weather or suggestions", flagAskTopic)
		}
		question = preset
	}
	if question == "" {
		return errors.New("ask a question, or pick a --topic")
	}

	states, done, err := openState()
	if err != nil {
		return err
	}
	defer done()

	snap := states.Snapshot()

	client := assistant.NewClient(config.GeminiKey(snap.Settings))
	if client == nil {
		fmt.Println("  " + assistant.NoKeyMessage)
		return nil
	}

	var trip *model.Trip
	var expenses []model.Expense
	if active, ok := snap.Active(); ok {
		trip = &active
		expenses = snap.TripExpenses(active.ID)
	}

	answer, err := client.Ask(context.Background(), assistant.BuildPrompt(trip, expenses, question))
	if err != nil {
		return fmt.Errorf("asking assistant: %w", err)
	}
	fmt.Println(answer)
	return nil
}
