package assistant

import (
	"context"
	"errors"
	"log/slog"
	"strings"
)

// Recognizer turns one utterance into text. Implementations may sit on a
// microphone or on typed input; the dispatcher does not care.
type Recognizer interface {
	Listen(ctx context.Context) (string, error)
}

// Speaker voices the assistant's replies.
type Speaker interface {
	Say(text string)
}

// Actions are the operations voice commands reach. The console frontend
// implements them with the same services the menus use; the assistant
// adds no semantics of its own.
type Actions interface {
	BrowseMenu(ctx context.Context) error
	NewOrder(ctx context.Context) error
	ViewOrders(ctx context.Context) error
	UpdateOrder(ctx context.Context) error
	CancelOrder(ctx context.Context) error
}

type Assistant struct {
	log     *slog.Logger
	rec     Recognizer
	speaker Speaker
	actions Actions
}

func New(log *slog.Logger, rec Recognizer, speaker Speaker, actions Actions) *Assistant {
	return &Assistant{log: log, rec: rec, speaker: speaker, actions: actions}
}

// Run greets and dispatches commands until "exit"/"quit" or context
// cancellation. Unrecognised input gets a retry prompt, not an error.
func (a *Assistant) Run(ctx context.Context) error {
	a.speaker.Say("Welcome to Smart Panda Restaurant Management System!")
	a.speaker.Say("How can I help you today?")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		command, err := a.rec.Listen(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			a.speaker.Say("Sorry, I didn't catch that. Could you please repeat?")
			continue
		}
		done, err := a.Handle(ctx, command)
		if err != nil {
			a.log.Error("assistant command failed", "command", command, "err", err)
			a.speaker.Say("Something went wrong with that, sorry.")
		}
		if done {
			return nil
		}
	}
}

// Handle maps one recognised phrase onto an action. Specific phrases win
// over the bare "order" so "cancel my order" cancels instead of ordering.
func (a *Assistant) Handle(ctx context.Context, command string) (done bool, err error) {
	command = strings.ToLower(strings.TrimSpace(command))
	switch {
	case command == "":
		a.speaker.Say("I'm sorry, I didn't understand your command.")
	case strings.Contains(command, "exit"), strings.Contains(command, "quit"):
		a.speaker.Say("Thank you for using Panda Restaurant Management System. Goodbye!")
		return true, nil
	case strings.Contains(command, "menu"):
		a.speaker.Say("Redirecting you to available menu page...")
		return false, a.actions.BrowseMenu(ctx)
	case strings.Contains(command, "view"):
		a.speaker.Say("Redirecting to your orders page")
		return false, a.actions.ViewOrders(ctx)
	case strings.Contains(command, "update"):
		a.speaker.Say("Redirecting to your order update page")
		return false, a.actions.UpdateOrder(ctx)
	case strings.Contains(command, "cancel"):
		a.speaker.Say("Redirecting to your order cancel page")
		return false, a.actions.CancelOrder(ctx)
	case strings.Contains(command, "order"):
		a.speaker.Say("What would you like to order? Redirecting to order page")
		return false, a.actions.NewOrder(ctx)
	default:
		a.speaker.Say("I'm sorry, I didn't understand your command.")
	}
	return false, nil
}
