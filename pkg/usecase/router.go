package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/ticklist/pkg/domain/model"
	"github.com/secmon-lab/ticklist/pkg/domain/types"
)

// Outcome is the result of routing one free-text command
type Outcome struct {
	// Signal carries what the UI should surface: a rephrase prompt, a
	// be-more-specific prompt, or a pending confirmation. SignalNone means
	// the command was applied.
	Signal types.Signal `json:"signal"`

	// Command echoes the classified command; confirmation flows resend it
	Command model.Command `json:"command"`

	// Checklist is the current value after routing (unchanged unless Mutated)
	Checklist model.Checklist `json:"checklist"`

	// Mutated reports whether the checklist changed
	Mutated bool `json:"mutated"`
}

// Route decides what a command should do without touching any state. REMOVE
// and CLEAR are gated behind user confirmation, so for them it returns the
// confirmation signal rather than SignalNone.
func Route(cmd model.Command) types.Signal {
	switch cmd.Intent.Normalize() {
	case types.IntentAdd:
		if !cmd.HasItems() {
			return types.SignalNoItems
		}
		return types.SignalNone
	case types.IntentRemove:
		if !cmd.HasItems() {
			return types.SignalNoItems
		}
		return types.SignalConfirmRemove
	case types.IntentClear:
		return types.SignalConfirmClear
	default:
		return types.SignalUnrecognized
	}
}

// HandleCommand classifies one line of free text and routes it. ADD is
// applied immediately; REMOVE and CLEAR come back as pending confirmations
// carrying the classified command, to be executed via ConfirmCommand. No
// mutation happens on UNKNOWN or on a recognized intent with no items.
func (uc *ChecklistUseCase) HandleCommand(ctx context.Context, sessionID types.SessionID, text string) (*Outcome, error) {
	if uc.classifier == nil {
		return nil, goerr.Wrap(ErrClassifierDisabled, "cannot handle command")
	}

	cmd := uc.classifier.Classify(ctx, text)
	signal := Route(cmd)

	if signal == types.SignalNone {
		cl, err := uc.AddItems(ctx, sessionID, cmd.Items)
		if err != nil {
			return nil, err
		}
		return &Outcome{Command: cmd, Checklist: cl, Mutated: true}, nil
	}

	cl, err := uc.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &Outcome{Signal: signal, Command: cmd, Checklist: cl}, nil
}

// ConfirmCommand executes a previously surfaced REMOVE or CLEAR confirmation.
// The client resends the command it got back from HandleCommand; no pending
// state is kept server-side.
func (uc *ChecklistUseCase) ConfirmCommand(ctx context.Context, sessionID types.SessionID, cmd model.Command) (*Outcome, error) {
	switch cmd.Intent.Normalize() {
	case types.IntentRemove:
		if !cmd.HasItems() {
			return nil, goerr.Wrap(ErrNotConfirmable, "REMOVE with no items",
				goerr.V("intent", cmd.Intent))
		}
		cl, err := uc.RemoveItems(ctx, sessionID, cmd.Items)
		if err != nil {
			return nil, err
		}
		return &Outcome{Command: cmd, Checklist: cl, Mutated: true}, nil

	case types.IntentClear:
		cl, err := uc.Clear(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		return &Outcome{Command: cmd, Checklist: cl, Mutated: true}, nil

	default:
		return nil, goerr.Wrap(ErrNotConfirmable,
			fmt.Sprintf("intent %s is not confirmable", strings.TrimSpace(cmd.Intent.String())),
			goerr.V("intent", cmd.Intent))
	}
}
