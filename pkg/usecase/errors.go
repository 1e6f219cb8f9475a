package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// ErrNotSaved means a mutation was rolled back because persisting it
	// failed; the previous checklist value is still in effect. Recoverable
	// and user-retriable, never fatal to the session.
	ErrNotSaved = errors.New("changes not saved")

	// ErrGeneratorDisabled / ErrClassifierDisabled mark features that need an
	// LLM client which was not configured.
	ErrGeneratorDisabled  = errors.New("generation is not configured")
	ErrClassifierDisabled = errors.New("command handling is not configured")

	// ErrNotConfirmable means a confirm request carried an intent that does
	// not go through the confirmation flow.
	ErrNotConfirmable = errors.New("command does not require confirmation")
)
