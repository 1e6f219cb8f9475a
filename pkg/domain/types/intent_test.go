package types_test

import (
	"testing"

	"github.com/secmon-lab/ticklist/pkg/domain/types"
)

func TestIntentIsValid(t *testing.T) {
	for _, intent := range types.AllIntents() {
		if !intent.IsValid() {
			t.Errorf("intent %q should be valid", intent)
		}
	}
	for _, invalid := range []types.Intent{"", "add", "DELETE", "ADD "} {
		if invalid.IsValid() {
			t.Errorf("intent %q should be invalid", invalid)
		}
	}
}

func TestIntentNormalize(t *testing.T) {
	if got := types.Intent("ADD").Normalize(); got != types.IntentAdd {
		t.Errorf("Normalize(ADD) = %q", got)
	}
	if got := types.Intent("").Normalize(); got != types.IntentUnknown {
		t.Errorf("Normalize(empty) = %q, want UNKNOWN", got)
	}
	if got := types.Intent("garbage").Normalize(); got != types.IntentUnknown {
		t.Errorf("Normalize(garbage) = %q, want UNKNOWN", got)
	}
}

func TestParseIntent(t *testing.T) {
	intent, err := types.ParseIntent("REMOVE")
	if err != nil {
		t.Fatalf("ParseIntent(REMOVE) failed: %v", err)
	}
	if intent != types.IntentRemove {
		t.Errorf("ParseIntent(REMOVE) = %q", intent)
	}

	if _, err := types.ParseIntent("remove"); err == nil {
		t.Error("lowercase input must be rejected")
	}
}
