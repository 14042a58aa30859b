package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Mutation hooks
	m := NoopMutationHooks{}
	m.OnReferralAccepted(ctx, "Alice", "Bob")
	m.OnReferralRejected(ctx, "Bob", "Alice", errors.New("cycle"))

	// Analysis hooks
	a := NoopAnalysisHooks{}
	a.OnAnalysisStart(ctx, "centrality", 100)
	a.OnAnalysisComplete(ctx, "centrality", time.Second, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Mutation().(NoopMutationHooks); !ok {
		t.Error("Mutation() should return NoopMutationHooks by default")
	}
	if _, ok := Analysis().(NoopAnalysisHooks); !ok {
		t.Error("Analysis() should return NoopAnalysisHooks by default")
	}

	// Set custom hooks
	customMutation := &testMutationHooks{}
	SetMutationHooks(customMutation)
	if Mutation() != customMutation {
		t.Error("SetMutationHooks should set custom hooks")
	}

	customAnalysis := &testAnalysisHooks{}
	SetAnalysisHooks(customAnalysis)
	if Analysis() != customAnalysis {
		t.Error("SetAnalysisHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Mutation().(NoopMutationHooks); !ok {
		t.Error("Reset() should restore NoopMutationHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testMutationHooks{}
	SetMutationHooks(custom)

	// Setting nil should be ignored
	SetMutationHooks(nil)

	if Mutation() != custom {
		t.Error("SetMutationHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testMutationHooks struct{ NoopMutationHooks }
type testAnalysisHooks struct{ NoopAnalysisHooks }
