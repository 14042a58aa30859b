package errors

import (
	stderrors "errors"
	"testing"

	"github.com/refnetlabs/refnet/pkg/growth"
	"github.com/refnetlabs/refnet/pkg/referral"
)

func TestNew_FormatsMessage(t *testing.T) {
	err := New(ErrCodeInvalidScenario, "scenario %q has no referrals", "empty.toml")

	want := `INVALID_SCENARIO: scenario "empty.toml" has no referrals`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(ErrCodeInternal, cause, "building report")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error lost its cause")
	}
	if UserMessage(err) != "building report" {
		t.Errorf("UserMessage() = %q, want %q", UserMessage(err), "building report")
	}
}

func TestIs_MatchesCode(t *testing.T) {
	err := New(ErrCodeFileNotFound, "no such scenario")

	if !Is(err, ErrCodeFileNotFound) {
		t.Error("Is() = false for matching code")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is() = true for non-matching code")
	}
	if Is(stderrors.New("plain"), ErrCodeInternal) {
		t.Error("Is() = true for plain error")
	}
}

func TestClassify_ReferralSentinels(t *testing.T) {
	n := referral.New()
	n.AddReferral("a", "b")

	cases := []struct {
		err  error
		want Code
	}{
		{n.AddReferral("x", "x"), ErrCodeSelfReferral},
		{n.AddReferral("c", "b"), ErrCodeAlreadyReferred},
		{n.AddReferral("b", "a"), ErrCodeWouldCycle},
		{nil, ""},
		{stderrors.New("other"), ""},
	}
	for _, c := range cases {
		if got := Classify(c.err); got != c.want {
			t.Errorf("Classify(%v) = %q, want %q", c.err, got, c.want)
		}
	}
}

func TestClassify_GrowthSentinels(t *testing.T) {
	_, unreachable := growth.DaysToTarget(0, 100)
	if got := Classify(unreachable); got != ErrCodeUnreachable {
		t.Errorf("Classify(unreachable) = %q, want %q", got, ErrCodeUnreachable)
	}

	_, impossible := growth.MinBonusForTarget(30, 100, func(int) float64 { return 0 }, 0.001)
	if got := Classify(impossible); got != ErrCodeImpossible {
		t.Errorf("Classify(impossible) = %q, want %q", got, ErrCodeImpossible)
	}
}

func TestGetCode_ClassifiesSentinels(t *testing.T) {
	n := referral.New()
	err := n.AddReferral("x", "x")

	if got := GetCode(err); got != ErrCodeSelfReferral {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeSelfReferral)
	}
}
