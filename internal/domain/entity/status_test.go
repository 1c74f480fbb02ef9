package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToneFor_ApprovalOverridesStatus(t *testing.T) {
	// Status says done, approval still undecided: awaiting approval.
	assert.Equal(t, ToneWarning, ToneFor(TrackLabels{Status: "Paid", AdminApproval: "N/A"}))

	// A decided approval wins over whatever the status says.
	assert.Equal(t, TonePositive, ToneFor(TrackLabels{Status: "Paid", AdminApproval: "Approved"}))
	assert.Equal(t, ToneNegative, ToneFor(TrackLabels{Status: "Paid", AdminApproval: "Rejected"}))
}

func TestToneFor_StatusClasses(t *testing.T) {
	assert.Equal(t, ToneWarning, ToneFor(TrackLabels{Status: "Agreement Done"}))
	assert.Equal(t, ToneWarning, ToneFor(TrackLabels{Status: "Settlement Done"}))
	assert.Equal(t, ToneWarning, ToneFor(TrackLabels{Status: "Pending"}))
	assert.Equal(t, ToneInfo, ToneFor(TrackLabels{Status: "Under Review"}))
	assert.Equal(t, ToneNeutral, ToneFor(TrackLabels{Status: "N/A"}))
	assert.Equal(t, ToneNeutral, ToneFor(TrackLabels{Status: SentinelNotPaid}))
}

func TestResolveComposite_NoAction(t *testing.T) {
	composite := ResolveComposite(
		TrackLabels{Status: SentinelNotPaid, AdminApproval: "Approved"},
		TrackLabels{Status: SentinelNoAgreement},
		TrackLabels{Status: SentinelNoSettlement},
		true, false,
	)

	// All three statuses still at their sentinels: "No Action" regardless of
	// approval values.
	assert.True(t, composite.NoAction)
	assert.Equal(t, ToneNeutral, composite.Payment)
	assert.True(t, composite.Pinned)
	assert.False(t, composite.Online)
}

func TestResolveComposite_AnyStatusChangeRemovesNoAction(t *testing.T) {
	composite := ResolveComposite(
		TrackLabels{Status: "Paid"},
		TrackLabels{Status: SentinelNoAgreement},
		TrackLabels{Status: SentinelNoSettlement},
		false, true,
	)

	assert.False(t, composite.NoAction)
	assert.Equal(t, ToneWarning, composite.Payment)
	assert.Equal(t, ToneNeutral, composite.Agreement)
	assert.Equal(t, ToneNeutral, composite.Settlement)
	assert.True(t, composite.Online)
}

func TestResolveComposite_SentinelMatchIsCaseSensitive(t *testing.T) {
	composite := ResolveComposite(
		TrackLabels{Status: "not paid"},
		TrackLabels{Status: SentinelNoAgreement},
		TrackLabels{Status: SentinelNoSettlement},
		false, false,
	)

	assert.False(t, composite.NoAction)
}

func TestResolveComposite_AdminDecisionScenario(t *testing.T) {
	// Employee marked the payment done; the admin then approves it.
	before := ResolveComposite(
		TrackLabels{Status: "Paid", AdminApproval: "N/A"},
		TrackLabels{Status: SentinelNoAgreement},
		TrackLabels{Status: SentinelNoSettlement},
		false, false,
	)
	assert.Equal(t, ToneWarning, before.Payment)

	after := ResolveComposite(
		TrackLabels{Status: "Paid", AdminApproval: "Approved"},
		TrackLabels{Status: SentinelNoAgreement},
		TrackLabels{Status: SentinelNoSettlement},
		false, false,
	)
	assert.Equal(t, TonePositive, after.Payment)
}
