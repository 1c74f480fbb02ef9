package entity

// Tone is the color class a track badge renders with.
type Tone string

const (
	TonePositive Tone = "positive"
	ToneNegative Tone = "negative"
	ToneWarning  Tone = "warning"
	ToneInfo     Tone = "info"
	ToneNeutral  Tone = "neutral"
)

// Raw status sentinels meaning "nothing happened yet" on a track. Matching
// is exact and case-sensitive; "No Agrement" keeps the backend enumeration's
// own spelling, since the values must compare byte-for-byte.
const (
	SentinelNotPaid      = "Not Paid"
	SentinelNoAgreement  = "No Agrement"
	SentinelNoSettlement = "No Settlement"
)

// Label sets driving the per-track tone resolution.
var (
	positiveApprovals = map[string]struct{}{
		"Approved":  {},
		"Accepted":  {},
		"Paid":      {},
		"Completed": {},
	}

	negativeApprovals = map[string]struct{}{
		"Rejected": {},
		"Declined": {},
		"Failed":   {},
	}

	// Statuses meaning "done, awaiting admin approval" or otherwise in flight.
	warningStatuses = map[string]struct{}{
		"Paid":            {},
		"Agreement Done":  {},
		"Settlement Done": {},
		"Pending":         {},
		"Awaiting":        {},
	}

	infoStatuses = map[string]struct{}{
		"Under Review": {},
	}
)

// ApprovalDecided reports whether an admin-approval label is a final
// decision (positive or negative) rather than empty or still pending.
func ApprovalDecided(label string) bool {
	if _, ok := positiveApprovals[label]; ok {
		return true
	}
	_, ok := negativeApprovals[label]

	return ok
}

// TrackLabels carries one track's resolved display labels.
type TrackLabels struct {
	Status        string
	AdminApproval string
}

// CompositeStatus is the derived customer-level indicator shown on cards and
// rows. When NoAction is true the per-track tones are not meaningful and the
// card renders a single "No Action" badge instead.
type CompositeStatus struct {
	NoAction   bool
	Payment    Tone
	Agreement  Tone
	Settlement Tone
	Pinned     bool
	Online     bool
}

// ToneFor resolves one track's badge tone. Priority order: a positive
// admin-approval label wins, then a negative one; only then does the
// employee-set status contribute.
func ToneFor(labels TrackLabels) Tone {
	if _, ok := positiveApprovals[labels.AdminApproval]; ok {
		return TonePositive
	}
	if _, ok := negativeApprovals[labels.AdminApproval]; ok {
		return ToneNegative
	}
	if _, ok := warningStatuses[labels.Status]; ok {
		return ToneWarning
	}
	if _, ok := infoStatuses[labels.Status]; ok {
		return ToneInfo
	}

	return ToneNeutral
}

// ResolveComposite derives the customer-level indicator from the three
// tracks' labels. The "No Action" aggregate short-circuits the per-track
// computation when all three raw statuses still equal their sentinels; this
// is a display simplification only and never gates editing.
func ResolveComposite(payment, agreement, settlement TrackLabels, pinned, online bool) CompositeStatus {
	if payment.Status == SentinelNotPaid &&
		agreement.Status == SentinelNoAgreement &&
		settlement.Status == SentinelNoSettlement {
		return CompositeStatus{
			NoAction:   true,
			Payment:    ToneNeutral,
			Agreement:  ToneNeutral,
			Settlement: ToneNeutral,
			Pinned:     pinned,
			Online:     online,
		}
	}

	return CompositeStatus{
		Payment:    ToneFor(payment),
		Agreement:  ToneFor(agreement),
		Settlement: ToneFor(settlement),
		Pinned:     pinned,
		Online:     online,
	}
}
