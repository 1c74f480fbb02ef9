package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EmployeeRef is the denormalized owner reference embedded in a customer
// record. Exactly one employee owns a customer at a time; reassignment
// replaces, never duplicates, ownership.
type EmployeeRef struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
}

// Customer is the central record of the back office. UserID is the stable
// external key; it never changes after onboarding. The three groups of
// track fields below are mutated exclusively through the partial-update
// protocol, one track at a time.
type Customer struct {
	ID       uuid.UUID
	UserID   string
	FullName string
	Email    string
	Phone    string

	AssignedEmployee *EmployeeRef
	Pinned           bool
	Online           bool

	// Payment track.
	PackageName          *int64
	PackageExpiry        *time.Time
	ProfileHighlighter   bool
	AccountStatus        bool
	ProfileVerified      bool
	PaymentStatus        *int64
	PaymentMethod        *int64
	PaymentAmount        *decimal.Decimal
	PaymentDate          *time.Time
	PaymentReceipt       string
	PaymentAdminApproval *int64
	BankName             string
	AccountHolderName    string

	// Agreement track.
	AgreementStatus        *int64
	AgreementFile          string
	AdminAgreementApproval *int64

	// Settlement track.
	SettlementStatus        *int64
	SettlementBy            string
	SettlementAmount        *decimal.Decimal
	SettlementType          *int64
	SettlementDate          *time.Time
	SettlementReceipt       string
	SettlementAdminApproval *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TrackFieldValues flattens the customer's track fields into the dynamic map
// shape the diff/update protocol works with, keyed by field name.
func (c *Customer) TrackFieldValues() map[string]any {
	values := map[string]any{
		"package_name":              lookupValue(c.PackageName),
		"package_expiry":            dateValue(c.PackageExpiry),
		"profile_highlighter":       c.ProfileHighlighter,
		"account_status":            c.AccountStatus,
		"profile_verified":          c.ProfileVerified,
		"payment_status":            lookupValue(c.PaymentStatus),
		"payment_method":            lookupValue(c.PaymentMethod),
		"payment_amount":            amountValue(c.PaymentAmount),
		"payment_date":              dateValue(c.PaymentDate),
		"payment_receipt":           c.PaymentReceipt,
		"payment_admin_approval":    lookupValue(c.PaymentAdminApproval),
		"bank_name":                 c.BankName,
		"account_holder_name":       c.AccountHolderName,
		"agreement_status":          lookupValue(c.AgreementStatus),
		"agreement_file":            c.AgreementFile,
		"admin_agreement_approval":  lookupValue(c.AdminAgreementApproval),
		"settlement_status":         lookupValue(c.SettlementStatus),
		"settlement_by":             c.SettlementBy,
		"settlement_amount":         amountValue(c.SettlementAmount),
		"settlement_type":           lookupValue(c.SettlementType),
		"settlement_date":           dateValue(c.SettlementDate),
		"settlement_receipt":        c.SettlementReceipt,
		"settlement_admin_approval": lookupValue(c.SettlementAdminApproval),
	}

	return values
}

func lookupValue(id *int64) any {
	if id == nil {
		return nil
	}

	return *id
}

func dateValue(t *time.Time) any {
	if t == nil {
		return nil
	}

	return t.Format("2006-01-02")
}

func amountValue(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}

	return d.StringFixed(2)
}
