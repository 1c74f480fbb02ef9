// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Track identifies one of the three independent sub-workflows on a customer.
type Track string

const (
	// TrackPayment covers package purchase and payment follow-up.
	TrackPayment Track = "payment"
	// TrackAgreement covers the signed service agreement.
	TrackAgreement Track = "agreement"
	// TrackSettlement covers the final settlement after a match.
	TrackSettlement Track = "settlement"
)

// String returns the string representation of the Track.
func (t Track) String() string {
	return string(t)
}

// IsValid checks if the Track is a valid value.
func (t Track) IsValid() bool {
	switch t {
	case TrackPayment, TrackAgreement, TrackSettlement:
		return true
	default:
		return false
	}
}

// Tracks lists all tracks in their canonical display order.
func Tracks() []Track {
	return []Track{TrackPayment, TrackAgreement, TrackSettlement}
}

// FieldType describes how a track field is rendered and validated.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldNumber   FieldType = "number" // two-decimal semantics
	FieldDate     FieldType = "date"   // ISO 8601 date, time component truncated
	FieldSelect   FieldType = "select" // resolved through a lookup table
	FieldCheckbox FieldType = "checkbox"
	FieldFile     FieldType = "file" // nullable, replace-or-remove
)

// Lookup table categories referenced by select fields.
const (
	LookupPaymentStatus    = "payment_status"
	LookupPaymentMethod    = "payment_method"
	LookupAdminApproval    = "admin_approval"
	LookupAgreementStatus  = "agreement_status"
	LookupSettlementStatus = "settlement_status"
	LookupSettlementType   = "settlement_type"
	LookupPackageName      = "package_name"
)

// LookupCategories lists every lookup table the workflow references.
func LookupCategories() []string {
	return []string{
		LookupPaymentStatus,
		LookupPaymentMethod,
		LookupAdminApproval,
		LookupAgreementStatus,
		LookupSettlementStatus,
		LookupSettlementType,
		LookupPackageName,
	}
}

// IsLookupCategory reports whether category names a known lookup table.
func IsLookupCategory(category string) bool {
	for _, c := range LookupCategories() {
		if c == category {
			return true
		}
	}

	return false
}

// FieldSpec describes a single editable field of a track.
type FieldSpec struct {
	Name      string
	Type      FieldType
	Required  bool   // part of the save-validation subset
	AdminOnly bool   // writable only by an admin actor
	Lookup    string // lookup category for select fields, empty otherwise
}

// TrackSpec is the ordered field list of one track. The order drives form
// rendering; the Required subset drives save-time validation. This table is
// static per deployment and must match what the backend enforces, otherwise
// saves fail silently.
type TrackSpec struct {
	Track  Track
	Fields []FieldSpec
}

var paymentSpec = TrackSpec{
	Track: TrackPayment,
	Fields: []FieldSpec{
		{Name: "package_name", Type: FieldSelect, Lookup: LookupPackageName},
		{Name: "package_expiry", Type: FieldDate},
		{Name: "profile_highlighter", Type: FieldCheckbox},
		{Name: "account_status", Type: FieldCheckbox},
		{Name: "profile_verified", Type: FieldCheckbox},
		{Name: "payment_status", Type: FieldSelect, Required: true, Lookup: LookupPaymentStatus},
		{Name: "payment_method", Type: FieldSelect, Required: true, Lookup: LookupPaymentMethod},
		{Name: "payment_amount", Type: FieldNumber},
		{Name: "payment_date", Type: FieldDate},
		{Name: "payment_receipt", Type: FieldFile},
		{Name: "payment_admin_approval", Type: FieldSelect, Required: true, AdminOnly: true, Lookup: LookupAdminApproval},
		{Name: "bank_name", Type: FieldText},
		{Name: "account_holder_name", Type: FieldText},
	},
}

var agreementSpec = TrackSpec{
	Track: TrackAgreement,
	Fields: []FieldSpec{
		{Name: "agreement_status", Type: FieldSelect, Required: true, Lookup: LookupAgreementStatus},
		{Name: "agreement_file", Type: FieldFile},
		{Name: "admin_agreement_approval", Type: FieldSelect, Required: true, AdminOnly: true, Lookup: LookupAdminApproval},
	},
}

var settlementSpec = TrackSpec{
	Track: TrackSettlement,
	Fields: []FieldSpec{
		{Name: "settlement_status", Type: FieldSelect, Required: true, Lookup: LookupSettlementStatus},
		{Name: "settlement_by", Type: FieldText},
		{Name: "settlement_amount", Type: FieldNumber},
		{Name: "settlement_type", Type: FieldSelect, Required: true, Lookup: LookupSettlementType},
		{Name: "settlement_date", Type: FieldDate},
		{Name: "settlement_receipt", Type: FieldFile},
		{Name: "settlement_admin_approval", Type: FieldSelect, Required: true, AdminOnly: true, Lookup: LookupAdminApproval},
	},
}

// fieldToTrack indexes every track field by name for reverse lookup.
var fieldToTrack = buildFieldIndex()

func buildFieldIndex() map[string]Track {
	index := make(map[string]Track)
	for _, spec := range []TrackSpec{paymentSpec, agreementSpec, settlementSpec} {
		for _, field := range spec.Fields {
			index[field.Name] = spec.Track
		}
	}

	return index
}

// SpecFor returns the field table of the given track.
func SpecFor(track Track) (TrackSpec, bool) {
	switch track {
	case TrackPayment:
		return paymentSpec, true
	case TrackAgreement:
		return agreementSpec, true
	case TrackSettlement:
		return settlementSpec, true
	default:
		return TrackSpec{}, false
	}
}

// TrackForField returns the track that owns the given field name, together
// with the field's spec. Every track field belongs to exactly one track.
func TrackForField(name string) (Track, FieldSpec, bool) {
	track, ok := fieldToTrack[name]
	if !ok {
		return "", FieldSpec{}, false
	}

	spec, _ := SpecFor(track)
	field, _ := spec.Field(name)

	return track, field, true
}

// Field returns the FieldSpec of a single field by name.
func (s TrackSpec) Field(name string) (FieldSpec, bool) {
	for _, field := range s.Fields {
		if field.Name == name {
			return field, true
		}
	}

	return FieldSpec{}, false
}

// FieldNames returns the ordered field names of the track.
func (s TrackSpec) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, field := range s.Fields {
		names[i] = field.Name
	}

	return names
}

// RequiredFields returns the names of the save-validation subset.
func (s TrackSpec) RequiredFields() []string {
	var names []string
	for _, field := range s.Fields {
		if field.Required {
			names = append(names, field.Name)
		}
	}

	return names
}

// AdminOnlyFields returns the names writable only by an admin actor.
func (s TrackSpec) AdminOnlyFields() []string {
	var names []string
	for _, field := range s.Fields {
		if field.AdminOnly {
			names = append(names, field.Name)
		}
	}

	return names
}

// Validate checks the save-validation subset against a working copy of the
// track's fields. It returns one error message list per failing field; an
// empty map means the values may be submitted.
func (s TrackSpec) Validate(values map[string]any) map[string][]string {
	fieldErrors := make(map[string][]string)
	for _, field := range s.Fields {
		if !field.Required {
			continue
		}
		if IsEmptyValue(values[field.Name]) {
			fieldErrors[field.Name] = append(fieldErrors[field.Name], "This field is required.")
		}
	}

	if len(fieldErrors) == 0 {
		return nil
	}

	return fieldErrors
}

// IsEmptyValue reports whether a field value counts as "not provided" for
// required-field validation: nil, the empty string, or false for a required
// checkbox.
func IsEmptyValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	default:
		return false
	}
}
