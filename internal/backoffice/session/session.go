// Package session holds the per-customer edit state machine. Each of the
// three tracks edits independently: its own working copy, its own state,
// its own field errors. Nothing here touches the network except Save, and
// Save only when the diff is non-empty.
package session

import (
	"context"
	"log/slog"

	"bureau/internal/backoffice/client"
	"bureau/internal/domain/entity"

	"github.com/pkg/errors"
)

// State of one track's editor.
type State string

const (
	StateViewing    State = "viewing"
	StateEditing    State = "editing"
	StateSubmitting State = "submitting"
)

// Outcome classifies what a Save attempt did.
type Outcome string

const (
	// OutcomeSaved means the server accepted the diff; the baseline is
	// reconciled with the authoritative record.
	OutcomeSaved Outcome = "saved"
	// OutcomeNoChanges means the diff was empty; no network call happened.
	OutcomeNoChanges Outcome = "no-changes"
	// OutcomeInvalid means local required-field validation failed before
	// any network call.
	OutcomeInvalid Outcome = "invalid"
	// OutcomeRejected means the server returned structured field errors;
	// the attempted values are kept.
	OutcomeRejected Outcome = "rejected"
	// OutcomeStale means the response belonged to a submit that is no
	// longer current and was discarded.
	OutcomeStale Outcome = "stale"
)

// Result reports one Save attempt.
type Result struct {
	Outcome     Outcome
	Record      *client.Record
	FieldErrors map[string][]string
	Message     string
}

// Saver submits one track's change set. The API client satisfies this.
type Saver interface {
	UpdateTrack(ctx context.Context, userID string, fields map[string]any, files map[string]client.Attachment) (*client.Record, error)
}

var (
	ErrNoCustomer   = errors.New("no customer selected")
	ErrNotEditing   = errors.New("track is not in edit mode")
	ErrAlreadyOpen  = errors.New("track already has an edit in progress")
	ErrSubmitting   = errors.New("a save is already in flight for this track")
	ErrUnknownField = errors.New("field does not exist on this track")
	ErrWrongTrack   = errors.New("field belongs to a different track")
	ErrAdminOnly    = errors.New("field is admin-only")
	ErrNotFileField = errors.New("field does not accept file uploads")
)

type trackState struct {
	state       State
	original    map[string]any
	working     map[string]any
	fieldErrors map[string][]string
	submitSeq   uint64
}

// Session is the edit state of one selected customer. Not safe for
// concurrent use; single-flight per track is enforced by state, not locks.
type Session struct {
	saver   Saver
	logger  *slog.Logger
	isAdmin bool

	customer *client.Record
	tracks   map[entity.Track]*trackState
	seq      uint64
}

// New builds an empty session. isAdmin widens the writable field set to
// include the admin-approval fields.
func New(saver Saver, logger *slog.Logger, isAdmin bool) *Session {
	return &Session{
		saver:   saver,
		logger:  logger,
		isAdmin: isAdmin,
		tracks:  make(map[entity.Track]*trackState),
	}
}

// SelectCustomer makes a customer current. In-progress edits on the
// previous customer are discarded silently.
func (s *Session) SelectCustomer(record *client.Record) {
	s.customer = record
	s.tracks = make(map[entity.Track]*trackState)
	for _, track := range entity.Tracks() {
		s.tracks[track] = &trackState{
			state:    StateViewing,
			original: snapshotTrack(track, record),
		}
	}
}

// RefreshBaseline replaces the originals used for future diffs with a
// fresh server record. A working copy in progress is never clobbered.
func (s *Session) RefreshBaseline(record *client.Record) {
	if s.customer == nil || record == nil || record.UserID != s.customer.UserID {
		return
	}

	s.customer = record
	for _, track := range entity.Tracks() {
		s.tracks[track].original = snapshotTrack(track, record)
	}
}

// Customer returns the currently selected record, nil when none.
func (s *Session) Customer() *client.Record {
	return s.customer
}

// State reports one track's editor state.
func (s *Session) State(track entity.Track) State {
	if ts, ok := s.tracks[track]; ok {
		return ts.state
	}

	return StateViewing
}

// FieldErrors returns the field error map from the last failed save.
func (s *Session) FieldErrors(track entity.Track) map[string][]string {
	if ts, ok := s.tracks[track]; ok {
		return ts.fieldErrors
	}

	return nil
}

// Working returns the current working copy of one track, nil outside an
// edit.
func (s *Session) Working(track entity.Track) map[string]any {
	if ts, ok := s.tracks[track]; ok {
		return ts.working
	}

	return nil
}

// BeginEdit opens one track for editing with a copy of its baseline.
func (s *Session) BeginEdit(track entity.Track) error {
	ts, err := s.trackFor(track)
	if err != nil {
		return err
	}

	switch ts.state {
	case StateEditing:
		return errors.WithStack(ErrAlreadyOpen)
	case StateSubmitting:
		return errors.WithStack(ErrSubmitting)
	}

	ts.working = copyValues(ts.original)
	ts.fieldErrors = nil
	ts.state = StateEditing

	return nil
}

// SetField stages a scalar value on an open edit. Unknown fields, fields
// of another track, and admin-only fields for a non-admin are rejected.
func (s *Session) SetField(track entity.Track, name string, value any) error {
	ts, spec, err := s.editableField(track, name)
	if err != nil {
		return err
	}
	if spec.Type == entity.FieldFile {
		if _, ok := value.(client.Attachment); !ok && !isEmpty(value) {
			return errors.WithStack(ErrNotFileField)
		}
	}

	ts.working[name] = value

	return nil
}

// StageFile stages a replacement upload on a file field.
func (s *Session) StageFile(track entity.Track, name string, attachment client.Attachment) error {
	ts, spec, err := s.editableField(track, name)
	if err != nil {
		return err
	}
	if spec.Type != entity.FieldFile {
		return errors.WithStack(ErrNotFileField)
	}

	ts.working[name] = attachment

	return nil
}

// RemoveFile stages the removal of a stored file.
func (s *Session) RemoveFile(track entity.Track, name string) error {
	return s.StageFile(track, name, client.Attachment{Remove: true})
}

// Cancel discards the working copy and restores the pre-edit original.
// No network call.
func (s *Session) Cancel(track entity.Track) error {
	ts, err := s.trackFor(track)
	if err != nil {
		return err
	}
	if ts.state != StateEditing {
		return errors.WithStack(ErrNotEditing)
	}

	ts.working = nil
	ts.fieldErrors = nil
	ts.state = StateViewing

	return nil
}

// Save validates, diffs, and submits one track. Local validation failures
// and server field rejections keep the edit open with the attempted
// values; transport-level failures return the client's error unchanged so
// the caller can apply its taxonomy (401 terminates the session).
func (s *Session) Save(ctx context.Context, track entity.Track) (*Result, error) {
	ts, err := s.trackFor(track)
	if err != nil {
		return nil, err
	}
	if ts.state == StateSubmitting {
		return nil, errors.WithStack(ErrSubmitting)
	}
	if ts.state != StateEditing {
		return nil, errors.WithStack(ErrNotEditing)
	}

	spec, _ := entity.SpecFor(track)

	if fieldErrs := spec.Validate(flattenForValidation(ts.working)); len(fieldErrs) > 0 {
		ts.fieldErrors = fieldErrs

		return &Result{Outcome: OutcomeInvalid, FieldErrors: fieldErrs}, nil
	}

	fields, files := Diff(spec, ts.original, ts.working)
	if len(fields) == 0 && len(files) == 0 {
		ts.working = nil
		ts.fieldErrors = nil
		ts.state = StateViewing

		return &Result{Outcome: OutcomeNoChanges, Message: "nothing to save"}, nil
	}

	// Tag this submit so a response that arrives after the context moved
	// on is discarded instead of clobbering newer state.
	s.seq++
	token := submitToken{customerUserID: s.customer.UserID, track: track, seq: s.seq}
	ts.submitSeq = token.seq
	ts.state = StateSubmitting

	record, err := s.saver.UpdateTrack(ctx, token.customerUserID, fields, files)

	if s.stale(token) {
		s.logger.Debug("discarding stale save response",
			slog.String("customer", token.customerUserID),
			slog.String("track", string(track)),
		)

		return &Result{Outcome: OutcomeStale}, nil
	}

	if err != nil {
		ts.state = StateEditing

		var fieldErrs client.FieldErrors
		if errors.As(err, &fieldErrs) {
			ts.fieldErrors = map[string][]string(fieldErrs)

			return &Result{Outcome: OutcomeRejected, FieldErrors: ts.fieldErrors}, nil
		}

		return nil, err
	}

	ts.working = nil
	ts.fieldErrors = nil
	ts.state = StateViewing
	s.RefreshBaseline(record)

	return &Result{Outcome: OutcomeSaved, Record: record}, nil
}

type submitToken struct {
	customerUserID string
	track          entity.Track
	seq            uint64
}

// stale reports whether the session moved on while a submit was in
// flight: a different customer was selected, or a newer submit superseded
// this one.
func (s *Session) stale(token submitToken) bool {
	if s.customer == nil || s.customer.UserID != token.customerUserID {
		return true
	}
	ts, ok := s.tracks[token.track]
	if !ok || ts.submitSeq != token.seq {
		return true
	}

	return false
}

func (s *Session) trackFor(track entity.Track) (*trackState, error) {
	if s.customer == nil {
		return nil, errors.WithStack(ErrNoCustomer)
	}
	ts, ok := s.tracks[track]
	if !ok {
		return nil, errors.WithStack(ErrWrongTrack)
	}

	return ts, nil
}

func (s *Session) editableField(track entity.Track, name string) (*trackState, entity.FieldSpec, error) {
	ts, err := s.trackFor(track)
	if err != nil {
		return nil, entity.FieldSpec{}, err
	}
	if ts.state != StateEditing {
		return nil, entity.FieldSpec{}, errors.WithStack(ErrNotEditing)
	}

	owner, spec, ok := entity.TrackForField(name)
	if !ok {
		return nil, entity.FieldSpec{}, errors.WithStack(ErrUnknownField)
	}
	if owner != track {
		return nil, entity.FieldSpec{}, errors.WithStack(ErrWrongTrack)
	}
	if spec.AdminOnly && !s.isAdmin {
		return nil, entity.FieldSpec{}, errors.WithStack(ErrAdminOnly)
	}

	return ts, spec, nil
}

// snapshotTrack copies one track's field values out of a record.
func snapshotTrack(track entity.Track, record *client.Record) map[string]any {
	spec, _ := entity.SpecFor(track)
	snapshot := make(map[string]any, len(spec.Fields))
	for _, field := range spec.Fields {
		if value, ok := record.Fields[field.Name]; ok {
			snapshot[field.Name] = value
		}
	}

	return snapshot
}

func copyValues(values map[string]any) map[string]any {
	copied := make(map[string]any, len(values))
	for name, value := range values {
		copied[name] = value
	}

	return copied
}

// flattenForValidation renders staged attachments as their presence so
// required-field validation treats a staged upload as provided.
func flattenForValidation(working map[string]any) map[string]any {
	flattened := make(map[string]any, len(working))
	for name, value := range working {
		if attachment, ok := value.(client.Attachment); ok {
			if attachment.Content != nil {
				flattened[name] = attachment.Filename
			} else {
				flattened[name] = ""
			}

			continue
		}
		flattened[name] = value
	}

	return flattened
}
