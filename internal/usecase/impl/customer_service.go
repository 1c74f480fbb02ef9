// Package impl contains the concrete implementations of the usecase interfaces.
package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	deliverycontext "bureau/internal/delivery/context"
	"bureau/internal/domain/entity"
	domainerrors "bureau/internal/domain/errors"
	"bureau/internal/domain/repository"
	"bureau/internal/domain/service"
	"bureau/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const dateLayout = "2006-01-02"

type customerService struct {
	customerRepo   repository.CustomerRepository
	employeeRepo   repository.EmployeeRepository
	lookupRepo     repository.LookupRepository
	txManager      repository.TransactionManager
	fileStorage    service.FileStorage
	eventPublisher service.EventPublisher
	qrcodeService  service.QRCodeService
	logger         *slog.Logger
}

// CustomerServiceParams holds dependencies for CustomerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	CustomerRepo   repository.CustomerRepository
	EmployeeRepo   repository.EmployeeRepository
	LookupRepo     repository.LookupRepository
	TxManager      repository.TransactionManager
	FileStorage    service.FileStorage
	EventPublisher service.EventPublisher
	QRCodeService  service.QRCodeService
	Logger         *slog.Logger
}

// NewCustomerService creates a new customer service instance
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		customerRepo:   params.CustomerRepo,
		employeeRepo:   params.EmployeeRepo,
		lookupRepo:     params.LookupRepo,
		txManager:      params.TxManager,
		fileStorage:    params.FileStorage,
		eventPublisher: params.EventPublisher,
		qrcodeService:  params.QRCodeService,
		logger:         params.Logger,
	}
}

// ListCustomers returns the customers visible to the actor, with composite
// statuses resolved and the requested filter applied.
func (s *customerService) ListCustomers(ctx context.Context, input usecase.ListCustomersInput) ([]*usecase.CustomerView, error) {
	employeeIDs, err := s.visibleEmployees(ctx, input.Actor)
	if err != nil {
		return nil, err
	}

	customers, err := s.customerRepo.ListByEmployees(ctx, employeeIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	labels, err := s.loadLabelIndex(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*usecase.CustomerView, 0, len(customers))
	for _, customer := range customers {
		if input.Search != "" && !matchesSearch(customer, input.Search) {
			continue
		}

		view := &usecase.CustomerView{
			Customer:  customer,
			Composite: resolveComposite(customer, labels),
		}

		switch input.Filter {
		case usecase.FilterAll:
		case usecase.FilterNoAction:
			if !view.Composite.NoAction {
				continue
			}
		case usecase.FilterPendingApproval:
			if !pendingApproval(customer, labels) {
				continue
			}
		default:
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown filter: " + input.Filter)
		}

		views = append(views, view)
	}

	return views, nil
}

// GetCustomer returns one visible customer with its composite status.
func (s *customerService) GetCustomer(ctx context.Context, actor entity.Actor, customerUserID string) (*usecase.CustomerView, error) {
	customer, err := s.findVisibleCustomer(ctx, actor, customerUserID)
	if err != nil {
		return nil, err
	}

	labels, err := s.loadLabelIndex(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.CustomerView{
		Customer:  customer,
		Composite: resolveComposite(customer, labels),
	}, nil
}

// UpdateTrack applies a single-track partial update. Validation order:
// field names, track exclusivity, role gate, value shapes, lookup ids,
// required-field emptying. Only after all checks does anything get written.
func (s *customerService) UpdateTrack(ctx context.Context, input usecase.UpdateTrackInput) (*usecase.CustomerView, error) {
	if len(input.Fields) == 0 && len(input.Files) == 0 {
		return s.GetCustomer(ctx, input.Actor, input.CustomerUserID)
	}

	customer, err := s.findVisibleCustomer(ctx, input.Actor, input.CustomerUserID)
	if err != nil {
		return nil, err
	}

	track, specs, err := resolveTrackFields(input)
	if err != nil {
		return nil, err
	}

	if !input.Actor.CanSetAdminFields() {
		for name, spec := range specs {
			if spec.AdminOnly {
				return nil, domainerrors.ErrAdminApprovalForbidden.WithDetails(name)
			}
		}
	}

	updates, err := s.convertValues(ctx, input, specs)
	if err != nil {
		return nil, err
	}

	if err := s.storeUploads(ctx, input, customer, updates); err != nil {
		return nil, err
	}

	if err := s.customerRepo.UpdateFields(ctx, input.CustomerUserID, updates); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, err
	}

	s.publishWorkflowEvent(ctx, customer, string(track), updates, input.Actor)

	return s.GetCustomer(ctx, input.Actor, input.CustomerUserID)
}

// AssignCustomer replaces the customer's owner, writing the audit row in
// the same transaction as the ownership change.
func (s *customerService) AssignCustomer(ctx context.Context, input usecase.AssignCustomerInput) error {
	if input.Actor.Role != entity.RoleAdmin {
		return domainerrors.ErrForbidden.WithDetails("only an admin may assign customers")
	}

	employee, err := s.employeeRepo.FindByUserID(ctx, input.EmployeeUserID)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return domainerrors.ErrEmployeeNotFound
		}

		return errors.Wrap(err, "failed to find employee")
	}
	if !employee.Active {
		return domainerrors.ErrEmployeeInactive
	}
	if employee.UserID != input.Actor.UserID && employee.AdminUserID != input.Actor.UserID {
		return domainerrors.ErrForbidden.WithDetails("employee is not on your team")
	}

	var previousOwner string

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		customerRepo := factory.NewCustomerRepository()

		customer, err := customerRepo.FindByUserID(ctx, input.CustomerUserID)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return domainerrors.ErrCustomerNotFound
			}

			return err
		}
		if customer.AssignedEmployee != nil {
			previousOwner = customer.AssignedEmployee.UserID
		}

		if err := customerRepo.UpdateAssignment(ctx, input.CustomerUserID, employee.Ref()); err != nil {
			return err
		}

		return factory.NewAssignmentEventRepository().Create(ctx, &entity.AssignmentEvent{
			CustomerUserID:     input.CustomerUserID,
			FromEmployeeUserID: previousOwner,
			ToEmployeeUserID:   employee.UserID,
			ActorUserID:        input.Actor.UserID,
		})
	})
	if err != nil {
		return err
	}

	event := &service.WorkflowEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		EventID:        uuid.New().String(),
		Action:         entity.ActionCustomerAssigned,
		CustomerUserID: input.CustomerUserID,
		ActorUserID:    input.Actor.UserID,
		EmployeeUserID: employee.UserID,
	}
	if err := s.eventPublisher.PublishWorkflowEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("failed to publish assignment event",
			slog.String("customer_user_id", input.CustomerUserID),
			slog.String("error", err.Error()),
		)
	}

	return nil
}

// GenerateProfileQR renders the shareable profile QR code PNG.
func (s *customerService) GenerateProfileQR(ctx context.Context, actor entity.Actor, customerUserID string) ([]byte, error) {
	if _, err := s.findVisibleCustomer(ctx, actor, customerUserID); err != nil {
		return nil, err
	}

	return s.qrcodeService.GenerateProfileQR(customerUserID)
}

// --- helpers ---

// visibleEmployees resolves the ownership scope of the actor: employees see
// only themselves, admins see their whole team plus themselves.
func (s *customerService) visibleEmployees(ctx context.Context, actor entity.Actor) ([]string, error) {
	if actor.Role != entity.RoleAdmin {
		return []string{actor.UserID}, nil
	}

	team, err := s.employeeRepo.ListByAdmin(ctx, actor.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list team")
	}

	ids := make([]string, 0, len(team)+1)
	ids = append(ids, actor.UserID)
	for _, employee := range team {
		ids = append(ids, employee.UserID)
	}

	return ids, nil
}

func (s *customerService) findVisibleCustomer(ctx context.Context, actor entity.Actor, customerUserID string) (*entity.Customer, error) {
	customer, err := s.customerRepo.FindByUserID(ctx, customerUserID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	visible, err := s.canAccess(ctx, actor, customer)
	if err != nil {
		return nil, err
	}
	if !visible {
		// Out-of-scope customers are indistinguishable from absent ones.
		return nil, domainerrors.ErrCustomerNotFound
	}

	return customer, nil
}

func (s *customerService) canAccess(ctx context.Context, actor entity.Actor, customer *entity.Customer) (bool, error) {
	if customer.AssignedEmployee == nil {
		return actor.Role == entity.RoleAdmin, nil
	}
	if customer.AssignedEmployee.UserID == actor.UserID {
		return true, nil
	}
	if actor.Role != entity.RoleAdmin {
		return false, nil
	}

	owner, err := s.employeeRepo.FindByUserID(ctx, customer.AssignedEmployee.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to find owning employee")
	}

	return owner.AdminUserID == actor.UserID, nil
}

// labelIndex maps lookup option ids to display labels per category.
type labelIndex map[string]map[int64]string

func (s *customerService) loadLabelIndex(ctx context.Context) (labelIndex, error) {
	categories := []string{
		entity.LookupPaymentStatus,
		entity.LookupAgreementStatus,
		entity.LookupSettlementStatus,
		entity.LookupAdminApproval,
	}

	index := make(labelIndex, len(categories))
	for _, category := range categories {
		options, err := s.lookupRepo.ListOptions(ctx, category)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load lookup %s", category)
		}

		byID := make(map[int64]string, len(options))
		for _, option := range options {
			byID[option.ID] = option.Name
		}
		index[category] = byID
	}

	return index, nil
}

func (idx labelIndex) label(category string, id *int64, fallback string) string {
	if id == nil {
		return fallback
	}
	if name, ok := idx[category][*id]; ok {
		return name
	}

	return fallback
}

func trackLabelsFor(customer *entity.Customer, labels labelIndex) (payment, agreement, settlement entity.TrackLabels) {
	payment = entity.TrackLabels{
		Status:        labels.label(entity.LookupPaymentStatus, customer.PaymentStatus, entity.SentinelNotPaid),
		AdminApproval: labels.label(entity.LookupAdminApproval, customer.PaymentAdminApproval, ""),
	}
	agreement = entity.TrackLabels{
		Status:        labels.label(entity.LookupAgreementStatus, customer.AgreementStatus, entity.SentinelNoAgreement),
		AdminApproval: labels.label(entity.LookupAdminApproval, customer.AdminAgreementApproval, ""),
	}
	settlement = entity.TrackLabels{
		Status:        labels.label(entity.LookupSettlementStatus, customer.SettlementStatus, entity.SentinelNoSettlement),
		AdminApproval: labels.label(entity.LookupAdminApproval, customer.SettlementAdminApproval, ""),
	}

	return payment, agreement, settlement
}

func resolveComposite(customer *entity.Customer, labels labelIndex) entity.CompositeStatus {
	payment, agreement, settlement := trackLabelsFor(customer, labels)

	return entity.ResolveComposite(payment, agreement, settlement, customer.Pinned, customer.Online)
}

// pendingApproval reports whether any track has employee-entered progress
// without a final admin decision.
func pendingApproval(customer *entity.Customer, labels labelIndex) bool {
	payment, agreement, settlement := trackLabelsFor(customer, labels)

	tracks := []struct {
		statusSet bool
		labels    entity.TrackLabels
	}{
		{customer.PaymentStatus != nil, payment},
		{customer.AgreementStatus != nil, agreement},
		{customer.SettlementStatus != nil, settlement},
	}

	for _, track := range tracks {
		if track.statusSet && !entity.ApprovalDecided(track.labels.AdminApproval) {
			return true
		}
	}

	return false
}

func matchesSearch(customer *entity.Customer, search string) bool {
	needle := strings.ToLower(search)

	return strings.Contains(strings.ToLower(customer.FullName), needle) ||
		strings.Contains(strings.ToLower(customer.UserID), needle)
}

// resolveTrackFields maps every requested field to its spec and enforces
// the one-track-per-request rule.
func resolveTrackFields(input usecase.UpdateTrackInput) (entity.Track, map[string]entity.FieldSpec, error) {
	specs := make(map[string]entity.FieldSpec, len(input.Fields)+len(input.Files))
	var track entity.Track

	addField := func(name string) error {
		fieldTrack, spec, ok := entity.TrackForField(name)
		if !ok {
			return domainerrors.ErrUnknownTrackField.WithDetails(name)
		}
		if track == "" {
			track = fieldTrack
		} else if track != fieldTrack {
			return domainerrors.ErrCrossTrackUpdate.WithDetails(name)
		}

		specs[name] = spec

		return nil
	}

	for name := range input.Fields {
		if err := addField(name); err != nil {
			return "", nil, err
		}
	}
	for name := range input.Files {
		if err := addField(name); err != nil {
			return "", nil, err
		}
		if specs[name].Type != entity.FieldFile {
			return "", nil, domainerrors.NewFieldError(name, "This field does not accept file uploads.")
		}
	}

	return track, specs, nil
}

// convertValues turns raw request values into their storage representation,
// validating shapes, lookup ids, and the required-field rule as it goes.
func (s *customerService) convertValues(ctx context.Context, input usecase.UpdateTrackInput, specs map[string]entity.FieldSpec) (map[string]any, error) {
	fieldErrors := make(map[string][]string)
	updates := make(map[string]any, len(input.Fields))

	for name, raw := range input.Fields {
		spec := specs[name]

		if entity.IsEmptyValue(raw) {
			if spec.Required {
				fieldErrors[name] = append(fieldErrors[name], "This field is required.")

				continue
			}
			updates[name] = emptyStorageValue(spec)

			continue
		}

		value, fieldErr := s.convertValue(ctx, spec, raw)
		if fieldErr != "" {
			fieldErrors[name] = append(fieldErrors[name], fieldErr)

			continue
		}
		updates[name] = value
	}

	if len(fieldErrors) > 0 {
		return nil, domainerrors.NewValidationError(fieldErrors)
	}

	return updates, nil
}

func (s *customerService) convertValue(ctx context.Context, spec entity.FieldSpec, raw any) (any, string) {
	switch spec.Type {
	case entity.FieldSelect:
		id, ok := toLookupID(raw)
		if !ok {
			return nil, "Enter a valid option."
		}
		if _, err := s.lookupRepo.FindOption(ctx, spec.Lookup, id); err != nil {
			return nil, "Select a valid choice."
		}

		return id, ""

	case entity.FieldCheckbox:
		value, ok := toBool(raw)
		if !ok {
			return nil, "Enter a valid boolean value."
		}

		return value, ""

	case entity.FieldNumber:
		amount, ok := toAmount(raw)
		if !ok {
			return nil, "Enter a valid amount."
		}

		return amount, ""

	case entity.FieldDate:
		date, ok := toDate(raw)
		if !ok {
			return nil, "Enter a valid date in YYYY-MM-DD format."
		}

		return date, ""

	case entity.FieldFile:
		// Without binary content a file field carries its stored URL, or
		// empty to remove the document.
		text, ok := raw.(string)
		if !ok {
			return nil, "Enter a valid file reference."
		}

		return text, ""

	default: // FieldText
		text, ok := raw.(string)
		if !ok {
			return nil, "Enter a valid value."
		}

		return text, ""
	}
}

// storeUploads writes the binary uploads to the blob store and swaps old
// documents out. The previous file is removed best-effort after the new URL
// is known.
func (s *customerService) storeUploads(ctx context.Context, input usecase.UpdateTrackInput, customer *entity.Customer, updates map[string]any) error {
	previous := customer.TrackFieldValues()

	for name, upload := range input.Files {
		url, err := s.fileStorage.Save(ctx, upload.Filename, upload.ContentType, upload.Content)
		if err != nil {
			return domainerrors.ErrFileStoreFailed.WrapMessage(name)
		}
		updates[name] = url

		s.deleteReplacedFile(ctx, previous, name)
	}

	// Clearing a file field also removes the stored document.
	for name, value := range updates {
		if _, spec, ok := entity.TrackForField(name); ok && spec.Type == entity.FieldFile {
			if text, ok := value.(string); ok && text == "" {
				s.deleteReplacedFile(ctx, previous, name)
			}
		}
	}

	return nil
}

func (s *customerService) deleteReplacedFile(ctx context.Context, previous map[string]any, name string) {
	old, _ := previous[name].(string)
	if old == "" {
		return
	}

	if err := s.fileStorage.Delete(ctx, old); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("failed to delete replaced document",
			slog.String("field", name),
			slog.String("error", err.Error()),
		)
	}
}

func (s *customerService) publishWorkflowEvent(ctx context.Context, customer *entity.Customer, track string, updates map[string]any, actor entity.Actor) {
	action := entity.ActionTrackUpdated
	for name := range updates {
		if _, spec, ok := entity.TrackForField(name); ok && spec.AdminOnly {
			action = entity.ActionApprovalChanged

			break
		}
	}

	fields := make([]string, 0, len(updates))
	for name := range updates {
		fields = append(fields, name)
	}

	var assignee string
	if customer.AssignedEmployee != nil {
		assignee = customer.AssignedEmployee.UserID
	}

	event := &service.WorkflowEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		EventID:        uuid.New().String(),
		Action:         action,
		CustomerUserID: customer.UserID,
		Track:          track,
		Fields:         fields,
		ActorUserID:    actor.UserID,
		EmployeeUserID: assignee,
	}
	if err := s.eventPublisher.PublishWorkflowEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("failed to publish workflow event",
			slog.String("customer_user_id", customer.UserID),
			slog.String("action", action),
			slog.String("error", err.Error()),
		)
	}
}

// emptyStorageValue is what "cleared" means per field type: NULL for
// lookups, dates, and amounts; zero values for text, checkbox, and file.
func emptyStorageValue(spec entity.FieldSpec) any {
	switch spec.Type {
	case entity.FieldCheckbox:
		return false
	case entity.FieldText, entity.FieldFile:
		return ""
	default:
		return nil
	}
}

func toLookupID(raw any) (int64, bool) {
	switch v := raw.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case float64:
		if v != float64(int64(v)) {
			return 0, false
		}

		return int64(v), true
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false
		}

		return id, true
	default:
		return 0, false
	}
}

func toBool(raw any) (bool, bool) {
	switch v := raw.(type) {
	case bool:
		return v, true
	case string:
		value, err := strconv.ParseBool(v)
		if err != nil {
			return false, false
		}

		return value, true
	default:
		return false, false
	}
}

func toAmount(raw any) (decimal.Decimal, bool) {
	switch v := raw.(type) {
	case string:
		amount, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, false
		}

		return amount, true
	case float64:
		return decimal.NewFromFloat(v), true
	default:
		return decimal.Zero, false
	}
}

func toDate(raw any) (time.Time, bool) {
	text, ok := raw.(string)
	if !ok {
		return time.Time{}, false
	}

	date, err := time.Parse(dateLayout, text)
	if err != nil {
		return time.Time{}, false
	}

	return date, true
}
