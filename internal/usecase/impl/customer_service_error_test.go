package impl

import (
	"context"
	"strings"
	"testing"

	"bureau/internal/domain/entity"
	domainerrors "bureau/internal/domain/errors"
	"bureau/internal/domain/repository"
	mockRepo "bureau/internal/mocks/repository"
	"bureau/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCustomerService_ListCustomers_UnknownFilter(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	actor := entity.Actor{UserID: "emp-1", Role: entity.RoleEmployee}

	fx.customerRepo.EXPECT().
		ListByEmployees(ctx, []string{"emp-1"}).
		Return([]*entity.Customer{newTestCustomer("cust-1", "emp-1")}, nil)
	fx.expectLabelIndex(ctx)

	_, err := fx.service.ListCustomers(ctx, usecase.ListCustomersInput{
		Actor:  actor,
		Filter: "starred",
	})
	assert.Error(t, err)
	assertErrorCode(t, err, "VALIDATION_FAILED")
}

func TestCustomerService_ListCustomers_RepositoryError(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	actor := entity.Actor{UserID: "emp-1", Role: entity.RoleEmployee}

	fx.customerRepo.EXPECT().
		ListByEmployees(ctx, []string{"emp-1"}).
		Return(nil, errors.New("db error"))

	_, err := fx.service.ListCustomers(ctx, usecase.ListCustomersInput{Actor: actor})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list customers")
}

func TestCustomerService_GetCustomer_NotFound(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	actor := entity.Actor{UserID: "emp-1", Role: entity.RoleEmployee}

	fx.customerRepo.EXPECT().
		FindByUserID(ctx, "cust-missing").
		Return(nil, repository.ErrCustomerNotFound)

	_, err := fx.service.GetCustomer(ctx, actor, "cust-missing")
	assert.Error(t, err)
	assertErrorCode(t, err, "CUSTOMER_NOT_FOUND")
}

func TestCustomerService_GetCustomer_OtherEmployeesCustomerHidden(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	actor := entity.Actor{UserID: "emp-1", Role: entity.RoleEmployee}

	fx.customerRepo.EXPECT().
		FindByUserID(ctx, "cust-1").
		Return(newTestCustomer("cust-1", "emp-2"), nil)

	_, err := fx.service.GetCustomer(ctx, actor, "cust-1")
	assert.Error(t, err)
	assertErrorCode(t, err, "CUSTOMER_NOT_FOUND")
}

func TestCustomerService_GetCustomer_UnassignedHiddenFromEmployee(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	actor := entity.Actor{UserID: "emp-1", Role: entity.RoleEmployee}

	fx.customerRepo.EXPECT().
		FindByUserID(ctx, "cust-1").
		Return(newTestCustomer("cust-1", ""), nil)

	_, err := fx.service.GetCustomer(ctx, actor, "cust-1")
	assert.Error(t, err)
	assertErrorCode(t, err, "CUSTOMER_NOT_FOUND")
}

func TestCustomerService_GetCustomer_OtherTeamsCustomerHiddenFromAdmin(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	actor := entity.Actor{UserID: "admin-1", Role: entity.RoleAdmin}

	fx.customerRepo.EXPECT().
		FindByUserID(ctx, "cust-1").
		Return(newTestCustomer("cust-1", "emp-9"), nil)
	fx.employeeRepo.EXPECT().
		FindByUserID(ctx, "emp-9").
		Return(&entity.Employee{UserID: "emp-9", AdminUserID: "admin-2", Active: true}, nil)

	_, err := fx.service.GetCustomer(ctx, actor, "cust-1")
	assert.Error(t, err)
	assertErrorCode(t, err, "CUSTOMER_NOT_FOUND")
}

func TestCustomerService_UpdateTrack_UnknownField(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	actor := entity.Actor{UserID: "emp-1", Role: entity.RoleEmployee}

	fx.customerRepo.EXPECT().
		FindByUserID(ctx, "cust-1").
		Return(newTestCustomer("cust-1", "emp-1"), nil)

	_, err := fx.service.UpdateTrack(ctx, usecase.UpdateTrackInput{
		Actor:          actor,
		CustomerUserID: "cust-1",
		Fields:         map[string]any{"favourite_colour": "blue"},
	})
	assert.Error(t, err)
	assertErrorCode(t, err, "UNKNOWN_TRACK_FIELD")
}

func TestCustomerService_UpdateTrack_CrossTrackRejected(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	actor := entity.Actor{UserID: "emp-1", Role: entity.RoleEmployee}

	fx.customerRepo.EXPECT().
		FindByUserID(ctx, "cust-1").
		Return(newTestCustomer("cust-1", "emp-1"), nil)

	_, err := fx.service.UpdateTrack(ctx, usecase.UpdateTrackInput{
		Actor:          actor,
		CustomerUserID: "cust-1",
		Fields: map[string]any{
			"payment_status":   "1",
			"agreement_status": "1",
		},
	})
	assert.Error(t, err)
	assertErrorCode(t, err, "CROSS_TRACK_UPDATE")
}

func TestCustomerService_UpdateTrack_AdminFieldForbiddenForEmployee(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	actor := entity.Actor{UserID: "emp-1", Role: entity.RoleEmployee}

	fx.customerRepo.EXPECT().
		FindByUserID(ctx, "cust-1").
		Return(newTestCustomer("cust-1", "emp-1"), nil)

	_, err := fx.service.UpdateTrack(ctx, usecase.UpdateTrackInput{
		Actor:          actor,
		CustomerUserID: "cust-1",
		Fields:         map[string]any{"payment_admin_approval": "1"},
	})
	assert.Error(t, err)
	assertErrorCode(t, err, "ADMIN_APPROVAL_FORBIDDEN")
}

func TestCustomerService_UpdateTrack_RequiredFieldCannotBeEmptied(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	actor := entity.Actor{UserID: "emp-1", Role: entity.RoleEmployee}

	customer := newTestCustomer("cust-1", "emp-1")
	customer.PaymentStatus = int64Ptr(1)

	fx.customerRepo.EXPECT().
		FindByUserID(ctx, "cust-1").
		Return(customer, nil)

	_, err := fx.service.UpdateTrack(ctx, usecase.UpdateTrackInput{
		Actor:          actor,
		CustomerUserID: "cust-1",
		Fields:         map[string]any{"payment_status": ""},
	})
	assert.Error(t, err)

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"This field is required."}, vErr.Fields()["payment_status"])
}

func TestCustomerService_UpdateTrack_OptionalFieldCleared(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	actor := entity.Actor{UserID: "emp-1", Role: entity.RoleEmployee}

	customer := newTestCustomer("cust-1", "emp-1")

	fx.customerRepo.EXPECT().
		FindByUserID(ctx, "cust-1").
		Return(customer, nil)

	var written map[string]any
	fx.customerRepo.EXPECT().
		UpdateFields(ctx, "cust-1", mock.AnythingOfType("map[string]interface {}")).
		Run(func(_ context.Context, _ string, fields map[string]any) {
			written = fields
		}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishWorkflowEvent(ctx, mock.Anything).
		Return(nil)
	fx.expectLabelIndex(ctx)

	_, err := fx.service.UpdateTrack(ctx, usecase.UpdateTrackInput{
		Actor:          actor,
		CustomerUserID: "cust-1",
		Fields: map[string]any{
			"payment_amount": "",
			"bank_name":      "",
		},
	})
	require.NoError(t, err)

	require.NotNil(t, written)
	assert.Nil(t, written["payment_amount"])
	assert.Equal(t, "", written["bank_name"])
}

func TestCustomerService_UpdateTrack_InvalidLookupOption(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	actor := entity.Actor{UserID: "emp-1", Role: entity.RoleEmployee}

	fx.customerRepo.EXPECT().
		FindByUserID(ctx, "cust-1").
		Return(newTestCustomer("cust-1", "emp-1"), nil)
	fx.lookupRepo.EXPECT().
		FindOption(ctx, entity.LookupPaymentStatus, int64(99)).
		Return(nil, repository.ErrLookupOptionNotFound)

	_, err := fx.service.UpdateTrack(ctx, usecase.UpdateTrackInput{
		Actor:          actor,
		CustomerUserID: "cust-1",
		Fields:         map[string]any{"payment_status": "99"},
	})
	assert.Error(t, err)

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"Select a valid choice."}, vErr.Fields()["payment_status"])
}

func TestCustomerService_UpdateTrack_InvalidDate(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	actor := entity.Actor{UserID: "emp-1", Role: entity.RoleEmployee}

	fx.customerRepo.EXPECT().
		FindByUserID(ctx, "cust-1").
		Return(newTestCustomer("cust-1", "emp-1"), nil)

	_, err := fx.service.UpdateTrack(ctx, usecase.UpdateTrackInput{
		Actor:          actor,
		CustomerUserID: "cust-1",
		Fields:         map[string]any{"payment_date": "08/01/2026"},
	})
	assert.Error(t, err)

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"Enter a valid date in YYYY-MM-DD format."}, vErr.Fields()["payment_date"])
}

func TestCustomerService_UpdateTrack_UploadOnNonFileField(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	actor := entity.Actor{UserID: "emp-1", Role: entity.RoleEmployee}

	fx.customerRepo.EXPECT().
		FindByUserID(ctx, "cust-1").
		Return(newTestCustomer("cust-1", "emp-1"), nil)

	_, err := fx.service.UpdateTrack(ctx, usecase.UpdateTrackInput{
		Actor:          actor,
		CustomerUserID: "cust-1",
		Files: map[string]*usecase.FileUpload{
			"bank_name": {
				Filename:    "note.txt",
				ContentType: "text/plain",
				Content:     strings.NewReader("n/a"),
			},
		},
	})
	assert.Error(t, err)

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"This field does not accept file uploads."}, vErr.Fields()["bank_name"])
}

func TestCustomerService_UpdateTrack_FileStoreFailure(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	actor := entity.Actor{UserID: "emp-1", Role: entity.RoleEmployee}

	fx.customerRepo.EXPECT().
		FindByUserID(ctx, "cust-1").
		Return(newTestCustomer("cust-1", "emp-1"), nil)
	fx.fileStorage.EXPECT().
		Save(ctx, "receipt.pdf", "application/pdf", mock.Anything).
		Return("", errors.New("bucket unavailable"))

	_, err := fx.service.UpdateTrack(ctx, usecase.UpdateTrackInput{
		Actor:          actor,
		CustomerUserID: "cust-1",
		Files: map[string]*usecase.FileUpload{
			"payment_receipt": {
				Filename:    "receipt.pdf",
				ContentType: "application/pdf",
				Content:     strings.NewReader("%PDF-1.4"),
			},
		},
	})
	assert.Error(t, err)
	assertErrorCode(t, err, "FILE_STORE_FAILED")
}

func TestCustomerService_AssignCustomer_NonAdminForbidden(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()

	err := fx.service.AssignCustomer(ctx, usecase.AssignCustomerInput{
		Actor:          entity.Actor{UserID: "emp-1", Role: entity.RoleEmployee},
		CustomerUserID: "cust-1",
		EmployeeUserID: "emp-2",
	})
	assert.Error(t, err)
	assertErrorCode(t, err, "FORBIDDEN")
}

func TestCustomerService_AssignCustomer_EmployeeNotFound(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()

	fx.employeeRepo.EXPECT().
		FindByUserID(ctx, "emp-missing").
		Return(nil, repository.ErrEmployeeNotFound)

	err := fx.service.AssignCustomer(ctx, usecase.AssignCustomerInput{
		Actor:          entity.Actor{UserID: "admin-1", Role: entity.RoleAdmin},
		CustomerUserID: "cust-1",
		EmployeeUserID: "emp-missing",
	})
	assert.Error(t, err)
	assertErrorCode(t, err, "EMPLOYEE_NOT_FOUND")
}

func TestCustomerService_AssignCustomer_EmployeeInactive(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()

	fx.employeeRepo.EXPECT().
		FindByUserID(ctx, "emp-2").
		Return(&entity.Employee{UserID: "emp-2", AdminUserID: "admin-1", Active: false}, nil)

	err := fx.service.AssignCustomer(ctx, usecase.AssignCustomerInput{
		Actor:          entity.Actor{UserID: "admin-1", Role: entity.RoleAdmin},
		CustomerUserID: "cust-1",
		EmployeeUserID: "emp-2",
	})
	assert.Error(t, err)
	assertErrorCode(t, err, "EMPLOYEE_INACTIVE")
}

func TestCustomerService_AssignCustomer_EmployeeNotOnTeam(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()

	fx.employeeRepo.EXPECT().
		FindByUserID(ctx, "emp-2").
		Return(&entity.Employee{UserID: "emp-2", AdminUserID: "admin-2", Active: true}, nil)

	err := fx.service.AssignCustomer(ctx, usecase.AssignCustomerInput{
		Actor:          entity.Actor{UserID: "admin-1", Role: entity.RoleAdmin},
		CustomerUserID: "cust-1",
		EmployeeUserID: "emp-2",
	})
	assert.Error(t, err)
	assertErrorCode(t, err, "FORBIDDEN")
}

func TestCustomerService_AssignCustomer_CustomerNotFound(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()

	fx.employeeRepo.EXPECT().
		FindByUserID(ctx, "emp-2").
		Return(&entity.Employee{UserID: "emp-2", AdminUserID: "admin-1", Active: true}, nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txCustomerRepo := mockRepo.NewMockCustomerRepository(t)
		factory.EXPECT().NewCustomerRepository().Return(txCustomerRepo)
		txCustomerRepo.EXPECT().
			FindByUserID(ctx, "cust-missing").
			Return(nil, repository.ErrCustomerNotFound)
	})

	err := fx.service.AssignCustomer(ctx, usecase.AssignCustomerInput{
		Actor:          entity.Actor{UserID: "admin-1", Role: entity.RoleAdmin},
		CustomerUserID: "cust-missing",
		EmployeeUserID: "emp-2",
	})
	assert.Error(t, err)
	assertErrorCode(t, err, "CUSTOMER_NOT_FOUND")
}
