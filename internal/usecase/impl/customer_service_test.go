package impl

import (
	"context"
	"strings"
	"testing"

	"bureau/internal/domain/entity"
	"bureau/internal/domain/service"
	mockRepo "bureau/internal/mocks/repository"
	"bureau/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCustomerService_ListCustomers_EmployeeScope(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	actor := entity.Actor{UserID: "emp-1", Role: entity.RoleEmployee}

	fresh := newTestCustomer("cust-1", "emp-1")
	paying := newTestCustomer("cust-2", "emp-1")
	paying.PaymentStatus = int64Ptr(1) // "Paid"

	fx.customerRepo.EXPECT().
		ListByEmployees(ctx, []string{"emp-1"}).
		Return([]*entity.Customer{fresh, paying}, nil)
	fx.expectLabelIndex(ctx)

	views, err := fx.service.ListCustomers(ctx, usecase.ListCustomersInput{Actor: actor})
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.True(t, views[0].Composite.NoAction)
	assert.False(t, views[1].Composite.NoAction)
	assert.Equal(t, entity.ToneWarning, views[1].Composite.Payment)
	assert.Equal(t, entity.ToneNeutral, views[1].Composite.Agreement)
}

func TestCustomerService_ListCustomers_AdminSeesTeam(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	actor := entity.Actor{UserID: "admin-1", Role: entity.RoleAdmin}

	fx.employeeRepo.EXPECT().
		ListByAdmin(ctx, "admin-1").
		Return([]*entity.Employee{
			{UserID: "emp-1", AdminUserID: "admin-1", Active: true},
			{UserID: "emp-2", AdminUserID: "admin-1", Active: true},
		}, nil)
	fx.customerRepo.EXPECT().
		ListByEmployees(ctx, []string{"admin-1", "emp-1", "emp-2"}).
		Return([]*entity.Customer{newTestCustomer("cust-1", "emp-2")}, nil)
	fx.expectLabelIndex(ctx)

	views, err := fx.service.ListCustomers(ctx, usecase.ListCustomersInput{Actor: actor})
	require.NoError(t, err)
	assert.Len(t, views, 1)
}

func TestCustomerService_ListCustomers_Search(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	actor := entity.Actor{UserID: "emp-1", Role: entity.RoleEmployee}

	match := newTestCustomer("cust-1", "emp-1")
	other := newTestCustomer("cust-2", "emp-1")
	other.FullName = "Sara Malik"

	fx.customerRepo.EXPECT().
		ListByEmployees(ctx, []string{"emp-1"}).
		Return([]*entity.Customer{match, other}, nil)
	fx.expectLabelIndex(ctx)

	views, err := fx.service.ListCustomers(ctx, usecase.ListCustomersInput{
		Actor:  actor,
		Search: "AYESHA",
	})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "cust-1", views[0].Customer.UserID)
}

func TestCustomerService_ListCustomers_NoActionFilter(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	actor := entity.Actor{UserID: "emp-1", Role: entity.RoleEmployee}

	fresh := newTestCustomer("cust-1", "emp-1")
	active := newTestCustomer("cust-2", "emp-1")
	active.PaymentStatus = int64Ptr(2) // "Pending"

	fx.customerRepo.EXPECT().
		ListByEmployees(ctx, []string{"emp-1"}).
		Return([]*entity.Customer{fresh, active}, nil)
	fx.expectLabelIndex(ctx)

	views, err := fx.service.ListCustomers(ctx, usecase.ListCustomersInput{
		Actor:  actor,
		Filter: usecase.FilterNoAction,
	})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "cust-1", views[0].Customer.UserID)
}

func TestCustomerService_ListCustomers_PendingApprovalFilter(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	actor := entity.Actor{UserID: "emp-1", Role: entity.RoleEmployee}

	awaiting := newTestCustomer("cust-1", "emp-1")
	awaiting.PaymentStatus = int64Ptr(1) // "Paid", no admin decision yet

	decided := newTestCustomer("cust-2", "emp-1")
	decided.PaymentStatus = int64Ptr(1)
	decided.PaymentAdminApproval = int64Ptr(1) // "Approved"

	fx.customerRepo.EXPECT().
		ListByEmployees(ctx, []string{"emp-1"}).
		Return([]*entity.Customer{awaiting, decided}, nil)
	fx.expectLabelIndex(ctx)

	views, err := fx.service.ListCustomers(ctx, usecase.ListCustomersInput{
		Actor:  actor,
		Filter: usecase.FilterPendingApproval,
	})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "cust-1", views[0].Customer.UserID)
}

func TestCustomerService_GetCustomer_Owner(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	actor := entity.Actor{UserID: "emp-1", Role: entity.RoleEmployee}
	customer := newTestCustomer("cust-1", "emp-1")

	fx.customerRepo.EXPECT().
		FindByUserID(ctx, "cust-1").
		Return(customer, nil)
	fx.expectLabelIndex(ctx)

	view, err := fx.service.GetCustomer(ctx, actor, "cust-1")
	require.NoError(t, err)
	assert.Equal(t, "cust-1", view.Customer.UserID)
	assert.True(t, view.Composite.NoAction)
}

func TestCustomerService_GetCustomer_AdminSeesUnassigned(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	actor := entity.Actor{UserID: "admin-1", Role: entity.RoleAdmin}
	customer := newTestCustomer("cust-1", "")

	fx.customerRepo.EXPECT().
		FindByUserID(ctx, "cust-1").
		Return(customer, nil)
	fx.expectLabelIndex(ctx)

	view, err := fx.service.GetCustomer(ctx, actor, "cust-1")
	require.NoError(t, err)
	assert.Nil(t, view.Customer.AssignedEmployee)
}

func TestCustomerService_UpdateTrack_PaymentFields(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	actor := entity.Actor{UserID: "emp-1", Role: entity.RoleEmployee}
	customer := newTestCustomer("cust-1", "emp-1")

	fx.customerRepo.EXPECT().
		FindByUserID(ctx, "cust-1").
		Return(customer, nil)
	fx.lookupRepo.EXPECT().
		FindOption(ctx, entity.LookupPaymentStatus, int64(1)).
		Return(&entity.LookupOption{ID: 1, Name: "Paid"}, nil)

	var written map[string]any
	fx.customerRepo.EXPECT().
		UpdateFields(ctx, "cust-1", mock.AnythingOfType("map[string]interface {}")).
		Run(func(_ context.Context, _ string, fields map[string]any) {
			written = fields
		}).
		Return(nil)

	var published *service.WorkflowEvent
	fx.publisher.EXPECT().
		PublishWorkflowEvent(ctx, mock.AnythingOfType("*service.WorkflowEvent")).
		Run(func(_ context.Context, event *service.WorkflowEvent) {
			published = event
		}).
		Return(nil)

	fx.expectLabelIndex(ctx)

	view, err := fx.service.UpdateTrack(ctx, usecase.UpdateTrackInput{
		Actor:          actor,
		CustomerUserID: "cust-1",
		Fields: map[string]any{
			"payment_status":   "1",
			"payment_amount":   "1500.00",
			"payment_date":     "2026-08-01",
			"profile_verified": true,
			"bank_name":        "HBL",
		},
	})
	require.NoError(t, err)
	assert.NotNil(t, view)

	require.NotNil(t, written)
	assert.Equal(t, int64(1), written["payment_status"])
	assert.Equal(t, true, written["profile_verified"])
	assert.Equal(t, "HBL", written["bank_name"])

	require.NotNil(t, published)
	assert.Equal(t, entity.ActionTrackUpdated, published.Action)
	assert.Equal(t, "payment", published.Track)
	assert.Equal(t, "emp-1", published.EmployeeUserID)
	assert.ElementsMatch(t,
		[]string{"payment_status", "payment_amount", "payment_date", "profile_verified", "bank_name"},
		published.Fields,
	)
}

func TestCustomerService_UpdateTrack_AdminApproval(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	actor := entity.Actor{UserID: "admin-1", Role: entity.RoleAdmin}
	customer := newTestCustomer("cust-1", "emp-1")

	fx.customerRepo.EXPECT().
		FindByUserID(ctx, "cust-1").
		Return(customer, nil)
	fx.employeeRepo.EXPECT().
		FindByUserID(ctx, "emp-1").
		Return(&entity.Employee{UserID: "emp-1", AdminUserID: "admin-1", Active: true}, nil)
	fx.lookupRepo.EXPECT().
		FindOption(ctx, entity.LookupAdminApproval, int64(1)).
		Return(&entity.LookupOption{ID: 1, Name: "Approved"}, nil)
	fx.customerRepo.EXPECT().
		UpdateFields(ctx, "cust-1", mock.AnythingOfType("map[string]interface {}")).
		Return(nil)

	var published *service.WorkflowEvent
	fx.publisher.EXPECT().
		PublishWorkflowEvent(ctx, mock.AnythingOfType("*service.WorkflowEvent")).
		Run(func(_ context.Context, event *service.WorkflowEvent) {
			published = event
		}).
		Return(nil)

	fx.expectLabelIndex(ctx)

	_, err := fx.service.UpdateTrack(ctx, usecase.UpdateTrackInput{
		Actor:          actor,
		CustomerUserID: "cust-1",
		Fields:         map[string]any{"payment_admin_approval": "1"},
	})
	require.NoError(t, err)

	require.NotNil(t, published)
	assert.Equal(t, entity.ActionApprovalChanged, published.Action)
	assert.Equal(t, "admin-1", published.ActorUserID)
}

func TestCustomerService_UpdateTrack_FileUploadReplacesOld(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	actor := entity.Actor{UserID: "emp-1", Role: entity.RoleEmployee}
	customer := newTestCustomer("cust-1", "emp-1")
	customer.PaymentReceipt = "http://files/old-receipt.pdf"

	fx.customerRepo.EXPECT().
		FindByUserID(ctx, "cust-1").
		Return(customer, nil)
	fx.fileStorage.EXPECT().
		Save(ctx, "receipt.pdf", "application/pdf", mock.Anything).
		Return("http://files/new-receipt.pdf", nil)
	fx.fileStorage.EXPECT().
		Delete(ctx, "http://files/old-receipt.pdf").
		Return(nil)

	var written map[string]any
	fx.customerRepo.EXPECT().
		UpdateFields(ctx, "cust-1", mock.AnythingOfType("map[string]interface {}")).
		Run(func(_ context.Context, _ string, fields map[string]any) {
			written = fields
		}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishWorkflowEvent(ctx, mock.AnythingOfType("*service.WorkflowEvent")).
		Return(nil)
	fx.expectLabelIndex(ctx)

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
	require.NoError(t, err)

	require.NotNil(t, written)
	assert.Equal(t, "http://files/new-receipt.pdf", written["payment_receipt"])
}

func TestCustomerService_UpdateTrack_EmptyInputReadsBack(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	actor := entity.Actor{UserID: "emp-1", Role: entity.RoleEmployee}
	customer := newTestCustomer("cust-1", "emp-1")

	fx.customerRepo.EXPECT().
		FindByUserID(ctx, "cust-1").
		Return(customer, nil)
	fx.expectLabelIndex(ctx)

	view, err := fx.service.UpdateTrack(ctx, usecase.UpdateTrackInput{
		Actor:          actor,
		CustomerUserID: "cust-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "cust-1", view.Customer.UserID)
}

func TestCustomerService_AssignCustomer_Success(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	actor := entity.Actor{UserID: "admin-1", Role: entity.RoleAdmin}
	employee := &entity.Employee{
		UserID:      "emp-2",
		FullName:    "Sara Malik",
		AdminUserID: "admin-1",
		Active:      true,
	}

	fx.employeeRepo.EXPECT().
		FindByUserID(ctx, "emp-2").
		Return(employee, nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txCustomerRepo := mockRepo.NewMockCustomerRepository(t)
		txEventRepo := mockRepo.NewMockAssignmentEventRepository(t)
		factory.EXPECT().NewCustomerRepository().Return(txCustomerRepo)
		factory.EXPECT().NewAssignmentEventRepository().Return(txEventRepo)

		txCustomerRepo.EXPECT().
			FindByUserID(ctx, "cust-1").
			Return(newTestCustomer("cust-1", "emp-1"), nil)
		txCustomerRepo.EXPECT().
			UpdateAssignment(ctx, "cust-1", employee.Ref()).
			Return(nil)
		txEventRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(event *entity.AssignmentEvent) bool {
				return event.CustomerUserID == "cust-1" &&
					event.FromEmployeeUserID == "emp-1" &&
					event.ToEmployeeUserID == "emp-2" &&
					event.ActorUserID == "admin-1"
			})).
			Return(nil)
	})

	var published *service.WorkflowEvent
	fx.publisher.EXPECT().
		PublishWorkflowEvent(ctx, mock.AnythingOfType("*service.WorkflowEvent")).
		Run(func(_ context.Context, event *service.WorkflowEvent) {
			published = event
		}).
		Return(nil)

	err := fx.service.AssignCustomer(ctx, usecase.AssignCustomerInput{
		Actor:          actor,
		CustomerUserID: "cust-1",
		EmployeeUserID: "emp-2",
	})
	require.NoError(t, err)

	require.NotNil(t, published)
	assert.Equal(t, entity.ActionCustomerAssigned, published.Action)
	assert.Equal(t, "emp-2", published.EmployeeUserID)
}

func TestCustomerService_GenerateProfileQR(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	actor := entity.Actor{UserID: "emp-1", Role: entity.RoleEmployee}

	fx.customerRepo.EXPECT().
		FindByUserID(ctx, "cust-1").
		Return(newTestCustomer("cust-1", "emp-1"), nil)
	fx.qrService.EXPECT().
		GenerateProfileQR("cust-1").
		Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	png, err := fx.service.GenerateProfileQR(ctx, actor, "cust-1")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
