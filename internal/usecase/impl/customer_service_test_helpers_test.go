package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bureau/internal/domain/entity"
	domainerrors "bureau/internal/domain/errors"
	"bureau/internal/domain/repository"
	mockRepo "bureau/internal/mocks/repository"
	mockSvc "bureau/internal/mocks/service"
	"bureau/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// customerServiceFixture bundles the service under test with its mocks so
// each test only wires the expectations it cares about.
type customerServiceFixture struct {
	t            *testing.T
	service      usecase.CustomerUsecase
	customerRepo *mockRepo.MockCustomerRepository
	employeeRepo *mockRepo.MockEmployeeRepository
	lookupRepo   *mockRepo.MockLookupRepository
	txManager    *mockRepo.MockTransactionManager
	fileStorage  *mockSvc.MockFileStorage
	publisher    *mockSvc.MockEventPublisher
	qrService    *mockSvc.MockQRCodeService
}

func createTestCustomerService(t *testing.T) *customerServiceFixture {
	fx := &customerServiceFixture{
		t:            t,
		customerRepo: mockRepo.NewMockCustomerRepository(t),
		employeeRepo: mockRepo.NewMockEmployeeRepository(t),
		lookupRepo:   mockRepo.NewMockLookupRepository(t),
		txManager:    mockRepo.NewMockTransactionManager(t),
		fileStorage:  mockSvc.NewMockFileStorage(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
		qrService:    mockSvc.NewMockQRCodeService(t),
	}

	fx.service = NewCustomerService(CustomerServiceParams{
		CustomerRepo:   fx.customerRepo,
		EmployeeRepo:   fx.employeeRepo,
		LookupRepo:     fx.lookupRepo,
		TxManager:      fx.txManager,
		FileStorage:    fx.fileStorage,
		EventPublisher: fx.publisher,
		QRCodeService:  fx.qrService,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return fx
}

// expectLabelIndex registers the four status lookups the composite resolver
// loads on every read path.
func (fx *customerServiceFixture) expectLabelIndex(ctx context.Context) {
	fx.lookupRepo.EXPECT().
		ListOptions(ctx, entity.LookupPaymentStatus).
		Return([]entity.LookupOption{{ID: 1, Name: "Paid"}, {ID: 2, Name: "Pending"}}, nil)
	fx.lookupRepo.EXPECT().
		ListOptions(ctx, entity.LookupAgreementStatus).
		Return([]entity.LookupOption{{ID: 1, Name: "Agreement Done"}}, nil)
	fx.lookupRepo.EXPECT().
		ListOptions(ctx, entity.LookupSettlementStatus).
		Return([]entity.LookupOption{{ID: 1, Name: "Settlement Done"}}, nil)
	fx.lookupRepo.EXPECT().
		ListOptions(ctx, entity.LookupAdminApproval).
		Return([]entity.LookupOption{{ID: 1, Name: "Approved"}, {ID: 2, Name: "Rejected"}}, nil)
}

// onExecute makes the transaction manager run the given closure against a
// factory whose expectations the setup callback installs.
func (fx *customerServiceFixture) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)

			return fn(factory)
		})
}

// assertErrorCode checks the business error code carried by an AppError.
func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.ErrorCode())
}

func int64Ptr(v int64) *int64 { return &v }

func decimalPtr(v string) *decimal.Decimal {
	d, _ := decimal.NewFromString(v)

	return &d
}

func timePtr(v time.Time) *time.Time { return &v }

// newTestCustomer builds a customer assigned to the given employee with no
// track progress yet (all three statuses at their sentinels).
func newTestCustomer(userID, employeeUserID string) *entity.Customer {
	customer := &entity.Customer{
		ID:       uuid.New(),
		UserID:   userID,
		FullName: "Ayesha Khan",
		Email:    "ayesha@example.com",
		Phone:    "+92300000000",
	}
	if employeeUserID != "" {
		customer.AssignedEmployee = &entity.EmployeeRef{
			UserID:   employeeUserID,
			FullName: "Bilal Ahmed",
		}
	}

	return customer
}
