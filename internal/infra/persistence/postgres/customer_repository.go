// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"bureau/internal/domain/entity"
	domainerrors "bureau/internal/domain/errors"
	"bureau/internal/domain/repository"
	"bureau/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// FindByUserID retrieves a single customer by their external key.
func (repo *customerRepository) FindByUserID(ctx context.Context, userID string) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Preload("AssignedEmployee").
		Where("user_id = ?", userID).
		First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by user ID")
	}

	return customerM.ToDomain(), nil
}

// ListByEmployees retrieves the customers assigned to any of the given
// employees, most recently updated first.
func (repo *customerRepository) ListByEmployees(ctx context.Context, employeeUserIDs []string) ([]*entity.Customer, error) {
	if len(employeeUserIDs) == 0 {
		return []*entity.Customer{}, nil
	}

	var customerModels []*model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Preload("AssignedEmployee").
		Where("assigned_employee_id IN ?", employeeUserIDs).
		Order("updated_at DESC").
		Find(&customerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list customers by employees")
	}

	customers := make([]*entity.Customer, 0, len(customerModels))
	for _, customerM := range customerModels {
		customers = append(customers, customerM.ToDomain())
	}

	return customers, nil
}

// Create persists a new customer entity to the storage.
func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerM := model.FromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrCustomerAlreadyExists.WrapMessage("customer user ID already taken")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrCustomerCreationFailed.WrapMessage("missing required customer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer")
	}

	customer.ID = customerM.ID
	customer.CreatedAt = customerM.CreatedAt
	customer.UpdatedAt = customerM.UpdatedAt

	return nil
}

// UpdateFields applies a partial update. Track column names match field
// names exactly, so the map keys are used as-is. A nil value clears the
// column; fields not present in the map are left untouched.
func (repo *customerRepository) UpdateFields(ctx context.Context, userID string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("user_id = ?", userID).
		Updates(fields)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update customer fields")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// UpdateAssignment replaces the customer's owning employee.
func (repo *customerRepository) UpdateAssignment(ctx context.Context, customerUserID string, employee *entity.EmployeeRef) error {
	var employeeID any
	if employee != nil {
		employeeID = employee.UserID
	}

	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("user_id = ?", customerUserID).
		Update("assigned_employee_id", employeeID)

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrAssignmentFailed.WrapMessage("assigned employee does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update customer assignment")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}
