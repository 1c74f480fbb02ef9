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

// employeeRepository implements the repository.EmployeeRepository interface.
type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository is the constructor for employeeRepository.
func NewEmployeeRepository(db *gorm.DB) repository.EmployeeRepository {
	return &employeeRepository{
		db: db,
	}
}

// FindByUserID retrieves a single employee by their external key.
func (repo *employeeRepository) FindByUserID(ctx context.Context, userID string) (*entity.Employee, error) {
	var employeeM model.EmployeeModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&employeeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEmployeeNotFound
		}

		return nil, errors.Wrap(err, "failed to find employee by user ID")
	}

	return employeeM.ToDomain(), nil
}

// FindByEmail retrieves a single employee by their login email.
func (repo *employeeRepository) FindByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	var employeeM model.EmployeeModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&employeeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEmployeeNotFound
		}

		return nil, errors.Wrap(err, "failed to find employee by email")
	}

	return employeeM.ToDomain(), nil
}

// ListByAdmin retrieves the active employees belonging to an admin's team.
func (repo *employeeRepository) ListByAdmin(ctx context.Context, adminUserID string) ([]*entity.Employee, error) {
	var employeeModels []*model.EmployeeModel

	if err := repo.db.WithContext(ctx).
		Where("admin_user_id = ? AND active = ?", adminUserID, true).
		Order("full_name ASC").
		Find(&employeeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list employees by admin")
	}

	employees := make([]*entity.Employee, 0, len(employeeModels))
	for _, employeeM := range employeeModels {
		employees = append(employees, employeeM.ToDomain())
	}

	return employees, nil
}

// Create persists a new employee entity to the storage.
func (repo *employeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	employeeM := model.FromEmployeeDomain(employee)

	if err := repo.db.WithContext(ctx).Create(employeeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("employee user ID or email already taken")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInternalError.WrapMessage("missing required employee information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create employee")
	}

	employee.ID = employeeM.ID
	employee.CreatedAt = employeeM.CreatedAt
	employee.UpdatedAt = employeeM.UpdatedAt

	return nil
}
