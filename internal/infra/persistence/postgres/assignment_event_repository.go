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

// assignmentEventRepository implements the repository.AssignmentEventRepository interface.
type assignmentEventRepository struct {
	db *gorm.DB
}

// NewAssignmentEventRepository is the constructor for assignmentEventRepository.
func NewAssignmentEventRepository(db *gorm.DB) repository.AssignmentEventRepository {
	return &assignmentEventRepository{
		db: db,
	}
}

// Create persists one assignment event.
func (repo *assignmentEventRepository) Create(ctx context.Context, event *entity.AssignmentEvent) error {
	eventM := model.FromAssignmentEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAssignmentFailed.WrapMessage("missing required assignment information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create assignment event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt

	return nil
}

// ListByCustomer retrieves a customer's assignment history, newest first.
func (repo *assignmentEventRepository) ListByCustomer(ctx context.Context, customerUserID string) ([]*entity.AssignmentEvent, error) {
	var eventModels []*model.AssignmentEventModel

	if err := repo.db.WithContext(ctx).
		Where("customer_user_id = ?", customerUserID).
		Order("created_at DESC").
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list assignment events by customer")
	}

	events := make([]*entity.AssignmentEvent, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, eventM.ToDomain())
	}

	return events, nil
}
