package postgres

import (
	"context"

	"bureau/internal/domain/entity"
	"bureau/internal/domain/repository"
	"bureau/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// lookupRepository implements the repository.LookupRepository interface.
type lookupRepository struct {
	db *gorm.DB
}

// NewLookupRepository is the constructor for lookupRepository.
func NewLookupRepository(db *gorm.DB) repository.LookupRepository {
	return &lookupRepository{
		db: db,
	}
}

// ListOptions retrieves all options of one category in display order.
func (repo *lookupRepository) ListOptions(ctx context.Context, category string) ([]entity.LookupOption, error) {
	if !entity.IsLookupCategory(category) {
		return nil, repository.ErrLookupCategoryUnknown
	}

	var optionModels []*model.LookupOptionModel

	if err := repo.db.WithContext(ctx).
		Where("category = ?", category).
		Order("position ASC, option_id ASC").
		Find(&optionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list lookup options")
	}

	options := make([]entity.LookupOption, 0, len(optionModels))
	for _, optionM := range optionModels {
		options = append(options, optionM.ToDomain())
	}

	return options, nil
}

// FindOption retrieves a single option by category and id.
func (repo *lookupRepository) FindOption(ctx context.Context, category string, id int64) (*entity.LookupOption, error) {
	if !entity.IsLookupCategory(category) {
		return nil, repository.ErrLookupCategoryUnknown
	}

	var optionM model.LookupOptionModel

	if err := repo.db.WithContext(ctx).
		Where("category = ? AND option_id = ?", category, id).
		First(&optionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLookupOptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find lookup option")
	}

	option := optionM.ToDomain()

	return &option, nil
}
