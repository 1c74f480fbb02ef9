package impl

import (
	"context"

	"bureau/internal/domain/entity"
	domainerrors "bureau/internal/domain/errors"
	"bureau/internal/domain/repository"
	"bureau/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type lookupService struct {
	lookupRepo repository.LookupRepository
}

// LookupServiceParams holds dependencies for LookupService, injected by Fx.
type LookupServiceParams struct {
	fx.In

	LookupRepo repository.LookupRepository
}

// NewLookupService creates a new lookup service instance
func NewLookupService(params LookupServiceParams) usecase.LookupUsecase {
	return &lookupService{
		lookupRepo: params.LookupRepo,
	}
}

// ListOptions returns all options for one lookup category in display order.
func (s *lookupService) ListOptions(ctx context.Context, category string) ([]entity.LookupOption, error) {
	options, err := s.lookupRepo.ListOptions(ctx, category)
	if err != nil {
		if errors.Is(err, repository.ErrLookupCategoryUnknown) {
			return nil, domainerrors.ErrLookupNotFound.WithDetails(category)
		}

		return nil, errors.Wrap(err, "failed to list lookup options")
	}

	return options, nil
}
