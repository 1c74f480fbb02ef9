package usecase

import (
	"context"

	"bureau/internal/domain/entity"
)

// LookupUsecase serves the reference enumerations backing select fields.
// Options are stable within a working session; clients cache them.
type LookupUsecase interface {
	// ListOptions returns all options for one lookup category in display order.
	ListOptions(ctx context.Context, category string) ([]entity.LookupOption, error)
}
