package repository

import (
	"context"
	"errors"

	"bureau/internal/domain/entity"
)

// ErrLookupCategoryUnknown is returned for a category no lookup table exists for.
var ErrLookupCategoryUnknown = errors.New("unknown lookup category")

// ErrLookupOptionNotFound is returned when an option id is absent from its table.
var ErrLookupOptionNotFound = errors.New("lookup option not found")

// LookupRepository serves the reference enumerations (payment status, payment
// method, admin approval, agreement status, settlement status/type, package
// names). Options are immutable within a session.
type LookupRepository interface {
	// ListOptions retrieves all options of one category in display order.
	ListOptions(ctx context.Context, category string) ([]entity.LookupOption, error)

	// FindOption retrieves a single option by category and id.
	FindOption(ctx context.Context, category string, id int64) (*entity.LookupOption, error)
}
