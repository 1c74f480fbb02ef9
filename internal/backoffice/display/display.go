// Package display holds presentation helpers for the CLI: avatar color
// hashing and pagination. Pure functions, no workflow state.
package display

import (
	"hash/fnv"

	"bureau/internal/domain/entity"
)

// palette is the fixed avatar color cycle. Order matters: the hash of an
// id indexes into it, so reordering repaints every avatar.
var palette = []entity.Tone{
	entity.TonePositive,
	entity.ToneNegative,
	entity.ToneWarning,
	entity.ToneInfo,
	entity.ToneNeutral,
}

// ColorForID maps an identifier to a stable tone. The same id always
// yields the same tone across processes and restarts.
func ColorForID(id string) entity.Tone {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))

	return palette[h.Sum32()%uint32(len(palette))]
}

// Page is one window of a paginated slice.
type Page[T any] struct {
	Items      []T
	Number     int
	PerPage    int
	Total      int
	TotalPages int
}

// HasNext reports whether a page follows this one.
func (p Page[T]) HasNext() bool {
	return p.Number < p.TotalPages
}

// HasPrev reports whether a page precedes this one.
func (p Page[T]) HasPrev() bool {
	return p.Number > 1
}

// Paginate cuts items into the requested 1-based page. Out-of-range pages
// clamp to the nearest valid page; perPage below 1 falls back to the whole
// slice as a single page.
func Paginate[T any](items []T, page, perPage int) Page[T] {
	total := len(items)
	if perPage < 1 {
		perPage = total
		if perPage < 1 {
			perPage = 1
		}
	}

	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      items[start:end],
		Number:     page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}
}
