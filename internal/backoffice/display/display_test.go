package display

import (
	"fmt"
	"testing"

	"bureau/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestColorForID_Deterministic(t *testing.T) {
	ids := []string{"cust-001", "cust-002", "EMP-7", "", "عائشة"}

	for _, id := range ids {
		first := ColorForID(id)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, ColorForID(id), "id %q must keep its color", id)
		}
	}
}

func TestColorForID_ValidTone(t *testing.T) {
	valid := map[entity.Tone]bool{
		entity.TonePositive: true,
		entity.ToneNegative: true,
		entity.ToneWarning:  true,
		entity.ToneInfo:     true,
		entity.ToneNeutral:  true,
	}

	for i := 0; i < 100; i++ {
		tone := ColorForID(fmt.Sprintf("cust-%03d", i))
		assert.True(t, valid[tone])
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name      string
		page      int
		perPage   int
		wantItems []int
		wantPage  int
		wantPages int
	}{
		{name: "first page", page: 1, perPage: 3, wantItems: []int{1, 2, 3}, wantPage: 1, wantPages: 3},
		{name: "middle page", page: 2, perPage: 3, wantItems: []int{4, 5, 6}, wantPage: 2, wantPages: 3},
		{name: "short last page", page: 3, perPage: 3, wantItems: []int{7}, wantPage: 3, wantPages: 3},
		{name: "page past end clamps", page: 9, perPage: 3, wantItems: []int{7}, wantPage: 3, wantPages: 3},
		{name: "page below start clamps", page: 0, perPage: 3, wantItems: []int{1, 2, 3}, wantPage: 1, wantPages: 3},
		{name: "zero per page means everything", page: 1, perPage: 0, wantItems: items, wantPage: 1, wantPages: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(items, tt.page, tt.perPage)

			assert.Equal(t, tt.wantItems, got.Items)
			assert.Equal(t, tt.wantPage, got.Number)
			assert.Equal(t, tt.wantPages, got.TotalPages)
			assert.Equal(t, len(items), got.Total)
		})
	}
}

func TestPaginate_Empty(t *testing.T) {
	got := Paginate([]string{}, 1, 10)

	assert.Empty(t, got.Items)
	assert.Equal(t, 1, got.Number)
	assert.Equal(t, 1, got.TotalPages)
	assert.False(t, got.HasNext())
	assert.False(t, got.HasPrev())
}

func TestPage_Navigation(t *testing.T) {
	items := []int{1, 2, 3, 4}

	first := Paginate(items, 1, 2)
	assert.True(t, first.HasNext())
	assert.False(t, first.HasPrev())

	last := Paginate(items, 2, 2)
	assert.False(t, last.HasNext())
	assert.True(t, last.HasPrev())
}
