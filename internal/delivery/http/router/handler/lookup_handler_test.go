package handler

import (
	"net/http"
	"testing"

	"bureau/internal/domain/entity"
	mocks "bureau/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLookupHandler_ListOptions(t *testing.T) {
	uc := mocks.NewMockLookupUsecase(t)
	handler := NewLookupHandler(uc)

	uc.EXPECT().
		ListOptions(mock.Anything, "payment_method").
		Return([]entity.LookupOption{
			{ID: 1, Name: "Cash"},
			{ID: 2, Name: "Bank Transfer"},
		}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/lookups/payment_method", nil, "")
	c.SetParamNames("category")
	c.SetParamValues("payment_method")
	actAs(c, "emp-1", "employee")

	require.NoError(t, handler.ListOptions(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Bank Transfer")
}

func TestLookupHandler_ListOptions_UnknownCategoryPassthrough(t *testing.T) {
	uc := mocks.NewMockLookupUsecase(t)
	handler := NewLookupHandler(uc)

	uc.EXPECT().
		ListOptions(mock.Anything, "shoe_size").
		Return(nil, assert.AnError)

	c, _ := newTestContext(t, http.MethodGet, "/lookups/shoe_size", nil, "")
	c.SetParamNames("category")
	c.SetParamValues("shoe_size")
	actAs(c, "emp-1", "employee")

	err := handler.ListOptions(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
