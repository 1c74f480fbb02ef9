package handler

import (
	"net/http"

	"bureau/internal/delivery/http/response"
	"bureau/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LookupHandler serves the reference enumerations backing select fields.
type LookupHandler struct {
	uc usecase.LookupUsecase
}

// NewLookupHandler is the constructor for LookupHandler, injected by Fx.
func NewLookupHandler(uc usecase.LookupUsecase) *LookupHandler {
	return &LookupHandler{uc: uc}
}

// ListOptions returns all options for one lookup category in display order.
func (h *LookupHandler) ListOptions(c echo.Context) error {
	options, err := h.uc.ListOptions(c.Request().Context(), c.Param("category"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"results": options}, "")
}
