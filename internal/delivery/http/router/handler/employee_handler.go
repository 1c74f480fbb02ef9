package handler

import (
	"net/http"

	"bureau/internal/delivery/http/middleware"
	"bureau/internal/delivery/http/response"
	"bureau/internal/domain/entity"
	"bureau/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EmployeeHandler serves team roster operations for admins.
type EmployeeHandler struct {
	uc usecase.EmployeeUsecase
}

// NewEmployeeHandler is the constructor for EmployeeHandler, injected by Fx.
func NewEmployeeHandler(uc usecase.EmployeeUsecase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// ListTeam returns the active employees on the acting admin's team.
func (h *EmployeeHandler) ListTeam(c echo.Context) error {
	actor, ok := middleware.Actor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	employees, err := h.uc.ListTeam(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	results := make([]employeeResponse, len(employees))
	for i, employee := range employees {
		results[i] = toEmployeeResponse(employee)
	}

	return response.Success(c, http.StatusOK, map[string]any{"results": results}, "")
}

type registerEmployeeRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required"`
}

// RegisterEmployee creates a new account on the acting admin's team.
func (h *EmployeeHandler) RegisterEmployee(c echo.Context) error {
	actor, ok := middleware.Actor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var req registerEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Registration input failed validation")
	}

	employee, err := h.uc.RegisterEmployee(c.Request().Context(), usecase.RegisterEmployeeInput{
		Actor:    actor,
		UserID:   req.UserID,
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Role:     entity.Role(req.Role),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toEmployeeResponse(employee), "Employee registered")
}
