package handler

import (
	"net/http"
	"strings"
	"testing"

	"bureau/internal/domain/entity"
	mocks "bureau/internal/mocks/usecase"
	"bureau/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEmployeeHandler_ListTeam(t *testing.T) {
	uc := mocks.NewMockEmployeeUsecase(t)
	handler := NewEmployeeHandler(uc)

	uc.EXPECT().
		ListTeam(mock.Anything, entity.Actor{UserID: "admin-1", Role: entity.RoleAdmin}).
		Return([]*entity.Employee{
			{UserID: "emp-1", FullName: "Bilal Ahmed", Email: "bilal@bureau.example", Role: entity.RoleEmployee},
			{UserID: "emp-2", FullName: "Sana Tariq", Email: "sana@bureau.example", Role: entity.RoleEmployee},
		}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/team", nil, "")
	actAs(c, "admin-1", "admin")

	require.NoError(t, handler.ListTeam(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Bilal Ahmed")
	assert.Contains(t, rec.Body.String(), "Sana Tariq")
}

func TestEmployeeHandler_RegisterEmployee(t *testing.T) {
	uc := mocks.NewMockEmployeeUsecase(t)
	handler := NewEmployeeHandler(uc)

	uc.EXPECT().
		RegisterEmployee(mock.Anything, usecase.RegisterEmployeeInput{
			Actor:    entity.Actor{UserID: "admin-1", Role: entity.RoleAdmin},
			UserID:   "emp-9",
			FullName: "Hira Shah",
			Email:    "hira@bureau.example",
			Password: "changeme123",
			Role:     entity.RoleEmployee,
		}).
		Return(&entity.Employee{
			UserID:   "emp-9",
			FullName: "Hira Shah",
			Email:    "hira@bureau.example",
			Role:     entity.RoleEmployee,
		}, nil)

	body := strings.NewReader(`{
		"user_id": "emp-9",
		"full_name": "Hira Shah",
		"email": "hira@bureau.example",
		"password": "changeme123",
		"role": "employee"
	}`)
	c, rec := newTestContext(t, http.MethodPost, "/team/register", body, echo.MIMEApplicationJSON)
	actAs(c, "admin-1", "admin")

	require.NoError(t, handler.RegisterEmployee(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":"emp-9"`)
}

func TestEmployeeHandler_RegisterEmployee_ShortPassword(t *testing.T) {
	uc := mocks.NewMockEmployeeUsecase(t)
	handler := NewEmployeeHandler(uc)

	body := strings.NewReader(`{
		"user_id": "emp-9",
		"full_name": "Hira Shah",
		"email": "hira@bureau.example",
		"password": "short",
		"role": "employee"
	}`)
	c, rec := newTestContext(t, http.MethodPost, "/team/register", body, echo.MIMEApplicationJSON)
	actAs(c, "admin-1", "admin")

	require.NoError(t, handler.RegisterEmployee(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
