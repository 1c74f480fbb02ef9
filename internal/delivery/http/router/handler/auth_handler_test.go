package handler

import (
	"io"
	"log/slog"
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

func TestAuthHandler_Login(t *testing.T) {
	uc := mocks.NewMockAuthUsecase(t)
	handler := NewAuthHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	uc.EXPECT().
		Login(mock.Anything, usecase.LoginInput{
			Email:    "bilal@bureau.example",
			Password: "sup3rsecret",
		}).
		Return(&usecase.LoginOutput{
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
			Employee: &entity.Employee{
				UserID:   "emp-1",
				FullName: "Bilal Ahmed",
				Email:    "bilal@bureau.example",
				Role:     entity.RoleEmployee,
			},
		}, nil)

	body := strings.NewReader(`{"email": "bilal@bureau.example", "password": "sup3rsecret"}`)
	c, rec := newTestContext(t, http.MethodPost, "/auth/login", body, echo.MIMEApplicationJSON)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"access-token"`)
	assert.Contains(t, rec.Body.String(), `"role":"employee"`)
}

func TestAuthHandler_Login_MissingPassword(t *testing.T) {
	uc := mocks.NewMockAuthUsecase(t)
	handler := NewAuthHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	body := strings.NewReader(`{"email": "bilal@bureau.example"}`)
	c, rec := newTestContext(t, http.MethodPost, "/auth/login", body, echo.MIMEApplicationJSON)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Login_BadCredentialsPassthrough(t *testing.T) {
	uc := mocks.NewMockAuthUsecase(t)
	handler := NewAuthHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	uc.EXPECT().
		Login(mock.Anything, mock.Anything).
		Return(nil, assert.AnError)

	body := strings.NewReader(`{"email": "bilal@bureau.example", "password": "wrong"}`)
	c, _ := newTestContext(t, http.MethodPost, "/auth/login", body, echo.MIMEApplicationJSON)

	err := handler.Login(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestAuthHandler_Refresh(t *testing.T) {
	uc := mocks.NewMockAuthUsecase(t)
	handler := NewAuthHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	uc.EXPECT().
		Refresh(mock.Anything, "old-refresh-token").
		Return(&usecase.RefreshOutput{
			AccessToken:  "new-access",
			RefreshToken: "new-refresh",
		}, nil)

	body := strings.NewReader(`{"refresh_token": "old-refresh-token"}`)
	c, rec := newTestContext(t, http.MethodPost, "/auth/refresh", body, echo.MIMEApplicationJSON)

	require.NoError(t, handler.Refresh(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"new-access"`)
	assert.Contains(t, rec.Body.String(), `"refresh_token":"new-refresh"`)
}

func TestAuthHandler_Refresh_MissingToken(t *testing.T) {
	uc := mocks.NewMockAuthUsecase(t)
	handler := NewAuthHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	body := strings.NewReader(`{}`)
	c, rec := newTestContext(t, http.MethodPost, "/auth/refresh", body, echo.MIMEApplicationJSON)

	require.NoError(t, handler.Refresh(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
