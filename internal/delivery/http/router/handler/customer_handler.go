package handler

import (
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"bureau/internal/delivery/http/middleware"
	"bureau/internal/delivery/http/response"
	"bureau/internal/domain/entity"
	"bureau/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CustomerHandler holds dependencies for customer lifecycle handlers.
type CustomerHandler struct {
	uc     usecase.CustomerUsecase
	logger *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler, injected by Fx.
func NewCustomerHandler(uc usecase.CustomerUsecase, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{uc: uc, logger: logger}
}

type customerStatusResponse struct {
	NoAction   bool   `json:"no_action"`
	Payment    string `json:"payment"`
	Agreement  string `json:"agreement"`
	Settlement string `json:"settlement"`
	Pinned     bool   `json:"pinned"`
	Online     bool   `json:"online"`
}

type customerResponse struct {
	UserID           string                 `json:"user_id"`
	FullName         string                 `json:"full_name"`
	Email            string                 `json:"email"`
	Phone            string                 `json:"phone"`
	AssignedEmployee *entity.EmployeeRef    `json:"assigned_employee,omitempty"`
	Fields           map[string]any         `json:"fields"`
	Status           customerStatusResponse `json:"status"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

func toCustomerResponse(view *usecase.CustomerView) customerResponse {
	return customerResponse{
		UserID:           view.Customer.UserID,
		FullName:         view.Customer.FullName,
		Email:            view.Customer.Email,
		Phone:            view.Customer.Phone,
		AssignedEmployee: view.Customer.AssignedEmployee,
		Fields:           view.Customer.TrackFieldValues(),
		Status: customerStatusResponse{
			NoAction:   view.Composite.NoAction,
			Payment:    string(view.Composite.Payment),
			Agreement:  string(view.Composite.Agreement),
			Settlement: string(view.Composite.Settlement),
			Pinned:     view.Composite.Pinned,
			Online:     view.Composite.Online,
		},
		UpdatedAt: view.Customer.UpdatedAt,
	}
}

// ListCustomers returns the customer list visible to the acting employee.
// Supports ?filter=no-action|pending-approval and ?search=.
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	actor, ok := middleware.Actor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	views, err := h.uc.ListCustomers(c.Request().Context(), usecase.ListCustomersInput{
		Actor:  actor,
		Filter: c.QueryParam("filter"),
		Search: c.QueryParam("search"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	results := make([]customerResponse, len(views))
	for i, view := range views {
		results[i] = toCustomerResponse(view)
	}

	return response.Success(c, http.StatusOK, map[string]any{"results": results}, "")
}

// GetCustomer returns one customer with resolved statuses.
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	actor, ok := middleware.Actor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	view, err := h.uc.GetCustomer(c.Request().Context(), actor, c.Param("user_id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCustomerResponse(view), "")
}

// UpdateTrack applies a single-track partial update. The body is either a
// JSON object of field/value pairs, or multipart form data when the update
// carries a document upload.
func (h *CustomerHandler) UpdateTrack(c echo.Context) error {
	actor, ok := middleware.Actor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	input := usecase.UpdateTrackInput{
		Actor:          actor,
		CustomerUserID: c.Param("user_id"),
	}

	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		fields, files, closers, err := parseMultipartUpdate(c)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid multipart body")
		}
		defer func() {
			for _, closeFn := range closers {
				closeFn()
			}
		}()
		input.Fields = fields
		input.Files = files
	} else {
		fields := make(map[string]any)
		if err := c.Bind(&fields); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid update body")
		}
		input.Fields = fields
	}

	view, err := h.uc.UpdateTrack(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCustomerResponse(view), "Customer updated")
}

// parseMultipartUpdate splits a multipart body into scalar field values and
// file uploads. Each opened file gets a closer the caller runs after the
// usecase consumed the streams.
func parseMultipartUpdate(c echo.Context) (map[string]any, map[string]*usecase.FileUpload, []func(), error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, nil, errors.WithStack(err)
	}

	fields := make(map[string]any, len(form.Value))
	for name, values := range form.Value {
		if len(values) > 0 {
			fields[name] = values[0]
		}
	}

	files := make(map[string]*usecase.FileUpload, len(form.File))
	closers := make([]func(), 0, len(form.File))
	for name, headers := range form.File {
		if len(headers) == 0 {
			continue
		}

		file, openErr := headers[0].Open()
		if openErr != nil {
			for _, closeFn := range closers {
				closeFn()
			}

			return nil, nil, nil, errors.WithStack(openErr)
		}
		closers = append(closers, func() { file.Close() })

		files[name] = &usecase.FileUpload{
			Filename:    headers[0].Filename,
			ContentType: detectContentType(headers[0]),
			Content:     file,
		}
	}

	return fields, files, closers, nil
}

func detectContentType(header *multipart.FileHeader) string {
	if contentType := header.Header.Get(echo.HeaderContentType); contentType != "" {
		return contentType
	}

	return echo.MIMEOctetStream
}

type assignRequest struct {
	CustomerUserID string `json:"customer_user_id" validate:"required"`
	EmployeeUserID string `json:"employee_user_id" validate:"required"`
}

// AssignCustomer reassigns a customer to an employee. Admin only; the role
// gate runs both in routing middleware and in the usecase.
func (h *CustomerHandler) AssignCustomer(c echo.Context) error {
	actor, ok := middleware.Actor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var req assignRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assignment input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "customer_user_id and employee_user_id are required")
	}

	err := h.uc.AssignCustomer(c.Request().Context(), usecase.AssignCustomerInput{
		Actor:          actor,
		CustomerUserID: req.CustomerUserID,
		EmployeeUserID: req.EmployeeUserID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"customer_user_id": req.CustomerUserID,
		"employee_user_id": req.EmployeeUserID,
	}, "Customer assigned")
}

// ProfileQR renders the shareable profile QR code PNG for one customer.
func (h *CustomerHandler) ProfileQR(c echo.Context) error {
	actor, ok := middleware.Actor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	png, err := h.uc.GenerateProfileQR(c.Request().Context(), actor, c.Param("user_id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
