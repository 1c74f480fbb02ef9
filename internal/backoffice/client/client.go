// Package client is the HTTP consumer of the back-office API. It owns the
// failure taxonomy the edit session depends on: local validation never
// reaches here; 401 terminates the session; 404 recommends a refresh;
// structured field errors map back into the form; everything else surfaces
// verbatim. Nothing retries automatically.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 30 * time.Second

// Attachment is one file value staged for a multipart PATCH. A nil Content
// with Remove set clears the field on the server.
type Attachment struct {
	Filename    string
	ContentType string
	Content     io.Reader
	Remove      bool
}

// Config holds the connection settings for the API client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the back-office service. Safe for use from a single
// goroutine; the edit session serializes submits per track anyway.
type Client struct {
	http   *resty.Client
	logger *slog.Logger
}

// New builds an API client for the given base URL.
func New(cfg Config, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout)

	return &Client{http: httpClient, logger: logger}
}

// SetToken installs the access token used on authenticated calls.
func (c *Client) SetToken(token string) {
	c.http.SetAuthToken(token)
}

// Login exchanges credentials for a token pair and installs the access
// token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		Post("/auth/login")
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	if resp.IsError() {
		return nil, parseFailure(resp.StatusCode(), resp.Body())
	}

	var session Session
	if err := decodePayload(resp.Body(), &session); err != nil {
		return nil, err
	}
	c.SetToken(session.AccessToken)

	return &session, nil
}

// Refresh rotates the token pair and installs the new access token.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*Session, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"refresh_token": refreshToken}).
		Post("/auth/refresh")
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	if resp.IsError() {
		return nil, parseFailure(resp.StatusCode(), resp.Body())
	}

	var session Session
	if err := decodePayload(resp.Body(), &session); err != nil {
		return nil, err
	}
	c.SetToken(session.AccessToken)

	return &session, nil
}

// ListCustomers fetches the visible customer list, optionally filtered.
func (c *Client) ListCustomers(ctx context.Context, filter, search string) ([]Record, error) {
	req := c.http.R().SetContext(ctx)
	if filter != "" {
		req.SetQueryParam("filter", filter)
	}
	if search != "" {
		req.SetQueryParam("search", search)
	}

	resp, err := req.Get("/customers")
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	if resp.IsError() {
		return nil, parseFailure(resp.StatusCode(), resp.Body())
	}

	var records []Record
	if err := decodeResults(resp.Body(), &records); err != nil {
		return nil, err
	}

	return records, nil
}

// GetCustomer fetches one customer record.
func (c *Client) GetCustomer(ctx context.Context, userID string) (*Record, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/customers/" + userID)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	if resp.IsError() {
		return nil, parseFailure(resp.StatusCode(), resp.Body())
	}

	var record Record
	if err := decodePayload(resp.Body(), &record); err != nil {
		return nil, err
	}

	return &record, nil
}

// UpdateTrack sends the changed fields of one track. The request is
// multipart when any attachment carries binary content, JSON otherwise;
// removed files travel as empty form values either way.
func (c *Client) UpdateTrack(ctx context.Context, userID string, fields map[string]any, files map[string]Attachment) (*Record, error) {
	req := c.http.R().SetContext(ctx)

	if hasBinaryContent(files) {
		for name, value := range fields {
			req.SetFormData(map[string]string{name: formValue(value)})
		}
		for name, attachment := range files {
			if attachment.Content != nil {
				req.SetFileReader(name, attachment.Filename, attachment.Content)
			} else {
				req.SetFormData(map[string]string{name: ""})
			}
		}
	} else {
		body := make(map[string]any, len(fields)+len(files))
		for name, value := range fields {
			body[name] = value
		}
		for name := range files {
			body[name] = ""
		}
		req.SetBody(body)
	}

	resp, err := req.Patch("/customers/" + userID)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	if resp.IsError() {
		return nil, parseFailure(resp.StatusCode(), resp.Body())
	}

	var record Record
	if err := decodePayload(resp.Body(), &record); err != nil {
		return nil, err
	}

	return &record, nil
}

// AssignCustomer reassigns a customer to an employee. Success means the
// caller should invalidate its cached list; the visible scope may have
// changed.
func (c *Client) AssignCustomer(ctx context.Context, customerUserID, employeeUserID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"customer_user_id": customerUserID,
			"employee_user_id": employeeUserID,
		}).
		Post("/assign/customer-to-employee")
	if err != nil {
		return &NetworkError{Err: err}
	}
	if resp.IsError() {
		return parseFailure(resp.StatusCode(), resp.Body())
	}

	return nil
}

// ListLookupOptions fetches the raw option maps of one category. Tolerant
// by contract: an unexpected payload yields an empty slice and a log line,
// never an error.
func (c *Client) ListLookupOptions(ctx context.Context, category string) ([]map[string]any, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/lookups/" + category)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	if resp.IsError() {
		return nil, parseFailure(resp.StatusCode(), resp.Body())
	}

	var options []map[string]any
	if err := decodeResults(resp.Body(), &options); err != nil {
		c.logger.Warn("unexpected lookup payload, treating as empty",
			slog.String("category", category),
			slog.Any("error", err),
		)

		return nil, nil
	}

	return options, nil
}

// ListTeam fetches the assignable employees (admin only).
func (c *Client) ListTeam(ctx context.Context) ([]Employee, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/team")
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	if resp.IsError() {
		return nil, parseFailure(resp.StatusCode(), resp.Body())
	}

	var team []Employee
	if err := decodeResults(resp.Body(), &team); err != nil {
		return nil, err
	}

	return team, nil
}

// ListNotifications fetches the newest notifications for the session's
// employee.
func (c *Client) ListNotifications(ctx context.Context, limit, offset int) ([]Notification, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetQueryParam("offset", strconv.Itoa(offset)).
		Get("/notifications")
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	if resp.IsError() {
		return nil, parseFailure(resp.StatusCode(), resp.Body())
	}

	var notifications []Notification
	if err := decodeResults(resp.Body(), &notifications); err != nil {
		return nil, err
	}

	return notifications, nil
}

// MarkNotificationRead flags one notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Post("/notifications/" + id + "/read")
	if err != nil {
		return &NetworkError{Err: err}
	}
	if resp.IsError() {
		return parseFailure(resp.StatusCode(), resp.Body())
	}

	return nil
}

// ProfileQR fetches the shareable profile QR PNG for one customer.
func (c *Client) ProfileQR(ctx context.Context, userID string) ([]byte, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/customers/" + userID + "/qr")
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	if resp.IsError() {
		return nil, parseFailure(resp.StatusCode(), resp.Body())
	}

	return resp.Body(), nil
}

func hasBinaryContent(files map[string]Attachment) bool {
	for _, attachment := range files {
		if attachment.Content != nil {
			return true
		}
	}

	return false
}

// formValue renders a staged value as a multipart form string.
func formValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		return v.String()
	default:
		rendered, err := json.Marshal(v)
		if err != nil {
			return ""
		}

		return string(bytes.Trim(rendered, `"`))
	}
}

// parseFailure maps a non-2xx response onto the failure taxonomy.
func parseFailure(status int, body []byte) error {
	message := failureMessage(body)

	switch status {
	case 401:
		return &AuthError{Message: message}
	case 404:
		return &NotFoundError{Message: message}
	}

	if fields := fieldErrors(body); len(fields) > 0 {
		return fields
	}

	return &ServerError{Status: status, Message: message}
}

// fieldErrors extracts `{field: [messages]}` maps from either the response
// envelope or a bare body.
func fieldErrors(body []byte) FieldErrors {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error != nil && len(env.Error.Fields) > 0 {
		return FieldErrors(env.Error.Fields)
	}

	var bare map[string][]string
	if err := json.Unmarshal(body, &bare); err == nil && len(bare) > 0 {
		return FieldErrors(bare)
	}

	return nil
}

// failureMessage digs a human-readable message out of a failure body,
// falling back to the raw text.
func failureMessage(body []byte) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil {
		if env.Error != nil && env.Error.Message != "" {
			return env.Error.Message
		}
		if env.Message != "" {
			return env.Message
		}
	}

	var detail struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &detail); err == nil && detail.Detail != "" {
		return detail.Detail
	}

	if len(body) == 0 {
		return "no response body"
	}

	return string(body)
}
