package client

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// StatusBadge is the composite badge as served by the API.
type StatusBadge struct {
	NoAction   bool   `json:"no_action"`
	Payment    string `json:"payment"`
	Agreement  string `json:"agreement"`
	Settlement string `json:"settlement"`
	Pinned     bool   `json:"pinned"`
	Online     bool   `json:"online"`
}

// EmployeeRef is the denormalized owner reference on a customer record.
type EmployeeRef struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
}

// Record is the client-side customer record. Track field values stay a
// dynamic map; the lookup cache resolves ids to labels at render time.
type Record struct {
	UserID           string         `json:"user_id"`
	FullName         string         `json:"full_name"`
	Email            string         `json:"email"`
	Phone            string         `json:"phone"`
	AssignedEmployee *EmployeeRef   `json:"assigned_employee"`
	Fields           map[string]any `json:"fields"`
	Status           StatusBadge    `json:"status"`
}

// Employee is a roster entry.
type Employee struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Session holds the token pair and identity returned by login.
type Session struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	Employee     Employee `json:"employee"`
}

// Notification is one feed entry.
type Notification struct {
	ID             string `json:"id"`
	CustomerUserID string `json:"customer_user_id"`
	Track          string `json:"track"`
	Action         string `json:"action"`
	Message        string `json:"message"`
	Read           bool   `json:"read"`
	CreatedAt      string `json:"created_at"`
}

// envelope is the uniform response wrapper the service emits. Decoding is
// tolerant: a missing wrapper falls back to treating the whole body as the
// payload.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string              `json:"code"`
		Message string              `json:"message"`
		Fields  map[string][]string `json:"fields"`
	} `json:"error"`
}

// unwrapData extracts the payload from an envelope body, or returns the
// body unchanged when no envelope is present.
func unwrapData(body []byte) json.RawMessage {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && len(env.Data) > 0 {
		return env.Data
	}

	return body
}

// decodePayload unwraps the envelope and decodes the payload into out.
func decodePayload(body []byte, out any) error {
	return errors.WithStack(json.Unmarshal(unwrapData(body), out))
}

// decodeResults handles the `{results: [...]}` wrapper and its tolerated
// variants: a bare array, or a payload nested in the response envelope.
func decodeResults(body []byte, out any) error {
	payload := unwrapData(body)

	var wrapper struct {
		Results json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(payload, &wrapper); err == nil && len(wrapper.Results) > 0 {
		return errors.WithStack(json.Unmarshal(wrapper.Results, out))
	}

	return errors.WithStack(json.Unmarshal(payload, out))
}
