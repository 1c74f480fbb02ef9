package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string              `json:"code"`              // Business error code, e.g., "CUSTOMER_NOT_FOUND"
	Message string              `json:"message"`           // User-friendly error message
	Details any                 `json:"details,omitempty"` // Detailed error information (optional)
	Fields  map[string][]string `json:"fields,omitempty"`  // Per-field validation messages
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// Response is the unified API response envelope
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
	Meta    *MetaInfo  `json:"meta,omitempty"`
}
