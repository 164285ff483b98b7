package errors

// CallableError is the error body of the callable protocol.
type CallableError struct {
	Status  string `json:"status"`            // Kind in upper snake case, e.g. "NOT_FOUND"
	Message string `json:"message"`           // User-friendly error message
	Code    string `json:"code,omitempty"`    // Business error code, e.g. "SLOT_ALREADY_BOOKED"
	Details any    `json:"details,omitempty"` // Detailed error information (optional)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// CallableErrorResponse defines the structure for error responses of callable operations
type CallableErrorResponse struct {
	Error *CallableError `json:"error"`
	Meta  *MetaInfo      `json:"meta,omitempty"`
}

// PlainErrorResponse is the `{error}` body of plain HTTP endpoints
type PlainErrorResponse struct {
	Error string `json:"error"`
}
