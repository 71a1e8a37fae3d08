package dto

// APIResponse is the standard envelope returned by all endpoints
type APIResponse struct {
	Data  interface{}  `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// SuccessResponse represents a plain success message
type SuccessResponse struct {
	Message string `json:"message"`
}

// StatusResponse is returned by join/leave style action endpoints
type StatusResponse struct {
	Status string `json:"status" example:"joined"`
}
