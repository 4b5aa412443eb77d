package dto

import "time"

// APIResponse is the standard envelope for API endpoints
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// NewAPIResponse wraps data in the standard envelope
func NewAPIResponse(data interface{}) APIResponse {
	return APIResponse{
		Data:      data,
		Timestamp: time.Now(),
	}
}

// SuccessResponse represents a standard success message
type SuccessResponse struct {
	Message string `json:"message"`
}
