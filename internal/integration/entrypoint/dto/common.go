// Package dto defines data transfer objects for API requests and responses.
package dto

// ErrorResponse is the flat error payload returned on failures.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse is the flat informational payload for non-resource results.
type MessageResponse struct {
	Message string `json:"message"`
}

// PaginationResponse carries list pagination metadata.
type PaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}
