package dto

// APIResponse is the envelope of every JSON response
type APIResponse struct {
	Success    bool            `json:"success" example:"true"`
	Message    string          `json:"message,omitempty" example:"Registration submitted successfully"`
	Count      *int            `json:"count,omitempty" example:"3"`
	Data       interface{}     `json:"data,omitempty"`
	Pagination *PaginationInfo `json:"pagination,omitempty"`
	Errors     []ErrorDetail   `json:"errors,omitempty"`
}

// PaginationInfo represents pagination metadata
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	PageSize    int   `json:"pageSize"`
	TotalItems  int64 `json:"totalItems"`
}

// NewSuccessResponse wraps data in a successful envelope
func NewSuccessResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// NewListResponse wraps a list together with its total count
func NewListResponse(data interface{}, count int) APIResponse {
	return APIResponse{
		Success: true,
		Count:   &count,
		Data:    data,
	}
}

// NewMessageResponse is a successful envelope without data
func NewMessageResponse(message string) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
	}
}

// NewErrorResponse creates a failure envelope
func NewErrorResponse(message string, details ...ErrorDetail) APIResponse {
	return APIResponse{
		Success: false,
		Message: message,
		Errors:  details,
	}
}
