package models

// ApiError is the body of every failed request.
type ApiError struct {
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func ErrorResponse(message string, requestID any) ApiError {
	id, _ := requestID.(string)
	return ApiError{
		Message:   message,
		RequestID: id,
	}
}
