package view

// Response is the envelope every API endpoint returns.
type Response[T any] struct {
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// MessageResponse is used for endpoints that only acknowledge.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse documents the failure shape in swagger.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// CreateResponse builds the response envelope. The request body is accepted
// for parity with logging call sites but is never echoed back.
func CreateResponse[T any](data T, err error, _ any, message string) Response[T] {
	resp := Response[T]{
		Data:    data,
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}
