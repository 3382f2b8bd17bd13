package response

import "github.com/bsthun/gut"

type SuccessResponse struct {
	Success bool    `json:"success"`
	Message *string `json:"message,omitempty"`
	Data    any     `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool    `json:"success"`
	Message *string `json:"message,omitempty"`
}

func Success(msg string, data ...any) *SuccessResponse {
	resp := &SuccessResponse{
		Success: true,
		Message: &msg,
	}
	if len(data) > 0 {
		resp.Data = data[0]
	}
	return resp
}

func Error(msg any) *ErrorResponse {
	if message, ok := msg.(string); ok {
		return &ErrorResponse{
			Success: false,
			Message: &message,
		}
	}
	return &ErrorResponse{
		Success: false,
		Message: gut.Ptr("Unknown Error"),
	}
}
