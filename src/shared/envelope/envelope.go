package envelope

import "encoding/json"

// every API response is wrapped in one of these shapes,
// success tells the client which one it's looking at

type DataResponse[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}

func Data[T any](data T) DataResponse[T] {
	return DataResponse[T]{
		Success: true,
		Data:    data,
	}
}

func Message(message string) MessageResponse {
	return MessageResponse{
		Success: true,
		Message: message,
	}
}

func Error(code string, errorText string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Error:   errorText,
		Code:    code,
	}
}

// Raw is the decoding side of all three shapes, for clients that
// only know which shape they got after reading success
type Raw struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
	Code    string          `json:"code,omitempty"`
}
