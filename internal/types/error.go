package types

import "fmt"

type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// Forbidden builds a 403 error with the given message and error type.
func Forbidden(message, errorType string) *CustomError {
	return &CustomError{Code: 403, Message: message, Type: errorType}
}
