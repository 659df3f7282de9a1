// Package response defines the wire shapes shared by every HTTP handler.
// Successful responses serialize the payload directly; failures always use
// the {"error": message} envelope the web client expects.
package response

import (
	"github.com/labstack/echo/v4"
)

// ErrorBody is the error envelope returned on every failed request.
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody is the confirmation envelope for operations without a payload.
type MessageBody struct {
	Message string `json:"message"`
}

// Error writes the error envelope with the given status code.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorBody{Error: message})
}

// Message writes the confirmation envelope with the given status code.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageBody{Message: message})
}
