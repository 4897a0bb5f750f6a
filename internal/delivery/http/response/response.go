// Package response defines the fixed JSON envelope the API speaks.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Body is the unified API response. Register and login fill user+token;
// profile fills only user; failures carry success=false and a message.
type Body struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	User    any    `json:"user,omitempty"`
	Token   string `json:"token,omitempty"`
	Error   string `json:"error,omitempty"` // Business error code, e.g. "INVALID_CREDENTIALS"
}

// Auth renders a successful register/login response with user and token.
func Auth(c echo.Context, statusCode int, message string, user any, token string) error {
	return c.JSON(statusCode, Body{
		Success: true,
		Message: message,
		User:    user,
		Token:   token,
	})
}

// User renders a successful profile response.
func User(c echo.Context, user any) error {
	return c.JSON(http.StatusOK, Body{
		Success: true,
		User:    user,
	})
}

// Error renders a failure with the fixed error shape.
func Error(c echo.Context, statusCode int, errorCode string, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Body{
		Success: false,
		Message: message,
		Error:   errorCode,
	})
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message)
}

// BindingError binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message)
}
