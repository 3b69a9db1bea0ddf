package handler

import "github.com/labstack/echo/v4"

// APIResponse is the envelope returned by every JSON endpoint.
type APIResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Success sends a successful JSON response in the shared envelope.
func Success(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, APIResponse{Status: "success", Message: message, Data: data})
}

// Error sends an error JSON response in the shared envelope.
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, APIResponse{Status: "error", Message: message})
}
