package server

import "github.com/gofiber/fiber/v2"

// ErrorResponse represents the structure of every error response.
type ErrorResponse struct {
	// Success is always false for errors.
	Success bool `json:"success"`
	// Error is the user-facing error description.
	Error string `json:"error"`
	// Fields lists offending input fields for validation errors.
	Fields []string `json:"fields,omitempty"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

// RayID returns the request id assigned by the requestid middleware.
func RayID(c *fiber.Ctx) string {
	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return rayID
}

// Fail writes an ErrorResponse with the given status.
func Fail(c *fiber.Ctx, status int, msg string, fields ...string) error {
	return c.Status(status).JSON(ErrorResponse{
		Success: false,
		Error:   msg,
		Fields:  fields,
		RayID:   RayID(c),
	})
}
