// Package common holds the response envelopes, request validation and
// failure mapping shared by the HTTP handlers.
package common

import (
	"github.com/gofiber/fiber/v2"
)

// MIMEProblemJSON is the content type of every error response.
const MIMEProblemJSON = "application/problem+json"

// Response defines the standard API response structure for success cases.
type Response struct {
	Status  int    `json:"status"`         // HTTP status code
	Message string `json:"message"`        // Human-readable explanation
	Data    any    `json:"data,omitempty"` // Response data
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
// Errors maps request fields to machine-readable reason codes.
type ProblemDetails struct {
	Type     string            `json:"type,omitempty"`     // A URI reference that identifies the problem type
	Title    string            `json:"title"`              // Short, human-readable summary
	Status   int               `json:"status"`             // HTTP status code
	Detail   string            `json:"detail,omitempty"`   // Human-readable explanation or a reason code
	Instance string            `json:"instance,omitempty"` // URI reference that identifies the specific occurrence
	Errors   map[string]string `json:"errors,omitempty"`   // field -> reason code
}

// SuccessResponseJSON writes data wrapped in a Response envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseJSON returns a response following RFC 9457 Problem Details.
// detail may be a string or a field -> reason map.
func ErrorResponseJSON(
	c *fiber.Ctx,
	status int,
	title string,
	detail any,
) error {
	pd := ProblemDetails{
		Type:   "about:blank",
		Title:  title,
		Status: status,
	}
	switch d := detail.(type) {
	case string:
		pd.Detail = d
	case map[string]string:
		pd.Errors = d
	}
	pd.Instance = c.OriginalURL()

	return c.Status(status).JSON(pd, MIMEProblemJSON)
}
