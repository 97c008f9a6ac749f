package response

import (
	"github.com/gin-gonic/gin"
)

// Body is the envelope used for message-only responses (errors and
// acknowledgements). Successful payload responses are written as plain
// JSON to keep the wire format the web client consumes.
type Body struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Message writes a localized message body with the given status.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, Body{Message: msg})
}

// MessageWithDetails writes a message body carrying field-level detail,
// used for validation failures.
func MessageWithDetails(c *gin.Context, status int, msg string, details interface{}) {
	c.JSON(status, Body{Message: msg, Details: details})
}

// AbortMessage short-circuits middleware chains with a message body.
func AbortMessage(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, Body{Message: msg})
}
