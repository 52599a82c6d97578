// Package response renders the JSON envelope every handler answers
// with: {"success": true, "data": ...} on the happy path, or
// {"success": false, "error": {"code", "message"}} otherwise.
package response

import "github.com/gin-gonic/gin"

// Success writes data under the success envelope.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// Error writes a machine-readable error code alongside a human
// message. Codes are stable; messages are not.
func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// ErrorWithDetails is Error with an extra details payload, used for
// per-field validation failures.
func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
