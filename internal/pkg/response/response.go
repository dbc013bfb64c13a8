// Package response holds the JSON envelope every endpoint replies
// with: {"success":true,"data":...} on the happy path, or
// {"success":false,"error":{"code","message"[,"details"]}} on failure,
// so clients branch on a single field.
package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// ErrorWithDetails carries an extra payload alongside the error,
// typically the field→tag map produced by the validator.
func ErrorWithDetails(c *gin.Context, status int, code, message string, details any) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
