package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}
func Conflict(c *gin.Context, msg string) {
	c.JSON(http.StatusConflict, gin.H{"ok": false, "error": msg})
}
func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}

// Upstream reports a failed backend call to the UI with the backend's own
// status and error body attached, so the operator sees why opening failed.
func Upstream(c *gin.Context, status int, body any) {
	c.JSON(http.StatusBadGateway, gin.H{
		"ok":       false,
		"error":    "upstream request failed",
		"upstream": gin.H{"status": status, "body": body},
	})
}
