package middleware

import (
	"log"

	"github.com/gin-gonic/gin"
)

// ErrorLogger logs every error a handler attached to the context and,
// when the handler wrote an error status without a body, emits a JSON
// error response so clients never see an empty error reply.
func ErrorLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, ginErr := range c.Errors {
			log.Printf("[%s %s] error: %v", c.Request.Method, c.Request.URL.Path, ginErr.Err)
		}

		status := c.Writer.Status()
		if status >= 400 && !c.Writer.Written() {
			message := "request failed"
			if len(c.Errors) > 0 {
				message = c.Errors.Last().Error()
			}
			c.JSON(status, gin.H{"error": message})
		}
	}
}
