package middleware

import (
	"net/http"
	"runtime/debug"

	"inspection-scheduler-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Recovery turns panics into a 500 response and logs the stack
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.WithContext(c).
					WithField("panic", rec).
					WithField("stack", string(debug.Stack())).
					Error("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			}
		}()
		c.Next()
	}
}
