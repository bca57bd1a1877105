package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/tnavInter19/twitter-backend/apierr"
)

// ErrorHandler is the boundary error middleware: handlers record
// errors on the context and this renders the last one as the
// {code, message} envelope, with the status resolved from the error
// kind.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		status, message := apierr.Status(c.Errors.Last().Err)
		c.JSON(status, gin.H{"code": status, "message": message})
	}
}
