// Package ginmw adapts the JSON:API request validation middleware to gin.
package ginmw

import (
	"github.com/gin-gonic/gin"

	"github.com/reoring/jsonapi"
	"github.com/reoring/jsonapi/middleware"
)

// ValidateJSON validates request bodies as opts.Kind, stores the decoded
// value in the request context, and on failure aborts with a JSON:API errors
// document.
func ValidateJSON(opts middleware.Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, ok := opts.Admit(c.Writer, c.Request)
		if !ok {
			c.Abort()
			return
		}
		c.Request = r
		c.Next()
	}
}

// GetValue fetches the decoded request body from gin.Context.
func GetValue(c *gin.Context) (jsonapi.Value, bool) {
	return middleware.ValueFromContext(c.Request.Context())
}
