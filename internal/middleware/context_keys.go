package middleware

import "github.com/gin-gonic/gin"

// operatorIDKey is the key used to store the authenticated operator's
// ID in the request context.
const operatorIDKey = contextKey("operatorID")

// GetOperatorIDFromContext retrieves the authenticated operator ID from
// the Gin context. It returns the ID and whether it was found.
func GetOperatorIDFromContext(c *gin.Context) (string, bool) {
	if v := c.Request.Context().Value(operatorIDKey); v != nil {
		if id, ok := v.(string); ok {
			return id, true
		}
	}
	return "", false
}
