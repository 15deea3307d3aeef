package handler

import (
	"net/http"

	"community-events/internal/membership"

	"github.com/gin-gonic/gin"
)

// UserHeader carries the authenticated identity, injected by the fronting
// auth proxy. The core only ever sees the normalized handle.
const UserHeader = "X-User"

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindUri(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindUri(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

// currentHandle returns the normalized handle of the requesting user, or ""
// for anonymous requests.
func currentHandle(c *gin.Context) string {
	return membership.NormalizeHandle(c.GetHeader(UserHeader))
}
