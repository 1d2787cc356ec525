package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthStatusHandler echoes the identity carried by a valid token. It sits
// behind JWTAuthMiddleware and is mainly used by the frontend to probe
// session validity.
func AuthStatusHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"account": c.GetString("account"),
		"name":    c.GetString("name"),
	})
}
