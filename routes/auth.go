package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mohanishp9/QKart-Backend/auth"
)

// SetupAuthRoutes registers the public /v1/auth endpoints.
func SetupAuthRoutes(v1 *gin.RouterGroup, d Deps) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", auth.RegisterHandler(d.Accounts, d.Tokens))
		authGroup.POST("/login", auth.LoginHandler(d.Accounts, d.Tokens))
	}
}
