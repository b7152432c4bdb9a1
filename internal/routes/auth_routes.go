package routes

import (
	"stagecraft-crm/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers login and registration, which must stay
// reachable without a token.
func RegisterAuthRoutes(r *gin.Engine) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", handlers.RegisterHandler)
		auth.POST("/login", handlers.LoginHandler)
		auth.POST("/logout", handlers.LogoutHandler)
	}
}
