package routes

import (
	"github.com/gin-gonic/gin"

	authControllers "github.com/hearhut/storefront-api/controllers/auth"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, deps *Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", authControllers.SignUp(deps.Identity))
		authGroup.POST("/signin", authControllers.SignIn(deps.Identity))
		authGroup.POST("/signout", authControllers.SignOut(deps.Identity))
		authGroup.GET("/session", authControllers.GetSession(deps.Identity))
	}
}
