package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/photoloop/api-go/controllers"
)

func SetupFollowRoutes(protected *gin.RouterGroup, followController *controllers.FollowController) {
	users := protected.Group("/users")
	{
		users.POST("/:userId/follow", followController.FollowUser)
		users.DELETE("/:userId/follow", followController.UnfollowUser)
	}
}
