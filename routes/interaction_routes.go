package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/photoloop/api-go/controllers"
)

func SetupInteractionRoutes(protected *gin.RouterGroup, interactionController *controllers.InteractionController) {
	posts := protected.Group("/posts")
	{
		posts.POST("/:id/like", interactionController.ToggleLike)
		posts.POST("/:id/comments", interactionController.AddComment)
	}
}
