package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/photoloop/api-go/controllers"
)

func SetupPostRoutes(protected *gin.RouterGroup, postController *controllers.PostController) {
	posts := protected.Group("/posts")
	{
		posts.POST("", postController.CreatePost)
		posts.DELETE("/:id", postController.DeletePost)
	}
}

func SetupPublicPostRoutes(optional *gin.RouterGroup, postController *controllers.PostController, interactionController *controllers.InteractionController) {
	posts := optional.Group("/posts")
	{
		posts.GET("/:id", postController.GetPostDetail)
		posts.GET("/:id/comments", interactionController.GetPostComments)
	}

	users := optional.Group("/users")
	{
		users.GET("/:userId/posts", postController.GetUserPosts)
	}
}
