package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/photoloop/api-go/controllers"
)

func SetupFeedRoutes(optional *gin.RouterGroup, feedController *controllers.FeedController) {
	feed := optional.Group("/feed")
	{
		feed.GET("", feedController.GetGlobalFeed)
		feed.GET("/following", feedController.GetFollowingFeed)
	}

	users := optional.Group("/users")
	{
		users.GET("/suggested", feedController.GetSuggestedUsers)
	}
}
