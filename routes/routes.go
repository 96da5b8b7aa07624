package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/photoloop/api-go/config"
	"github.com/photoloop/api-go/controllers"
	"github.com/photoloop/api-go/middleware"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, storage *config.StorageConfig) {
	// Initialize controllers
	authController := controllers.NewAuthController(db, storage)
	postController := controllers.NewPostController(db, storage)
	interactionController := controllers.NewInteractionController(db)
	followController := controllers.NewFollowController(db)
	feedController := controllers.NewFeedController(db, storage)
	userController := controllers.NewUserController(db, storage)
	uploadController := controllers.NewUploadController(db, storage)

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)
		public.POST("/auth/google", authController.GoogleSignIn)
		public.POST("/refresh-token", authController.RefreshToken)
	}

	// Readable without a session; a valid token still resolves the viewer.
	optional := r.Group("/api")
	optional.Use(middleware.AuthOptional())
	{
		SetupFeedRoutes(optional, feedController)
		SetupPublicPostRoutes(optional, postController, interactionController)
		SetupPublicUserRoutes(optional, userController, followController)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthRequired())
	{
		protected.POST("/logout", authController.Logout)
		protected.GET("/profile", authController.GetProfile)
		protected.PUT("/profile", userController.UpdateProfile)
		protected.POST("/profile/complete", userController.CompleteProfile)
		protected.PUT("/profile/image", userController.UpdateProfileImage)

		SetupPostRoutes(protected, postController)
		SetupInteractionRoutes(protected, interactionController)
		SetupFollowRoutes(protected, followController)
		SetupUploadRoutes(protected, uploadController)
	}
}
