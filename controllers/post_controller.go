package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/photoloop/api-go/config"
	"github.com/photoloop/api-go/models"
	"github.com/photoloop/api-go/utils"
	"gorm.io/gorm"
)

type PostController struct {
	DB      *gorm.DB
	Storage *config.StorageConfig
}

type CreatePostRequest struct {
	ImageKey string `json:"imageKey" binding:"required"`
	Caption  string `json:"caption"`
}

func NewPostController(db *gorm.DB, storage *config.StorageConfig) *PostController {
	return &PostController{DB: db, Storage: storage}
}

// CreatePost godoc
// @Summary Create a new post
// @Description Creates a post referencing an uploaded image
// @Tags posts
// @Accept json
// @Produce json
// @Param post body CreatePostRequest true "Post creation request"
// @Success 201 {object} map[string]interface{}
// @Router /posts [post]
func (pc *PostController) CreatePost(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Caption is stored verbatim; hashtags are derived from it.
	post := models.Post{
		UserID:    user.UserID,
		ImageKey:  req.ImageKey,
		Caption:   req.Caption,
		Hashtags:  pq.StringArray(utils.ExtractHashtags(req.Caption)),
		LikeCount: 0,
		CreatedAt: time.Now(),
	}

	if err := pc.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"post": gin.H{
			"id":        post.ID,
			"userId":    post.UserID,
			"caption":   post.Caption,
			"hashtags":  post.Hashtags,
			"likeCount": post.LikeCount,
			"imageUrl":  pc.Storage.ResolveURL(post.ImageKey),
			"createdAt": post.CreatedAt,
		},
	})
}

// GetPostDetail godoc
// @Summary Get a single post
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Router /posts/{id} [get]
func (pc *PostController) GetPostDetail(c *gin.Context) {
	postID := c.Param("id")

	var post models.Post
	if err := pc.DB.First(&post, postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var owner models.User
	pc.DB.First(&owner, post.UserID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"post": gin.H{
			"id":        post.ID,
			"userId":    post.UserID,
			"userName":  owner.DisplayName(),
			"caption":   post.Caption,
			"hashtags":  post.Hashtags,
			"likeCount": post.LikeCount,
			"imageUrl":  pc.Storage.ResolveURL(post.ImageKey),
			"createdAt": post.CreatedAt,
		},
	})
}

// DeletePost godoc
// @Summary Delete a post
// @Description Deletes a post together with its likes and comments
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Router /posts/{id} [delete]
func (pc *PostController) DeletePost(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	postID := c.Param("id")

	var post models.Post
	if err := pc.DB.First(&post, postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if post.UserID != user.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own posts"})
		return
	}

	// The cascade must be all-or-nothing: likes, then comments, then the post.
	tx := pc.DB.Begin()

	if err := tx.Where("post_id = ?", post.ID).Delete(&models.Like{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete likes"})
		return
	}

	if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comments"})
		return
	}

	if err := tx.Delete(&post).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Post successfully deleted",
	})
}

// GetUserPosts godoc
// @Summary Get posts by user
// @Description Returns all posts by a user, newest first, with resolved image URLs
// @Tags posts
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Router /users/{userId}/posts [get]
func (pc *PostController) GetUserPosts(c *gin.Context) {
	userID := c.Param("userId")

	var posts []models.Post
	result := pc.DB.Where("user_id = ?", userID).
		Order("id DESC").
		Find(&posts)

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching posts"})
		return
	}

	out := make([]gin.H, 0, len(posts))
	for _, post := range posts {
		out = append(out, gin.H{
			"id":        post.ID,
			"userId":    post.UserID,
			"caption":   post.Caption,
			"hashtags":  post.Hashtags,
			"likeCount": post.LikeCount,
			"imageUrl":  pc.Storage.ResolveURL(post.ImageKey),
			"createdAt": post.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"posts":   out,
	})
}
