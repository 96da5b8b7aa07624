package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/photoloop/api-go/models"
	"github.com/photoloop/api-go/utils"
	"gorm.io/gorm"
)

type InteractionController struct {
	DB *gorm.DB
}

type AddCommentRequest struct {
	Content string `json:"content"`
}

func NewInteractionController(db *gorm.DB) *InteractionController {
	return &InteractionController{DB: db}
}

// ToggleLike godoc
// @Summary Like or unlike a post
// @Description Toggles the caller's like and moves the post's like counter by exactly one
// @Tags interactions
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Router /posts/{id}/like [post]
func (ic *InteractionController) ToggleLike(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	postID := c.Param("id")

	var post models.Post
	if err := ic.DB.First(&post, postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var existingLike models.Like
	result := ic.DB.Where("post_id = ? AND user_id = ?", post.ID, user.UserID).First(&existingLike)
	if result.Error != nil && result.Error != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check like status"})
		return
	}

	// The like row and the denormalized counter move together or not at all.
	tx := ic.DB.Begin()

	if result.Error == gorm.ErrRecordNotFound {
		like := models.Like{
			UserID:    user.UserID,
			PostID:    post.ID,
			CreatedAt: time.Now(),
		}

		if err := tx.Create(&like).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to like post"})
			return
		}

		if err := tx.Model(&models.Post{}).Where("id = ?", post.ID).
			Update("like_count", gorm.Expr("like_count + ?", 1)).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update like count"})
			return
		}

		tx.Commit()
		c.JSON(http.StatusOK, gin.H{"liked": true, "likeCount": ic.currentLikeCount(post.ID)})
	} else {
		if err := tx.Delete(&existingLike).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unlike post"})
			return
		}

		if err := tx.Model(&models.Post{}).Where("id = ?", post.ID).
			Update("like_count", gorm.Expr("like_count - ?", 1)).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update like count"})
			return
		}

		tx.Commit()
		c.JSON(http.StatusOK, gin.H{"liked": false, "likeCount": ic.currentLikeCount(post.ID)})
	}
}

// currentLikeCount re-reads the counter after commit so the response reflects
// concurrent toggles instead of the pre-transaction snapshot.
func (ic *InteractionController) currentLikeCount(postID uint) int {
	var post models.Post
	if err := ic.DB.Select("like_count").First(&post, postID).Error; err != nil {
		return 0
	}
	return post.LikeCount
}

// AddComment godoc
// @Summary Comment on a post
// @Description Adds a comment; content is trimmed before storing
// @Tags interactions
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param comment body AddCommentRequest true "Comment request"
// @Success 201 {object} map[string]interface{}
// @Router /posts/{id}/comments [post]
func (ic *InteractionController) AddComment(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	postID := c.Param("id")

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var post models.Post
	if err := ic.DB.First(&post, postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	comment := models.Comment{
		PostID:    post.ID,
		UserID:    user.UserID,
		Content:   strings.TrimSpace(req.Content),
		CreatedAt: time.Now(),
	}

	if err := ic.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"commentId": comment.ID,
	})
}

// GetPostComments godoc
// @Summary List a post's comments
// @Description Returns all comments on a post, oldest first
// @Tags interactions
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Router /posts/{id}/comments [get]
func (ic *InteractionController) GetPostComments(c *gin.Context) {
	postID := c.Param("id")

	var comments []models.Comment
	result := ic.DB.Where("post_id = ?", postID).
		Order("id ASC").
		Find(&comments)

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching comments"})
		return
	}

	users := map[uint]*models.User{}
	out := make([]gin.H, 0, len(comments))
	for _, comment := range comments {
		commenter, ok := users[comment.UserID]
		if !ok {
			var u models.User
			if err := ic.DB.First(&u, comment.UserID).Error; err == nil {
				commenter = &u
			}
			users[comment.UserID] = commenter
		}

		out = append(out, gin.H{
			"id":        comment.ID,
			"postId":    comment.PostID,
			"userId":    comment.UserID,
			"content":   comment.Content,
			"userName":  commenter.DisplayName(),
			"createdAt": comment.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"comments": out,
	})
}
