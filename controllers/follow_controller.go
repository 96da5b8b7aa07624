package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/photoloop/api-go/models"
	"github.com/photoloop/api-go/utils"
	"gorm.io/gorm"
)

type FollowController struct {
	DB *gorm.DB
}

func NewFollowController(db *gorm.DB) *FollowController {
	return &FollowController{DB: db}
}

// FollowUser godoc
// @Summary Follow a user
// @Description Creates a follow edge from the caller to the target user
// @Tags follows
// @Accept json
// @Produce json
// @Param userId path string true "User ID to follow"
// @Success 201 {object} map[string]interface{}
// @Router /users/{userId}/follow [post]
func (fc *FollowController) FollowUser(c *gin.Context) {
	caller := utils.GetUser(c)
	if caller == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	targetUserID := c.Param("userId")

	var targetUser models.User
	if err := fc.DB.First(&targetUser, targetUserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if caller.UserID == targetUser.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot follow yourself"})
		return
	}

	var existingFollow models.Follow
	result := fc.DB.Where("follower_user_id = ? AND following_user_id = ?", caller.UserID, targetUser.ID).First(&existingFollow)
	if result.Error == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Already following this user"})
		return
	}

	follow := models.Follow{
		FollowerUserID:  caller.UserID,
		FollowingUserID: targetUser.ID,
		CreatedAt:       time.Now(),
	}

	if err := fc.DB.Create(&follow).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to follow user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"followId": follow.ID,
		"message":  "Successfully followed user",
	})
}

// UnfollowUser godoc
// @Summary Unfollow a user
// @Description Removes the follow edge from the caller to the target user
// @Tags follows
// @Accept json
// @Produce json
// @Param userId path string true "User ID to unfollow"
// @Success 200 {object} map[string]interface{}
// @Router /users/{userId}/follow [delete]
func (fc *FollowController) UnfollowUser(c *gin.Context) {
	caller := utils.GetUser(c)
	if caller == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	targetUserID := c.Param("userId")

	var existingFollow models.Follow
	result := fc.DB.Where("follower_user_id = ? AND following_user_id = ?", caller.UserID, targetUserID).First(&existingFollow)
	if result.Error != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not following this user"})
		return
	}

	if err := fc.DB.Delete(&existingFollow).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unfollow user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Successfully unfollowed user",
	})
}

// IsFollowing godoc
// @Summary Check follow status
// @Description Returns whether the caller follows the target user. Anonymous
// callers and self-checks get false, never an error.
// @Tags follows
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Router /users/{userId}/follow [get]
func (fc *FollowController) IsFollowing(c *gin.Context) {
	caller := utils.GetUser(c)
	targetUserID := c.Param("userId")

	if caller == nil {
		c.JSON(http.StatusOK, gin.H{"following": false})
		return
	}

	var targetUser models.User
	if err := fc.DB.First(&targetUser, targetUserID).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"following": false})
		return
	}

	if caller.UserID == targetUser.ID {
		c.JSON(http.StatusOK, gin.H{"following": false})
		return
	}

	var existingFollow models.Follow
	result := fc.DB.Where("follower_user_id = ? AND following_user_id = ?", caller.UserID, targetUser.ID).First(&existingFollow)

	c.JSON(http.StatusOK, gin.H{"following": result.Error == nil})
}

// GetUserFollowers godoc
// @Summary Get user's followers
// @Description Returns the users following the specified user
// @Tags follows
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Router /users/{userId}/followers [get]
func (fc *FollowController) GetUserFollowers(c *gin.Context) {
	userID := c.Param("userId")

	var followers []struct {
		UserID    uint      `json:"userId"`
		Username  *string   `json:"username"`
		FullName  string    `json:"fullName"`
		CreatedAt time.Time `json:"followedAt"`
	}

	result := fc.DB.Model(&models.Follow{}).
		Select("users.id as user_id, users.username, users.full_name, follows.created_at").
		Joins("JOIN users ON users.id = follows.follower_user_id").
		Where("follows.following_user_id = ?", userID).
		Order("follows.id DESC").
		Find(&followers)

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching followers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"followers": followers,
		"count":     len(followers),
	})
}

// GetUserFollowing godoc
// @Summary Get users that a user is following
// @Description Returns the users the specified user follows
// @Tags follows
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Router /users/{userId}/following [get]
func (fc *FollowController) GetUserFollowing(c *gin.Context) {
	userID := c.Param("userId")

	var following []struct {
		UserID    uint      `json:"userId"`
		Username  *string   `json:"username"`
		FullName  string    `json:"fullName"`
		CreatedAt time.Time `json:"followedAt"`
	}

	result := fc.DB.Model(&models.Follow{}).
		Select("users.id as user_id, users.username, users.full_name, follows.created_at").
		Joins("JOIN users ON users.id = follows.following_user_id").
		Where("follows.follower_user_id = ?", userID).
		Order("follows.id DESC").
		Find(&following)

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching following users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"following": following,
		"count":     len(following),
	})
}
