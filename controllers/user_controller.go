package controllers

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/photoloop/api-go/config"
	"github.com/photoloop/api-go/models"
	"github.com/photoloop/api-go/utils"
	"gorm.io/gorm"
)

type UserController struct {
	DB      *gorm.DB
	Storage *config.StorageConfig
}

type UpdateProfileRequest struct {
	FullName    *string `json:"fullName"`
	Username    *string `json:"username"`
	Bio         *string `json:"bio"`
	Website     *string `json:"website"`
	Location    *string `json:"location"`
	DateOfBirth *string `json:"dateOfBirth"`
}

type CompleteProfileRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Username string `json:"username" binding:"required"`
}

var usernamePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// validateUsernamePattern enforces the username format: lowercase letters,
// digits and underscores only.
func validateUsernamePattern(username string) error {
	trimmed := strings.TrimSpace(username)

	if len(trimmed) < 3 {
		return fmt.Errorf("username must be at least 3 characters long")
	}
	if len(trimmed) > 20 {
		return fmt.Errorf("username must be no more than 20 characters long")
	}
	if !usernamePattern.MatchString(trimmed) {
		return fmt.Errorf("username can only contain lowercase letters, numbers, and underscores")
	}

	return nil
}

func NewUserController(db *gorm.DB, storage *config.StorageConfig) *UserController {
	return &UserController{DB: db, Storage: storage}
}

func (uc *UserController) userResponse(user *models.User) gin.H {
	return gin.H{
		"id":              user.ID,
		"username":        user.Username,
		"fullName":        user.FullName,
		"name":            user.Name,
		"email":           user.Email,
		"bio":             user.Bio,
		"website":         user.Website,
		"location":        user.Location,
		"dateOfBirth":     user.DateOfBirth,
		"isVerified":      user.IsVerified,
		"joinedAt":        user.JoinedAt,
		"profileImageUrl": uc.Storage.ResolveURL(user.ProfileImageKey),
		"createdAt":       user.CreatedAt,
	}
}

func (uc *UserController) GetUserProfile(c *gin.Context) {
	userID := c.Param("userId")

	var targetUser models.User
	if err := uc.DB.First(&targetUser, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	response := uc.userResponse(&targetUser)

	isFollowing := false
	if caller := utils.GetUser(c); caller != nil && caller.UserID != targetUser.ID {
		var follow models.Follow
		isFollowing = uc.DB.Where("follower_user_id = ? AND following_user_id = ?", caller.UserID, targetUser.ID).
			First(&follow).Error == nil
	}
	response["isFollowing"] = isFollowing

	c.JSON(http.StatusOK, gin.H{"success": true, "user": response})
}

func (uc *UserController) GetUserByUsername(c *gin.Context) {
	username := c.Param("username")

	var user models.User
	if err := uc.DB.Where("username = ?", username).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": uc.userResponse(&user)})
}

func (uc *UserController) SearchUsers(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusOK, gin.H{"success": true, "users": []gin.H{}})
		return
	}

	searchPattern := "%" + strings.ToLower(query) + "%"

	var users []models.User
	uc.DB.Where(
		"LOWER(COALESCE(username, '')) LIKE ? OR LOWER(full_name) LIKE ? OR LOWER(name) LIKE ? OR LOWER(email) LIKE ?",
		searchPattern, searchPattern, searchPattern, searchPattern,
	).Limit(10).Find(&users)

	out := make([]gin.H, 0, len(users))
	for i := range users {
		out = append(out, uc.userResponse(&users[i]))
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "users": out, "query": query})
}

// GetUserStats godoc
// @Summary Get a user's statistics
// @Description Post count, summed like counts, follower and following counts.
// Falls back to the caller when no userId is given; all zeros when neither resolves.
// @Tags users
// @Produce json
// @Param userId query string false "Target user ID"
// @Success 200 {object} map[string]interface{}
// @Router /users/stats [get]
func (uc *UserController) GetUserStats(c *gin.Context) {
	targetID := c.Query("userId")
	if targetID == "" {
		if caller := utils.GetUser(c); caller != nil {
			targetID = fmt.Sprintf("%d", caller.UserID)
		}
	}

	if targetID == "" {
		c.JSON(http.StatusOK, gin.H{
			"posts":      0,
			"totalLikes": 0,
			"followers":  0,
			"following":  0,
		})
		return
	}

	var posts []models.Post
	uc.DB.Where("user_id = ?", targetID).Find(&posts)

	// Sum the cached counters; never recount like rows.
	totalLikes := 0
	for _, post := range posts {
		totalLikes += post.LikeCount
	}

	var followerCount, followingCount int64
	uc.DB.Model(&models.Follow{}).Where("following_user_id = ?", targetID).Count(&followerCount)
	uc.DB.Model(&models.Follow{}).Where("follower_user_id = ?", targetID).Count(&followingCount)

	c.JSON(http.StatusOK, gin.H{
		"posts":      len(posts),
		"totalLikes": totalLikes,
		"followers":  followerCount,
		"following":  followingCount,
	})
}

// UpdateProfile godoc
// @Summary Update the caller's profile
// @Description Patches only the supplied fields. A username change conflicts
// when another user already holds it; the caller's own username never conflicts.
// @Tags users
// @Accept json
// @Produce json
// @Param profile body UpdateProfileRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Router /profile [put]
func (uc *UserController) UpdateProfile(c *gin.Context) {
	caller := utils.GetUser(c)
	if caller == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := uc.DB.First(&user, caller.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if req.Username != nil {
		if err := validateUsernamePattern(*req.Username); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var existing models.User
		if err := uc.DB.Where("username = ?", *req.Username).First(&existing).Error; err == nil && existing.ID != user.ID {
			c.JSON(http.StatusConflict, gin.H{"error": "Username already taken"})
			return
		}
	}

	updates := map[string]interface{}{}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.Website != nil {
		updates["website"] = *req.Website
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.DateOfBirth != nil {
		updates["date_of_birth"] = *req.DateOfBirth
	}

	if len(updates) > 0 {
		if err := uc.DB.Model(&user).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}
	}

	uc.DB.First(&user, caller.UserID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated successfully",
		"user":    uc.userResponse(&user),
	})
}

// CompleteProfile godoc
// @Summary Complete a new account's profile
// @Description Sets full name and username after first sign-in. The username
// check here matches any holder, the caller included.
// @Tags users
// @Accept json
// @Produce json
// @Param profile body CompleteProfileRequest true "Profile completion request"
// @Success 200 {object} map[string]interface{}
// @Router /profile/complete [post]
func (uc *UserController) CompleteProfile(c *gin.Context) {
	caller := utils.GetUser(c)
	if caller == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req CompleteProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validateUsernamePattern(req.Username); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := uc.DB.First(&user, caller.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var existing models.User
	if err := uc.DB.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Username already taken"})
		return
	}

	now := time.Now()
	updates := map[string]interface{}{
		"full_name": req.FullName,
		"username":  req.Username,
		"joined_at": now,
	}

	if err := uc.DB.Model(&user).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete profile"})
		return
	}

	uc.DB.First(&user, caller.UserID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile completed",
		"user":    uc.userResponse(&user),
	})
}

// UpdateProfileImage sets the caller's avatar to an uploaded object key.
func (uc *UserController) UpdateProfileImage(c *gin.Context) {
	caller := utils.GetUser(c)
	if caller == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var input struct {
		ImageKey string `json:"imageKey" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := uc.DB.First(&user, caller.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := uc.DB.Model(&user).Update("profile_image_key", input.ImageKey).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"profileImageUrl": uc.Storage.ResolveURL(input.ImageKey),
	})
}
