package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/photoloop/api-go/config"
	"github.com/photoloop/api-go/models"
	"github.com/photoloop/api-go/utils"
	"gorm.io/gorm"
)

const (
	globalFeedLimit     = 50
	followingScanLimit  = 100
	commentPreviewLimit = 3
	suggestedUserLimit  = 5
)

type FeedController struct {
	DB      *gorm.DB
	Storage *config.StorageConfig
}

type FeedComment struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"userId"`
	Content   string    `json:"content"`
	UserName  string    `json:"userName"`
	CreatedAt time.Time `json:"createdAt"`
}

type FeedPost struct {
	ID            uint          `json:"id"`
	UserID        uint          `json:"userId"`
	Caption       string        `json:"caption"`
	Hashtags      []string      `json:"hashtags"`
	LikeCount     int           `json:"likeCount"`
	ImageURL      string        `json:"imageUrl"`
	UserName      string        `json:"userName"`
	UserImage     string        `json:"userImage"`
	IsLikedByUser bool          `json:"isLikedByUser"`
	Comments      []FeedComment `json:"comments"`
	CommentCount  int64         `json:"commentCount"`
	CreatedAt     time.Time     `json:"createdAt"`
}

func NewFeedController(db *gorm.DB, storage *config.StorageConfig) *FeedController {
	return &FeedController{DB: db, Storage: storage}
}

// GetGlobalFeed godoc
// @Summary Get the global feed
// @Description Returns the 50 most recent posts, annotated per viewer
// @Tags feed
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /feed [get]
func (fc *FeedController) GetGlobalFeed(c *gin.Context) {
	viewer := utils.GetUser(c)

	var posts []models.Post
	result := fc.DB.Order("id DESC").Limit(globalFeedLimit).Find(&posts)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching feed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"posts":   fc.annotatePosts(posts, viewer),
	})
}

// GetFollowingFeed godoc
// @Summary Get the following feed
// @Description Filters the 100 most recent posts down to followed authors, capped at 50
// @Tags feed
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /feed/following [get]
func (fc *FeedController) GetFollowingFeed(c *gin.Context) {
	viewer := utils.GetUser(c)
	if viewer == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "posts": []FeedPost{}})
		return
	}

	var follows []models.Follow
	if err := fc.DB.Where("follower_user_id = ?", viewer.UserID).Find(&follows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching follows"})
		return
	}

	followingIDs := make(map[uint]bool, len(follows))
	for _, f := range follows {
		followingIDs[f.FollowingUserID] = true
	}

	if len(followingIDs) == 0 {
		c.JSON(http.StatusOK, gin.H{"success": true, "posts": []FeedPost{}})
		return
	}

	// The recency window is deliberate: only the 100 most recent posts are
	// considered, so an older post by a followed user falls out of the feed.
	var recent []models.Post
	if err := fc.DB.Order("id DESC").Limit(followingScanLimit).Find(&recent).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching feed"})
		return
	}

	var followed []models.Post
	for _, post := range recent {
		if followingIDs[post.UserID] {
			followed = append(followed, post)
		}
		if len(followed) == globalFeedLimit {
			break
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"posts":   fc.annotatePosts(followed, viewer),
	})
}

// GetSuggestedUsers godoc
// @Summary Get suggested users
// @Description Returns up to 5 posting users the caller does not follow yet
// @Tags feed
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /users/suggested [get]
func (fc *FeedController) GetSuggestedUsers(c *gin.Context) {
	viewer := utils.GetUser(c)
	if viewer == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "users": []gin.H{}})
		return
	}

	var follows []models.Follow
	if err := fc.DB.Where("follower_user_id = ?", viewer.UserID).Find(&follows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching follows"})
		return
	}

	excluded := map[uint]bool{viewer.UserID: true}
	for _, f := range follows {
		excluded[f.FollowingUserID] = true
	}

	var allPosts []models.Post
	if err := fc.DB.Order("id ASC").Find(&allPosts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching posts"})
		return
	}

	// Distinct posting users, in enumeration order, minus the exclusion set.
	var candidateIDs []uint
	seen := map[uint]bool{}
	postCount := map[uint]int{}
	totalLikes := map[uint]int{}
	for _, post := range allPosts {
		postCount[post.UserID]++
		totalLikes[post.UserID] += post.LikeCount
		if seen[post.UserID] || excluded[post.UserID] {
			seen[post.UserID] = true
			continue
		}
		seen[post.UserID] = true
		candidateIDs = append(candidateIDs, post.UserID)
	}

	if len(candidateIDs) > suggestedUserLimit {
		candidateIDs = candidateIDs[:suggestedUserLimit]
	}

	users := make([]gin.H, 0, len(candidateIDs))
	for _, id := range candidateIDs {
		var user models.User
		if err := fc.DB.First(&user, id).Error; err != nil {
			continue
		}
		users = append(users, gin.H{
			"id":              user.ID,
			"username":        user.Username,
			"fullName":        user.FullName,
			"name":            user.Name,
			"bio":             user.Bio,
			"isVerified":      user.IsVerified,
			"profileImageUrl": fc.Storage.ResolveURL(user.ProfileImageKey),
			"postCount":       postCount[id],
			"totalLikes":      totalLikes[id],
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"users":   users,
	})
}

// annotatePosts decorates raw posts with everything a feed card needs: owner
// name and image, resolved image URL, the viewer's like state, the three most
// recent comments (shown oldest first) and the total comment count.
func (fc *FeedController) annotatePosts(posts []models.Post, viewer *utils.UserClaims) []FeedPost {
	owners := map[uint]*models.User{}
	out := make([]FeedPost, 0, len(posts))

	for _, post := range posts {
		owner, ok := owners[post.UserID]
		if !ok {
			var u models.User
			if err := fc.DB.First(&u, post.UserID).Error; err == nil {
				owner = &u
			}
			owners[post.UserID] = owner
		}

		isLiked := false
		if viewer != nil {
			var like models.Like
			isLiked = fc.DB.Where("post_id = ? AND user_id = ?", post.ID, viewer.UserID).
				First(&like).Error == nil
		}

		var recentComments []models.Comment
		fc.DB.Where("post_id = ?", post.ID).
			Order("id DESC").
			Limit(commentPreviewLimit).
			Find(&recentComments)

		previews := make([]FeedComment, 0, len(recentComments))
		for i := len(recentComments) - 1; i >= 0; i-- { // oldest first
			comment := recentComments[i]
			var commenter models.User
			commenterName := "Anonymous"
			if err := fc.DB.First(&commenter, comment.UserID).Error; err == nil {
				commenterName = commenter.DisplayName()
			}
			previews = append(previews, FeedComment{
				ID:        comment.ID,
				UserID:    comment.UserID,
				Content:   comment.Content,
				UserName:  commenterName,
				CreatedAt: comment.CreatedAt,
			})
		}

		var commentCount int64
		fc.DB.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&commentCount)

		ownerImage := ""
		if owner != nil {
			ownerImage = fc.Storage.ResolveURL(owner.ProfileImageKey)
		}

		out = append(out, FeedPost{
			ID:            post.ID,
			UserID:        post.UserID,
			Caption:       post.Caption,
			Hashtags:      post.Hashtags,
			LikeCount:     post.LikeCount,
			ImageURL:      fc.Storage.ResolveURL(post.ImageKey),
			UserName:      owner.DisplayName(),
			UserImage:     ownerImage,
			IsLikedByUser: isLiked,
			Comments:      previews,
			CommentCount:  commentCount,
			CreatedAt:     post.CreatedAt,
		})
	}

	return out
}
