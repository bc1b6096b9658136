package handlers

import (
	"errors"
	"net/http"

	"github.com/akshitha2508/blogpost/internal/models"
	"github.com/akshitha2508/blogpost/internal/services"

	"github.com/gin-gonic/gin"
)

// respondError maps service failure kinds onto HTTP statuses. Every
// failure carries an explicit kind and message; nothing is swallowed.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, services.ErrPermissionDenied):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, services.ErrInvalidReference):
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{"message": err.Error()})
}

func authorName(u models.User) string {
	if u.Username == "" {
		return "Unknown"
	}
	return u.Username
}

func userJSON(u *models.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"username":   u.Username,
		"email":      u.Email,
		"bio":        u.Bio,
		"avatar_url": u.AvatarURL,
		"is_admin":   u.IsAdmin,
		"created_at": u.CreatedAt,
	}
}

func postJSON(p *models.Post) gin.H {
	return gin.H{
		"id":         p.ID,
		"title":      p.Title,
		"content":    p.Content,
		"category":   p.Category,
		"tags":       p.TagList(),
		"status":     p.Status,
		"user_id":    p.UserID,
		"author":     authorName(p.User),
		"image_url":  p.ImageURL,
		"video_url":  p.VideoURL,
		"views":      p.Views,
		"created_at": p.CreatedAt,
		"updated_at": p.UpdatedAt,
	}
}

func postListJSON(posts []models.Post) []gin.H {
	out := make([]gin.H, 0, len(posts))
	for i := range posts {
		out = append(out, postJSON(&posts[i]))
	}
	return out
}

func commentJSON(cm *models.Comment) gin.H {
	return gin.H{
		"id":         cm.ID,
		"content":    cm.Content,
		"user_id":    cm.UserID,
		"post_id":    cm.PostID,
		"parent_id":  cm.ParentID,
		"author":     authorName(cm.User),
		"created_at": cm.CreatedAt,
		"replies":    []gin.H{},
	}
}

func commentTreeJSON(node *services.CommentNode) gin.H {
	out := commentJSON(&node.Comment)
	replies := make([]gin.H, 0, len(node.Replies))
	for _, reply := range node.Replies {
		replies = append(replies, commentTreeJSON(reply))
	}
	out["replies"] = replies
	return out
}
