package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/akshitha2508/blogpost/internal/middleware"
	"github.com/akshitha2508/blogpost/internal/services"
	"github.com/akshitha2508/blogpost/internal/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users   *services.UserService
	posts   *services.PostService
	uploads *services.UploadService
}

func NewUserHandler(users *services.UserService, posts *services.PostService, uploads *services.UploadService) *UserHandler {
	return &UserHandler{users: users, posts: posts, uploads: uploads}
}

type profileRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Bio      *string `json:"bio"`
}

// Profile is the public view: the user plus their published posts.
func (h *UserHandler) Profile(c *gin.Context) {
	id := uint(utils.StringToInt(c.Param("id")))

	user, err := h.users.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	posts, err := h.posts.PublishedByUser(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":       userJSON(user),
		"posts":      postListJSON(posts),
		"post_count": len(posts),
	})
}

// UpdateProfile edits the acting user's own profile. Accepts JSON or
// a multipart form with an optional avatar file.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var in services.ProfileInput
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		form, err := c.MultipartForm()
		if err != nil {
			respondError(c, fmt.Errorf("%w: %v", services.ErrValidation, err))
			return
		}
		field := func(name string) *string {
			if vals, ok := form.Value[name]; ok && len(vals) > 0 {
				v := vals[0]
				return &v
			}
			return nil
		}
		in.Username = field("username")
		in.Email = field("email")
		in.Bio = field("bio")

		if files := form.File["avatar"]; len(files) > 0 {
			in.AvatarURL = h.uploads.Save(files[0], "avatar")
		}
	} else {
		var req profileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, fmt.Errorf("%w: %v", services.ErrValidation, err))
			return
		}
		in.Username = req.Username
		in.Email = req.Email
		in.Bio = req.Bio
	}

	updated, err := h.users.UpdateProfile(user.ID, in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, userJSON(updated))
}
