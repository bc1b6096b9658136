package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/akshitha2508/blogpost/internal/middleware"
	"github.com/akshitha2508/blogpost/internal/models"
	"github.com/akshitha2508/blogpost/internal/services"
	"github.com/akshitha2508/blogpost/internal/utils"

	"github.com/gin-gonic/gin"
)

const categoriesCacheKey = "categories"

type PostHandler struct {
	posts   *services.PostService
	uploads *services.UploadService
	cache   *utils.Cache
}

func NewPostHandler(posts *services.PostService, uploads *services.UploadService, cache *utils.Cache) *PostHandler {
	return &PostHandler{posts: posts, uploads: uploads, cache: cache}
}

type postRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
	Tags     *string `json:"tags"`
	Status   *string `json:"status"`
}

// decodeInput accepts either body shape: a JSON document, or a
// multipart form that may carry image/video files. File fields are
// delegated to the upload service; unusable files are treated as
// absent rather than failing the request.
func (h *PostHandler) decodeInput(c *gin.Context) (services.PostInput, error) {
	var in services.PostInput

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		form, err := c.MultipartForm()
		if err != nil {
			return in, fmt.Errorf("%w: %v", services.ErrValidation, err)
		}
		field := func(name string) *string {
			if vals, ok := form.Value[name]; ok && len(vals) > 0 {
				v := vals[0]
				return &v
			}
			return nil
		}
		in.Title = field("title")
		in.Content = field("content")
		in.Category = field("category")
		in.Tags = field("tags")
		in.Status = field("status")

		if files := form.File["image"]; len(files) > 0 {
			if ref := h.uploads.Save(files[0], "image"); ref != "" {
				in.ImageURL = &ref
			}
		}
		if files := form.File["video"]; len(files) > 0 {
			if ref := h.uploads.Save(files[0], "video"); ref != "" {
				in.VideoURL = &ref
			}
		}
		return in, nil
	}

	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return in, fmt.Errorf("%w: %v", services.ErrValidation, err)
	}
	in.Title = req.Title
	in.Content = req.Content
	in.Category = req.Category
	in.Tags = req.Tags
	in.Status = req.Status
	return in, nil
}

func (h *PostHandler) List(c *gin.Context) {
	filter := services.PostFilter{
		Status:   c.DefaultQuery("status", models.StatusPublished),
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Page:     utils.StringToInt(c.DefaultQuery("page", "1")),
		PerPage:  utils.StringToInt(c.DefaultQuery("per_page", "10")),
	}

	page, err := h.posts.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts":        postListJSON(page.Posts),
		"total":        page.Total,
		"pages":        page.Pages,
		"current_page": page.CurrentPage,
		"has_next":     page.HasNext,
		"has_prev":     page.HasPrev,
	})
}

// Detail fetches one post and counts the read.
func (h *PostHandler) Detail(c *gin.Context) {
	post, err := h.posts.View(uint(utils.StringToInt(c.Param("id"))))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, postJSON(post))
}

func (h *PostHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	in, err := h.decodeInput(c)
	if err != nil {
		respondError(c, err)
		return
	}

	post, err := h.posts.Create(user.ID, in)
	if err != nil {
		respondError(c, err)
		return
	}

	h.cache.Delete(categoriesCacheKey)
	c.JSON(http.StatusCreated, postJSON(post))
}

func (h *PostHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id := uint(utils.StringToInt(c.Param("id")))

	post, err := h.posts.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !services.CanMutatePost(user, post) {
		respondError(c, fmt.Errorf("%w: you cannot modify this post", services.ErrPermissionDenied))
		return
	}

	in, err := h.decodeInput(c)
	if err != nil {
		respondError(c, err)
		return
	}

	updated, err := h.posts.Update(id, in)
	if err != nil {
		respondError(c, err)
		return
	}

	h.cache.Delete(categoriesCacheKey)
	c.JSON(http.StatusOK, postJSON(updated))
}

func (h *PostHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id := uint(utils.StringToInt(c.Param("id")))

	post, err := h.posts.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !services.CanMutatePost(user, post) {
		respondError(c, fmt.Errorf("%w: you cannot delete this post", services.ErrPermissionDenied))
		return
	}

	if err := h.posts.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	h.cache.Delete(categoriesCacheKey)
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

func (h *PostHandler) Categories(c *gin.Context) {
	if cached := h.cache.Get(categoriesCacheKey); cached != nil {
		if categories, ok := cached.([]string); ok {
			c.JSON(http.StatusOK, categories)
			return
		}
	}

	categories, err := h.posts.Categories()
	if err != nil {
		respondError(c, err)
		return
	}

	h.cache.Set(categoriesCacheKey, categories, time.Minute)
	c.JSON(http.StatusOK, categories)
}
