package handlers

import (
	"fmt"
	"net/http"

	"github.com/akshitha2508/blogpost/internal/middleware"
	"github.com/akshitha2508/blogpost/internal/services"
	"github.com/akshitha2508/blogpost/internal/utils"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	comments *services.CommentService
}

func NewCommentHandler(comments *services.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

type createCommentRequest struct {
	Content  string `json:"content" binding:"required"`
	ParentID *uint  `json:"parent_id"`
}

type updateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// List returns the post's threads: top-level comments newest first,
// each with its nested replies.
func (h *CommentHandler) List(c *gin.Context) {
	postID := uint(utils.StringToInt(c.Param("id")))

	nodes, err := h.comments.ListForPost(postID)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]gin.H, 0, len(nodes))
	for _, node := range nodes {
		out = append(out, commentTreeJSON(node))
	}
	c.JSON(http.StatusOK, out)
}

func (h *CommentHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)
	postID := uint(utils.StringToInt(c.Param("id")))

	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %v", services.ErrValidation, err))
		return
	}

	comment, err := h.comments.Create(user.ID, postID, req.Content, req.ParentID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, commentJSON(comment))
}

func (h *CommentHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id := uint(utils.StringToInt(c.Param("id")))

	comment, err := h.comments.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !services.CanEditComment(user, comment) {
		respondError(c, fmt.Errorf("%w: only the author can edit a comment", services.ErrPermissionDenied))
		return
	}

	var req updateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %v", services.ErrValidation, err))
		return
	}

	updated, err := h.comments.Update(id, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, commentJSON(updated))
}

// Delete removes a comment and its reply subtree.
func (h *CommentHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id := uint(utils.StringToInt(c.Param("id")))

	comment, err := h.comments.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !services.CanDeleteComment(user, comment) {
		respondError(c, fmt.Errorf("%w: you cannot delete this comment", services.ErrPermissionDenied))
		return
	}

	if err := h.comments.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}
