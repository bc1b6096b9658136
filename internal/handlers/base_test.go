package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/akshitha2508/blogpost/internal/models"
	"github.com/akshitha2508/blogpost/internal/services"

	"github.com/gin-gonic/gin"
)

func TestRespondErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: title is required", services.ErrValidation), http.StatusBadRequest},
		{fmt.Errorf("%w: invalid token", services.ErrUnauthenticated), http.StatusUnauthorized},
		{fmt.Errorf("%w: nope", services.ErrPermissionDenied), http.StatusForbidden},
		{fmt.Errorf("%w: post 9", services.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: username taken", services.ErrConflict), http.StatusConflict},
		{fmt.Errorf("%w: cross-post parent", services.ErrInvalidReference), http.StatusUnprocessableEntity},
		{fmt.Errorf("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		respondError(c, tt.err)

		if w.Code != tt.status {
			t.Errorf("respondError(%v): status = %d, want %d", tt.err, w.Code, tt.status)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("response is not JSON: %v", err)
		}
		if body["message"] == "" {
			t.Errorf("respondError(%v): message must not be empty", tt.err)
		}
	}
}

func TestPostJSONShape(t *testing.T) {
	created := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	post := &models.Post{
		ID:        3,
		Title:     "Alpha",
		Content:   "body",
		Category:  "General",
		Tags:      "a,b,c",
		Status:    models.StatusPublished,
		UserID:    1,
		User:      models.User{ID: 1, Username: "ada"},
		Views:     7,
		CreatedAt: created,
		UpdatedAt: created,
	}

	out := postJSON(post)
	if out["author"] != "ada" {
		t.Errorf("author = %v, want ada", out["author"])
	}
	tags, ok := out["tags"].([]string)
	if !ok || len(tags) != 3 || tags[0] != "a" {
		t.Errorf("tags = %v, want [a b c]", out["tags"])
	}
	if _, present := out["Tags"]; present {
		t.Error("raw tag string must not leak into the response")
	}
}

func TestAuthorFallsBackToUnknown(t *testing.T) {
	cm := &models.Comment{ID: 1, Content: "hi"}
	if got := commentJSON(cm)["author"]; got != "Unknown" {
		t.Errorf("author = %v, want Unknown", got)
	}
}

func TestCommentTreeJSONNestsReplies(t *testing.T) {
	node := &services.CommentNode{
		Comment: models.Comment{ID: 1, Content: "root"},
		Replies: []*services.CommentNode{
			{Comment: models.Comment{ID: 2, Content: "reply"}, Replies: []*services.CommentNode{}},
		},
	}

	out := commentTreeJSON(node)
	replies, ok := out["replies"].([]gin.H)
	if !ok || len(replies) != 1 {
		t.Fatalf("replies = %v, want one nested reply", out["replies"])
	}
	if replies[0]["id"] != uint(2) {
		t.Errorf("nested reply id = %v, want 2", replies[0]["id"])
	}
	inner, ok := replies[0]["replies"].([]gin.H)
	if !ok || len(inner) != 0 {
		t.Errorf("leaf reply should carry an empty replies list, got %v", replies[0]["replies"])
	}
}
