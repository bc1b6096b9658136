package handlers

import (
	"fmt"
	"net/http"

	"github.com/akshitha2508/blogpost/internal/middleware"
	"github.com/akshitha2508/blogpost/internal/services"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	stats *services.StatsService
}

func NewDashboardHandler(stats *services.StatsService) *DashboardHandler {
	return &DashboardHandler{stats: stats}
}

// Stats serves the admin dashboard: aggregate counts plus recent
// activity.
func (h *DashboardHandler) Stats(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if !services.CanViewDashboard(user) {
		respondError(c, fmt.Errorf("%w: admin access required", services.ErrPermissionDenied))
		return
	}

	stats, err := h.stats.Dashboard()
	if err != nil {
		respondError(c, err)
		return
	}

	recentComments := make([]gin.H, 0, len(stats.RecentComments))
	for _, node := range stats.RecentComments {
		recentComments = append(recentComments, commentTreeJSON(node))
	}

	c.JSON(http.StatusOK, gin.H{
		"stats": gin.H{
			"total_posts":     stats.TotalPosts,
			"total_users":     stats.TotalUsers,
			"total_comments":  stats.TotalComments,
			"published_posts": stats.PublishedPosts,
			"draft_posts":     stats.DraftPosts,
		},
		"recent_posts":    postListJSON(stats.RecentPosts),
		"recent_comments": recentComments,
	})
}
