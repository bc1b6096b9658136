package services

import (
	"github.com/akshitha2508/blogpost/internal/models"

	"gorm.io/gorm"
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

type DashboardStats struct {
	TotalPosts     int64
	TotalUsers     int64
	TotalComments  int64
	PublishedPosts int64
	DraftPosts     int64
	RecentPosts    []models.Post
	RecentComments []*CommentNode
}

// Dashboard aggregates site-wide counts plus the five most recent
// posts and comments.
func (s *StatsService) Dashboard() (*DashboardStats, error) {
	stats := &DashboardStats{}

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.TotalPosts, s.db.Model(&models.Post{})},
		{&stats.TotalUsers, s.db.Model(&models.User{})},
		{&stats.TotalComments, s.db.Model(&models.Comment{})},
		{&stats.PublishedPosts, s.db.Model(&models.Post{}).Where("status = ?", models.StatusPublished)},
		{&stats.DraftPosts, s.db.Model(&models.Post{}).Where("status = ?", models.StatusDraft)},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	err := s.db.Preload("User").
		Order("created_at DESC, id DESC").
		Limit(5).
		Find(&stats.RecentPosts).Error
	if err != nil {
		return nil, err
	}

	recent := []models.Comment{}
	err = s.db.Preload("User").
		Order("created_at DESC, id DESC").
		Limit(5).
		Find(&recent).Error
	if err != nil {
		return nil, err
	}
	// Recent comments carry their nested replies, like the threads view
	stats.RecentComments, err = LoadSubtrees(s.db, recent)
	if err != nil {
		return nil, err
	}

	return stats, nil
}
