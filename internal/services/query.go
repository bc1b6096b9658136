package services

import (
	"math"
	"strings"

	"github.com/akshitha2508/blogpost/internal/models"

	"gorm.io/gorm"
)

// MaxPerPage bounds the page size so a single request cannot pull the
// whole table.
const MaxPerPage = 100

const defaultPerPage = 10

// PostFilter selects and pages the post feed. An empty Status means
// no status filter at all; callers that want the default feed pass
// "published" explicitly. Category "" or "all" disables the category
// filter. Search is a case-insensitive substring match on title or
// content.
type PostFilter struct {
	Status   string
	Category string
	Search   string
	Page     int
	PerPage  int
}

// PostPage is one ordered page of the feed plus paging metadata.
type PostPage struct {
	Posts       []models.Post
	Total       int64
	Pages       int
	CurrentPage int
	HasNext     bool
	HasPrev     bool
}

// NormalizePaging floors page at 1 and clamps perPage to [1, MaxPerPage].
func NormalizePaging(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}

// PageMeta derives the page count and has_next/has_prev flags. A page
// beyond the end has no next page but keeps has_prev when page > 1.
func PageMeta(total int64, page, perPage int) (pages int, hasNext, hasPrev bool) {
	pages = int(math.Ceil(float64(total) / float64(perPage)))
	return pages, page < pages, page > 1
}

// escapeLike neutralizes LIKE metacharacters in a user-supplied search
// term so "%" and "_" match literally instead of as wildcards.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// List returns the filtered feed, newest first. Ties on created_at
// break on id descending so the order is deterministic.
func (s *PostService) List(f PostFilter) (*PostPage, error) {
	page, perPage := NormalizePaging(f.Page, f.PerPage)

	// Fresh query per execution; gorm chains must not be reused across
	// the count and the page fetch.
	filtered := func() *gorm.DB {
		q := s.db.Model(&models.Post{})
		if f.Status != "" {
			q = q.Where("status = ?", f.Status)
		}
		if f.Category != "" && f.Category != "all" {
			q = q.Where("category = ?", f.Category)
		}
		if f.Search != "" {
			pattern := "%" + escapeLike(strings.ToLower(f.Search)) + "%"
			q = q.Where("LOWER(title) LIKE ? ESCAPE '\\' OR LOWER(content) LIKE ? ESCAPE '\\'", pattern, pattern)
		}
		return q
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, err
	}

	posts := []models.Post{}
	err := filtered().Preload("User").
		Order("created_at DESC, id DESC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	pages, hasNext, hasPrev := PageMeta(total, page, perPage)
	return &PostPage{
		Posts:       posts,
		Total:       total,
		Pages:       pages,
		CurrentPage: page,
		HasNext:     hasNext,
		HasPrev:     hasPrev,
	}, nil
}

// PublishedByUser returns a user's published posts, newest first.
func (s *PostService) PublishedByUser(userID uint) ([]models.Post, error) {
	posts := []models.Post{}
	err := s.db.Preload("User").
		Where("user_id = ? AND status = ?", userID, models.StatusPublished).
		Order("created_at DESC, id DESC").
		Find(&posts).Error
	return posts, err
}

// Categories lists the distinct non-empty category values across all
// posts, regardless of status, in lexicographic order.
func (s *PostService) Categories() ([]string, error) {
	categories := []string{}
	err := s.db.Model(&models.Post{}).
		Distinct("category").
		Where("category IS NOT NULL AND category <> ''").
		Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}
