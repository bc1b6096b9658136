package services

import (
	"fmt"

	"github.com/akshitha2508/blogpost/internal/models"

	"gorm.io/gorm"
)

type PostService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

// PostInput carries a post create or partial update. Nil fields are
// absent from the request and keep the prior value on update.
type PostInput struct {
	Title    *string
	Content  *string
	Category *string
	Tags     *string
	Status   *string
	ImageURL *string
	VideoURL *string
}

func validStatus(status string) bool {
	return status == models.StatusPublished || status == models.StatusDraft
}

// Create inserts a post owned by ownerID. Title and content are
// required; category, tags and status fall back to their defaults.
func (s *PostService) Create(ownerID uint, in PostInput) (*models.Post, error) {
	if in.Title == nil || *in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if in.Content == nil || *in.Content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}

	var owner models.User
	if err := s.db.First(&owner, ownerID).Error; err != nil {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, ownerID)
	}

	post := &models.Post{
		Title:    *in.Title,
		Content:  *in.Content,
		Category: "General",
		Status:   models.StatusPublished,
		UserID:   ownerID,
	}
	if in.Category != nil && *in.Category != "" {
		post.Category = *in.Category
	}
	if in.Tags != nil {
		post.Tags = *in.Tags
	}
	if in.Status != nil && *in.Status != "" {
		if !validStatus(*in.Status) {
			return nil, fmt.Errorf("%w: status must be published or draft", ErrValidation)
		}
		post.Status = *in.Status
	}
	if in.ImageURL != nil {
		post.ImageURL = *in.ImageURL
	}
	if in.VideoURL != nil {
		post.VideoURL = *in.VideoURL
	}

	if err := s.db.Create(post).Error; err != nil {
		return nil, err
	}
	post.User = owner
	return post, nil
}

func (s *PostService) Get(id uint) (*models.Post, error) {
	var post models.Post
	if err := s.db.Preload("User").First(&post, id).Error; err != nil {
		return nil, fmt.Errorf("%w: post %d", ErrNotFound, id)
	}
	return &post, nil
}

// View fetches a post for the detail page and counts the read. Every
// request counts, repeated reads included; the increment happens in
// the database so concurrent readers don't clobber each other.
func (s *PostService) View(id uint) (*models.Post, error) {
	post, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(post).UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		return nil, err
	}
	post.Views++
	return post, nil
}

// Update applies the fields present in the input and refreshes
// updated_at, even when nothing actually changed.
func (s *PostService) Update(id uint, in PostInput) (*models.Post, error) {
	post, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		if *in.Title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
		}
		post.Title = *in.Title
	}
	if in.Content != nil {
		if *in.Content == "" {
			return nil, fmt.Errorf("%w: content cannot be empty", ErrValidation)
		}
		post.Content = *in.Content
	}
	if in.Category != nil {
		post.Category = *in.Category
	}
	if in.Tags != nil {
		post.Tags = *in.Tags
	}
	if in.Status != nil {
		if !validStatus(*in.Status) {
			return nil, fmt.Errorf("%w: status must be published or draft", ErrValidation)
		}
		post.Status = *in.Status
	}
	if in.ImageURL != nil {
		post.ImageURL = *in.ImageURL
	}
	if in.VideoURL != nil {
		post.VideoURL = *in.VideoURL
	}

	if err := s.db.Save(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post and cascades to all of its comments in one
// transaction.
func (s *PostService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, id).Error; err != nil {
			return fmt.Errorf("%w: post %d", ErrNotFound, id)
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
}
