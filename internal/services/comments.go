package services

import (
	"fmt"
	"sort"

	"github.com/akshitha2508/blogpost/internal/models"

	"gorm.io/gorm"
)

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// CommentNode is one comment with its reply subtree attached.
type CommentNode struct {
	models.Comment
	Replies []*CommentNode
}

// Create adds a comment to a post, optionally as a reply. A reply's
// parent must exist and belong to the same post; anything else is an
// invalid reference.
func (s *CommentService) Create(authorID, postID uint, content string, parentID *uint) (*models.Comment, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}

	var author models.User
	if err := s.db.First(&author, authorID).Error; err != nil {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, authorID)
	}
	var post models.Post
	if err := s.db.First(&post, postID).Error; err != nil {
		return nil, fmt.Errorf("%w: post %d", ErrNotFound, postID)
	}

	if parentID != nil {
		var parent models.Comment
		if err := s.db.First(&parent, *parentID).Error; err != nil {
			return nil, fmt.Errorf("%w: parent comment %d does not exist", ErrInvalidReference, *parentID)
		}
		if parent.PostID != postID {
			return nil, fmt.Errorf("%w: parent comment belongs to a different post", ErrInvalidReference)
		}
	}

	comment := &models.Comment{
		Content:  content,
		UserID:   authorID,
		PostID:   postID,
		ParentID: parentID,
	}
	if err := s.db.Create(comment).Error; err != nil {
		return nil, err
	}
	comment.User = author
	return comment, nil
}

func (s *CommentService) Get(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.Preload("User").First(&comment, id).Error; err != nil {
		return nil, fmt.Errorf("%w: comment %d", ErrNotFound, id)
	}
	return &comment, nil
}

// Update replaces the comment content. Only the content is mutable.
func (s *CommentService) Update(id uint, content string) (*models.Comment, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}
	comment, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(comment).Update("content", content).Error; err != nil {
		return nil, err
	}
	comment.Content = content
	return comment, nil
}

// Delete removes a comment and its whole reply subtree in one
// transaction. The descendant walk is breadth-first over parent ids
// and keeps a seen set, so corrupt parent chains cannot loop it.
func (s *CommentService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var root models.Comment
		if err := tx.First(&root, id).Error; err != nil {
			return fmt.Errorf("%w: comment %d", ErrNotFound, id)
		}

		seen := map[uint]bool{id: true}
		ids := []uint{id}
		frontier := []uint{id}
		for len(frontier) > 0 {
			children := []uint{}
			if err := tx.Model(&models.Comment{}).Where("parent_id IN ?", frontier).Pluck("id", &children).Error; err != nil {
				return err
			}
			frontier = frontier[:0]
			for _, child := range children {
				if seen[child] {
					continue
				}
				seen[child] = true
				ids = append(ids, child)
				frontier = append(frontier, child)
			}
		}

		return tx.Delete(&models.Comment{}, ids).Error
	})
}

// ListForPost returns the post's comment threads: top-level comments
// newest first, each with its nested replies.
func (s *CommentService) ListForPost(postID uint) ([]*CommentNode, error) {
	comments := []models.Comment{}
	err := s.db.Preload("User").
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return BuildCommentTree(comments), nil
}

// LoadSubtrees fetches the reply subtree under each of the given
// comments and returns one node per input comment, in input order.
// Unlike BuildCommentTree the inputs need not be top-level; each
// subtree is materialized independently, so a comment may appear both
// on its own and nested under another input comment.
func LoadSubtrees(db *gorm.DB, roots []models.Comment) ([]*CommentNode, error) {
	nodes := make([]*CommentNode, 0, len(roots))
	for i := range roots {
		node := &CommentNode{Comment: roots[i], Replies: []*CommentNode{}}
		if err := loadReplies(db, node); err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// loadReplies attaches the full descendant tree below root, breadth
// first. The seen set keeps corrupt parent chains from looping it.
func loadReplies(db *gorm.DB, root *CommentNode) error {
	index := map[uint]*CommentNode{root.ID: root}
	frontier := []uint{root.ID}
	for len(frontier) > 0 {
		children := []models.Comment{}
		err := db.Preload("User").
			Where("parent_id IN ?", frontier).
			Order("created_at ASC, id ASC").
			Find(&children).Error
		if err != nil {
			return err
		}
		frontier = frontier[:0]
		for i := range children {
			child := children[i]
			if _, ok := index[child.ID]; ok {
				continue
			}
			node := &CommentNode{Comment: child, Replies: []*CommentNode{}}
			index[child.ID] = node
			index[*child.ParentID].Replies = append(index[*child.ParentID].Replies, node)
			frontier = append(frontier, child.ID)
		}
	}
	return nil
}

// BuildCommentTree projects flat comment rows into nested threads.
// Input order is preserved for replies, so feeding rows in creation
// order gives oldest-first replies; top-level comments are re-sorted
// newest first. Rows whose parent is missing, or that sit on a parent
// cycle never reachable from a top-level comment, are dropped rather
// than recursed into.
func BuildCommentTree(comments []models.Comment) []*CommentNode {
	nodes := make(map[uint]*CommentNode, len(comments))
	for i := range comments {
		nodes[comments[i].ID] = &CommentNode{Comment: comments[i], Replies: []*CommentNode{}}
	}

	roots := []*CommentNode{}
	for i := range comments {
		node := nodes[comments[i].ID]
		if node.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*node.ParentID]
		if !ok || *node.ParentID == node.ID {
			continue
		}
		parent.Replies = append(parent.Replies, node)
	}

	sort.SliceStable(roots, func(i, j int) bool {
		if roots[i].CreatedAt.Equal(roots[j].CreatedAt) {
			return roots[i].ID > roots[j].ID
		}
		return roots[i].CreatedAt.After(roots[j].CreatedAt)
	})
	return roots
}
