package services

import (
	"testing"
	"time"

	"github.com/akshitha2508/blogpost/internal/models"
)

func ptr(v uint) *uint { return &v }

func commentAt(id uint, parentID *uint, minute int) models.Comment {
	return models.Comment{
		ID:        id,
		PostID:    1,
		ParentID:  parentID,
		CreatedAt: time.Date(2025, 6, 1, 12, minute, 0, 0, time.UTC),
	}
}

func TestBuildCommentTreeNesting(t *testing.T) {
	// A <- B <- C, all on the same post
	comments := []models.Comment{
		commentAt(1, nil, 0),
		commentAt(2, ptr(1), 1),
		commentAt(3, ptr(2), 2),
	}

	roots := BuildCommentTree(comments)
	if len(roots) != 1 {
		t.Fatalf("expected 1 root, got %d", len(roots))
	}
	if roots[0].ID != 1 {
		t.Errorf("root id = %d, want 1", roots[0].ID)
	}
	if len(roots[0].Replies) != 1 || roots[0].Replies[0].ID != 2 {
		t.Fatalf("expected reply chain A->B, got %+v", roots[0].Replies)
	}
	if len(roots[0].Replies[0].Replies) != 1 || roots[0].Replies[0].Replies[0].ID != 3 {
		t.Fatalf("expected reply chain B->C, got %+v", roots[0].Replies[0].Replies)
	}
}

func TestBuildCommentTreeOrdering(t *testing.T) {
	// Two threads; top-level comments come back newest first while
	// replies keep creation order (oldest first).
	comments := []models.Comment{
		commentAt(1, nil, 0),
		commentAt(2, ptr(1), 1),
		commentAt(3, ptr(1), 2),
		commentAt(4, nil, 3),
	}

	roots := BuildCommentTree(comments)
	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(roots))
	}
	if roots[0].ID != 4 || roots[1].ID != 1 {
		t.Errorf("top-level order = [%d %d], want [4 1]", roots[0].ID, roots[1].ID)
	}
	replies := roots[1].Replies
	if len(replies) != 2 || replies[0].ID != 2 || replies[1].ID != 3 {
		t.Errorf("reply order = %+v, want ids [2 3]", replies)
	}
}

func TestBuildCommentTreeTieBreaksOnID(t *testing.T) {
	same := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	comments := []models.Comment{
		{ID: 1, PostID: 1, CreatedAt: same},
		{ID: 2, PostID: 1, CreatedAt: same},
	}

	roots := BuildCommentTree(comments)
	if len(roots) != 2 || roots[0].ID != 2 || roots[1].ID != 1 {
		t.Errorf("expected id-descending tie break, got %+v", roots)
	}
}

func TestBuildCommentTreeNoDuplication(t *testing.T) {
	comments := []models.Comment{
		commentAt(1, nil, 0),
		commentAt(2, ptr(1), 1),
		commentAt(3, ptr(1), 2),
		commentAt(4, ptr(3), 3),
		commentAt(5, nil, 4),
	}

	roots := BuildCommentTree(comments)
	seen := map[uint]int{}
	var walk func(nodes []*CommentNode)
	walk = func(nodes []*CommentNode) {
		for _, n := range nodes {
			seen[n.ID]++
			walk(n.Replies)
		}
	}
	walk(roots)

	if len(seen) != len(comments) {
		t.Errorf("tree holds %d distinct comments, want %d", len(seen), len(comments))
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("comment %d appears %d times", id, count)
		}
	}
}

func TestBuildCommentTreeBreaksCycles(t *testing.T) {
	// Corrupt rows: 2 and 3 parent each other, 4 points at itself.
	// The builder must terminate and keep the valid comment.
	comments := []models.Comment{
		commentAt(1, nil, 0),
		commentAt(2, ptr(3), 1),
		commentAt(3, ptr(2), 2),
		commentAt(4, ptr(4), 3),
	}

	done := make(chan []*CommentNode, 1)
	go func() { done <- BuildCommentTree(comments) }()

	select {
	case roots := <-done:
		if len(roots) != 1 || roots[0].ID != 1 {
			t.Errorf("expected the single valid root to survive, got %+v", roots)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("BuildCommentTree did not terminate on cyclic input")
	}
}

func TestBuildCommentTreeDropsOrphans(t *testing.T) {
	comments := []models.Comment{
		commentAt(1, nil, 0),
		commentAt(2, ptr(99), 1), // parent was never loaded
	}

	roots := BuildCommentTree(comments)
	if len(roots) != 1 || roots[0].ID != 1 {
		t.Errorf("expected orphan to be dropped, got %+v", roots)
	}
	if len(roots[0].Replies) != 0 {
		t.Errorf("orphan must not attach anywhere, got %+v", roots[0].Replies)
	}
}
