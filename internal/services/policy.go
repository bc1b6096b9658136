package services

import (
	"github.com/akshitha2508/blogpost/internal/models"
)

// Pure authorization decisions. Callers must treat a false result as
// a hard permission failure, never a silent no-op.

// CanMutatePost allows the owner or any admin to update or delete a
// post.
func CanMutatePost(actor *models.User, post *models.Post) bool {
	return actor != nil && (actor.ID == post.UserID || actor.IsAdmin)
}

// CanEditComment allows only the author. Admins get no override here;
// editing someone else's words is different from removing them.
func CanEditComment(actor *models.User, comment *models.Comment) bool {
	return actor != nil && actor.ID == comment.UserID
}

// CanDeleteComment allows the author or any admin.
func CanDeleteComment(actor *models.User, comment *models.Comment) bool {
	return actor != nil && (actor.ID == comment.UserID || actor.IsAdmin)
}

// CanViewDashboard gates the admin stats page.
func CanViewDashboard(actor *models.User) bool {
	return actor != nil && actor.IsAdmin
}
