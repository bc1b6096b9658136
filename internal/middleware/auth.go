package middleware

import (
	"net/http"
	"strings"

	"github.com/akshitha2508/blogpost/internal/models"
	"github.com/akshitha2508/blogpost/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const CurrentUserKey = "current_user"

// RequireAuth validates the bearer token and loads the acting user
// into the request context. Requests without a valid token never
// reach the handler.
func RequireAuth(db *gorm.DB, tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
			return
		}

		userID, err := tokens.Parse(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			return
		}

		c.Set(CurrentUserKey, &user)
		c.Next()
	}
}

// CurrentUser returns the user loaded by RequireAuth, or nil on
// unauthenticated routes.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(CurrentUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
