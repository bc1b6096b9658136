package router

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/akshitha2508/blogpost/internal/handlers"
	"github.com/akshitha2508/blogpost/internal/middleware"
	"github.com/akshitha2508/blogpost/internal/services"
	"github.com/akshitha2508/blogpost/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func corsOrigins() []string {
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		origins := []string{}
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
		return origins
	}
	return []string{"http://localhost:5173", "http://127.0.0.1:5173"}
}

// RegisterRoutes wires the API surface onto the engine.
func RegisterRoutes(r *gin.Engine, gdb *gorm.DB) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Services
	tokens := services.NewTokenService()
	uploads := services.NewUploadService()
	users := services.NewUserService(gdb)
	posts := services.NewPostService(gdb)
	comments := services.NewCommentService(gdb)
	stats := services.NewStatsService(gdb)
	cache := utils.NewCache(256)

	// Handlers
	authHandler := handlers.NewAuthHandler(users, tokens)
	postHandler := handlers.NewPostHandler(posts, uploads, cache)
	commentHandler := handlers.NewCommentHandler(comments)
	userHandler := handlers.NewUserHandler(users, posts, uploads)
	dashboardHandler := handlers.NewDashboardHandler(stats)

	api := r.Group("/api")

	// Public Routes
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/posts", postHandler.List)
	api.GET("/posts/:id", postHandler.Detail)
	api.GET("/categories", postHandler.Categories)
	api.GET("/posts/:id/comments", commentHandler.List)
	api.GET("/users/:id", userHandler.Profile)

	// Protected Routes
	authorized := api.Group("/")
	authorized.Use(middleware.RequireAuth(gdb, tokens))
	{
		authorized.POST("/posts", postHandler.Create)
		authorized.PUT("/posts/:id", postHandler.Update)
		authorized.DELETE("/posts/:id", postHandler.Delete)

		authorized.POST("/posts/:id/comments", commentHandler.Create)
		authorized.PUT("/comments/:id", commentHandler.Update)
		authorized.DELETE("/comments/:id", commentHandler.Delete)

		authorized.PUT("/users/profile", userHandler.UpdateProfile)
		authorized.GET("/dashboard/stats", dashboardHandler.Stats)
	}
}
