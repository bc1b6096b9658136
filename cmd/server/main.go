package main

import (
	"log"
	"os"

	"github.com/akshitha2508/blogpost/internal/db"
	"github.com/akshitha2508/blogpost/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading env vars from system")
	}

	// Initialize Database
	gdb := db.Init()

	// Initialize Gin
	r := gin.Default()
	r.MaxMultipartMemory = 16 << 20 // 16MB upload cap

	// Uploaded media is served straight from disk
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	r.Static("/uploads", uploadDir)

	router.RegisterRoutes(r, gdb)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	log.Printf("blogpost server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
