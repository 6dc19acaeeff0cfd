package main

import (
	"log"
	"os"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"driftboard/internal/content"
	"driftboard/internal/db"
	"driftboard/internal/handlers"
	"driftboard/internal/middleware"
	"driftboard/internal/services"
	"driftboard/internal/voting"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	// Initialize Database
	db.Init()

	// Core services
	registry := content.NewDefaultRegistry()
	voteService := voting.NewService(db.DB, registry)
	commentService := services.NewCommentService(db.DB, registry)

	// Initialize Gin
	r := gin.Default()

	// Setup Sessions
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}
	store := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("driftboard_session", store))

	// Middleware
	r.Use(middleware.LoadUser())

	// Handlers
	authHandler := handlers.NewAuthHandler()
	submissionHandler := handlers.NewSubmissionHandler()
	voteHandler := handlers.NewVoteHandler(voteService)
	commentHandler := handlers.NewCommentHandler(commentService)
	userHandler := handlers.NewUserHandler()
	notificationHandler := handlers.NewNotificationHandler()

	// Public Routes
	r.GET("/submissions", submissionHandler.List)
	r.GET("/submissions/:id", submissionHandler.Detail)
	r.GET("/users/:id", userHandler.Profile)

	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.POST("/submit", submissionHandler.Create)
		authorized.POST("/comments", commentHandler.Create)
		authorized.POST("/vote", voteHandler.Vote)
		authorized.GET("/notifications", notificationHandler.List)
		authorized.POST("/notifications/:id/read", notificationHandler.Read)
		authorized.GET("/karma", userHandler.KarmaLogs)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("driftboard server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
