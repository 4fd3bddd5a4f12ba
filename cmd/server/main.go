package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/viewtube/backend/config"
	"github.com/viewtube/backend/internal/auth"
	"github.com/viewtube/backend/internal/cache"
	"github.com/viewtube/backend/internal/database"
	"github.com/viewtube/backend/internal/handlers"
	"github.com/viewtube/backend/internal/middleware"
	"github.com/viewtube/backend/internal/repository"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	db, err := database.NewPostgresDB(cfg.GetDSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run migrations
	log.Println("Running database migrations...")
	if err := database.RunMigrations(db.DB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	// Connect to Redis
	redis, err := cache.NewRedisClient(cfg.GetRedisAddr(), cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v", err)
		log.Println("Running without Redis - video listing will not be cached")
		redis = nil
	} else {
		defer redis.Close()
	}

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	channelRepo := repository.NewChannelRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userRepo, jwtService)
	videoHandler := handlers.NewVideoHandler(videoRepo, userRepo, channelRepo, redis)
	commentHandler := handlers.NewCommentHandler(commentRepo)
	channelHandler := handlers.NewChannelHandler(channelRepo, userRepo)

	// Setup Gin router
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware
	router.Use(middleware.CORSMiddleware(cfg.CORS.FrontendOrigin))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Auth
	router.POST("/signup", authHandler.Signup)
	router.POST("/login", authHandler.ValidateLogin, authHandler.Login)
	router.GET("/getUser", authHandler.GetUser)

	// Videos
	router.GET("/videos", middleware.Authenticate(jwtService), videoHandler.ListVideos)
	router.POST("/videos", middleware.RequireToken(jwtService), videoHandler.UploadVideo)
	router.GET("/videos/by-user/:userId", videoHandler.GetVideosByUser)
	router.DELETE("/videos/:videoId", middleware.RequireToken(jwtService), videoHandler.DeleteVideo)
	router.PUT("/like/:videoId", middleware.RequireToken(jwtService), videoHandler.Like)
	router.PUT("/dislike/:videoId", middleware.RequireToken(jwtService), videoHandler.Dislike)

	// Comments
	router.GET("/comment/:id", commentHandler.FetchComments)
	router.GET("/singlecomment/:id", commentHandler.FetchComment)
	router.POST("/comment", commentHandler.AddComment)
	router.PUT("/comment/:id", commentHandler.UpdateComment)
	router.DELETE("/comment/:id", commentHandler.DeleteComment)

	// Channels
	router.POST("/createChannel", middleware.RequireToken(jwtService), channelHandler.CreateChannel)
	router.GET("/checkUserChannel/:userId", channelHandler.CheckUserChannel)

	// Start server
	addr := ":" + cfg.Server.Port
	log.Printf("Starting viewtube server on %s (env: %s)", addr, cfg.Server.Env)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
