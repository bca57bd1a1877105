package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/tnavInter19/twitter-backend/config"
	"github.com/tnavInter19/twitter-backend/controllers"
	"github.com/tnavInter19/twitter-backend/db"
	"github.com/tnavInter19/twitter-backend/forms"
	"github.com/tnavInter19/twitter-backend/kv"
	"github.com/tnavInter19/twitter-backend/middleware"
	"github.com/tnavInter19/twitter-backend/service"
	"github.com/tnavInter19/twitter-backend/storage"
	"github.com/tnavInter19/twitter-backend/token"
)

// CORS (Cross-Origin Resource Sharing)
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "http://localhost")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, PATCH, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "X-Requested-With, Content-Type, Origin, Authorization, Accept, Client-Security-Token, Accept-Encoding")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
		} else {
			c.Next()
		}
	}
}

func SlogMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rlog := logger.With(
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"client_ip", c.ClientIP(),
			"request_id", requestid.Get(c),
		)

		start := time.Now()
		rlog.Debug("request started")
		c.Next()
		duration := time.Since(start)
		rlog.Info("request completed", "status", c.Writer.Status(), "duration", duration)
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var logger *slog.Logger
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	slog.SetDefault(logger)

	ctx := context.Background()

	database, err := db.NewMongoDB(ctx, cfg.Mongo.URI, cfg.Mongo.DB)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	redisKV, err := kv.NewRedis(cfg.Redis.Host, cfg.Redis.Pass, cfg.Redis.DB)
	if err != nil {
		slog.Error("failed to connect to key-value store", "error", err)
		os.Exit(1)
	}

	store, err := storage.NewMinio(ctx, storage.MinioConfig{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		slog.Error("failed to connect to object storage", "error", err)
		os.Exit(1)
	}

	ledger := kv.NewLedger(redisKV)
	tokens := token.NewIssuer(
		cfg.JWT.Secret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.Issuer,
		cfg.JWT.Expires,
		cfg.JWT.RefreshTTL,
	)

	authService := service.NewAuthService(database, ledger, tokens)
	userService := service.NewUserService(database, store, authService)
	postService := service.NewPostService(database, database, database, store)
	queryService := service.NewQueryService(database, database)
	followService := service.NewFollowService(database, database)
	bookmarkService := service.NewBookmarkService(database, database)
	interestService := service.NewInterestService(database, database)
	mutedWordsService := service.NewMutedWordsService(database)
	blockAccountService := service.NewBlockAccountService(database)
	profileService := service.NewProfileService(database, store)

	if err := interestService.Seed(ctx); err != nil {
		slog.Error("failed to seed interests", "error", err)
		os.Exit(1)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	// Custom form validator
	binding.Validator = new(forms.DefaultValidator)

	r.Use(CORSMiddleware())
	r.Use(requestid.New(requestid.WithCustomHeaderStrKey("X-Request-Id")))
	r.Use(SlogMiddleware(logger))
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(middleware.ErrorHandler())

	strictAuth := middleware.RequireAuth(tokens, ledger)
	claimsAuth := middleware.RequireClaims(tokens)

	health := controllers.NewHealthController()
	r.GET("/health", health.Health)

	v1 := r.Group("/api/v1")

	auth := controllers.NewAuthController(authService)
	v1.POST("/auth/register", auth.Register)
	v1.POST("/auth/login", auth.Login)
	v1.DELETE("/auth/logout", strictAuth, auth.Logout)
	v1.POST("/auth/refresh", claimsAuth, auth.Refresh)

	user := controllers.NewUserController(userService)
	v1.POST("/user/setUsername", strictAuth, user.SetUsername)
	v1.DELETE("/user/deleteUser", strictAuth, user.DeleteUser)

	post := controllers.NewPostController(postService)
	v1.POST("/posts", strictAuth, post.CreatePost)
	v1.DELETE("/posts/:postId", strictAuth, post.DeletePost)
	v1.PATCH("/posts/:postId", strictAuth, post.AttachToPost)
	v1.GET("/posts/attachment/:postId", strictAuth, post.GetPostAttachment)
	v1.POST("/react/like/:postId", strictAuth, post.ReactToPost)
	v1.DELETE("/react/unlike/:postId", strictAuth, post.UnreactToPost)

	query := controllers.NewQueryController(queryService)
	v1.GET("/query/posts", strictAuth, query.QueryPosts)
	v1.GET("/query/replies/:postId", strictAuth, query.GetReplies)
	v1.GET("/query/reactions/:userId", strictAuth, query.GetReactions)
	v1.GET("/query/stats/:postId", strictAuth, query.GetPostStats)

	follow := controllers.NewFollowController(followService)
	v1.POST("/follow/:userId", strictAuth, follow.FollowUser)
	v1.DELETE("/follow/unfollow/:userId", strictAuth, follow.UnfollowUser)
	v1.GET("/follow/:userId/following", strictAuth, follow.GetUserFollowing)
	v1.GET("/follow/:userId/followers", strictAuth, follow.GetUserFollowers)

	bookmark := controllers.NewBookmarkController(bookmarkService)
	v1.POST("/bookmarks/setBookmarks", strictAuth, bookmark.SetBookmark)
	v1.GET("/bookmarks/getBookmarks/:userID", strictAuth, bookmark.GetBookmarks)
	v1.GET("/bookmarks/searchBookmarks/:userID/:searchQuery", strictAuth, bookmark.SearchBookmarks)
	v1.DELETE("/bookmarks/deleteBookmarks", strictAuth, bookmark.DeleteBookmark)
	v1.POST("/bookmarks/archiveBookmarkCategory", strictAuth, bookmark.ArchiveBookmarkCategory)
	v1.DELETE("/bookmarks/deleteBookmarkCategory", strictAuth, bookmark.DeleteBookmarkCategory)

	interest := controllers.NewInterestController(interestService)
	v1.GET("/interests/getInterests", strictAuth, interest.GetInterests)
	v1.POST("/interests/setInterests", strictAuth, interest.SetInterests)

	mutedWords := controllers.NewMutedWordsController(mutedWordsService)
	v1.POST("/mutedWords/mutedWords", strictAuth, mutedWords.MuteWord)

	blockAccount := controllers.NewBlockAccountController(blockAccountService)
	v1.POST("/blockAccount/blockAccount", strictAuth, blockAccount.BlockAccount)

	profile := controllers.NewProfileController(profileService)
	v1.GET("/profile", strictAuth, profile.GetProfile)
	v1.POST("/profile", strictAuth, profile.SetProfile)
	v1.GET("/profile/info/:userId", strictAuth, profile.GetUserProfile)
	v1.POST("/profile/photo", strictAuth, profile.SetProfilePhoto)
	v1.GET("/profile/photo", strictAuth, profile.GetProfilePhoto)
	v1.GET("/profile/photo/:userId", strictAuth, profile.GetUserProfilePhoto)
	v1.DELETE("/profile/photo", strictAuth, profile.DeleteProfilePhoto)

	slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)

	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
