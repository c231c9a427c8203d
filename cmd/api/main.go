package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/Jupiter-12/kanban/internal/adapter/db"
	"github.com/Jupiter-12/kanban/internal/adapter/hash"
	httpadapter "github.com/Jupiter-12/kanban/internal/adapter/http"
	"github.com/Jupiter-12/kanban/internal/adapter/http/handlers"
	httpmiddleware "github.com/Jupiter-12/kanban/internal/adapter/http/middleware"
	"github.com/Jupiter-12/kanban/internal/adapter/token"
	"github.com/Jupiter-12/kanban/internal/app/service"
	"github.com/Jupiter-12/kanban/internal/auth"
	"github.com/Jupiter-12/kanban/internal/auth/ratelimit"
	"github.com/Jupiter-12/kanban/internal/config"
	"github.com/Jupiter-12/kanban/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET_KEY must be set")
	}

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()
	if err := dbadapter.Migrate(db); err != nil {
		logger.Fatal("failed to apply schema", zap.Error(err))
	}

	userRepo := dbadapter.NewUserRepository(db)
	projectRepo := dbadapter.NewProjectRepository(db)
	columnRepo := dbadapter.NewColumnRepository(db)
	taskRepo := dbadapter.NewTaskRepository(db)
	commentRepo := dbadapter.NewCommentRepository(db)
	tx := dbadapter.NewTransactor(db)

	tokenTTL := time.Duration(cfg.AccessTokenTTLMinutes) * time.Minute
	limiter := ratelimit.New(cfg.LoginMaxAttempts, cfg.LoginWindowSeconds, cfg.LoginLockoutSeconds)
	blacklist := auth.NewBlacklist(tokenTTL)

	authService := service.NewAuthService(
		userRepo,
		hash.NewBcryptHasher(cfg.BcryptCost),
		token.NewJWTCodec(cfg.JWTSecret),
		limiter,
		blacklist,
		tokenTTL,
	)
	projectService := service.NewProjectService(projectRepo, columnRepo, taskRepo, tx)
	columnService := service.NewColumnService(columnRepo, projectRepo, tx)
	taskService := service.NewTaskService(taskRepo, columnRepo, projectRepo, tx)
	commentService := service.NewCommentService(commentRepo, taskRepo)
	userService := service.NewUserService(userRepo)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}
	if len(cfg.CorsOrigins) > 0 {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = cfg.CorsOrigins
		corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "Accept-Language")
		r.Use(cors.New(corsConfig))
	}

	httpadapter.RegisterRoutes(r, authService, httpadapter.Handlers{
		Health:   handlers.NewHealthHandler(db),
		Auth:     handlers.NewAuthHandler(authService),
		Projects: handlers.NewProjectHandler(projectService),
		Columns:  handlers.NewColumnHandler(columnService),
		Tasks:    handlers.NewTaskHandler(taskService),
		Comments: handlers.NewCommentHandler(commentService),
		Users:    handlers.NewUserHandler(userService),
	})

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
