package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"blogapi/internal/config"
	"blogapi/internal/handler"
	"blogapi/internal/middleware"
	"blogapi/internal/notifier"
	"blogapi/internal/repository"
	"blogapi/internal/service"
)

type Server struct {
	router *gin.Engine
	logger *zap.Logger
}

func NewServer(db *mongo.Database, cfg *config.Config, bot *notifier.Bot, logger *zap.Logger) *Server {
	router := gin.Default()

	// Any origin with credentials; only the headers the admin frontend
	// actually sends.
	router.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowHeaders:     []string{"Authorization", "Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}))

	s := &Server{router: router, logger: logger}
	s.setupRoutes(db, cfg, bot)

	return s
}

func (s *Server) setupRoutes(db *mongo.Database, cfg *config.Config, bot *notifier.Bot) {
	users := repository.NewUserRepository(db, s.logger)
	blogs := repository.NewBlogRepository(db, s.logger)
	auth := service.NewAuthService(cfg.Auth.JWTSecret)

	userHandler := handler.NewUserHandler(users, auth, s.logger)
	blogHandler := handler.NewBlogHandler(blogs, cfg, bot, s.logger)
	authorized := middleware.Auth(auth, s.logger)

	s.router.Static("/static", cfg.Server.StaticDir)

	s.router.GET("/", authorized, userHandler.Hello)
	// s.router.POST("/register", userHandler.Register)
	s.router.POST("/login", userHandler.Login)
	s.router.POST("/blog", authorized, blogHandler.Create)
	s.router.PATCH("/blog", authorized, blogHandler.Update)
	s.router.GET("/blog", blogHandler.GetOne)
	s.router.GET("/blogs", blogHandler.List)
	s.router.POST("/upload", authorized, blogHandler.Upload)
}

func (s *Server) Run(port string) {
	s.logger.Info("Server starting", zap.String("port", port))
	if err := s.router.Run(":" + port); err != nil {
		s.logger.Fatal("Server failed to start", zap.Error(err))
	}
}
