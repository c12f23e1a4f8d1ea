package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"blogapi/internal/config"
	"blogapi/internal/middleware"
	"blogapi/internal/models"
	"blogapi/internal/notifier"
	"blogapi/internal/repository"
)

const (
	authFailedMessage   = "对不起，认证失败！"
	postNotFoundMessage = "本博文已经不存在了！"
)

type BlogHandler interface {
	Create(c *gin.Context)
	Update(c *gin.Context)
	GetOne(c *gin.Context)
	List(c *gin.Context)
	Upload(c *gin.Context)
}

type blogHandler struct {
	blogs    repository.BlogRepository
	cfg      *config.Config
	notifier *notifier.Bot
	logger   *zap.Logger
}

func NewBlogHandler(blogs repository.BlogRepository, cfg *config.Config, bot *notifier.Bot, logger *zap.Logger) BlogHandler {
	return &blogHandler{blogs: blogs, cfg: cfg, notifier: bot, logger: logger}
}

// requireAuth enforces the presence of a principal. The extractor only
// rejects malformed credentials; an absent one is answered here.
func requireAuth(c *gin.Context) bool {
	if _, ok := middleware.PrincipalFrom(c); !ok {
		c.JSON(http.StatusUnauthorized, models.ResponseMessage{Success: 0, Message: authFailedMessage})
		return false
	}
	return true
}

// Create handles POST /blog. Store failures still answer 200 with a
// success-flag payload, matching the API this backend replaces.
func (h *blogHandler) Create(c *gin.Context) {
	if !requireAuth(c) {
		return
	}

	var blog models.Blog
	if err := c.ShouldBindJSON(&blog); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	blog.ID = primitive.NewObjectID()
	blog.CreatedAt = time.Now()

	if err := h.blogs.Insert(c.Request.Context(), &blog); err != nil {
		c.JSON(http.StatusOK, models.ResponseMessage{Success: 0, Message: err.Error()})
		return
	}

	go h.notifier.NotifyNewPost(blog.Title, h.cfg.Server.Host+"/blog?id="+blog.ID.Hex())

	c.JSON(http.StatusOK, models.PostResponse{Success: 1, ID: blog.ID.Hex()})
}

// Update handles PATCH /blog. Only title and content are set; _id and
// created_at stay immutable.
func (h *blogHandler) Update(c *gin.Context) {
	if !requireAuth(c) {
		return
	}

	var blog models.Blog
	if err := c.ShouldBindJSON(&blog); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if blog.ID.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "_id is required"})
		return
	}

	if err := h.blogs.UpdateContent(c.Request.Context(), blog.ID, blog.Title, blog.Content); err != nil {
		c.JSON(http.StatusOK, models.ResponseMessage{Success: 0, Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.PostResponse{Success: 1, ID: blog.ID.Hex()})
}

// GetOne handles GET /blog?id=. Not-found is a 200 with a success-flag
// payload, not a 404.
func (h *blogHandler) GetOne(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Query("id"))
	if err != nil {
		c.JSON(http.StatusOK, models.ResponseMessage{Success: 0, Message: err.Error()})
		return
	}

	blog, err := h.blogs.FindByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusOK, models.ResponseMessage{Success: 0, Message: err.Error()})
		return
	}
	if blog == nil {
		c.JSON(http.StatusOK, models.ResponseMessage{Success: 0, Message: postNotFoundMessage})
		return
	}
	c.JSON(http.StatusOK, blog)
}

// List handles GET /blogs?q=&limit=&page=, newest first.
func (h *blogHandler) List(c *gin.Context) {
	var query models.BlogListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	blogs, err := h.blogs.List(c.Request.Context(), query.Q, query.Limit, query.Page)
	if err != nil {
		c.JSON(http.StatusOK, models.ResponseMessage{Success: 0, Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, blogs)
}
