package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"blogapi/internal/middleware"
	"blogapi/internal/models"
	"blogapi/internal/repository"
	"blogapi/internal/service"
)

const (
	usernameTakenMessage = "对不起，用户名已经存在！"
	emailTakenMessage    = "对不起，邮箱名已经存在！"
	loginFailedMessage   = "邮箱或密码错误！"
)

type UserHandler interface {
	Hello(c *gin.Context)
	Register(c *gin.Context)
	Login(c *gin.Context)
}

type userHandler struct {
	users  repository.UserRepository
	auth   *service.AuthService
	logger *zap.Logger
}

func NewUserHandler(users repository.UserRepository, auth *service.AuthService, logger *zap.Logger) UserHandler {
	return &userHandler{users: users, auth: auth, logger: logger}
}

// Hello handles GET /. Authentication is optional; the principal is
// only logged, so the extractor can be exercised without touching a
// protected route.
func (h *userHandler) Hello(c *gin.Context) {
	if p, ok := middleware.PrincipalFrom(c); ok {
		h.logger.Debug("Authenticated probe", zap.String("sub", p.Sub))
	}
	c.String(http.StatusOK, "Hello world!")
}

// Register handles POST /register. Username is checked before email;
// the first duplicate short-circuits with its own message. Note the
// historical quirk: a duplicate username answers 400, a duplicate
// email answers 200.
func (h *userHandler) Register(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	taken, err := h.users.FindByUsername(c.Request.Context(), user.Username)
	if err != nil {
		h.logger.Error("Failed to look up username", zap.Error(err))
		c.JSON(http.StatusBadRequest, models.ResponseMessage{Success: 0, Message: err.Error()})
		return
	}
	if taken != nil {
		c.JSON(http.StatusBadRequest, models.ResponseMessage{Success: 0, Message: usernameTakenMessage})
		return
	}

	taken, err = h.users.FindByEmail(c.Request.Context(), user.Email)
	if err != nil {
		h.logger.Error("Failed to look up email", zap.Error(err))
		c.JSON(http.StatusBadRequest, models.ResponseMessage{Success: 0, Message: err.Error()})
		return
	}
	if taken != nil {
		c.JSON(http.StatusOK, models.ResponseMessage{Success: 0, Message: emailTakenMessage})
		return
	}

	hash, err := service.HashPassword(user.Password)
	if err != nil {
		h.logger.Error("Failed to hash password", zap.Error(err))
		c.JSON(http.StatusBadRequest, models.ResponseMessage{Success: 0, Message: err.Error()})
		return
	}
	user.ID = primitive.NewObjectID()
	user.Password = hash
	user.CreatedAt = time.Now()

	result, err := h.users.Insert(c.Request.Context(), &user)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ResponseMessage{Success: 0, Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Login handles POST /login. An unknown email and a wrong password
// produce the same response on purpose.
func (h *userHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		h.logger.Error("Failed to look up user", zap.Error(err))
		c.JSON(http.StatusOK, models.ResponseMessage{Success: 0, Message: loginFailedMessage})
		return
	}
	if user == nil || !service.CheckPassword(req.Password, user.Password) {
		c.JSON(http.StatusOK, models.ResponseMessage{Success: 0, Message: loginFailedMessage})
		return
	}

	token, err := h.auth.GenerateToken(user.ID.Hex())
	if err != nil {
		h.logger.Error("Failed to sign token", zap.Error(err))
		c.JSON(http.StatusOK, models.ResponseMessage{Success: 0, Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.LoginResponse{Success: 1, Token: token})
}
