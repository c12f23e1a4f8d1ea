package handler

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"blogapi/internal/models"
)

const (
	onlyImagesMessage   = "仅能上传图片"
	uploadFailedMessage = "上传失败，请重试！"
)

// Upload handles POST /upload. The first multipart part is streamed to
// a randomly named file in the static directory, so the payload is
// never fully buffered in memory and two uploads can never contend for
// the same destination.
func (h *blogHandler) Upload(c *gin.Context) {
	if !requireAuth(c) {
		return
	}

	reader, err := c.Request.MultipartReader()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ResponseMessage{Success: 0, Message: uploadFailedMessage})
		return
	}
	part, err := reader.NextPart()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ResponseMessage{Success: 0, Message: uploadFailedMessage})
		return
	}
	defer part.Close()

	contentType := strings.ToLower(part.Header.Get("Content-Type"))
	if !strings.HasPrefix(contentType, "image") {
		c.JSON(http.StatusOK, models.ResponseMessage{Success: 0, Message: onlyImagesMessage})
		return
	}

	ext := strings.TrimPrefix(filepath.Ext(part.FileName()), ".")
	filename := uuid.NewString() + "." + ext

	dst, err := os.Create(filepath.Join(h.cfg.Server.StaticDir, filename))
	if err != nil {
		h.logger.Error("Failed to create upload file", zap.Error(err))
		c.JSON(http.StatusOK, models.ResponseMessage{Success: 0, Message: err.Error()})
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, part); err != nil {
		h.logger.Error("Failed to write upload", zap.Error(err))
		c.JSON(http.StatusOK, models.ResponseMessage{Success: 0, Message: err.Error()})
		return
	}

	url := h.cfg.Server.Host + "/static/" + filename
	c.JSON(http.StatusOK, models.UploadResponse{
		Errno: 0,
		Data:  models.ImageData{URL: url, Href: url},
	})
}
