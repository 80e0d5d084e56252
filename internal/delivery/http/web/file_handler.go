package web

import (
	"net/http"
	"strconv"

	"go-dreamjob/internal/domain"
	"go-dreamjob/pkg/apperror"
	"go-dreamjob/pkg/logger"

	"github.com/gin-gonic/gin"
)

type FileHandler struct {
	fileUC domain.FileUsecase
}

func NewFileHandler(r *gin.Engine, fileUC domain.FileUsecase) {
	handler := &FileHandler{fileUC: fileUC}
	r.GET("/files/:id", handler.GetByID)
}

// GetByID serves the raw stored bytes: 200 with the content, or 404 with
// an empty body when the id is unknown.
func (h *FileHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	file, err := h.fileUC.GetFileByID(c.Request.Context(), id)
	if err != nil {
		if apperror.IsNotFound(err) {
			c.Status(http.StatusNotFound)
			return
		}
		logger.Log.Error("serve file failed", "id", id, "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Data(http.StatusOK, "application/octet-stream", file.Content)
}
