package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type IndexHandler struct{}

func NewIndexHandler(r *gin.Engine) {
	handler := &IndexHandler{}
	r.GET("/", handler.GetIndex)
}

func (h *IndexHandler) GetIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index", withUser(c, gin.H{}))
}
