package router

import (
	"github.com/gin-gonic/gin"

	"reqwise.app/intake/internal/http/handler"
)

func ChatRouter(group *gin.RouterGroup, h *handler.ChatHandler) {
	group.POST("/chat", h.Post)
	group.GET("/chat", h.Get)
}
