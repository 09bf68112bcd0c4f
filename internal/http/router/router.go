package router

import (
	"github.com/gin-gonic/gin"

	"reqwise.app/intake/internal/http/handler"
	"reqwise.app/intake/internal/service"
)

type RouterConfig struct {
	IsProduction bool
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		chatHandler := handler.NewChatHandler(services.Chat)
		ChatRouter(api, chatHandler)

		summaryHandler := handler.NewSummaryHandler(services.Summary)
		api.POST("/generate-summary", summaryHandler.Generate)

		reportHandler := handler.NewReportHandler(services.Report)
		api.POST("/generate-report", reportHandler.Generate)
	}
}
