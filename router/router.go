package router

import (
	"hungngan-chat-backend/controller"
	"hungngan-chat-backend/middleware"

	"github.com/gin-gonic/gin"
)

func Register() *gin.Engine {
	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	api := r.Group("/api")
	{
		api.POST("/chat", controller.Chat)
		api.POST("/transcribe", controller.Transcribe)

		api.GET("/history", controller.GetHistory)
		api.GET("/history/:id", controller.GetHistoryByID)
	}

	return r
}
