package routes

import (
	"message-system/controllers"
	"message-system/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(userController *controllers.UserController, messageController *controllers.MessageController) *gin.Engine {

	r := gin.Default()
	// 配置跨域中间件
	corsConfig := cors.Config{
		AllowOrigins:     []string{"*"},                                                // 允许的域名，可以是前端地址
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}, // 允许的 HTTP 方法
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},          // 允许的请求头
		AllowCredentials: true,                                                         // 是否允许发送 cookies
	}

	// 使用 CORS 中间件
	r.Use(cors.New(corsConfig))
	r.Use(middlewares.RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// 注册路由
	{
		api.POST("/users", userController.CreateUser)
		api.GET("/users", userController.ListUsers)
		api.GET("/users/:user_id", userController.GetUser)
		api.GET("/users/:user_id/sent_messages", messageController.GetSentMessages)
		api.GET("/users/:user_id/inbox", messageController.GetInboxMessages)
		api.GET("/users/:user_id/inbox/unread", messageController.GetUnreadInboxMessages)

		api.POST("/messages", messageController.SendMessage)
		api.GET("/messages/:message_id", messageController.GetMessageDetails)
		api.GET("/messages/:message_id/recipients", messageController.GetMessageRecipients)

		api.PATCH("/recipients/:recipient_entry_id/read", messageController.MarkMessageAsRead)
	}

	return r
}
