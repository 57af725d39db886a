package main

import (
	"log"

	"message-system/config"
	"message-system/controllers"
	"message-system/models"
	"message-system/routes"
	"message-system/services"
)

func main() {
	// 初始化数据库
	db := config.InitDB()
	// 自动迁移
	if err := models.Migrate(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	userService := services.NewUserService(db)
	messageService := services.NewMessageService(db)

	userController := controllers.NewUserController(userService)
	messageController := controllers.NewMessageController(messageService)

	// 注册路由
	r := routes.RegisterRoutes(userController, messageController)

	// 启动服务
	if err := r.Run(config.ServerAddr()); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
