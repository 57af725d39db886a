package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"message-system/services"
	"message-system/utils"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// 创建用户
func (ctl *UserController) CreateUser(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required"`
		Name  string `json:"name" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ctl.users.Create(input.Email, input.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, user, nil)
}

// 用户列表（分页）
func (ctl *UserController) ListUsers(c *gin.Context) {
	pageToken := c.Query("page_token")
	pageSize := 0
	if raw := c.Query("page_size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "page_size must be an integer"})
			return
		}
		pageSize = parsed
	}

	users, nextToken, err := ctl.users.List(pageToken, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var meta interface{}
	if nextToken != "" {
		meta = gin.H{"next_page_token": nextToken}
	}
	utils.RespondSuccess(c, users, meta)
}

// 获取用户详情
func (ctl *UserController) GetUser(c *gin.Context) {
	user, err := ctl.users.Get(c.Param("user_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, user, nil)
}
