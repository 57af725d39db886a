package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"message-system/services"
	"message-system/utils"
)

type MessageController struct {
	messages *services.MessageService
}

func NewMessageController(messages *services.MessageService) *MessageController {
	return &MessageController{messages: messages}
}

// 发送消息
func (ctl *MessageController) SendMessage(c *gin.Context) {
	var input struct {
		SenderID     string   `json:"sender_id" binding:"required"`
		RecipientIDs []string `json:"recipient_ids"`
		Subject      string   `json:"subject"`
		Content      string   `json:"content" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := ctl.messages.Send(input.SenderID, input.RecipientIDs, input.Subject, input.Content)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, message, nil)
}

// 获取消息详情
func (ctl *MessageController) GetMessageDetails(c *gin.Context) {
	message, err := ctl.messages.Get(c.Param("message_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, message, nil)
}

// 获取消息的所有收件人及已读状态
func (ctl *MessageController) GetMessageRecipients(c *gin.Context) {
	statuses, err := ctl.messages.Recipients(c.Param("message_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, statuses, nil)
}

// 标记已读
func (ctl *MessageController) MarkMessageAsRead(c *gin.Context) {
	entry, err := ctl.messages.MarkAsRead(c.Param("recipient_entry_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, entry, nil)
}

// 已发送列表
func (ctl *MessageController) GetSentMessages(c *gin.Context) {
	messages, err := ctl.messages.ListSent(c.Param("user_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, messages, nil)
}

// 收件箱（含已读和未读）
func (ctl *MessageController) GetInboxMessages(c *gin.Context) {
	items, err := ctl.messages.Inbox(c.Param("user_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, items, nil)
}

// 未读收件箱
func (ctl *MessageController) GetUnreadInboxMessages(c *gin.Context) {
	items, err := ctl.messages.UnreadInbox(c.Param("user_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, items, nil)
}
