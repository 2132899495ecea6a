package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"chatcord/internal/middleware"
	"chatcord/internal/service"
)

// DirectMessageHandler 處理私人訊息的編輯與刪除請求
type DirectMessageHandler struct {
	messageService *service.DirectMessageService
}

// NewDirectMessageHandler 創建一個新的 DirectMessageHandler 實例
func NewDirectMessageHandler(messageService *service.DirectMessageService) *DirectMessageHandler {
	return &DirectMessageHandler{messageService: messageService}
}

// UpdateInput 定義編輯訊息請求的結構
type UpdateInput struct {
	Content string `json:"content" binding:"required"`
}

// Update 處理編輯訊息的請求
func (h *DirectMessageHandler) Update(c *gin.Context) {
	profile := middleware.CurrentProfile(c)

	messageID, err := strconv.ParseUint(c.Param("messageId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的訊息ID"})
		return
	}

	conversationID, ok := h.conversationID(c)
	if !ok {
		return
	}

	var input UpdateInput
	// 解析並驗證請求體
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.messageService.Update(profile, conversationID, uint(messageID), input.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, message)
}

// Delete 處理刪除訊息的請求
func (h *DirectMessageHandler) Delete(c *gin.Context) {
	profile := middleware.CurrentProfile(c)

	messageID, err := strconv.ParseUint(c.Param("messageId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的訊息ID"})
		return
	}

	conversationID, ok := h.conversationID(c)
	if !ok {
		return
	}

	message, err := h.messageService.Delete(profile, conversationID, uint(messageID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, message)
}

// conversationID 從查詢參數讀取對話ID
// 缺少或無效時直接回應 400，不進行任何後續查詢
func (h *DirectMessageHandler) conversationID(c *gin.Context) (uint, bool) {
	raw := c.Query("conversationId")
	if raw == "" {
		respondError(c, service.ErrMissingConversation)
		return 0, false
	}

	conversationID, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的對話ID"})
		return 0, false
	}

	return uint(conversationID), true
}
