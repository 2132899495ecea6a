package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"chatcord/internal/middleware"
	"chatcord/internal/service"
)

// ConversationHandler 處理私人對話的請求
type ConversationHandler struct {
	conversationService *service.ConversationService
}

// NewConversationHandler 創建一個新的 ConversationHandler 實例
func NewConversationHandler(conversationService *service.ConversationService) *ConversationHandler {
	return &ConversationHandler{conversationService: conversationService}
}

// Get 處理獲取對話的請求，呼叫者必須是對話的其中一方
func (h *ConversationHandler) Get(c *gin.Context) {
	profile := middleware.CurrentProfile(c)

	conversationID, err := strconv.ParseUint(c.Param("conversationId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的對話ID"})
		return
	}

	conversation, err := h.conversationService.Get(profile, uint(conversationID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, conversation)
}

// GetOrCreate 處理取得或建立與指定成員對話的請求
func (h *ConversationHandler) GetOrCreate(c *gin.Context) {
	profile := middleware.CurrentProfile(c)

	memberID, serverID, ok := memberParams(c)
	if !ok {
		return
	}

	conversation, err := h.conversationService.GetOrCreate(profile, serverID, memberID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, conversation)
}
