package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"chatcord/internal/middleware"
	"chatcord/internal/service"
)

// 定義 WebSocket 升級器
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // 注意：在生產環境中，應該檢查 origin
	},
}

// WebSocketHandler 處理對話即時推播的訂閱連接
type WebSocketHandler struct {
	wsManager           *service.WebSocketManager
	conversationService *service.ConversationService
}

// NewWebSocketHandler 創建一個新的 WebSocketHandler 實例
func NewWebSocketHandler(wsManager *service.WebSocketManager, conversationService *service.ConversationService) *WebSocketHandler {
	return &WebSocketHandler{
		wsManager:           wsManager,
		conversationService: conversationService,
	}
}

// HandleConversationSocket 處理對話的 WebSocket 訂閱請求
// 先確認呼叫者是對話成員才升級連接，非成員得到對話不存在
func (h *WebSocketHandler) HandleConversationSocket(c *gin.Context) {
	profile := middleware.CurrentProfile(c)

	conversationID, err := strconv.ParseUint(c.Param("conversationId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的對話ID"})
		return
	}

	// 成員資格檢查必須在升級連接之前完成
	if _, err := h.conversationService.Get(profile, uint(conversationID)); err != nil {
		respondError(c, err)
		return
	}

	// 升級 HTTP 連接為 WebSocket 連接
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "升級WebSocket失敗"})
		return
	}

	// 訂閱該對話的變更主題，編輯與刪除事件都走同一個主題
	h.wsManager.HandleSubscriber(conn, service.ConversationTopic(uint(conversationID)), profile.ID)
}
