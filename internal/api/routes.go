package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chatcord/internal/api/handlers"
	"chatcord/internal/middleware"
	"chatcord/internal/service"
)

func SetupRoutes(r *gin.Engine, services *service.Services) {
	// 初始化 handlers
	authHandler := handlers.NewAuthHandler(services.Profile)
	serverHandler := handlers.NewServerHandler(services.Server, services.Invite)
	memberHandler := handlers.NewMemberHandler(services.Member)
	conversationHandler := handlers.NewConversationHandler(services.Conversation)
	messageHandler := handlers.NewDirectMessageHandler(services.DirectMessage)
	wsHandler := handlers.NewWebSocketHandler(services.WebSocketManager, services.Conversation)

	// 不支援的方法回應 405 而不是 404
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"error": "不支援的操作",
		})
	})

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "找不到該路徑",
		})
	})

	// API 路由群組
	api := r.Group("/api")

	// 公開路由
	{
		// 用戶認證相關
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		// 基本的健康檢查
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
			})
		})
	}

	// 需要驗證的路由
	authorized := api.Group("/")
	authorized.Use(middleware.AuthMiddleware(services.Profile))
	{
		// 伺服器相關
		servers := authorized.Group("/servers")
		{
			servers.GET("/:serverId", serverHandler.GetOverview)                    // 伺服器總覽
			servers.PATCH("/:serverId/invite-code", serverHandler.RotateInviteCode) // 更換邀請碼
		}

		// 邀請碼兌換
		authorized.POST("/invite/:inviteCode", serverHandler.RedeemInvite)

		// 成員管理
		members := authorized.Group("/members")
		{
			members.PATCH("/:memberId", memberHandler.ChangeRole)                   // 調整角色
			members.DELETE("/:memberId", memberHandler.Kick)                        // 踢出成員
			members.GET("/:memberId/conversation", conversationHandler.GetOrCreate) // 取得或建立對話
		}

		// 對話與訊息
		conversations := authorized.Group("/conversations")
		{
			conversations.GET("/:conversationId", conversationHandler.Get)
			conversations.GET("/:conversationId/ws", wsHandler.HandleConversationSocket) // WebSocket 訂閱
		}

		// 訊息變更（編輯、刪除）
		messages := authorized.Group("/direct-messages")
		{
			messages.PATCH("/:messageId", messageHandler.Update)
			messages.DELETE("/:messageId", messageHandler.Delete)
		}
	}
}
