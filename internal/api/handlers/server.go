package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"chatcord/internal/middleware"
	"chatcord/internal/service"
)

// ServerHandler 處理伺服器相關的請求
type ServerHandler struct {
	serverService *service.ServerService
	inviteService *service.InviteService
}

// NewServerHandler 創建一個新的 ServerHandler 實例
func NewServerHandler(serverService *service.ServerService, inviteService *service.InviteService) *ServerHandler {
	return &ServerHandler{
		serverService: serverService,
		inviteService: inviteService,
	}
}

// GetOverview 處理獲取伺服器總覽的請求（頻道分組、成員列表、自己的角色）
func (h *ServerHandler) GetOverview(c *gin.Context) {
	profile := middleware.CurrentProfile(c)

	serverID, err := strconv.ParseUint(c.Param("serverId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的伺服器ID"})
		return
	}

	overview, err := h.serverService.GetOverview(profile, uint(serverID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

// RotateInviteCode 處理更換伺服器邀請碼的請求
func (h *ServerHandler) RotateInviteCode(c *gin.Context) {
	profile := middleware.CurrentProfile(c)

	serverID, err := strconv.ParseUint(c.Param("serverId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的伺服器ID"})
		return
	}

	server, err := h.inviteService.RotateInviteCode(profile, uint(serverID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, server)
}

// RedeemInvite 處理兌換邀請碼的請求
func (h *ServerHandler) RedeemInvite(c *gin.Context) {
	profile := middleware.CurrentProfile(c)

	inviteCode := c.Param("inviteCode")
	if inviteCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少邀請碼"})
		return
	}

	server, err := h.inviteService.Redeem(profile, inviteCode)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, server)
}
