package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"chatcord/internal/middleware"
	"chatcord/internal/models"
	"chatcord/internal/service"
)

// MemberHandler 處理伺服器成員管理的請求
type MemberHandler struct {
	memberService *service.MemberService
}

// NewMemberHandler 創建一個新的 MemberHandler 實例
func NewMemberHandler(memberService *service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// ChangeRoleInput 定義調整角色請求的結構
type ChangeRoleInput struct {
	Role models.MemberRole `json:"role" binding:"required"`
}

// ChangeRole 處理調整成員角色的請求
func (h *MemberHandler) ChangeRole(c *gin.Context) {
	profile := middleware.CurrentProfile(c)

	memberID, serverID, ok := memberParams(c)
	if !ok {
		return
	}

	var input ChangeRoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	server, err := h.memberService.ChangeRole(profile, serverID, memberID, input.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, server)
}

// Kick 處理踢出成員的請求
func (h *MemberHandler) Kick(c *gin.Context) {
	profile := middleware.CurrentProfile(c)

	memberID, serverID, ok := memberParams(c)
	if !ok {
		return
	}

	server, err := h.memberService.Kick(profile, serverID, memberID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, server)
}

// memberParams 讀取成員ID路徑參數與伺服器ID查詢參數
func memberParams(c *gin.Context) (uint, uint, bool) {
	memberID, err := strconv.ParseUint(c.Param("memberId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的成員ID"})
		return 0, 0, false
	}

	serverID, err := strconv.ParseUint(c.Query("serverId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少伺服器ID"})
		return 0, 0, false
	}

	return uint(memberID), uint(serverID), true
}
