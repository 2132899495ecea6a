package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"chatcord/internal/service"
)

// respondError 將 service 層的預期錯誤轉換為對應的 HTTP 狀態碼
// 未預期的錯誤記錄後一律回傳 500，不向呼叫端洩漏內部細節
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrEditNotOwner):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrMissingConversation),
		errors.Is(err, service.ErrEmptyContent),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrSelfAction):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrConversationNotFound),
		errors.Is(err, service.ErrMemberNotFound),
		errors.Is(err, service.ErrMessageNotFound),
		errors.Is(err, service.ErrServerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Printf("unexpected handler error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Error"})
	}
}
