package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"chatcord/internal/models"
	"chatcord/internal/service"
	"chatcord/internal/utils"
)

const profileKey = "profile"

// AuthMiddleware 是身份解析中間件，用於驗證請求的 JWT token
// 驗證通過後將完整的用戶資料放入上下文，供 handler 以 CurrentProfile 取用
func AuthMiddleware(profileService *service.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 從請求頭中獲取 Authorization 字段
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// 檢查 Authorization 頭的格式
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			c.Abort()
			return
		}

		// 解析 JWT token
		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		// 載入用戶資料，token 有效但用戶不存在時一樣視為未驗證
		profile, err := profileService.GetProfileByID(claims.ProfileID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(profileKey, profile)
		c.Next()
	}
}

// CurrentProfile 從上下文取得已驗證的用戶，回傳 nil 表示未驗證
func CurrentProfile(c *gin.Context) *models.Profile {
	value, exists := c.Get(profileKey)
	if !exists {
		return nil
	}
	profile, ok := value.(*models.Profile)
	if !ok {
		return nil
	}
	return profile
}
