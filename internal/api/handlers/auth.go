package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"chatcord/internal/models"
	"chatcord/internal/service"
	"chatcord/internal/utils"
)

// AuthHandler 處理與認證相關的請求
type AuthHandler struct {
	profileService *service.ProfileService
}

// NewAuthHandler 創建一個新的 AuthHandler 實例
func NewAuthHandler(profileService *service.ProfileService) *AuthHandler {
	return &AuthHandler{profileService: profileService}
}

// RegisterInput 定義註冊請求的結構
type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	ImageURL string `json:"imageUrl"`
	Password string `json:"password" binding:"required"`
}

// LoginInput 定義登入請求的結構
type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register 處理用戶註冊
func (h *AuthHandler) Register(c *gin.Context) {
	var input RegisterInput
	// 解析並驗證請求體
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 對密碼進行加密
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	profile := models.Profile{
		Name:     input.Name,
		Email:    input.Email,
		ImageURL: input.ImageURL,
		Password: string(hashedPassword),
	}

	// 創建新用戶
	if err := h.profileService.CreateProfile(&profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "創建用戶失敗"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "用戶註冊成功"})
}

// Login 處理用戶登入
func (h *AuthHandler) Login(c *gin.Context) {
	var input LoginInput
	// 解析並驗證請求體
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 檢查用戶是否存在
	profile, err := h.profileService.GetProfileByEmail(input.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	// 驗證密碼
	if err := bcrypt.CompareHashAndPassword([]byte(profile.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	// 生成 JWT token
	token, err := utils.GenerateToken(profile.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "獲取token失敗"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
