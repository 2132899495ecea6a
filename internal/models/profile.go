package models

import (
	"gorm.io/gorm"
)

// Profile 表示系統中的用戶身份
type Profile struct {
	gorm.Model        // 內嵌 gorm.Model，提供 ID、CreatedAt、UpdatedAt 和 DeletedAt 字段
	Name       string `gorm:"not null" json:"name"`
	Email      string `gorm:"uniqueIndex;not null" json:"email"` // 電子郵件，必須唯一
	ImageURL   string `json:"imageUrl"`
	Password   string `gorm:"not null" json:"-"` // 密碼，json 序列化時會被忽略
}
