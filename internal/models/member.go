package models

import (
	"gorm.io/gorm"
)

// Member 表示用戶在某個伺服器中的成員資格
type Member struct {
	gorm.Model
	ProfileID uint       `gorm:"index" json:"profile_id"`
	ServerID  uint       `gorm:"index" json:"server_id"`
	Role      MemberRole `gorm:"type:varchar(20);not null" json:"role"`
	Profile   Profile    `json:"profile"`
}

// MemberRole 定義成員角色的類型
type MemberRole string

const (
	RoleGuest     MemberRole = "GUEST"     // 一般成員
	RoleModerator MemberRole = "MODERATOR" // 版主，可刪除他人訊息
	RoleAdmin     MemberRole = "ADMIN"     // 管理員，擁有所有權限
)

// Valid 檢查角色是否為已定義的值
func (r MemberRole) Valid() bool {
	switch r {
	case RoleGuest, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// Elevated 回報該角色是否具有管理權限（版主或管理員）
func (r MemberRole) Elevated() bool {
	return r == RoleModerator || r == RoleAdmin
}
