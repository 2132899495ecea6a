package models

import (
	"gorm.io/gorm"
)

// Server 表示一個社群伺服器
type Server struct {
	gorm.Model
	Name           string    `gorm:"not null" json:"name"`
	ImageURL       string    `json:"imageUrl"`
	InviteCode     string    `gorm:"uniqueIndex;not null" json:"invite_code"` // 邀請碼，必須唯一
	OwnerProfileID uint      `json:"owner_profile_id"`
	Channels       []Channel `gorm:"foreignKey:ServerID" json:"channels"`
	Members        []Member  `gorm:"foreignKey:ServerID" json:"members"`
}

// Channel 表示伺服器中的一個頻道
type Channel struct {
	gorm.Model
	ServerID uint        `gorm:"index" json:"server_id"`
	Name     string      `gorm:"not null" json:"name"`
	Type     ChannelType `gorm:"type:varchar(20);not null" json:"type"`
}

// ChannelType 定義頻道類型
type ChannelType string

const (
	ChannelText  ChannelType = "TEXT"
	ChannelAudio ChannelType = "AUDIO"
	ChannelVideo ChannelType = "VIDEO"
)
