package service

import (
	"errors"

	"gorm.io/gorm"

	"chatcord/internal/models"
	"chatcord/internal/repository"
)

// ServerOverview 是伺服器側邊欄需要的完整資料：
// 按類型分組的頻道、排序後的成員列表、以及查詢者自己的角色
type ServerOverview struct {
	Server        *models.Server    `json:"server"`
	TextChannels  []models.Channel  `json:"text_channels"`
	AudioChannels []models.Channel  `json:"audio_channels"`
	VideoChannels []models.Channel  `json:"video_channels"`
	Role          models.MemberRole `json:"role"`
}

type ServerService struct {
	serverRepo repository.ServerRepository
	memberRepo repository.MemberRepository
}

func NewServerService(serverRepo repository.ServerRepository, memberRepo repository.MemberRepository) *ServerService {
	return &ServerService{
		serverRepo: serverRepo,
		memberRepo: memberRepo,
	}
}

// GetOverview 取得伺服器總覽，查詢者必須是該伺服器的成員
// 非成員得到伺服器不存在，與對話查詢的行為一致
func (s *ServerService) GetOverview(profile *models.Profile, serverID uint) (*ServerOverview, error) {
	if profile == nil {
		return nil, ErrUnauthenticated
	}

	caller, err := s.memberRepo.FindByServerAndProfile(serverID, profile.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServerNotFound
		}
		return nil, err
	}

	server, err := s.serverRepo.FindByIDWithDetails(serverID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServerNotFound
		}
		return nil, err
	}

	SortMembersByRole(server.Members)

	overview := &ServerOverview{
		Server: server,
		Role:   caller.Role,
	}
	for _, channel := range server.Channels {
		switch channel.Type {
		case models.ChannelText:
			overview.TextChannels = append(overview.TextChannels, channel)
		case models.ChannelAudio:
			overview.AudioChannels = append(overview.AudioChannels, channel)
		case models.ChannelVideo:
			overview.VideoChannels = append(overview.VideoChannels, channel)
		}
	}

	return overview, nil
}
