package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"chatcord/internal/models"
	"chatcord/internal/repository"
)

// InviteService 處理邀請碼的兌換與更換
type InviteService struct {
	serverRepo repository.ServerRepository
	memberRepo repository.MemberRepository
}

func NewInviteService(serverRepo repository.ServerRepository, memberRepo repository.MemberRepository) *InviteService {
	return &InviteService{
		serverRepo: serverRepo,
		memberRepo: memberRepo,
	}
}

// Redeem 兌換邀請碼
// 用戶已是成員時直接回傳該伺服器，否則以一般成員身份加入
func (s *InviteService) Redeem(profile *models.Profile, inviteCode string) (*models.Server, error) {
	if profile == nil {
		return nil, ErrUnauthenticated
	}

	server, err := s.serverRepo.FindByInviteCode(inviteCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServerNotFound
		}
		return nil, err
	}

	// 重複兌換不會產生第二筆成員資格
	if _, err := s.memberRepo.FindByServerAndProfile(server.ID, profile.ID); err == nil {
		return server, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	member := &models.Member{
		ProfileID: profile.ID,
		ServerID:  server.ID,
		Role:      models.RoleGuest,
	}
	if err := s.memberRepo.Create(member); err != nil {
		return nil, err
	}

	return server, nil
}

// RotateInviteCode 更換伺服器的邀請碼，舊邀請碼隨即失效
// 只有該伺服器的管理員可以執行
func (s *InviteService) RotateInviteCode(profile *models.Profile, serverID uint) (*models.Server, error) {
	if profile == nil {
		return nil, ErrUnauthenticated
	}

	caller, err := s.memberRepo.FindByServerAndProfile(serverID, profile.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	if caller.Role != models.RoleAdmin {
		return nil, ErrForbidden
	}

	server, err := s.serverRepo.FindByID(serverID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServerNotFound
		}
		return nil, err
	}

	server.InviteCode = uuid.NewString()
	if err := s.serverRepo.Update(server); err != nil {
		return nil, err
	}

	return server, nil
}
