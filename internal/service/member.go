package service

import (
	"errors"
	"sort"

	"gorm.io/gorm"

	"chatcord/internal/models"
	"chatcord/internal/repository"
)

// MemberService 處理伺服器成員的管理操作（調整角色、踢出成員）
// 這些操作只有該伺服器的管理員可以執行，且不能對自己執行
type MemberService struct {
	memberRepo repository.MemberRepository
	serverRepo repository.ServerRepository
}

func NewMemberService(memberRepo repository.MemberRepository, serverRepo repository.ServerRepository) *MemberService {
	return &MemberService{
		memberRepo: memberRepo,
		serverRepo: serverRepo,
	}
}

// ChangeRole 調整指定成員的角色，回傳更新後的伺服器（含成員列表）
func (s *MemberService) ChangeRole(profile *models.Profile, serverID, memberID uint, role models.MemberRole) (*models.Server, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	target, err := s.authorizeAdmin(profile, serverID, memberID)
	if err != nil {
		return nil, err
	}

	target.Role = role
	if err := s.memberRepo.Update(target); err != nil {
		return nil, err
	}

	return s.serverWithMembers(serverID)
}

// Kick 將成員踢出伺服器，回傳更新後的伺服器（含成員列表）
func (s *MemberService) Kick(profile *models.Profile, serverID, memberID uint) (*models.Server, error) {
	target, err := s.authorizeAdmin(profile, serverID, memberID)
	if err != nil {
		return nil, err
	}

	if err := s.memberRepo.Delete(target.ID); err != nil {
		return nil, err
	}

	return s.serverWithMembers(serverID)
}

// authorizeAdmin 確認操作者是該伺服器的管理員，並取得操作目標成員
// 目標必須屬於同一個伺服器，且不能是操作者自己
func (s *MemberService) authorizeAdmin(profile *models.Profile, serverID, memberID uint) (*models.Member, error) {
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

	target, err := s.memberRepo.FindByID(memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	if target.ServerID != serverID {
		return nil, ErrMemberNotFound
	}
	if target.ProfileID == profile.ID {
		return nil, ErrSelfAction
	}

	return target, nil
}

func (s *MemberService) serverWithMembers(serverID uint) (*models.Server, error) {
	server, err := s.serverRepo.FindByIDWithDetails(serverID)
	if err != nil {
		return nil, err
	}
	SortMembersByRole(server.Members)
	return server, nil
}

// roleRank 定義角色的排序權重，管理員在最前面
var roleRank = map[models.MemberRole]int{
	models.RoleAdmin:     0,
	models.RoleModerator: 1,
	models.RoleGuest:     2,
}

// SortMembersByRole 將成員按角色權重排序（管理員、版主、一般成員）
func SortMembersByRole(members []models.Member) {
	sort.SliceStable(members, func(i, j int) bool {
		return roleRank[members[i].Role] < roleRank[members[j].Role]
	})
}
