package service

import (
	"errors"

	"gorm.io/gorm"

	"chatcord/internal/models"
	"chatcord/internal/repository"
)

// ConversationService 負責建立與查詢兩個成員之間的私人對話
type ConversationService struct {
	conversationRepo repository.ConversationRepository
	memberRepo       repository.MemberRepository
}

func NewConversationService(conversationRepo repository.ConversationRepository, memberRepo repository.MemberRepository) *ConversationService {
	return &ConversationService{
		conversationRepo: conversationRepo,
		memberRepo:       memberRepo,
	}
}

// GetOrCreate 取得呼叫者與目標成員之間的對話，不存在時建立一個
// 雙方必須屬於同一個伺服器，且對話的兩個成員永遠不同
func (s *ConversationService) GetOrCreate(profile *models.Profile, serverID, targetMemberID uint) (*models.Conversation, error) {
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

	target, err := s.memberRepo.FindByID(targetMemberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	if target.ServerID != serverID {
		return nil, ErrMemberNotFound
	}
	if target.ID == caller.ID {
		return nil, ErrSelfAction
	}

	conversation, err := s.conversationRepo.FindByMembers(caller.ID, target.ID)
	if err == nil {
		return conversation, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := &models.Conversation{
		MemberOneID: caller.ID,
		MemberTwoID: target.ID,
	}
	if err := s.conversationRepo.Create(created); err != nil {
		return nil, err
	}

	// 重新查詢以取得含成員與用戶資料的完整對話
	return s.conversationRepo.FindByMembers(caller.ID, target.ID)
}

// Get 取得指定對話，呼叫者必須是對話的其中一方
func (s *ConversationService) Get(profile *models.Profile, conversationID uint) (*models.Conversation, error) {
	if profile == nil {
		return nil, ErrUnauthenticated
	}
	if conversationID == 0 {
		return nil, ErrMissingConversation
	}

	conversation, err := s.conversationRepo.FindForProfile(conversationID, profile.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, err
	}
	return conversation, nil
}
