package service

import (
	"errors"

	"gorm.io/gorm"

	"chatcord/internal/models"
	"chatcord/internal/repository"
)

// DirectMessageService 負責私人訊息的變更流程：
// 查詢對話（同時確認成員資格）、授權判斷、狀態轉換、持久化、即時推播
// 成功時恰好寫入一次並推播一次；任何失敗路徑都不寫入也不推播
type DirectMessageService struct {
	conversationRepo repository.ConversationRepository
	messageRepo      repository.DirectMessageRepository
	publisher        Publisher
}

func NewDirectMessageService(conversationRepo repository.ConversationRepository, messageRepo repository.DirectMessageRepository, publisher Publisher) *DirectMessageService {
	return &DirectMessageService{
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		publisher:        publisher,
	}
}

// Update 編輯訊息內容，只有訊息擁有者本人可以執行
// 回傳持久化後的完整訊息（含成員與用戶資料）
func (s *DirectMessageService) Update(profile *models.Profile, conversationID, messageID uint, content string) (*models.DirectMessage, error) {
	message, member, err := s.lookup(profile, conversationID, messageID)
	if err != nil {
		return nil, err
	}

	if !CanModify(profile.ID, message, member, MutationEdit) {
		return nil, ErrEditNotOwner
	}

	if content == "" {
		return nil, ErrEmptyContent
	}

	message.Content = content
	if err := s.messageRepo.Update(message); err != nil {
		return nil, err
	}

	s.publisher.Publish(ConversationTopic(conversationID), message)
	return message, nil
}

// Delete 將訊息軟刪除：內容換成固定文字、附件清空、標記為已刪除
// 此狀態是終點，之後對這則訊息的任何操作都會得到訊息不存在
func (s *DirectMessageService) Delete(profile *models.Profile, conversationID, messageID uint) (*models.DirectMessage, error) {
	message, member, err := s.lookup(profile, conversationID, messageID)
	if err != nil {
		return nil, err
	}

	if !CanModify(profile.ID, message, member, MutationDelete) {
		return nil, ErrForbidden
	}

	message.MarkDeleted()
	if err := s.messageRepo.Update(message); err != nil {
		return nil, err
	}

	s.publisher.Publish(ConversationTopic(conversationID), message)
	return message, nil
}

// lookup 執行變更前的共同檢查：
// 用戶已驗證、對話ID存在、用戶是對話成員、訊息存在且尚未被刪除
func (s *DirectMessageService) lookup(profile *models.Profile, conversationID, messageID uint) (*models.DirectMessage, *models.Member, error) {
	if profile == nil {
		return nil, nil, ErrUnauthenticated
	}
	if conversationID == 0 {
		return nil, nil, ErrMissingConversation
	}

	// 查詢時即限定用戶必須是對話成員
	// 非成員連對話的存在與否都無從得知
	conversation, err := s.conversationRepo.FindForProfile(conversationID, profile.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrConversationNotFound
		}
		return nil, nil, err
	}

	member := conversation.MemberFor(profile.ID)
	if member == nil {
		return nil, nil, ErrMemberNotFound
	}

	message, err := s.messageRepo.FindByIDAndConversation(messageID, conversationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrMessageNotFound
		}
		return nil, nil, err
	}

	// 已刪除的訊息視同不存在，對呼叫端不可區分
	if message.Deleted {
		return nil, nil, ErrMessageNotFound
	}

	return message, member, nil
}
