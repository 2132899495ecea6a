package repository

import (
	"chatcord/internal/models"
	"chatcord/internal/storage"
)

type ConversationRepository interface {
	Create(conversation *models.Conversation) error
	FindForProfile(conversationID, profileID uint) (*models.Conversation, error)
	FindByMembers(memberOneID, memberTwoID uint) (*models.Conversation, error)
}

type conversationRepository struct {
	db *storage.PostgresDB
}

func NewConversationRepository(db *storage.PostgresDB) ConversationRepository {
	return &conversationRepository{db: db}
}

func (r *conversationRepository) Create(conversation *models.Conversation) error {
	return r.db.Create(conversation).Error
}

// FindForProfile 查詢指定對話，且限定該用戶必須是對話的其中一方
// 非對話成員的用戶查不到這個對話，等同於對話不存在
func (r *conversationRepository) FindForProfile(conversationID, profileID uint) (*models.Conversation, error) {
	var conversation models.Conversation
	err := r.db.
		Joins("JOIN members AS member_one ON member_one.id = conversations.member_one_id").
		Joins("JOIN members AS member_two ON member_two.id = conversations.member_two_id").
		Where("conversations.id = ? AND (member_one.profile_id = ? OR member_two.profile_id = ?)",
			conversationID, profileID, profileID).
		Preload("MemberOne.Profile").
		Preload("MemberTwo.Profile").
		First(&conversation).Error
	if err != nil {
		return nil, err
	}
	return &conversation, nil
}

// FindByMembers 查詢兩個成員之間的對話，成員順序不拘
func (r *conversationRepository) FindByMembers(memberOneID, memberTwoID uint) (*models.Conversation, error) {
	var conversation models.Conversation
	err := r.db.
		Where("(member_one_id = ? AND member_two_id = ?) OR (member_one_id = ? AND member_two_id = ?)",
			memberOneID, memberTwoID, memberTwoID, memberOneID).
		Preload("MemberOne.Profile").
		Preload("MemberTwo.Profile").
		First(&conversation).Error
	if err != nil {
		return nil, err
	}
	return &conversation, nil
}
