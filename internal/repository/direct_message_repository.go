package repository

import (
	"chatcord/internal/models"
	"chatcord/internal/storage"
)

type DirectMessageRepository interface {
	FindByIDAndConversation(messageID, conversationID uint) (*models.DirectMessage, error)
	Update(message *models.DirectMessage) error
}

type directMessageRepository struct {
	db *storage.PostgresDB
}

func NewDirectMessageRepository(db *storage.PostgresDB) DirectMessageRepository {
	return &directMessageRepository{db: db}
}

func (r *directMessageRepository) FindByIDAndConversation(messageID, conversationID uint) (*models.DirectMessage, error) {
	var message models.DirectMessage
	err := r.db.
		Where("id = ? AND conversation_id = ?", messageID, conversationID).
		Preload("Member.Profile").
		First(&message).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// Update 以主鍵寫回整筆訊息
// 依賴資料庫對單一資料列更新的原子性，兩個併發更新不會產生破碎的資料列
func (r *directMessageRepository) Update(message *models.DirectMessage) error {
	return r.db.Save(message).Error
}
