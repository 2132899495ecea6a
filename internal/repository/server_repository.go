package repository

import (
	"gorm.io/gorm"

	"chatcord/internal/models"
	"chatcord/internal/storage"
)

type ServerRepository interface {
	FindByID(id uint) (*models.Server, error)
	FindByIDWithDetails(id uint) (*models.Server, error)
	FindByInviteCode(code string) (*models.Server, error)
	Update(server *models.Server) error
}

type serverRepository struct {
	db *storage.PostgresDB
}

func NewServerRepository(db *storage.PostgresDB) ServerRepository {
	return &serverRepository{db: db}
}

func (r *serverRepository) FindByID(id uint) (*models.Server, error) {
	var server models.Server
	err := r.db.First(&server, id).Error
	if err != nil {
		return nil, err
	}
	return &server, nil
}

// FindByIDWithDetails 查詢伺服器並載入頻道與成員（含用戶資料）
// 頻道按建立時間排序，成員排序交由 service 層處理
func (r *serverRepository) FindByIDWithDetails(id uint) (*models.Server, error) {
	var server models.Server
	err := r.db.
		Preload("Channels", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Members.Profile").
		First(&server, id).Error
	if err != nil {
		return nil, err
	}
	return &server, nil
}

func (r *serverRepository) FindByInviteCode(code string) (*models.Server, error) {
	var server models.Server
	err := r.db.Where("invite_code = ?", code).First(&server).Error
	if err != nil {
		return nil, err
	}
	return &server, nil
}

func (r *serverRepository) Update(server *models.Server) error {
	return r.db.Save(server).Error
}
