package repository

import (
	"chatcord/internal/models"
	"chatcord/internal/storage"
)

type MemberRepository interface {
	Create(member *models.Member) error
	FindByID(id uint) (*models.Member, error)
	FindByServerAndProfile(serverID, profileID uint) (*models.Member, error)
	Update(member *models.Member) error
	Delete(id uint) error
}

type memberRepository struct {
	db *storage.PostgresDB
}

func NewMemberRepository(db *storage.PostgresDB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Create(member *models.Member) error {
	return r.db.Create(member).Error
}

func (r *memberRepository) FindByID(id uint) (*models.Member, error) {
	var member models.Member
	err := r.db.Preload("Profile").First(&member, id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) FindByServerAndProfile(serverID, profileID uint) (*models.Member, error) {
	var member models.Member
	err := r.db.Preload("Profile").
		Where("server_id = ? AND profile_id = ?", serverID, profileID).
		First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) Update(member *models.Member) error {
	return r.db.Save(member).Error
}

func (r *memberRepository) Delete(id uint) error {
	return r.db.Delete(&models.Member{}, id).Error
}
