package repository

import (
	"chatcord/internal/models"
	"chatcord/internal/storage"
)

type ProfileRepository interface {
	Create(profile *models.Profile) error
	FindByID(id uint) (*models.Profile, error)
	FindByEmail(email string) (*models.Profile, error)
}

type profileRepository struct {
	db *storage.PostgresDB
}

func NewProfileRepository(db *storage.PostgresDB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

func (r *profileRepository) FindByID(id uint) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindByEmail(email string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Where("email = ?", email).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
