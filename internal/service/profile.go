package service

import (
	"chatcord/internal/models"
	"chatcord/internal/repository"
)

type ProfileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

func (s *ProfileService) CreateProfile(profile *models.Profile) error {
	return s.profileRepo.Create(profile)
}

func (s *ProfileService) GetProfileByEmail(email string) (*models.Profile, error) {
	return s.profileRepo.FindByEmail(email)
}

func (s *ProfileService) GetProfileByID(id uint) (*models.Profile, error) {
	return s.profileRepo.FindByID(id)
}
