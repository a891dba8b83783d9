package service

import (
	"fmt"
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/paperhub/paperhub/internal/model"
	"github.com/paperhub/paperhub/internal/repository"
	"github.com/paperhub/paperhub/internal/storage"
)

type UserService struct {
	userRepo repository.UserRepository
	storage  storage.Storage
}

func NewUserService(userRepo repository.UserRepository, storage storage.Storage) *UserService {
	return &UserService{
		userRepo: userRepo,
		storage:  storage,
	}
}

func (s *UserService) ByID(id string) (*model.User, error) {
	return s.userRepo.ByID(id)
}

// UpdateAvatar uploads a new avatar image and stores its URL on the user.
// Papers keep the author avatar captured at creation time.
// Note: File validation (type, size, content) should be done by the caller before calling UpdateAvatar
func (s *UserService) UpdateAvatar(user *model.User, file multipart.File, header *multipart.FileHeader) (string, error) {
	ext := filepath.Ext(header.Filename)
	key := fmt.Sprintf("avatars/%s%s", uuid.New().String(), ext)

	err := s.storage.Save(key, file)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUploadFailed, err.Error())
	}

	url := s.storage.URL(key)
	err = s.userRepo.UpdateAvatar(user.ID, url)
	if err != nil {
		return "", fmt.Errorf("failed to update avatar: %w", err)
	}

	return url, nil
}
