package service

import (
	"context"

	"github.com/aliskhannn/portfolio-bot/internal/domain/entities"
)

type UserService struct {
	repository UserRepository
}

func NewUserService(repository UserRepository) *UserService {
	return &UserService{repository: repository}
}

// EnsureUser registers the user or refreshes their last visit.
func (s *UserService) EnsureUser(ctx context.Context, userID, chatID int64, username string) error {
	user := entities.NewUser(userID, chatID, username)
	return s.repository.SaveUser(ctx, user)
}
