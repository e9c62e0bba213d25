package service

import (
	"context"

	"github.com/aliskhannn/wonderland-bot/internal/domain/entities"
)

type PlayerService struct {
	repository UserRepository
}

func NewPlayerService(repository UserRepository) *PlayerService {
	return &PlayerService{repository: repository}
}

// EnsurePlayer registers the user on first contact.
func (s *PlayerService) EnsurePlayer(ctx context.Context, userID, chatID int64) error {
	exists, err := s.repository.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	_, err = s.repository.Save(ctx, entities.NewUser(userID, chatID))
	return err
}
