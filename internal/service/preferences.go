package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/portfolio-bot/internal/domain/entities"
	"github.com/aliskhannn/portfolio-bot/internal/repository"
)

// PreferenceService reads and changes the accessibility preferences.
type PreferenceService struct {
	repository PreferenceRepository
	tr         Transactor
	txRepo     func(tx pgx.Tx) PreferenceRepository
}

func NewPreferenceService(repo PreferenceRepository, tr Transactor) *PreferenceService {
	return &PreferenceService{
		repository: repo,
		tr:         tr,
		txRepo: func(tx pgx.Tx) PreferenceRepository {
			return repository.NewPreferenceRepository(tx)
		},
	}
}

// Get returns the stored preferences with defaults for anything unset.
func (s *PreferenceService) Get(ctx context.Context, userID int64) (*entities.Preferences, error) {
	kv, err := s.repository.GetAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	return entities.ParsePreferences(userID, kv), nil
}

// SetFontSize validates and stores size.
func (s *PreferenceService) SetFontSize(ctx context.Context, userID int64, size string) (*entities.Preferences, error) {
	fs, err := entities.ParseFontSize(size)
	if err != nil {
		return nil, err
	}

	next := entities.NewPreferences(userID)
	next.FontSize = fs
	if err := s.repository.Set(ctx, userID, entities.PrefFontSize, next.Encode()[entities.PrefFontSize]); err != nil {
		return nil, err
	}

	return s.Get(ctx, userID)
}

// ToggleDarkMode flips the dark mode flag atomically.
func (s *PreferenceService) ToggleDarkMode(ctx context.Context, userID int64) (*entities.Preferences, error) {
	err := s.tr.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		repo := s.txRepo(tx)

		current, err := repo.GetForUpdate(ctx, userID, entities.PrefDarkMode)
		if err != nil && !errors.Is(err, repository.ErrPreferenceNotFound) {
			return err
		}

		next := entities.NewPreferences(userID)
		next.DarkMode = current != "true"
		if err := repo.Set(ctx, userID, entities.PrefDarkMode, next.Encode()[entities.PrefDarkMode]); err != nil {
			return fmt.Errorf("toggle dark mode: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, userID)
}
