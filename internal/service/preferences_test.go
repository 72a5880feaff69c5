package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/portfolio-bot/internal/domain/entities"
	"github.com/aliskhannn/portfolio-bot/internal/repository"
)

type fakePreferenceRepo struct {
	kv     map[string]string
	setErr error
}

func (r *fakePreferenceRepo) GetAll(_ context.Context, _ int64) (map[string]string, error) {
	out := make(map[string]string, len(r.kv))
	for k, v := range r.kv {
		out[k] = v
	}
	return out, nil
}

func (r *fakePreferenceRepo) GetForUpdate(_ context.Context, _ int64, key string) (string, error) {
	v, ok := r.kv[key]
	if !ok {
		return "", repository.ErrPreferenceNotFound
	}
	return v, nil
}

func (r *fakePreferenceRepo) Set(_ context.Context, _ int64, key, value string) error {
	if r.setErr != nil {
		return r.setErr
	}
	r.kv[key] = value
	return nil
}

type fakeTransactor struct {
	calls int
}

func (tr *fakeTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error {
	tr.calls++
	return fn(ctx, nil)
}

func newTestPreferenceService(repo *fakePreferenceRepo, tr *fakeTransactor) *PreferenceService {
	s := NewPreferenceService(repo, tr)
	s.txRepo = func(pgx.Tx) PreferenceRepository { return repo }
	return s
}

func TestPreferenceService_GetDefaults(t *testing.T) {
	s := newTestPreferenceService(&fakePreferenceRepo{kv: map[string]string{}}, &fakeTransactor{})

	p, err := s.Get(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, entities.FontNormal, p.FontSize)
	assert.False(t, p.DarkMode)
}

func TestPreferenceService_SetFontSize(t *testing.T) {
	repo := &fakePreferenceRepo{kv: map[string]string{}}
	s := newTestPreferenceService(repo, &fakeTransactor{})

	p, err := s.SetFontSize(context.Background(), 5, "large")
	require.NoError(t, err)
	assert.Equal(t, entities.FontLarge, p.FontSize)
	assert.Equal(t, "large", repo.kv[entities.PrefFontSize])

	_, err = s.SetFontSize(context.Background(), 5, "giant")
	assert.ErrorIs(t, err, entities.ErrInvalidFontSize)
	assert.Equal(t, "large", repo.kv[entities.PrefFontSize])
}

func TestPreferenceService_ToggleDarkMode(t *testing.T) {
	repo := &fakePreferenceRepo{kv: map[string]string{}}
	tr := &fakeTransactor{}
	s := newTestPreferenceService(repo, tr)
	ctx := context.Background()

	p, err := s.ToggleDarkMode(ctx, 5)
	require.NoError(t, err)
	assert.True(t, p.DarkMode)
	assert.Equal(t, "true", repo.kv[entities.PrefDarkMode])

	p, err = s.ToggleDarkMode(ctx, 5)
	require.NoError(t, err)
	assert.False(t, p.DarkMode)
	assert.Equal(t, "false", repo.kv[entities.PrefDarkMode])
	assert.Equal(t, 2, tr.calls)
}

func TestPreferenceService_ToggleDarkModeError(t *testing.T) {
	boom := errors.New("boom")
	repo := &fakePreferenceRepo{kv: map[string]string{}, setErr: boom}
	s := newTestPreferenceService(repo, &fakeTransactor{})

	_, err := s.ToggleDarkMode(context.Background(), 5)
	assert.ErrorIs(t, err, boom)
}
