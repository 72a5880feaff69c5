package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/portfolio-bot/internal/domain/entities"
	"github.com/aliskhannn/portfolio-bot/internal/storage"
)

type refreshCall struct {
	chatID    int64
	messageID int
	view      CountdownView
}

type fakeCountdownNotifier struct {
	calls   []refreshCall
	failFor map[int64]bool
}

func (n *fakeCountdownNotifier) RefreshCountdown(_ context.Context, chatID int64, messageID int, view CountdownView) error {
	if n.failFor[chatID] {
		return errors.New("message to edit not found")
	}
	n.calls = append(n.calls, refreshCall{chatID: chatID, messageID: messageID, view: view})
	return nil
}

func newTestCountdownService(t *testing.T, sessions SessionRanger, now time.Time) *CountdownService {
	t.Helper()
	c, err := entities.NewCountdown("2026-12-31", time.UTC)
	require.NoError(t, err)

	s := NewCountdownService(c, sessions, "", zap.NewNop())
	s.now = func() time.Time { return now }
	return s
}

func TestCountdownService_Render(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	s := newTestCountdownService(t, storage.NewSessionStorage(), now)

	view := s.Render()
	assert.Equal(t, entities.CountdownRemaining{Months: 2, Days: 14}, view.Remaining)
	assert.Equal(t, "2 months from now", view.Relative)
	assert.Equal(t, DefaultCountdownSchedule, s.schedule)
}

func TestCountdownService_RenderDone(t *testing.T) {
	s := newTestCountdownService(t, storage.NewSessionStorage(), time.Date(2027, 1, 2, 0, 0, 0, 0, time.UTC))

	view := s.Render()
	assert.True(t, view.Remaining.Done)
	assert.Empty(t, view.Relative)
}

func TestCountdownService_RefreshAll(t *testing.T) {
	sessions := storage.NewSessionStorage()
	s := newTestCountdownService(t, sessions, time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC))

	notifier := &fakeCountdownNotifier{failFor: map[int64]bool{3: true}}
	s.SetNotifier(notifier)

	s.Track(sessions.GetOrCreate(1), 100)
	sessions.GetOrCreate(2) // never asked for a countdown
	s.Track(sessions.GetOrCreate(3), 300)

	refreshed := s.RefreshAll(context.Background())

	assert.Equal(t, 1, refreshed)
	require.Len(t, notifier.calls, 1)
	assert.Equal(t, int64(1), notifier.calls[0].chatID)
	assert.Equal(t, 100, notifier.calls[0].messageID)

	failed := sessions.GetOrCreate(3)
	assert.Zero(t, failed.CountdownMessageID, "broken message is no longer tracked")
}

func TestCountdownService_RefreshAllWithoutNotifier(t *testing.T) {
	sessions := storage.NewSessionStorage()
	s := newTestCountdownService(t, sessions, time.Now())
	s.Track(sessions.GetOrCreate(1), 1)

	assert.Zero(t, s.RefreshAll(context.Background()))
}
