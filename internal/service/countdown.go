package service

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/aliskhannn/portfolio-bot/internal/domain/entities"
)

// DefaultCountdownSchedule refreshes countdown messages at the top of every hour.
const DefaultCountdownSchedule = "0 * * * *"

// CountdownView is everything needed to draw a countdown.
type CountdownView struct {
	Target    time.Time
	Remaining entities.CountdownRemaining
	Relative  string // e.g. "2 months from now"; empty once the target is reached
}

// SessionRanger iterates over the live page sessions.
type SessionRanger interface {
	Range(fn func(sess *entities.PageSession) bool)
}

// CountdownService renders the countdown and keeps sent countdowns fresh.
type CountdownService struct {
	countdown *entities.Countdown
	sessions  SessionRanger
	notifier  CountdownNotifier
	schedule  string
	logger    *zap.Logger
	now       func() time.Time
}

func NewCountdownService(
	countdown *entities.Countdown,
	sessions SessionRanger,
	schedule string,
	logger *zap.Logger,
) *CountdownService {
	if schedule == "" {
		schedule = DefaultCountdownSchedule
	}
	return &CountdownService{
		countdown: countdown,
		sessions:  sessions,
		schedule:  schedule,
		logger:    logger,
		now:       time.Now,
	}
}

// SetNotifier sets the notifier (called after handler is created).
func (s *CountdownService) SetNotifier(notifier CountdownNotifier) {
	s.notifier = notifier
}

// Render computes the countdown at the current time.
func (s *CountdownService) Render() CountdownView {
	now := s.now()
	view := CountdownView{
		Target:    s.countdown.Target,
		Remaining: s.countdown.Remaining(now),
	}
	if !view.Remaining.Done {
		view.Relative = humanize.RelTime(s.countdown.Target, now, "ago", "from now")
	}
	return view
}

// Track remembers messageID as the chat's live countdown.
func (s *CountdownService) Track(sess *entities.PageSession, messageID int) {
	sess.CountdownMessageID = messageID
}

// Start runs the refresh job until ctx is cancelled.
func (s *CountdownService) Start(ctx context.Context) {
	s.logger.Info("countdown service started", zap.String("schedule", s.schedule))

	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc(s.schedule, func() {
		refreshed := s.RefreshAll(ctx)
		s.logger.Debug("countdowns refreshed", zap.Int("count", refreshed))
	})
	if err != nil {
		s.logger.Error("failed to add cron job", zap.Error(err))
		return
	}

	c.Start()

	<-ctx.Done()

	<-c.Stop().Done()
	s.logger.Info("countdown service stopped")
}

// RefreshAll redraws every tracked countdown and returns how many succeeded.
// A chat whose message can no longer be edited stops being tracked.
func (s *CountdownService) RefreshAll(ctx context.Context) int {
	if s.notifier == nil {
		s.logger.Error("notifier not set, cannot refresh countdowns")
		return 0
	}

	view := s.Render()
	refreshed := 0

	s.sessions.Range(func(sess *entities.PageSession) bool {
		if ctx.Err() != nil {
			return false
		}

		sess.Lock()
		defer sess.Unlock()

		if sess.CountdownMessageID == 0 {
			return true
		}

		err := s.notifier.RefreshCountdown(ctx, sess.ChatID, sess.CountdownMessageID, view)
		if err != nil {
			s.logger.Warn("failed to refresh countdown",
				zap.Int64("chat_id", sess.ChatID),
				zap.Int("message_id", sess.CountdownMessageID),
				zap.Error(err),
			)
			sess.CountdownMessageID = 0
			return true
		}

		refreshed++
		return true
	})

	return refreshed
}
