package entities

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	countdownDay   = 24 * time.Hour
	countdownMonth = 30 * countdownDay
	countdownYear  = 365 * countdownDay
)

// DefaultCountdownTarget is the graduation date shown when nothing is configured.
const DefaultCountdownTarget = "2026-12-31"

// Countdown counts down to a fixed calendar date.
type Countdown struct {
	Target time.Time
}

// CountdownRemaining is the display breakdown of the time left.
// Months are 30 days and years are 365 days, so the parts are approximate.
type CountdownRemaining struct {
	Years  int
	Months int
	Days   int
	Done   bool // target reached; nothing left to count
}

// NewCountdown parses a YYYY-MM-DD target at midnight in loc.
func NewCountdown(date string, loc *time.Location) (*Countdown, error) {
	if loc == nil {
		loc = time.UTC
	}
	target, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(date), loc)
	if err != nil {
		return nil, fmt.Errorf("parse countdown target %q: %w", date, err)
	}
	return &Countdown{Target: target}, nil
}

// Remaining computes the breakdown at now.
func (c *Countdown) Remaining(now time.Time) CountdownRemaining {
	diff := c.Target.Sub(now)
	if diff <= 0 {
		return CountdownRemaining{Done: true}
	}

	return CountdownRemaining{
		Years:  int(diff / countdownYear),
		Months: int((diff % countdownYear) / countdownMonth),
		Days:   int((diff % countdownMonth) / countdownDay),
	}
}

// ParseLocation accepts an IANA zone name ("Australia/Sydney"), "UTC", or a
// fixed offset such as "UTC+10", "+5:30" or "-03:00".
func ParseLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "UTC") || strings.EqualFold(name, "GMT") {
		return time.UTC, nil
	}

	if loc, err := time.LoadLocation(name); err == nil {
		return loc, nil
	}

	offset := name
	if len(offset) > 3 && strings.EqualFold(offset[:3], "UTC") {
		offset = offset[3:]
	}

	seconds, ok := parseOffset(offset)
	if !ok {
		return nil, fmt.Errorf("unsupported location %q", name)
	}

	return time.FixedZone(formatOffset(seconds), seconds), nil
}

func parseOffset(s string) (int, bool) {
	if len(s) < 2 || (s[0] != '+' && s[0] != '-') {
		return 0, false
	}
	sign := 1
	if s[0] == '-' {
		sign = -1
	}

	hh, mm, found := strings.Cut(s[1:], ":")
	if !found {
		mm = "0"
	}

	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 14 {
		return 0, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m >= 60 {
		return 0, false
	}

	return sign * (h*3600 + m*60), true
}

func formatOffset(seconds int) string {
	sign := "+"
	if seconds < 0 {
		sign, seconds = "-", -seconds
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, seconds/3600, (seconds%3600)/60)
}
