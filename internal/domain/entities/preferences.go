package entities

import (
	"errors"
	"strconv"
)

// Preference keys as stored in the key-value table.
const (
	PrefFontSize = "fontSize"
	PrefDarkMode = "darkMode"
)

var ErrInvalidFontSize = errors.New("invalid font size")

// FontSize selects how much text a project card shows.
type FontSize string

const (
	FontSmall  FontSize = "small"
	FontNormal FontSize = "normal"
	FontLarge  FontSize = "large"
)

// FontSizes lists the supported sizes in display order.
var FontSizes = []FontSize{FontSmall, FontNormal, FontLarge}

// ParseFontSize validates s.
func ParseFontSize(s string) (FontSize, error) {
	switch FontSize(s) {
	case FontSmall, FontNormal, FontLarge:
		return FontSize(s), nil
	default:
		return "", ErrInvalidFontSize
	}
}

// Preferences are the accessibility settings remembered across visits.
type Preferences struct {
	UserID   int64
	FontSize FontSize
	DarkMode bool
}

// NewPreferences returns the defaults for a first visit.
func NewPreferences(userID int64) *Preferences {
	return &Preferences{
		UserID:   userID,
		FontSize: FontNormal,
	}
}

// ParsePreferences builds preferences from stored key/value pairs.
// Missing or unrecognised values keep their defaults.
func ParsePreferences(userID int64, kv map[string]string) *Preferences {
	p := NewPreferences(userID)

	if v, ok := kv[PrefFontSize]; ok {
		if size, err := ParseFontSize(v); err == nil {
			p.FontSize = size
		}
	}

	// Only the literal "true" enables dark mode.
	p.DarkMode = kv[PrefDarkMode] == "true"

	return p
}

// Encode returns the key/value pairs to persist.
func (p *Preferences) Encode() map[string]string {
	return map[string]string{
		PrefFontSize: string(p.FontSize),
		PrefDarkMode: strconv.FormatBool(p.DarkMode),
	}
}
