package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePreferences(t *testing.T) {
	tests := []struct {
		name     string
		kv       map[string]string
		wantSize FontSize
		wantDark bool
	}{
		{"defaults", nil, FontNormal, false},
		{"stored values", map[string]string{PrefFontSize: "large", PrefDarkMode: "true"}, FontLarge, true},
		{"unknown size ignored", map[string]string{PrefFontSize: "huge"}, FontNormal, false},
		{"dark mode needs literal true", map[string]string{PrefDarkMode: "TRUE"}, FontNormal, false},
		{"explicit false", map[string]string{PrefFontSize: "small", PrefDarkMode: "false"}, FontSmall, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := ParsePreferences(7, tc.kv)
			assert.Equal(t, int64(7), p.UserID)
			assert.Equal(t, tc.wantSize, p.FontSize)
			assert.Equal(t, tc.wantDark, p.DarkMode)
		})
	}
}

func TestPreferences_Encode(t *testing.T) {
	p := &Preferences{FontSize: FontSmall, DarkMode: true}

	assert.Equal(t, map[string]string{
		PrefFontSize: "small",
		PrefDarkMode: "true",
	}, p.Encode())
}

func TestParseFontSize(t *testing.T) {
	for _, s := range FontSizes {
		got, err := ParseFontSize(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseFontSize("medium")
	assert.ErrorIs(t, err, ErrInvalidFontSize)
}
