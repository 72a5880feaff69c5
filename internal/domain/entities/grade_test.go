package entities

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertMark(t *testing.T) {
	tests := []struct {
		mark   float64
		letter string
		band   string
	}{
		{95, "A", "Band 6"},
		{85, "B", "Band 5"},
		{72, "C", "Band 4"},
		{61, "D", "Band 3"},
		{50, "E", "Band 2"},
		{10, "F", "Band 1"},
		{100, "A", "Band 6"},
		{0, "F", "Band 1"},
		{90, "A", "Band 6"},
		{80, "B", "Band 5"},
		{70, "C", "Band 4"},
		{60, "D", "Band 3"},
		{89.99, "B", "Band 5"},
		{49.5, "F", "Band 1"},
	}

	for _, tc := range tests {
		g, err := ConvertMark(tc.mark)
		require.NoError(t, err, "mark %v", tc.mark)
		assert.Equal(t, tc.letter, g.Letter, "mark %v", tc.mark)
		assert.Equal(t, tc.band, g.Band, "mark %v", tc.mark)
	}
}

func TestConvertMark_Rejects(t *testing.T) {
	for _, mark := range []float64{101, -1, 100.01, math.NaN()} {
		_, err := ConvertMark(mark)
		assert.ErrorIs(t, err, ErrInvalidMark, "mark %v", mark)
	}
}

func TestConvertInput(t *testing.T) {
	tests := []struct {
		input   string
		letter  string
		wantErr bool
	}{
		{"85", "B", false},
		{" 72.5 ", "C", false},
		{"72,5", "C", false},
		{"90%", "A", false},
		{"abc", "", true},
		{"", "", true},
		{"101", "", true},
		{"-1", "", true},
		{"NaN", "", true},
		{"Inf", "", true},
	}

	for _, tc := range tests {
		g, err := ConvertInput(tc.input)
		if tc.wantErr {
			assert.ErrorIs(t, err, ErrInvalidMark, "input %q", tc.input)
			assert.Equal(t, Grade{}, g, "no partial result for %q", tc.input)
			continue
		}
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.letter, g.Letter, "input %q", tc.input)
	}
}
