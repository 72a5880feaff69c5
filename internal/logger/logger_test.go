package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/portfolio-bot/internal/config"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.Config
		wantDebug bool
	}{
		{"production", config.Config{Env: "production"}, false},
		{"production with debug", config.Config{Env: "production", Debug: true}, true},
		{"local", config.Config{Env: "local"}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			log, err := New(&tc.cfg)
			require.NoError(t, err)
			assert.Equal(t, tc.wantDebug, log.Core().Enabled(zap.DebugLevel))
		})
	}
}
