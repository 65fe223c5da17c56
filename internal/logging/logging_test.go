package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		want    zerolog.Level
		wantErr bool
	}{
		{name: "default", cfg: Config{}, want: zerolog.InfoLevel},
		{name: "debug upper case", cfg: Config{Level: "DEBUG"}, want: zerolog.DebugLevel},
		{name: "text", cfg: Config{Level: "warn", Format: "text"}, want: zerolog.WarnLevel},
		{name: "unknown", cfg: Config{Level: "loud"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := Setup(&bytes.Buffer{}, tt.cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, logger.GetLevel())
		})
	}
}

func TestSetup_JSON(t *testing.T) {
	var buf bytes.Buffer

	logger, err := Setup(&buf, Config{Level: "info"})
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Str("key", "app.port").Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"key":"app.port"`)
}
