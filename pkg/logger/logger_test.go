package logger

import (
	"testing"

	"github.com/GlebRadaev/codequiz/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name           string
		logLvl         string
		expectedError  bool
		expectedLogLvl zapcore.Level
	}{
		{name: "Valid log level info", logLvl: "info", expectedLogLvl: zapcore.InfoLevel},
		{name: "Valid log level warn", logLvl: "warn", expectedLogLvl: zapcore.WarnLevel},
		{name: "Valid log level error", logLvl: "error", expectedLogLvl: zapcore.ErrorLevel},
		{name: "Valid log level debug", logLvl: "debug", expectedLogLvl: zapcore.DebugLevel},
		{name: "Invalid log level", logLvl: "verbose", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitLogger(&config.Config{LogLvl: tt.logLvl})

			if tt.expectedError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, zap.L().Core().Enabled(tt.expectedLogLvl))
			if tt.expectedLogLvl > zapcore.DebugLevel {
				assert.False(t, zap.L().Core().Enabled(tt.expectedLogLvl-1))
			}
		})
	}
}
