package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestConfigureLogging(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		format   string
		expected logrus.Level
	}{
		{"Defaults to info", "", "", logrus.InfoLevel},
		{"Debug level", "debug", "", logrus.DebugLevel},
		{"Error level", "error", "", logrus.ErrorLevel},
		{"Case insensitive", "WARN", "", logrus.WarnLevel},
		{"Invalid level falls back to info", "verbose", "", logrus.InfoLevel},
		{"JSON format", "info", "json", logrus.InfoLevel},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tc.level)
			t.Setenv("LOG_FORMAT", tc.format)

			logger := ConfigureLogging()
			assert.Equal(t, tc.expected, logger.GetLevel())

			if tc.format == "json" {
				assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
			} else {
				assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
			}
		})
	}
}
