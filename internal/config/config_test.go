package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		botToken    string
		adminID     string
		healthAddr  string
		expectError string
	}{
		{
			name:     "all fields set",
			botToken: "test_token",
			adminID:  "417731116",
		},
		{
			name:        "missing bot token",
			adminID:     "417731116",
			expectError: "BOT_TOKEN",
		},
		{
			name:        "missing admin id",
			botToken:    "test_token",
			expectError: "ADMIN_ID",
		},
		{
			name:        "non-integer admin id",
			botToken:    "test_token",
			adminID:     "operator",
			expectError: "ADMIN_ID",
		},
		{
			name:       "custom health address",
			botToken:   "test_token",
			adminID:    "417731116",
			healthAddr: ":9090",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setOrUnset(t, "BOT_TOKEN", tt.botToken)
			setOrUnset(t, "ADMIN_ID", tt.adminID)
			setOrUnset(t, "HEALTH_ADDR", tt.healthAddr)

			cfg, err := Load()

			if tt.expectError != "" {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				assert.Contains(t, err.Error(), tt.expectError)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, cfg)
			assert.Equal(t, tt.botToken, cfg.BotToken)
			assert.Equal(t, int64(417731116), cfg.AdminID)

			if tt.healthAddr != "" {
				assert.Equal(t, tt.healthAddr, cfg.HealthAddr)
			} else {
				assert.Equal(t, ":8080", cfg.HealthAddr)
			}
		})
	}
}

// setOrUnset sets an env variable for the test, or unsets it when the
// value is empty, restoring the original afterwards
func setOrUnset(t *testing.T, key, value string) {
	t.Helper()

	original, had := os.LookupEnv(key)
	t.Cleanup(func() {
		if had {
			os.Setenv(key, original)
		} else {
			os.Unsetenv(key)
		}
	})

	if value == "" {
		os.Unsetenv(key)
	} else {
		os.Setenv(key, value)
	}
}
