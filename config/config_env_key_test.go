package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"notification": map[string]any{
			"androidChannelId": "",
			"errorBuffer":      64,
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"search": map[string]any{
			"maxRadiusKm": 50,
		},
		"auth": map[string]any{
			"jwtSecret": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "NOTIFICATION_ANDROIDCHANNELID", want: "notification.androidChannelId"},
		{envKey: "NOTIFICATION_ERRORBUFFER", want: "notification.errorBuffer"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SEARCH_MAXRADIUSKM", want: "search.maxRadiusKm"},
		{envKey: "AUTH_JWTSECRET", want: "auth.jwtSecret"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	t.Setenv("SEARCH_MAXRADIUSKM", "25")
	t.Setenv("NOTIFICATION_MODE", "inline")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)
	applyDefaults(cfg)

	assert.Equal(t, 25.0, cfg.Search.MaxRadiusKm)
	assert.Equal(t, "inline", cfg.Notification.Mode)
	assert.Equal(t, 30*time.Second, cfg.Notification.Timeout)
	assert.Equal(t, "memory", cfg.Store.Driver)
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, "100KB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "firestore", cfg.Store.Driver)
	assert.Equal(t, "firebase", cfg.Auth.Provider)
	assert.Equal(t, "inline", cfg.Notification.Mode)
	assert.Equal(t, "all_serve_channel", cfg.Notification.AndroidChannelID)
	assert.Equal(t, 64, cfg.Notification.ErrorBuffer)
	assert.Equal(t, 10.0, cfg.Search.DefaultRadiusKm)
	assert.Equal(t, 50.0, cfg.Search.MaxRadiusKm)
	assert.Equal(t, 20, cfg.Search.MaxResults)
	assert.NotNil(t, cfg.PubSub)
	assert.NotNil(t, cfg.Firebase)
}
