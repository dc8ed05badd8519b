package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qa-chat/internal/corpus"
	"qa-chat/internal/match"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, match.DefaultThreshold, cfg.Matcher.Threshold)
	assert.Equal(t, match.DefaultFallback, cfg.Matcher.Fallback)
	assert.Equal(t, 500*time.Millisecond, cfg.Chat.ReplyDelay())
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout())
	assert.Equal(t, 5*time.Second, cfg.Server.WriteTimeout())
}

func TestLoadFromFile_Missing(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromFile_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
matcher:
  threshold: 0
  fallback: "I do not know."
corpus:
  path: ./corpus.yaml
server:
  addr: ":9000"
log:
  level: debug
  json: true
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.Matcher.Threshold)
	assert.Equal(t, "I do not know.", cfg.Matcher.Fallback)
	assert.Equal(t, match.DefaultMaxInputRunes, cfg.Matcher.MaxInputRunes)
	assert.Equal(t, "./corpus.yaml", cfg.Corpus.Path)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, 5000, cfg.Server.ReadTimeoutMs)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, "auto", cfg.Color)
}

func TestLoadFromFile_Errors(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		errSubstr string
	}{
		{"bad yaml", "matcher: [", "failed to parse config file"},
		{"bad log level", "log:\n  level: loud\n", "log.level"},
		{"bad color", "color: sometimes\n", "color must be"},
		{"negative max input", "matcher:\n  max_input_runes: -1\n", "matcher.max_input_runes"},
		{"empty fallback", "matcher:\n  fallback: \"  \"\n", "matcher.fallback"},
		{"zero body", "server:\n  max_body_bytes: 0\n", "server.max_body_bytes"},
		{"negative delay", "chat:\n  reply_delay_ms: -5\n", "chat.reply_delay_ms"},
		{"negative timeout", "server:\n  read_timeout_ms: -1\n", "server.read_timeout_ms"},
		{"empty addr", "server:\n  addr: \"\"\n", "server.addr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFile(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestValidate_NegativeThresholdAllowed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Matcher.Threshold = -1

	assert.NoError(t, cfg.Validate())
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("QA_CHAT_LOG_LEVEL", "DEBUG")
	t.Setenv("QA_CHAT_CORPUS", "/etc/qa-chat/corpus.yaml")
	t.Setenv("QA_CHAT_ADDR", ":7070")
	t.Setenv("QA_CHAT_THRESHOLD", "5")

	cfg := DefaultConfig()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/etc/qa-chat/corpus.yaml", cfg.Corpus.Path)
	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, 5, cfg.Matcher.Threshold)
}

func TestApplyEnvOverrides_IgnoresBadThreshold(t *testing.T) {
	t.Setenv("QA_CHAT_THRESHOLD", "three")

	cfg := DefaultConfig()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, match.DefaultThreshold, cfg.Matcher.Threshold)
}

func TestMatcherOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Matcher.Threshold = 0
	cfg.Matcher.Fallback = "no idea"

	m := match.New(corpus.Default(), cfg.MatcherOptions()...)

	assert.Equal(t, 0, m.Threshold())
	assert.Equal(t, "no idea", m.Answer("hellx"))
	assert.NotEqual(t, "no idea", m.Answer("hello"))
}
