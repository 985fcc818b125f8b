package config

import (
	"log/slog"
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
)

func TestDefaultsAreFixed(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, "youtube_qr_codes", cfg.OutputDirName)
	assert.Equal(t, "playlist_", cfg.RunDirPrefix)
	assert.Equal(t, "qr_codes", cfg.QRDirName)
	assert.Equal(t, "overview.txt", cfg.OverviewName)
	assert.Equal(t, "yt-dlp", cfg.ExtractorBin)
	assert.Equal(t, 100, cfg.MaxTitleLength)
	assert.Equal(t, qrcode.Low, cfg.QRLevel)
	assert.Equal(t, 10, cfg.QRModuleSize)
}

func TestLogLevel(t *testing.T) {
	cases := []struct {
		raw  string
		want slog.Level
	}{
		{"", slog.LevelWarn},
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"error", slog.LevelError},
		{"verbose", slog.LevelWarn},
	}
	for _, tc := range cases {
		t.Setenv(LogLevelEnv, tc.raw)
		assert.Equal(t, tc.want, LogLevel(), "raw=%q", tc.raw)
	}
}
