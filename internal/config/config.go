package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/skip2/go-qrcode"
)

const (
	DefaultOutputDirName = "youtube_qr_codes"
	DefaultRunDirPrefix  = "playlist_"
	DefaultQRDirName     = "qr_codes"
	DefaultOverviewName  = "overview.txt"
	DefaultExtractorBin  = "yt-dlp"

	// RunTimestampLayout names the per-run directory, CreatedLayout is printed in the overview header.
	RunTimestampLayout = "20060102_150405"
	CreatedLayout      = "2006-01-02 15:04:05"

	MaxTitleLength = 100

	// QR rendering is fixed: low error correction, 10px modules. go-qrcode always
	// draws a 4-module quiet zone.
	QRModuleSize = 10

	LogLevelEnv = "TUBEQR_LOG_LEVEL"
)

// Config holds the fixed defaults of a generation run.
type Config struct {
	// OutputDirName is the stable top-level folder under the working directory.
	OutputDirName string
	// RunDirPrefix is prepended to the run timestamp.
	RunDirPrefix string
	QRDirName    string
	OverviewName string
	// ExtractorBin is the metadata extraction executable looked up on PATH.
	ExtractorBin string

	MaxTitleLength int

	QRLevel      qrcode.RecoveryLevel
	QRModuleSize int
}

func Defaults() Config {
	return Config{
		OutputDirName:  DefaultOutputDirName,
		RunDirPrefix:   DefaultRunDirPrefix,
		QRDirName:      DefaultQRDirName,
		OverviewName:   DefaultOverviewName,
		ExtractorBin:   DefaultExtractorBin,
		MaxTitleLength: MaxTitleLength,
		QRLevel:        qrcode.Low,
		QRModuleSize:   QRModuleSize,
	}
}

// LogLevel reads the diagnostic log level from the environment. Unknown values fall back to warn.
func LogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(env.Str(LogLevelEnv, "warn"))) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// NewLogger builds the diagnostics logger used across a run.
func NewLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: LogLevel()}))
}
