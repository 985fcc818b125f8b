package cli

import (
	"context"
	"errors"

	"tubeqr/internal/ytdlp"
)

var (
	// ErrDeclined means the user chose not to retry after an invalid link.
	ErrDeclined = errors.New("no valid YouTube link entered")
	// ErrInterrupted means the user aborted a prompt or the process got a signal.
	ErrInterrupted = errors.New("aborted by user")
)

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrDeclined), IsInterrupt(err):
		return 0
	default:
		return 1
	}
}

func IsInterrupt(err error) bool {
	return errors.Is(err, ErrInterrupted) || errors.Is(err, context.Canceled)
}

// Hint returns an instructional follow-up line for errors the user can fix.
func Hint(err error) string {
	switch {
	case errors.Is(err, ytdlp.ErrNotInstalled):
		return "Install it with: pip install yt-dlp"
	case errors.Is(err, ytdlp.ErrMalformedRecord):
		return "yt-dlp printed output that is not one JSON object per line; try updating yt-dlp"
	default:
		return ""
	}
}
