package ytdlp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"tubeqr/internal/config"
	"tubeqr/internal/model"
)

var (
	// ErrNotInstalled means the extractor binary is missing or failed its version probe.
	ErrNotInstalled = errors.New("yt-dlp is not installed")
	// ErrMalformedRecord means a metadata line was not valid JSON. The whole run stops.
	ErrMalformedRecord = errors.New("malformed video record")
)

// Error wraps a failed extractor operation with its context.
type Error struct {
	Op     string
	URL    string
	Stderr string
	Err    error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("yt-dlp ")
	b.WriteString(e.Op)
	if e.URL != "" {
		b.WriteString(" ")
		b.WriteString(e.URL)
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	if s := strings.TrimSpace(e.Stderr); s != "" {
		b.WriteString(": ")
		b.WriteString(s)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Source yields flat playlist metadata for a URL.
type Source interface {
	Probe(ctx context.Context) error
	Entries(ctx context.Context, url string) ([]model.Video, error)
}

type DependencyReport struct {
	YTDLPFound bool   `json:"yt_dlp_found"`
	YTDLPPath  string `json:"yt_dlp_path,omitempty"`
}

// Client runs the yt-dlp executable as a subprocess.
type Client struct {
	// Path is the executable name or path. Defaults to "yt-dlp".
	Path   string
	Logger *slog.Logger
}

func NewClient(logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{Path: config.Defaults().ExtractorBin, Logger: logger}
}

func DependencyStatus() DependencyReport {
	report := DependencyReport{}
	if path, err := exec.LookPath(config.Defaults().ExtractorBin); err == nil {
		report.YTDLPFound = true
		report.YTDLPPath = path
	}
	return report
}

// Probe runs "yt-dlp --version" and fails when the binary is absent or exits non-zero.
func (c *Client) Probe(ctx context.Context) error {
	stdout, stderr, err := c.run(ctx, "--version")
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return &Error{Op: "probe", Stderr: stderr, Err: fmt.Errorf("%w: %v", ErrNotInstalled, err)}
	}
	c.logger().Debug("yt-dlp probe ok", slog.String("version", strings.TrimSpace(stdout)))
	return nil
}

// Entries lists the flat playlist entries for url, one JSON object per output line.
func (c *Client) Entries(ctx context.Context, url string) ([]model.Video, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, fmt.Errorf("source URL is required")
	}

	start := time.Now()
	stdout, stderr, err := c.run(ctx, "--flat-playlist", "--dump-json", url)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, &Error{Op: "extract", URL: url, Stderr: stderr, Err: err}
	}

	videos, err := ParseLines([]byte(stdout))
	if err != nil {
		return nil, &Error{Op: "extract", URL: url, Err: err}
	}
	c.logger().Debug("yt-dlp extraction finished",
		slog.String("url", url),
		slog.Int("videos", len(videos)),
		slog.Duration("elapsed", time.Since(start)),
	)
	return videos, nil
}

// ParseLines decodes line-delimited JSON records. Blank lines are skipped; the
// first malformed line aborts parsing.
func ParseLines(data []byte) ([]model.Video, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 16*1024*1024)

	videos := []model.Video{}
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var v model.Video
		if err := json.Unmarshal(line, &v); err != nil {
			return nil, fmt.Errorf("%w on line %d: %v", ErrMalformedRecord, lineNo, err)
		}
		videos = append(videos, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read yt-dlp output: %w", err)
	}
	return videos, nil
}

func (c *Client) run(ctx context.Context, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, c.path(), args...)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	c.logger().Debug("running yt-dlp", slog.String("path", c.path()), slog.Any("args", args))
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func (c *Client) path() string {
	if strings.TrimSpace(c.Path) != "" {
		return c.Path
	}
	return config.Defaults().ExtractorBin
}

func (c *Client) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
