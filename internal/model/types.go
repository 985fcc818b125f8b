package model

import (
	"fmt"
	"strings"
)

const (
	watchURLPrefix = "https://www.youtube.com/watch?v="
	unknownVideoID = "unknown"
)

// Video is one flat playlist entry as reported by the extractor.
type Video struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Job is the output plan for a single video at a fixed playlist position.
type Job struct {
	Index          int    `json:"index"`
	VideoID        string `json:"video_id"`
	Title          string `json:"title"`
	SanitizedTitle string `json:"sanitized_title"`
	FileName       string `json:"file_name"`
	TargetPath     string `json:"target_path"`
	SourceURL      string `json:"source_url"`
}

func WatchURL(videoID string) string {
	return watchURLPrefix + videoID
}

// VideoID returns the entry id or "unknown" when the extractor left it empty.
func (v Video) VideoID() string {
	id := strings.TrimSpace(v.ID)
	if id == "" {
		return unknownVideoID
	}
	return id
}

// DisplayTitle returns the entry title or a positional placeholder.
func (v Video) DisplayTitle(idx int) string {
	if strings.TrimSpace(v.Title) == "" {
		return fmt.Sprintf("Video %d", idx)
	}
	return v.Title
}
