package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
)

const (
	urlPromptLabel   = "Please enter the YouTube link (playlist or single video)"
	retryPromptLabel = "Would you like to try again? (y/n)"
)

var youtubeDomainMarkers = []string{"youtube.com", "youtu.be"}

func isYouTubeURL(s string) bool {
	for _, marker := range youtubeDomainMarkers {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}

// collectURL asks until the answer contains a YouTube domain. After each
// invalid answer the user may retry with "y"; anything else returns ErrDeclined.
func collectURL(ctx context.Context, p Prompter, out io.Writer, st consoleStyles) (string, error) {
	for {
		link, err := p.Ask(ctx, urlPromptLabel)
		if err != nil {
			return "", err
		}
		link = strings.TrimSpace(link)
		if isYouTubeURL(link) {
			return link, nil
		}

		fmt.Fprintln(out, st.warn.Render("This doesn't seem to be a valid YouTube link."))
		answer, err := p.Ask(ctx, retryPromptLabel)
		if err != nil {
			return "", err
		}
		if !strings.EqualFold(strings.TrimSpace(answer), "y") {
			return "", ErrDeclined
		}
	}
}
