package cli

import (
	"context"
	"fmt"
	"time"

	"tubeqr/internal/batch"
	"tubeqr/internal/runstore"
)

// runGenerate is the interactive flow: create the run folder, ask for a link,
// fetch flat metadata and render one QR image per video.
func runGenerate(ctx context.Context, env Env) error {
	out := env.Stdout
	st := newConsoleStyles(out)

	now := time.Now
	if env.Now != nil {
		now = env.Now
	}
	layout, err := runstore.NewLayout(env.WorkDir, now())
	if err != nil {
		return err
	}
	if err := layout.CreateRunDir(); err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Output folder created: %s\n", layout.OutputRoot)

	printBanner(out, st)
	link, err := collectURL(ctx, env.Prompter, out, st)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Fetching playlist information...")
	if err := env.Source.Probe(ctx); err != nil {
		return err
	}
	videos, err := env.Source.Entries(ctx, link)
	if err != nil {
		return fmt.Errorf("fetch playlist information: %w", err)
	}
	fmt.Fprintln(out, st.ok.Render(fmt.Sprintf("%d video(s) found", len(videos))))

	_, err = batch.Run(ctx, batch.Options{
		Layout:   layout,
		Videos:   videos,
		Renderer: env.Renderer,
		Reporter: newConsoleReporter(out, st),
		Logger:   env.Logger,
	})
	return err
}
