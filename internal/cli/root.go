package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	ucli "github.com/urfave/cli/v2"

	"tubeqr/internal/config"
	"tubeqr/internal/qr"
	"tubeqr/internal/ytdlp"
)

var Version = "dev"

// Env carries every process-level dependency of a command so tests can swap them.
type Env struct {
	Stdout   io.Writer
	Stderr   io.Writer
	WorkDir  string
	Now      func() time.Time
	Prompter Prompter
	Source   ytdlp.Source
	Renderer qr.Renderer
	Logger   *slog.Logger
}

func DefaultEnv() (Env, error) {
	wd, err := os.Getwd()
	if err != nil {
		return Env{}, fmt.Errorf("resolve working directory: %w", err)
	}
	logger := config.NewLogger()

	var prompter Prompter
	if stdinIsTTY() {
		prompter = newTeaPrompter(nil, nil)
	} else {
		prompter = newLinePrompter(os.Stdin, os.Stdout)
	}

	return Env{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		WorkDir:  wd,
		Now:      time.Now,
		Prompter: prompter,
		Source:   ytdlp.NewClient(logger),
		Renderer: qr.NewPNGRenderer(),
		Logger:   logger,
	}, nil
}

func Run(ctx context.Context, args []string) error {
	env, err := DefaultEnv()
	if err != nil {
		return err
	}
	return RunWithEnv(ctx, env, args)
}

func RunWithEnv(ctx context.Context, env Env, args []string) error {
	return newApp(env).RunContext(ctx, append([]string{"tubeqr"}, args...))
}

func newApp(env Env) *ucli.App {
	return &ucli.App{
		Name:            "tubeqr",
		Usage:           "turn a YouTube playlist or video link into one QR code per video",
		UsageText:       "tubeqr            (interactive: asks for a link)\n   tubeqr doctor     (check yt-dlp and the output folder)",
		Version:         Version,
		Writer:          env.Stdout,
		ErrWriter:       env.Stderr,
		HideHelpCommand: true,
		Action: func(c *ucli.Context) error {
			if c.NArg() > 0 {
				_ = ucli.ShowAppHelp(c)
				return fmt.Errorf("unknown command %q", c.Args().First())
			}
			return runGenerate(c.Context, env)
		},
		Commands: []*ucli.Command{
			{
				Name:  "doctor",
				Usage: "run dependency and filesystem preflight checks",
				Flags: []ucli.Flag{
					&ucli.BoolFlag{Name: "json", Usage: "print JSON output"},
				},
				Action: func(c *ucli.Context) error {
					return runDoctor(env, c.Bool("json"))
				},
			},
		},
	}
}
