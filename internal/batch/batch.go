package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"tubeqr/internal/config"
	"tubeqr/internal/model"
	"tubeqr/internal/naming"
	"tubeqr/internal/qr"
	"tubeqr/internal/runstore"
)

const overviewRule = "============================================================"

// Reporter receives per-item console events. Styling is the caller's concern.
type Reporter interface {
	Start(total int)
	ItemDone(job model.Job, total int)
	ItemFailed(job model.Job, total int, err error)
	Empty()
	Finish(res Result)
}

type Options struct {
	Layout   runstore.Layout
	Videos   []model.Video
	Renderer qr.Renderer
	Reporter Reporter
	Logger   *slog.Logger
}

type ItemResult struct {
	Job model.Job
	Err error
}

type Result struct {
	Total        int
	Succeeded    int
	Failed       int
	Items        []ItemResult
	QRDir        string
	OverviewPath string
}

// Run renders one QR image per video and writes the overview file. A render
// failure is recorded for that item and the loop moves on; only setup errors
// and cancellation end the run early.
func Run(ctx context.Context, opts Options) (Result, error) {
	if opts.Renderer == nil {
		return Result{}, errors.New("qr renderer is required")
	}
	reporter := opts.Reporter
	if reporter == nil {
		reporter = nopReporter{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	tracker := model.NewWriterTracker()

	if len(opts.Videos) == 0 {
		reporter.Empty()
		_ = tracker.Transition(model.WriterFinalized)
		return Result{}, nil
	}

	jobs := PlanJobs(opts.Layout, opts.Videos)
	total := len(jobs)
	reporter.Start(total)

	if err := opts.Layout.CreateQRDir(); err != nil {
		return Result{}, err
	}
	f, err := opts.Layout.OpenOverview()
	if err != nil {
		return Result{}, err
	}
	defer f.Close()

	if err := tracker.Transition(model.WriterWritingHeader); err != nil {
		return Result{}, err
	}
	if err := writeHeader(f, opts.Layout, total); err != nil {
		return Result{}, err
	}

	res := Result{
		Total:        total,
		Items:        make([]ItemResult, 0, total),
		QRDir:        opts.Layout.QRDir,
		OverviewPath: opts.Layout.OverviewPath,
	}
	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := tracker.Transition(model.WriterPerItemLoop); err != nil {
			return res, err
		}

		renderErr := renderJob(opts.Renderer, job)
		res.Items = append(res.Items, ItemResult{Job: job, Err: renderErr})
		if renderErr != nil {
			res.Failed++
			reporter.ItemFailed(job, total, renderErr)
			logger.Debug("qr generation failed",
				slog.Int("index", job.Index),
				slog.String("video_id", job.VideoID),
				slog.Any("error", renderErr),
			)
			if err := writeFailure(f, job, renderErr); err != nil {
				return res, err
			}
			continue
		}
		res.Succeeded++
		reporter.ItemDone(job, total)
		if err := writeSuccess(f, job); err != nil {
			return res, err
		}
	}

	if err := f.Close(); err != nil {
		return res, fmt.Errorf("close overview %s: %w", opts.Layout.OverviewPath, err)
	}
	if err := tracker.Transition(model.WriterFinalized); err != nil {
		return res, err
	}
	reporter.Finish(res)
	logger.Info("run finished",
		slog.Int("total", res.Total),
		slog.Int("succeeded", res.Succeeded),
		slog.Int("failed", res.Failed),
	)
	return res, nil
}

// PlanJobs derives one job per video in playlist order with dense 1-based indices.
func PlanJobs(layout runstore.Layout, videos []model.Video) []model.Job {
	jobs := make([]model.Job, 0, len(videos))
	for i, v := range videos {
		idx := i + 1
		title := v.DisplayTitle(idx)
		id := v.VideoID()
		fileName := naming.FileName(idx, title)
		jobs = append(jobs, model.Job{
			Index:          idx,
			VideoID:        id,
			Title:          title,
			SanitizedTitle: naming.SanitizeTitle(title),
			FileName:       fileName,
			TargetPath:     layout.ImagePath(fileName),
			SourceURL:      model.WatchURL(id),
		})
	}
	return jobs
}

// renderJob converts a renderer panic into an item error so one bad record
// cannot end the loop.
func renderJob(r qr.Renderer, job model.Job) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("qr renderer panic: %v", p)
		}
	}()
	return r.Render(job.SourceURL, job.TargetPath)
}

func writeHeader(w io.Writer, layout runstore.Layout, total int) error {
	var b strings.Builder
	b.WriteString("YouTube Playlist QR Codes\n")
	b.WriteString(overviewRule + "\n")
	fmt.Fprintf(&b, "Created: %s\n", layout.CreatedAt.Format(config.CreatedLayout))
	fmt.Fprintf(&b, "Number of videos: %d\n\n", total)
	return writeOverview(w, b.String())
}

func writeSuccess(w io.Writer, job model.Job) error {
	return writeOverview(w, fmt.Sprintf("%02d. %s\n    URL: %s\n    QR Code: %s\n\n",
		job.Index, job.Title, job.SourceURL, job.FileName))
}

func writeFailure(w io.Writer, job model.Job, renderErr error) error {
	return writeOverview(w, fmt.Sprintf("%02d. %s\n    ERROR: %s\n\n", job.Index, job.Title, renderErr))
}

func writeOverview(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("write overview: %w", err)
	}
	return nil
}

type nopReporter struct{}

func (nopReporter) Start(int) {}
func (nopReporter) ItemDone(model.Job, int) {}
func (nopReporter) ItemFailed(model.Job, int, error) {}
func (nopReporter) Empty() {}
func (nopReporter) Finish(Result) {}
