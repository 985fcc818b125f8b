package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tubeqr/internal/batch"
	"tubeqr/internal/model"
	"tubeqr/internal/runstore"
)

const bannerWidth = 60

var (
	promptLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	mutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// consoleStyles binds the palette to one writer so redirected output stays plain.
type consoleStyles struct {
	title lipgloss.Style
	muted lipgloss.Style
	warn  lipgloss.Style
	err   lipgloss.Style
	ok    lipgloss.Style
}

func newConsoleStyles(out io.Writer) consoleStyles {
	r := lipgloss.NewRenderer(out)
	return consoleStyles{
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		muted: r.NewStyle().Foreground(lipgloss.Color("245")),
		warn:  r.NewStyle().Foreground(lipgloss.Color("214")),
		err:   r.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		ok:    r.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	}
}

func printRule(out io.Writer) {
	fmt.Fprintln(out, strings.Repeat("=", bannerWidth))
}

func printBanner(out io.Writer, st consoleStyles) {
	fmt.Fprintln(out)
	printRule(out)
	fmt.Fprintln(out, st.title.Render("TubeQR - YouTube Playlist QR Code Generator"))
	printRule(out)
}

// consoleReporter prints per-item progress lines for a batch run.
type consoleReporter struct {
	out io.Writer
	st  consoleStyles
}

func newConsoleReporter(out io.Writer, st consoleStyles) *consoleReporter {
	return &consoleReporter{out: out, st: st}
}

func (r *consoleReporter) Start(int) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "Generating QR codes...")
}

func (r *consoleReporter) ItemDone(job model.Job, total int) {
	fmt.Fprintf(r.out, "  %s [%02d/%d] %s\n", r.st.ok.Render("ok"), job.Index, total, job.FileName)
}

func (r *consoleReporter) ItemFailed(job model.Job, total int, err error) {
	fmt.Fprintf(r.out, "  %s [%02d/%d] Error with %s: %v\n", r.st.err.Render("failed"), job.Index, total, job.Title, err)
}

func (r *consoleReporter) Empty() {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.st.warn.Render("No videos found."))
}

func (r *consoleReporter) Finish(res batch.Result) {
	fmt.Fprintln(r.out)
	if res.Failed == 0 {
		fmt.Fprintln(r.out, r.st.ok.Render("All QR codes have been successfully created!"))
	} else {
		fmt.Fprintln(r.out, r.st.warn.Render(fmt.Sprintf("%d of %d QR codes created, %d failed.", res.Succeeded, res.Total, res.Failed)))
	}
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "Output:")
	if images, err := runstore.ListFiles(res.QRDir); err == nil {
		fmt.Fprintf(r.out, "   - QR Codes: %s (%d image(s))\n", res.QRDir, len(images))
	} else {
		fmt.Fprintf(r.out, "   - QR Codes: %s\n", res.QRDir)
	}
	fmt.Fprintf(r.out, "   - Overview: %s\n", res.OverviewPath)
	fmt.Fprintln(r.out)
	printRule(r.out)
	fmt.Fprintln(r.out, r.st.title.Render("Program completed!"))
	printRule(r.out)
	fmt.Fprintln(r.out)
}
