package runstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tubeqr/internal/config"
)

// Layout is the fixed set of paths of one generation run. Every file the
// run writes lives under OutputRoot.
type Layout struct {
	Timestamp    string
	CreatedAt    time.Time
	OutputRoot   string
	QRDir        string
	OverviewPath string
}

// NewLayout derives the run paths from an explicit base directory and clock value.
func NewLayout(baseDir string, now time.Time) (Layout, error) {
	return NewLayoutWithConfig(baseDir, now, config.Defaults())
}

func NewLayoutWithConfig(baseDir string, now time.Time, cfg config.Config) (Layout, error) {
	base := strings.TrimSpace(baseDir)
	if base == "" {
		return Layout{}, fmt.Errorf("base directory is required")
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return Layout{}, fmt.Errorf("resolve base directory %s: %w", base, err)
	}
	ts := now.Format(config.RunTimestampLayout)
	root := filepath.Join(abs, cfg.OutputDirName, cfg.RunDirPrefix+ts)
	return Layout{
		Timestamp:    ts,
		CreatedAt:    now,
		OutputRoot:   root,
		QRDir:        filepath.Join(root, cfg.QRDirName),
		OverviewPath: filepath.Join(root, cfg.OverviewName),
	}, nil
}

func (l Layout) CreateRunDir() error {
	return Mkdir(l.OutputRoot)
}

func (l Layout) CreateQRDir() error {
	return Mkdir(l.QRDir)
}

// ImagePath joins a generated file name onto the QR directory.
func (l Layout) ImagePath(fileName string) string {
	return filepath.Join(l.QRDir, fileName)
}

// OpenOverview truncates and opens the overview file for writing.
func (l Layout) OpenOverview() (*os.File, error) {
	f, err := os.OpenFile(l.OverviewPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open overview %s: %w", l.OverviewPath, err)
	}
	return f, nil
}
