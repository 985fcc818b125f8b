package discovery

import (
	"os"
	"path/filepath"
	"strings"

	"tubeqr/internal/config"
	"tubeqr/internal/model"
	"tubeqr/internal/qr"
	"tubeqr/internal/runstore"
	"tubeqr/internal/ytdlp"
)

type DoctorOptions struct {
	// WorkDir is where the output root would be created. Defaults to ".".
	WorkDir string
}

type DoctorResult struct {
	OK     bool          `json:"ok"`
	Checks []DoctorCheck `json:"checks"`
}

type DoctorCheck struct {
	Name    string `json:"name"`
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

func Doctor(opts DoctorOptions) (DoctorResult, error) {
	cfg := config.Defaults()
	workDir := strings.TrimSpace(opts.WorkDir)
	if workDir == "" {
		workDir = "."
	}

	checks := make([]DoctorCheck, 0, 3)
	dep := ytdlp.DependencyStatus()
	checks = append(checks, DoctorCheck{
		Name:    "dependency:yt-dlp",
		OK:      dep.YTDLPFound,
		Message: dependencyMessage(dep.YTDLPFound, dep.YTDLPPath, cfg.ExtractorBin),
	})

	outOK, outMessage := ensureWritableDir(filepath.Join(workDir, cfg.OutputDirName))
	checks = append(checks, DoctorCheck{
		Name:    "directory:output",
		OK:      outOK,
		Message: outMessage,
	})

	encOK, encMessage := checkEncoder()
	checks = append(checks, DoctorCheck{
		Name:    "encoder:qr",
		OK:      encOK,
		Message: encMessage,
	})

	ok := true
	for _, c := range checks {
		if !c.OK {
			ok = false
			break
		}
	}

	return DoctorResult{OK: ok, Checks: checks}, nil
}

func dependencyMessage(ok bool, path, name string) string {
	if ok {
		return name + " found at " + path
	}
	return name + " not found on PATH (install it with: pip install yt-dlp)"
}

func ensureWritableDir(path string) (bool, string) {
	if strings.TrimSpace(path) == "" {
		return false, "empty path"
	}
	if err := runstore.Mkdir(path); err != nil {
		return false, err.Error()
	}
	f, err := os.CreateTemp(path, "tubeqr-check-*.tmp")
	if err != nil {
		return false, err.Error()
	}
	_ = f.Close()
	_ = os.Remove(f.Name())
	return true, "writable"
}

func checkEncoder() (bool, string) {
	png, err := qr.NewPNGRenderer().Encode(model.WatchURL("dQw4w9WgXcQ"))
	if err != nil {
		return false, err.Error()
	}
	if len(png) == 0 {
		return false, "encoder produced no data"
	}
	return true, "png encoding works"
}
