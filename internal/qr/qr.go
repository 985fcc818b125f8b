package qr

import (
	"fmt"
	"image/color"

	"github.com/skip2/go-qrcode"

	"tubeqr/internal/config"
	"tubeqr/internal/runstore"
)

// Renderer encodes a text payload as a QR image at path.
type Renderer interface {
	Render(payload, path string) error
}

// PNGRenderer draws black-on-white PNG images with go-qrcode.
type PNGRenderer struct {
	Level      qrcode.RecoveryLevel
	ModuleSize int
}

func NewPNGRenderer() *PNGRenderer {
	cfg := config.Defaults()
	return &PNGRenderer{Level: cfg.QRLevel, ModuleSize: cfg.QRModuleSize}
}

// Encode returns the PNG bytes for payload. A negative size asks go-qrcode
// for fixed-size modules instead of a fixed image width.
func (r *PNGRenderer) Encode(payload string) ([]byte, error) {
	if payload == "" {
		return nil, fmt.Errorf("qr payload is empty")
	}
	code, err := qrcode.New(payload, r.Level)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	code.ForegroundColor = color.Black
	code.BackgroundColor = color.White

	size := r.ModuleSize
	if size <= 0 {
		size = config.QRModuleSize
	}
	png, err := code.PNG(-size)
	if err != nil {
		return nil, fmt.Errorf("render qr png: %w", err)
	}
	return png, nil
}

func (r *PNGRenderer) Render(payload, path string) error {
	png, err := r.Encode(payload)
	if err != nil {
		return err
	}
	return runstore.WriteBytes(path, png)
}
