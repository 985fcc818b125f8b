package qr

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/makiuchi-d/gozxing"
	gozxingqr "github.com/makiuchi-d/gozxing/qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodePNG(t *testing.T, path string) string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	require.NoError(t, err)
	res, err := gozxingqr.NewQRCodeReader().Decode(bmp, nil)
	require.NoError(t, err)
	return res.GetText()
}

func TestPNGRendererRoundTrip(t *testing.T) {
	r := NewPNGRenderer()
	dir := t.TempDir()

	for _, id := range []string{"dQw4w9WgXcQ", "unknown", "a-b_c"} {
		url := "https://www.youtube.com/watch?v=" + id
		path := filepath.Join(dir, id+".png")
		require.NoError(t, r.Render(url, path))
		assert.Equal(t, url, decodePNG(t, path))
	}
}

func TestPNGRendererModuleGeometry(t *testing.T) {
	data, err := NewPNGRenderer().Encode("https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	require.NoError(t, err)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, cfg.Width, cfg.Height)
	// Each module is 10px and the symbol carries a 4-module quiet zone on both sides.
	assert.Zero(t, cfg.Width%10)
	modules := cfg.Width / 10
	assert.Zero(t, (modules-2*4-21)%4, "module count %d is not a QR version size", modules)
}

func TestPNGRendererRejectsEmptyPayload(t *testing.T) {
	err := NewPNGRenderer().Render("", filepath.Join(t.TempDir(), "x.png"))
	assert.Error(t, err)
}

func TestPNGRendererMissingParentIsCreated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "01_x.png")
	require.NoError(t, NewPNGRenderer().Render("https://youtu.be/x", path))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}
