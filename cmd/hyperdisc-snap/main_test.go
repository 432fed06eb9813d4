package main

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_WritesPNGAndSVG(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "disc.png")
	svgOut := filepath.Join(dir, "disc.svg")

	var logs bytes.Buffer
	err := run([]string{"-p", "4", "-q", "6", "-frames", "3", "-size", "64", "-dx", "0.01",
		"-out", out, "-svg", svgOut}, &logs)
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "{4,6}:")
	assert.Contains(t, logs.String(), "P: 4, Q: 6, Avg:")

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 64), img.Bounds())
	assert.Equal(t, color.RGBA{A: 255}, color.RGBAModel.Convert(img.At(0, 0)))

	data, err := os.ReadFile(svgOut)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<?xml"))
	assert.Contains(t, string(data), "<path d='M")
}

func TestRun_ImageDirectory(t *testing.T) {
	dir := t.TempDir()
	for name, c := range map[string]color.RGBA{
		"a.png": {R: 255, A: 255},
		"b.png": {G: 255, A: 255},
	} {
		img := image.NewRGBA(image.Rect(0, 0, 4, 4))
		for i := 0; i < len(img.Pix); i += 4 {
			img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
		}
		var buf bytes.Buffer
		require.NoError(t, png.Encode(&buf, img))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0o644))
	}

	out := filepath.Join(t.TempDir(), "green.png")
	var logs bytes.Buffer
	require.NoError(t, run([]string{"-image", "1", "-size", "41", "-out", out, dir}, &logs))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{G: 255, A: 255}, color.RGBAModel.Convert(img.At(20, 20)))
}

func TestRun_Errors(t *testing.T) {
	var logs bytes.Buffer
	err := run(nil, &logs)
	assert.True(t, errors.Is(err, errNoOutput))

	err = run([]string{"-frames", "0", "-out", "x.png"}, &logs)
	assert.Error(t, err)

	err = run([]string{"-bogus"}, &logs)
	assert.Error(t, err)

	err = run([]string{"-out", "x.png", filepath.Join(t.TempDir(), "missing")}, &logs)
	assert.Error(t, err)
}
