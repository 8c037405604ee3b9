package bitmap

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/bodgit/playfield/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

var (
	white       = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	black       = color.NRGBA{0x00, 0x00, 0x00, 0xff}
	blue        = color.NRGBA{0x00, 0x2c, 0x0e, 0xff}
	red         = color.NRGBA{0xff, 0x00, 0x00, 0xff}
	transparent = color.NRGBA{0x00, 0x00, 0x00, 0x00}
)

func fixture(colors ...color.NRGBA) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, len(colors), 1))
	for x, c := range colors {
		m.SetNRGBA(x, 0, c)
	}
	return m
}

func TestOpaqueImage(t *testing.T) {
	i := New(fixture(white, black, blue, red))

	assert.Equal(t, 4, i.Width())
	assert.Equal(t, 1, i.Height())

	assert.Equal(t, sample.Sample{}, i.At(0, 0))
	assert.Equal(t, sample.Sample{Set: true}, i.At(1, 0))
	assert.Equal(t, sample.Sample{Set: true, NTSC: 0x0e, PAL: 0x2c}, i.At(2, 0))
	assert.Equal(t, sample.Sample{Set: true, Collision: true}, i.At(3, 0))
}

func TestTransparentImage(t *testing.T) {
	i := New(fixture(transparent, white, blue))

	assert.False(t, i.At(0, 0).Set)
	// With transparency in the image white is just another color
	assert.True(t, i.At(1, 0).Set)
	assert.True(t, i.At(2, 0).Set)
}

func TestSubImage(t *testing.T) {
	m := fixture(white, white, blue)
	i := New(m.SubImage(image.Rect(2, 0, 3, 1)))

	assert.Equal(t, 1, i.Width())
	assert.Equal(t, uint8(0x0e), i.At(0, 0).NTSC)
}

func TestDecodeBMP(t *testing.T) {
	b := new(bytes.Buffer)
	require.NoError(t, bmp.Encode(b, fixture(white, blue)))

	i, err := Decode(b, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, i.Width())
	assert.False(t, i.At(0, 0).Set)
	assert.Equal(t, sample.Sample{Set: true, NTSC: 0x0e, PAL: 0x2c}, i.At(1, 0))
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("not an image")), 0)
	assert.Error(t, err)
}

func TestQuantize(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			m.SetNRGBA(x, y, color.NRGBA{uint8(x * 32), uint8(y * 32), 0x80, 0xff})
		}
	}

	pm, err := Quantize(m, 4)
	require.NoError(t, err)
	assert.Equal(t, m.Bounds(), pm.Bounds())
	assert.True(t, len(pm.Palette) <= 4)

	_, err = Quantize(m, 1)
	assert.Error(t, err)
	_, err = Quantize(m, MaxColors+1)
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "in.png")

	f, err := os.Create(file)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, fixture(white, black, white)))
	require.NoError(t, f.Close())

	i, err := Load(file, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, i.Width())
	assert.True(t, i.At(1, 0).Set)

	i, err = Load(file, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, i.Width())

	_, err = Load(filepath.Join(dir, "missing.png"), 0)
	assert.True(t, os.IsNotExist(err))
}
