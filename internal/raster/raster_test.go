package raster

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGray(t *testing.T) {
	img := NewGray(10, 4)
	require.Equal(t, 1, img.Channels)
	require.Len(t, img.Pix, 40)
}

func TestNewRGB(t *testing.T) {
	img := NewRGB(10, 4)
	require.Equal(t, 3, img.Channels)
	require.Len(t, img.Pix, 120)
}

func TestValidDim(t *testing.T) {
	require.True(t, ValidDim(1, 1))
	require.True(t, ValidDim(4096, 4096))
	require.False(t, ValidDim(0, 100))
	require.False(t, ValidDim(100, 0))
	require.False(t, ValidDim(4097, 100))
	require.False(t, ValidDim(-1, 100))
}

func TestExpandBitsPolarity(t *testing.T) {
	img := NewGray(8, 2)
	img.ExpandBits(0, []byte{0x80}, true)  // set bit means white
	img.ExpandBits(1, []byte{0x80}, false) // set bit means black

	require.Equal(t, byte(White), img.Pix[0])
	require.Equal(t, byte(Black), img.Pix[1])
	require.Equal(t, byte(Black), img.Pix[8])
	require.Equal(t, byte(White), img.Pix[9])
}

func TestSetRGB(t *testing.T) {
	img := NewRGB(2, 2)
	img.SetRGB(1, 1, [3]byte{1, 2, 3})
	require.Equal(t, []byte{1, 2, 3}, img.Pix[9:12])
}

func TestToImageGray(t *testing.T) {
	img := NewGray(3, 2)
	img.Pix[4] = 0x7F

	out, ok := img.ToImage().(*image.Gray)
	require.True(t, ok)
	require.Equal(t, 3, out.Bounds().Dx())
	require.Equal(t, 2, out.Bounds().Dy())
	require.Equal(t, byte(0x7F), out.Pix[1*out.Stride+1])
}

func TestToImageRGB(t *testing.T) {
	img := NewRGB(2, 1)
	img.SetRGB(1, 0, [3]byte{0xAA, 0xBB, 0xCC})

	out, ok := img.ToImage().(*image.RGBA)
	require.True(t, ok)
	r, g, b, a := out.At(1, 0).RGBA()
	require.Equal(t, uint32(0xAA), r>>8)
	require.Equal(t, uint32(0xBB), g>>8)
	require.Equal(t, uint32(0xCC), b>>8)
	require.Equal(t, uint32(0xFF), a>>8)
}

func TestEGAPalette(t *testing.T) {
	p := EGAPalette()
	require.Len(t, p, 16)
	require.Equal(t, [3]byte{0x00, 0x00, 0x00}, p[0])
	require.Equal(t, [3]byte{0x00, 0x00, 0xAA}, p[1])
	require.Equal(t, [3]byte{0xFF, 0xFF, 0xFF}, p[15])
}

func TestGrayRamp(t *testing.T) {
	p := GrayRamp()
	require.Len(t, p, 256)
	require.Equal(t, [3]byte{0x80, 0x80, 0x80}, p[0x80])
}

func TestReadPaletteScaling(t *testing.T) {
	p := ReadPalette([]byte{63, 31, 0}, 1, true)
	require.Equal(t, [3]byte{255, 125, 0}, p[0])

	// 8-bit components pass through untouched
	p = ReadPalette([]byte{200, 100, 50}, 1, false)
	require.Equal(t, [3]byte{200, 100, 50}, p[0])
}

func TestReadPaletteShortData(t *testing.T) {
	p := ReadPalette([]byte{1, 2, 3}, 16, false)
	require.Len(t, p, 16)
	require.Equal(t, [3]byte{1, 2, 3}, p[0])
	require.Equal(t, [3]byte{}, p[1])
}

func TestPaletteLookupOutOfRange(t *testing.T) {
	p := EGAPalette()
	require.Equal(t, [3]byte{}, p.Lookup(-1))
	require.Equal(t, [3]byte{}, p.Lookup(16))
}
