package format

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/tiff"

	"github.com/stretchr/testify/require"
)

func encodeTIFF(t *testing.T, img image.Image) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, tiff.Encode(&buf, img, nil))
	return buf.Bytes()
}

func TestDecodeTIFFGray(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 4, 2))
	src.SetGray(0, 0, color.Gray{Y: 0x11})
	src.SetGray(3, 1, color.Gray{Y: 0xEE})

	img, err := DecodeTIFF(encodeTIFF(t, src))
	require.NoError(t, err)
	require.Equal(t, 4, img.Width)
	require.Equal(t, 2, img.Height)
	require.Equal(t, 1, img.Channels)
	require.Equal(t, byte(0x11), img.Pix[0])
	require.Equal(t, byte(0xEE), img.Pix[7])
}

func TestDecodeTIFFRGB(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF})
	src.SetRGBA(1, 0, color.RGBA{R: 0x40, G: 0x50, B: 0x60, A: 0xFF})

	img, err := DecodeTIFF(encodeTIFF(t, src))
	require.NoError(t, err)
	require.Equal(t, 3, img.Channels)
	require.Equal(t, []byte{0x10, 0x20, 0x30}, img.Pix[0:3])
	require.Equal(t, []byte{0x40, 0x50, 0x60}, img.Pix[3:6])
}

func TestDecodeTIFFRejectsGarbage(t *testing.T) {
	_, err := DecodeTIFF([]byte("not a tiff at all"))
	require.ErrorIs(t, err, ErrDelegated)
}
