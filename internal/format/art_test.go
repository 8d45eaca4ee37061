package format

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reyco2000/vintageview/internal/raster"
)

func artBitmapFile(t *testing.T, w, h int, rows [][]byte) []byte {
	t.Helper()

	pixBytes := (w + 7) / 8
	rowBytes := pixBytes
	if rowBytes%2 != 0 {
		rowBytes++
	}
	preSkip := rowBytes - 8
	if preSkip < 0 {
		preSkip = 0
	}

	data := make([]byte, 16)
	binary.LittleEndian.PutUint16(data[2:], uint16(w))
	binary.LittleEndian.PutUint16(data[6:], uint16(h))
	for _, row := range rows {
		require.Len(t, row, pixBytes)
		data = append(data, make([]byte, preSkip)...)
		data = append(data, row...)
	}
	return data
}

func TestDecodeARTBitmap(t *testing.T) {
	img, err := DecodeART(artBitmapFile(t, 16, 2, [][]byte{
		{0xFF, 0xFF},
		{0x00, 0x00},
	}))
	require.NoError(t, err)
	require.Equal(t, 16, img.Width)
	require.Equal(t, 2, img.Height)
	require.Equal(t, 1, img.Channels)
	require.Len(t, img.Pix, 16*2)

	// set bits are white, clear bits black
	for x := 0; x < 16; x++ {
		require.Equal(t, byte(raster.White), img.Pix[x])
		require.Equal(t, byte(raster.Black), img.Pix[16+x])
	}
}

func TestDecodeARTBitmapPreSkip(t *testing.T) {
	// 96 pixels: 12 pixel bytes per row, stored behind 4 bytes of pre-skip
	img, err := DecodeART(artBitmapFile(t, 96, 1, [][]byte{
		{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
	}))
	require.NoError(t, err)
	require.Equal(t, 96, img.Width)
	for x := 0; x < 96; x++ {
		require.Equal(t, byte(raster.White), img.Pix[x])
	}
}

func TestDecodeARTBitmapRejectsHugeDims(t *testing.T) {
	data := make([]byte, 16)
	binary.LittleEndian.PutUint16(data[2:], 5000)
	binary.LittleEndian.PutUint16(data[6:], 5000)

	_, err := DecodeART(data)
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestDecodeARTAOL(t *testing.T) {
	data := append([]byte("ART\x00"), make([]byte, 12)...)
	binary.LittleEndian.PutUint16(data[4:], 16)
	binary.LittleEndian.PutUint16(data[6:], 2)
	// run of four 0xFF covers both two-byte rows
	data = append(data, 0x84, 0xFF)

	img, err := DecodeART(data)
	require.NoError(t, err)
	require.Equal(t, 16, img.Width)
	require.Equal(t, 2, img.Height)
	for _, px := range img.Pix {
		require.Equal(t, byte(raster.White), px)
	}
}

func TestDecodeARTPFS(t *testing.T) {
	data := make([]byte, 10)
	data[0] = 0x01
	binary.LittleEndian.PutUint16(data[2:], 8)
	binary.LittleEndian.PutUint16(data[4:], 2)
	data = append(data, 0xF0, 0x0F)

	img, err := DecodeART(data)
	require.NoError(t, err)
	require.Equal(t, 8, img.Width)
	require.Equal(t, 2, img.Height)
	require.Equal(t, byte(raster.White), img.Pix[0])
	require.Equal(t, byte(raster.Black), img.Pix[7])
	require.Equal(t, byte(raster.Black), img.Pix[8])
	require.Equal(t, byte(raster.White), img.Pix[15])
}

func TestDecodeARTGenericFallback(t *testing.T) {
	// headerless dump whose bit count matches 320x200 exactly
	data := make([]byte, 320*200/8)
	data[0] = 0xFF

	img, err := DecodeART(data)
	require.NoError(t, err)
	require.Equal(t, 320, img.Width)
	require.Equal(t, 200, img.Height)
}

func TestDecodeARTAllZeroBody(t *testing.T) {
	// decodes without error to an all-black raster (0 = black for ART)
	img, err := DecodeART(make([]byte, 320*200/8))
	require.NoError(t, err)
	require.Equal(t, bytes.Repeat([]byte{raster.Black}, len(img.Pix)), img.Pix)
}

func TestDecodeARTInvalid(t *testing.T) {
	_, err := DecodeART([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestDetectART(t *testing.T) {
	require.Equal(t, VariantARTBitmap, detectART([]byte{0x00, 0x00, 0x01}))
	require.Equal(t, VariantARTAOL, detectART([]byte("ART\x00xxxx")))
	require.Equal(t, VariantARTPFS, detectART([]byte{0x01, 0x00, 0x02}))
	require.Equal(t, VariantARTGeneric, detectART([]byte{0x42}))
}
