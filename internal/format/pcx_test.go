package format

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reyco2000/vintageview/internal/raster"
)

func pcxFile(t *testing.T, hdr PCXHeader, payload []byte) []byte {
	t.Helper()

	hdr.Manufacturer = pcxMagic
	hdr.Version = 5
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, &hdr))
	require.Equal(t, pcxHeaderLen, buf.Len())
	return append(buf.Bytes(), payload...)
}

func TestDecodePCXBadMagic(t *testing.T) {
	_, err := DecodePCX([]byte{0x42, 0x00, 0x00})
	require.ErrorIs(t, err, ErrInvalidFormat)

	_, err = DecodePCX(nil)
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestDecodePCXShortHeader(t *testing.T) {
	_, err := DecodePCX([]byte{0x0A, 0x05, 0x01})
	require.ErrorIs(t, err, ErrTruncated)
}

func TestDecodePCXWindowDimensions(t *testing.T) {
	img, err := DecodePCX(pcxFile(t, PCXHeader{
		Encoding:     1,
		BitsPerPixel: 8,
		XMin:         100,
		YMin:         50,
		XMax:         739,
		YMax:         549,
		NumPlanes:    1,
		BytesPerLine: 640,
	}, nil))
	require.NoError(t, err)
	require.Equal(t, 640, img.Width)
	require.Equal(t, 500, img.Height)
	require.Len(t, img.Pix, 640*500*3)
}

func TestDecodePCXRejectsHugeDims(t *testing.T) {
	_, err := DecodePCX(pcxFile(t, PCXHeader{
		Encoding:     1,
		BitsPerPixel: 8,
		XMax:         5000,
		YMax:         5000,
		NumPlanes:    1,
		BytesPerLine: 5002,
	}, nil))
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestDecodePCXMono(t *testing.T) {
	img, err := DecodePCX(pcxFile(t, PCXHeader{
		Encoding:     1,
		BitsPerPixel: 1,
		XMax:         7,
		YMax:         0,
		NumPlanes:    1,
		BytesPerLine: 2,
	}, []byte{0xAA, 0x00}))
	require.NoError(t, err)
	require.Equal(t, 8, img.Width)
	require.Equal(t, 1, img.Channels)
	for x := 0; x < 8; x++ {
		want := byte(raster.White)
		if x%2 == 1 {
			want = raster.Black
		}
		require.Equal(t, want, img.Pix[x])
	}
}

func TestDecodePCXEGAPlanar(t *testing.T) {
	var hdr PCXHeader
	hdr.Encoding = 1
	hdr.BitsPerPixel = 1
	hdr.XMax = 7
	hdr.YMax = 0
	hdr.NumPlanes = 4
	hdr.BytesPerLine = 2
	for i := 0; i < 16; i++ {
		hdr.ColorMap[i*3] = byte(i * 16)
		hdr.ColorMap[i*3+1] = byte(i)
		hdr.ColorMap[i*3+2] = 0x77
	}

	// pixel 0 has plane bits p0=1, p1=0, p2=1, p3=0: palette index 5
	payload := []byte{
		0x80, 0x00, // plane 0
		0x00, 0x00, // plane 1
		0x80, 0x00, // plane 2
		0x00, 0x00, // plane 3
	}

	img, err := DecodePCX(pcxFile(t, hdr, payload))
	require.NoError(t, err)
	require.Equal(t, 3, img.Channels)
	require.Equal(t, []byte{5 * 16, 5, 0x77}, img.Pix[0:3])
	// remaining pixels index 0
	require.Equal(t, []byte{0, 0, 0x77}, img.Pix[3:6])
}

func TestDecodePCXNibbles(t *testing.T) {
	var hdr PCXHeader
	hdr.Encoding = 1
	hdr.BitsPerPixel = 4
	hdr.XMax = 3
	hdr.YMax = 0
	hdr.NumPlanes = 1
	hdr.BytesPerLine = 2
	for i := 0; i < 16; i++ {
		hdr.ColorMap[i*3] = byte(i)
		hdr.ColorMap[i*3+1] = byte(i * 2)
		hdr.ColorMap[i*3+2] = byte(i * 3)
	}

	img, err := DecodePCX(pcxFile(t, hdr, []byte{0x01, 0x23}))
	require.NoError(t, err)
	// upper nibble first: indexes 0, 1, 2, 3
	for x := 0; x < 4; x++ {
		require.Equal(t, []byte{byte(x), byte(x * 2), byte(x * 3)}, img.Pix[x*3:x*3+3])
	}
}

func TestDecodePCX8BitTrailerPalette(t *testing.T) {
	payload := pcxRLEEncode([]byte{0x05, 0x06})

	trailer := make([]byte, 769)
	trailer[0] = pcxPaletteMagic
	trailer[1+5*3] = 0xAB
	trailer[1+5*3+1] = 0xCD
	trailer[1+6*3+2] = 0xEF

	data := pcxFile(t, PCXHeader{
		Encoding:     1,
		BitsPerPixel: 8,
		XMax:         1,
		YMax:         0,
		NumPlanes:    1,
		BytesPerLine: 2,
	}, append(payload, trailer...))

	img, err := DecodePCX(data)
	require.NoError(t, err)
	require.Equal(t, []byte{0xAB, 0xCD, 0x00}, img.Pix[0:3])
	require.Equal(t, []byte{0x00, 0x00, 0xEF}, img.Pix[3:6])
}

func TestDecodePCX8BitGrayFallback(t *testing.T) {
	img, err := DecodePCX(pcxFile(t, PCXHeader{
		Encoding:     1,
		BitsPerPixel: 8,
		XMax:         1,
		YMax:         0,
		NumPlanes:    1,
		BytesPerLine: 2,
	}, pcxRLEEncode([]byte{0x10, 0x80})))
	require.NoError(t, err)
	require.Equal(t, []byte{0x10, 0x10, 0x10}, img.Pix[0:3])
	require.Equal(t, []byte{0x80, 0x80, 0x80}, img.Pix[3:6])
}

func TestDecodePCXRGB(t *testing.T) {
	payload := pcxRLEEncode([]byte{
		10, 20, // plane R
		30, 40, // plane G
		50, 60, // plane B
	})

	img, err := DecodePCX(pcxFile(t, PCXHeader{
		Encoding:     1,
		BitsPerPixel: 8,
		XMax:         1,
		YMax:         0,
		NumPlanes:    3,
		BytesPerLine: 2,
	}, payload))
	require.NoError(t, err)
	require.Equal(t, []byte{10, 30, 50}, img.Pix[0:3])
	require.Equal(t, []byte{20, 40, 60}, img.Pix[3:6])
}

func TestDecodePCXRunAcrossScanlines(t *testing.T) {
	// one run covers both scanlines: decoders must not assume encoder
	// resets at row boundaries
	img, err := DecodePCX(pcxFile(t, PCXHeader{
		Encoding:     1,
		BitsPerPixel: 1,
		XMax:         7,
		YMax:         1,
		NumPlanes:    1,
		BytesPerLine: 2,
	}, []byte{0xC4, 0xFF}))
	require.NoError(t, err)
	require.Equal(t, bytes.Repeat([]byte{raster.White}, 16), img.Pix)
}

func TestDecodePCXUncompressed(t *testing.T) {
	img, err := DecodePCX(pcxFile(t, PCXHeader{
		Encoding:     0,
		BitsPerPixel: 8,
		XMax:         1,
		YMax:         0,
		NumPlanes:    1,
		BytesPerLine: 2,
	}, []byte{0xC1, 0x22}))
	require.NoError(t, err)
	// bytes are taken verbatim, 0xC1 is not a run marker here
	require.Equal(t, []byte{0xC1, 0xC1, 0xC1}, img.Pix[0:3])
	require.Equal(t, []byte{0x22, 0x22, 0x22}, img.Pix[3:6])
}

func TestDecodePCXUnsupportedDepth(t *testing.T) {
	_, err := DecodePCX(pcxFile(t, PCXHeader{
		Encoding:     1,
		BitsPerPixel: 2,
		XMax:         7,
		YMax:         0,
		NumPlanes:    1,
		BytesPerLine: 2,
	}, nil))
	require.ErrorIs(t, err, ErrUnsupported)
}

func TestDecodePCXTruncatedPayload(t *testing.T) {
	// short payload decodes zero-padded, never fails
	img, err := DecodePCX(pcxFile(t, PCXHeader{
		Encoding:     1,
		BitsPerPixel: 8,
		XMax:         3,
		YMax:         3,
		NumPlanes:    1,
		BytesPerLine: 4,
	}, pcxRLEEncode([]byte{0x42})))
	require.NoError(t, err)
	require.Equal(t, []byte{0x42, 0x42, 0x42}, img.Pix[0:3])
	require.Equal(t, bytes.Repeat([]byte{0x00}, 3), img.Pix[3:6])
}
