// Copyright (c) 2025 The vintageview authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package format

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/reyco2000/vintageview/internal/raster"
)

var artFileHeader = FileHeader{
	Ext:         "art",
	Description: "AOL Art Image",
	Signatures: [][]byte{
		{0x00, 0x00},
		[]byte("ART\x00"),
		{0x01, 0x00},
	},
	DecodeFile: DecodeART,
}

var artMagicAOL = []byte("ART\x00")

// detectART names the sub-variant the decode cascade will try first.
func detectART(data []byte) Variant {
	switch {
	case len(data) >= 2 && data[0] == 0x00 && data[1] == 0x00:
		return VariantARTBitmap
	case len(data) >= 4 && bytes.Equal(data[:4], artMagicAOL):
		return VariantARTAOL
	case len(data) >= 2 && data[0] == 0x01 && data[1] == 0x00:
		return VariantARTPFS
	}
	return VariantARTGeneric
}

// Standard resolutions probed by the generic fallback. The order is load
// bearing: existing files rely on the first exact bit-count match winning.
var artFallbackDims = [][2]int{
	{320, 200},
	{640, 480},
	{640, 400},
	{800, 600},
}

// DecodeART decodes an AOL Art file. Three sub-variants are recognized by
// their leading magic, each validated and abandoned in favor of the next on
// implausible dimensions; a resolution-guessing fallback catches headerless
// files. Bit polarity is 1 = white, the opposite of MacPaint.
func DecodeART(data []byte) (*raster.Image, error) {
	if len(data) >= 2 && data[0] == 0x00 && data[1] == 0x00 {
		if img, err := decodeARTBitmap(data); err == nil {
			return img, nil
		}
	}
	if len(data) >= 4 && bytes.Equal(data[:4], artMagicAOL) {
		if img, err := decodeARTAOL(data); err == nil {
			return img, nil
		}
	}
	if len(data) >= 2 && data[0] == 0x01 && data[1] == 0x00 {
		if img, err := decodeARTPFS(data); err == nil {
			return img, nil
		}
	}
	if img, err := decodeARTGeneric(data); err == nil {
		return img, nil
	}

	// Last resort: interpret the raw bytes at a validated standard
	// resolution, provided the file holds at least one full frame of bits.
	// Bytes past the frame are ignored.
	for _, dim := range [][2]int{{320, 200}, {640, 480}} {
		w, h := dim[0], dim[1]
		if len(data) >= w*h/8 {
			return expandMono(data, w, h, true), nil
		}
	}
	return nil, fmt.Errorf("art: no plausible dimensions: %w", ErrInvalidFormat)
}

// decodeARTBitmap parses the word-aligned standard bitmap variant.
// The 16-byte header carries width at offset 2 and height at offset 6.
// Each scanline is stored with a run of pre-bytes before the pixel data.
func decodeARTBitmap(data []byte) (*raster.Image, error) {
	const headerLen = 16
	if len(data) < headerLen {
		return nil, ErrTruncated
	}
	w := int(binary.LittleEndian.Uint16(data[2:4]))
	h := int(binary.LittleEndian.Uint16(data[6:8]))
	if !raster.ValidDim(w, h) {
		return nil, ErrInvalidFormat
	}

	pixBytes := (w + 7) / 8
	rowBytes := pixBytes
	if rowBytes%2 != 0 {
		rowBytes++
	}
	preSkip := rowBytes - 8
	if preSkip < 0 {
		preSkip = 0
	}

	body := data[headerLen:]
	if len(body) < h*(preSkip+pixBytes) {
		return nil, ErrTruncated
	}

	img := raster.NewGray(w, h)
	row := make([]byte, pixBytes)
	for y := 0; y < h; y++ {
		off := y * (preSkip + pixBytes)
		copy(row, body[off+preSkip:off+preSkip+pixBytes])
		img.ExpandBits(y, row, true)
	}
	return img, nil
}

// decodeARTAOL parses the "ART\0"-signed variant: width and height follow
// the magic, and the payload starting at offset 16 is AOL-RLE compressed.
func decodeARTAOL(data []byte) (*raster.Image, error) {
	const headerLen = 16
	if len(data) < headerLen {
		return nil, ErrTruncated
	}
	w := int(binary.LittleEndian.Uint16(data[4:6]))
	h := int(binary.LittleEndian.Uint16(data[6:8]))
	if !raster.ValidDim(w, h) {
		return nil, ErrInvalidFormat
	}

	pixBytes := (w + 7) / 8
	bits := aolRLE(data[headerLen:], pixBytes*h)

	img := raster.NewGray(w, h)
	for y := 0; y < h; y++ {
		img.ExpandBits(y, bits[y*pixBytes:(y+1)*pixBytes], true)
	}
	return img, nil
}

// decodeARTPFS parses the PFS First Publisher variant: width at offset 2,
// height at offset 4, uncompressed bitmap from offset 10.
func decodeARTPFS(data []byte) (*raster.Image, error) {
	const headerLen = 10
	if len(data) < headerLen {
		return nil, ErrTruncated
	}
	w := int(binary.LittleEndian.Uint16(data[2:4]))
	h := int(binary.LittleEndian.Uint16(data[4:6]))
	if !raster.ValidDim(w, h) {
		return nil, ErrInvalidFormat
	}

	pixBytes := (w + 7) / 8
	body := data[headerLen:]
	if len(body) < pixBytes*h {
		return nil, ErrTruncated
	}
	return expandMono(body, w, h, true), nil
}

// decodeARTGeneric guesses the resolution of a headerless dump by matching
// the body's bit count against the standard display modes.
func decodeARTGeneric(data []byte) (*raster.Image, error) {
	for _, dim := range artFallbackDims {
		w, h := dim[0], dim[1]
		if len(data) == w*h/8 {
			return expandMono(data, w, h, true), nil
		}
	}
	return nil, ErrInvalidFormat
}

// expandMono unpacks a packed 1-bit bitmap with ceil(w/8)-byte rows into a
// grayscale raster, zero-padding rows past the end of the data.
func expandMono(data []byte, w, h int, onWhite bool) *raster.Image {
	pixBytes := (w + 7) / 8
	img := raster.NewGray(w, h)
	row := make([]byte, pixBytes)
	for y := 0; y < h; y++ {
		for i := range row {
			row[i] = 0
		}
		off := y * pixBytes
		if off < len(data) {
			copy(row, data[off:])
		}
		img.ExpandBits(y, row, onWhite)
	}
	return img
}
