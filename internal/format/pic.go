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
	"encoding/binary"
	"fmt"

	"github.com/reyco2000/vintageview/internal/raster"
)

var picFileHeader = FileHeader{
	Ext:         "pic",
	Description: "PICtor Image",
	Signatures: [][]byte{
		{0x34, 0x12},
	},
	DecodeFile: DecodePIC,
}

const picHeaderLen = 17

var pictTag = []byte("PICT")

// detectPIC distinguishes the Macintosh PNTG container from a PICtor file.
func detectPIC(data []byte) Variant {
	if hasTagInPrefix(data, pntgTag) || hasTagInPrefix(data, pictTag) {
		return VariantPICPNTG
	}
	return VariantPICPictor
}

// DecodePIC decodes a PICtor/PNTG file. Macintosh containers carrying a
// PNTG or PICT tag reuse the MacPaint geometry and payload layout; files
// with the 0x1234 marker are PICtor proper. Anything else is read as a raw
// bitmap at a guessed standard resolution.
func DecodePIC(data []byte) (*raster.Image, error) {
	if hasTagInPrefix(data, pntgTag) || hasTagInPrefix(data, pictTag) {
		if len(data) < macHeaderLen {
			return nil, fmt.Errorf("pic: file shorter than header: %w", ErrTruncated)
		}
		return decodeMacBody(data, pntgDataStart), nil
	}
	if len(data) >= 2 && data[0] == 0x34 && data[1] == 0x12 {
		return decodePictor(data)
	}

	// No signature at all: best effort on the raw bytes.
	for _, dim := range artFallbackDims {
		w, h := dim[0], dim[1]
		if len(data) >= w*h/8 {
			return expandMono(data, w, h, false), nil
		}
	}
	return nil, fmt.Errorf("pic: no plausible dimensions: %w", ErrInvalidFormat)
}

// decodePictor parses a PICtor file: 17-byte header, optional embedded
// palette with 6-bit components, PICtor-RLE payload.
func decodePictor(data []byte) (*raster.Image, error) {
	if len(data) < picHeaderLen {
		return nil, fmt.Errorf("pic: file shorter than header: %w", ErrTruncated)
	}
	w := int(binary.LittleEndian.Uint16(data[2:4]))
	h := int(binary.LittleEndian.Uint16(data[4:6]))
	bpp := int(data[6])
	if !raster.ValidDim(w, h) {
		return nil, fmt.Errorf("pic: dimensions %dx%d out of range: %w", w, h, ErrInvalidFormat)
	}

	var pal raster.Palette
	payload := data[picHeaderLen:]

	switch bpp {
	case 1:
		// no palette
	case 4:
		pal = raster.EGAPalette()
		if p, rest, ok := embeddedPalette(payload, 16); ok {
			pal, payload = p, rest
		}
	case 8:
		pal = raster.GrayRamp()
		if p, rest, ok := embeddedPalette(payload, 256); ok {
			pal, payload = p, rest
		}
	default:
		return nil, fmt.Errorf("pic: %d bpp: %w", bpp, ErrUnsupported)
	}

	rowBytes := (w*bpp + 7) / 8
	bits := picRLE(payload, rowBytes*h)

	switch bpp {
	case 1:
		img := raster.NewGray(w, h)
		for y := 0; y < h; y++ {
			img.ExpandBits(y, bits[y*rowBytes:(y+1)*rowBytes], false)
		}
		return img, nil
	case 4:
		img := raster.NewRGB(w, h)
		for y := 0; y < h; y++ {
			row := bits[y*rowBytes:]
			for x := 0; x < w; x++ {
				b := row[x/2]
				idx := int(b >> 4)
				if x%2 == 1 {
					idx = int(b & 0x0F)
				}
				img.SetRGB(x, y, pal.Lookup(idx))
			}
		}
		return img, nil
	default: // 8
		img := raster.NewRGB(w, h)
		for y := 0; y < h; y++ {
			row := bits[y*rowBytes:]
			for x := 0; x < w; x++ {
				img.SetRGB(x, y, pal.Lookup(int(row[x])))
			}
		}
		return img, nil
	}
}

// embeddedPalette tries to read an n-entry palette with 6-bit components
// from the head of the payload. Presence is probed by size and component
// range, since the header does not flag it.
func embeddedPalette(payload []byte, n int) (raster.Palette, []byte, bool) {
	size := n * 3
	if len(payload) < size {
		return nil, nil, false
	}
	for _, c := range payload[:size] {
		if c > 0x3F {
			return nil, nil, false
		}
	}
	return raster.ReadPalette(payload[:size], n, true), payload[size:], true
}
