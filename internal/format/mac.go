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
	"fmt"

	"github.com/reyco2000/vintageview/internal/raster"
)

var macFileHeader = FileHeader{
	Ext:         "mac",
	Description: "MacPaint Image",
	DecodeFile:  DecodeMAC,
}

// MacPaint geometry is fixed: every file decodes to 576x720 monochrome,
// 72 packed bytes per scanline, regardless of what any header claims.
const (
	macWidth    = 576
	macHeight   = 720
	macRowBytes = macWidth / 8

	macHeaderLen  = 512
	pntgDataStart = 0x280
)

var pntgTag = []byte("PNTG")

// detectMAC distinguishes the PNTG container from a plain MacPaint file.
func detectMAC(data []byte) Variant {
	if hasTagInPrefix(data, pntgTag) {
		return VariantMACPNTG
	}
	return VariantMACStandard
}

// hasTagInPrefix reports whether tag occurs anywhere in the first 100 bytes.
func hasTagInPrefix(data, tag []byte) bool {
	prefix := data
	if len(prefix) > 100 {
		prefix = prefix[:100]
	}
	return bytes.Contains(prefix, tag)
}

// DecodeMAC decodes a MacPaint file. The PNTG container is recognized by its
// type tag near the start of the file; its recorded dimensions are ignored
// since they are reliably wrong. Bit polarity is 1 = black.
func DecodeMAC(data []byte) (*raster.Image, error) {
	if len(data) < macHeaderLen {
		return nil, fmt.Errorf("mac: file shorter than header: %w", ErrTruncated)
	}
	start := macHeaderLen
	if detectMAC(data) == VariantMACPNTG {
		// 64-byte filename, 64 bytes of extra header, then the 512-byte
		// pattern table. The patterns are skipped, never interpreted.
		start = pntgDataStart
	}
	return decodeMacBody(data, start), nil
}

// decodeMacBody expands the pixel payload beginning at start into the fixed
// MacPaint raster. Almost every file is PackBits compressed; the rare
// uncompressed dump is recognized by its exact body size.
func decodeMacBody(data []byte, start int) *raster.Image {
	var body []byte
	if start < len(data) {
		body = data[start:]
	}

	const packedLen = macRowBytes * macHeight

	var bits []byte
	if len(body) > 0 && body[0] <= 128 && len(body) == packedLen {
		bits = body
	} else {
		bits = unpackBits(body, packedLen)
	}

	img := raster.NewGray(macWidth, macHeight)
	for y := 0; y < macHeight; y++ {
		img.ExpandBits(y, bits[y*macRowBytes:(y+1)*macRowBytes], false)
	}
	return img
}
