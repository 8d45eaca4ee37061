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
	"image"

	"golang.org/x/image/tiff"

	"github.com/reyco2000/vintageview/internal/raster"
)

const (
	tiffHeaderLittle = "\x49\x49\x2A\x00"
	tiffHeaderBig    = "\x4D\x4D\x00\x2A"
)

var tiffFileHeader = FileHeader{
	Ext:         "tif",
	Description: "Tagged Image File Format",
	Signatures: [][]byte{
		[]byte(tiffHeaderLittle),
		[]byte(tiffHeaderBig),
	},
	DecodeFile: DecodeTIFF,
}

// DecodeTIFF delegates to the x/image TIFF decoder and converts the result
// into the canonical raster: sources decoded as 8-bit *image.Gray stay
// single-channel, anything else (paletted, RGBA, 16-bit gray, ...) is
// flattened to RGB.
func DecodeTIFF(data []byte) (*raster.Image, error) {
	src, err := tiff.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("tiff: %v: %w", err, ErrDelegated)
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if !raster.ValidDim(w, h) {
		return nil, fmt.Errorf("tiff: dimensions %dx%d out of range: %w", w, h, ErrInvalidFormat)
	}

	if gray, ok := src.(*image.Gray); ok {
		img := raster.NewGray(w, h)
		for y := 0; y < h; y++ {
			copy(img.Pix[y*w:], gray.Pix[y*gray.Stride:y*gray.Stride+w])
		}
		return img, nil
	}

	img := raster.NewRGB(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			img.SetRGB(x, y, [3]byte{byte(r >> 8), byte(g >> 8), byte(b >> 8)})
		}
	}
	return img, nil
}
