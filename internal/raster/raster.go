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
package raster

import (
	"image"
)

// MaxDim is the rejection bound for dimensions taken from untrusted headers.
const MaxDim = 4096

// Grayscale byte values. Decoders map their native bit polarity onto these.
const (
	Black = 0x00
	White = 0xFF
)

// Image is the canonical decode output: an 8-bit-per-channel raster,
// row-major, top-to-bottom. Channels is 1 (grayscale) or 3 (RGB).
// len(Pix) == Width*Height*Channels, with no row padding.
type Image struct {
	Width    int
	Height   int
	Channels int
	Pix      []byte
}

// NewGray allocates a single-channel raster of the given size.
func NewGray(w, h int) *Image {
	return &Image{
		Width:    w,
		Height:   h,
		Channels: 1,
		Pix:      make([]byte, w*h),
	}
}

// NewRGB allocates a three-channel raster of the given size.
func NewRGB(w, h int) *Image {
	return &Image{
		Width:    w,
		Height:   h,
		Channels: 3,
		Pix:      make([]byte, w*h*3),
	}
}

// ValidDim reports whether w and h are acceptable raster dimensions.
func ValidDim(w, h int) bool {
	return w >= 1 && h >= 1 && w <= MaxDim && h <= MaxDim
}

// SetRGB writes one pixel of a three-channel raster.
func (img *Image) SetRGB(x, y int, c [3]byte) {
	off := (y*img.Width + x) * 3
	img.Pix[off] = c[0]
	img.Pix[off+1] = c[1]
	img.Pix[off+2] = c[2]
}

// Size returns the number of pixel bytes held by the raster.
func (img *Image) Size() int {
	return len(img.Pix)
}

// ToImage adapts the raster to the standard image interfaces, for onward
// encoding (PNG export) or display. Grayscale rasters map to *image.Gray,
// RGB rasters to an opaque *image.RGBA.
func (img *Image) ToImage() image.Image {
	if img.Channels == 1 {
		out := image.NewGray(image.Rect(0, 0, img.Width, img.Height))
		for y := 0; y < img.Height; y++ {
			copy(out.Pix[y*out.Stride:], img.Pix[y*img.Width:(y+1)*img.Width])
		}
		return out
	}
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			src := (y*img.Width + x) * 3
			dst := y*out.Stride + x*4
			out.Pix[dst] = img.Pix[src]
			out.Pix[dst+1] = img.Pix[src+1]
			out.Pix[dst+2] = img.Pix[src+2]
			out.Pix[dst+3] = 0xFF
		}
	}
	return out
}

// ExpandBits unpacks packed 1-bit pixel data MSB-first into row y of the
// raster, one byte per pixel, Width pixels. onWhite selects the polarity:
// MacPaint sets bits for black pixels, ART sets them for white.
func (img *Image) ExpandBits(y int, row []byte, onWhite bool) {
	set, clear := byte(Black), byte(White)
	if onWhite {
		set, clear = White, Black
	}
	off := y * img.Width
	for x := 0; x < img.Width; x++ {
		b := row[x>>3]
		if b&(0x80>>(x&7)) != 0 {
			img.Pix[off+x] = set
		} else {
			img.Pix[off+x] = clear
		}
	}
}
