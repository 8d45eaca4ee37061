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

// Palette is an ordered table of RGB triplets, 16 or 256 entries depending
// on the pixel mode. It is built once per decode and discarded afterwards.
type Palette [][3]byte

// egaColors is the fixed 16-color table of IBM's Enhanced Graphics Adapter,
// used when a 16-color file carries no palette of its own.
var egaColors = [16][3]byte{
	{0x00, 0x00, 0x00}, //  0 black
	{0x00, 0x00, 0xAA}, //  1 blue
	{0x00, 0xAA, 0x00}, //  2 green
	{0x00, 0xAA, 0xAA}, //  3 cyan
	{0xAA, 0x00, 0x00}, //  4 red
	{0xAA, 0x00, 0xAA}, //  5 magenta
	{0xAA, 0x55, 0x00}, //  6 brown
	{0xAA, 0xAA, 0xAA}, //  7 light gray
	{0x55, 0x55, 0x55}, //  8 gray
	{0x55, 0x55, 0xFF}, //  9 light blue
	{0x55, 0xFF, 0x55}, // 10 light green
	{0x55, 0xFF, 0xFF}, // 11 light cyan
	{0xFF, 0x55, 0x55}, // 12 light red
	{0xFF, 0x55, 0xFF}, // 13 light magenta
	{0xFF, 0xFF, 0x55}, // 14 yellow
	{0xFF, 0xFF, 0xFF}, // 15 white
}

// EGAPalette returns a fresh copy of the built-in EGA table.
func EGAPalette() Palette {
	p := make(Palette, 16)
	copy(p, egaColors[:])
	return p
}

// GrayRamp returns the identity 256-entry grayscale palette, the fallback
// for 8-bit files that omit their trailer palette.
func GrayRamp() Palette {
	p := make(Palette, 256)
	for i := range p {
		v := byte(i)
		p[i] = [3]byte{v, v, v}
	}
	return p
}

// ReadPalette parses n RGB triplets from data. When scale6bit is set the
// components are 6-bit VGA DAC values and are widened to 8 bits with
// c8 = c6*255/63. Missing entries read as black.
func ReadPalette(data []byte, n int, scale6bit bool) Palette {
	p := make(Palette, n)
	for i := 0; i < n; i++ {
		off := i * 3
		if off+3 > len(data) {
			break
		}
		c := [3]byte{data[off], data[off+1], data[off+2]}
		if scale6bit {
			for j := range c {
				c[j] = scale6to8(c[j])
			}
		}
		p[i] = c
	}
	return p
}

func scale6to8(c byte) byte {
	if c > 63 {
		c = 63
	}
	return byte(int(c) * 255 / 63)
}

// Lookup returns the palette entry for idx, black when out of range.
func (p Palette) Lookup(idx int) [3]byte {
	if idx < 0 || idx >= len(p) {
		return [3]byte{}
	}
	return p[idx]
}
