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

var pcxFileHeader = FileHeader{
	Ext:         "pcx",
	Description: "PC Paintbrush Image",
	Signatures: [][]byte{
		{0x0A},
	},
	DecodeFile: DecodePCX,
}

const (
	pcxMagic        = 0x0A
	pcxHeaderLen    = 128
	pcxPaletteMagic = 0x0C
)

// PCXHeader is the ZSoft PCX file header (128 bytes, little-endian).
type PCXHeader struct {
	Manufacturer byte // must be 0x0A
	Version      byte
	Encoding     byte // 0 uncompressed, 1 RLE
	BitsPerPixel byte // per plane: 1, 2, 4 or 8
	XMin         uint16
	YMin         uint16
	XMax         uint16
	YMax         uint16
	HRes         uint16
	VRes         uint16
	ColorMap     [48]byte // 16-color EGA palette
	Reserved     byte
	NumPlanes    byte   // 1, 3 or 4
	BytesPerLine uint16 // per plane, always even
	PaletteType  uint16
	HScreenSize  uint16
	VScreenSize  uint16
	Filler       [54]byte
}

// DecodePCX decodes a PC Paintbrush file. Five pixel modes are implemented:
// 1-bit monochrome, 4-plane EGA, 4-bit packed nibbles, 8-bit palette indexed
// and 24-bit planar RGB. Short payloads decode zero-padded rather than fail.
func DecodePCX(data []byte) (*raster.Image, error) {
	if len(data) < 1 || data[0] != pcxMagic {
		return nil, fmt.Errorf("pcx: bad manufacturer byte: %w", ErrInvalidFormat)
	}
	if len(data) < pcxHeaderLen {
		return nil, fmt.Errorf("pcx: file shorter than header: %w", ErrTruncated)
	}

	var hdr PCXHeader
	if err := binary.Read(bytes.NewReader(data[:pcxHeaderLen]), binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("pcx: failed to parse header: %w", err)
	}

	w := int(hdr.XMax) - int(hdr.XMin) + 1
	h := int(hdr.YMax) - int(hdr.YMin) + 1
	if !raster.ValidDim(w, h) {
		return nil, fmt.Errorf("pcx: dimensions %dx%d out of range: %w", w, h, ErrInvalidFormat)
	}

	bpp := int(hdr.BitsPerPixel)
	planes := int(hdr.NumPlanes)
	stride := int(hdr.BytesPerLine)
	if stride < (w*bpp+7)/8 {
		stride = (w*bpp + 7) / 8
		if stride%2 != 0 {
			stride++
		}
	}

	// One decode over the whole payload: RLE runs are allowed to span
	// scanline boundaries, so output position is the only codec state.
	payload := data[pcxHeaderLen:]
	want := stride * planes * h
	var bits []byte
	if hdr.Encoding == 0 {
		bits = make([]byte, want)
		copy(bits, payload)
	} else {
		bits = pcxRLE(payload, want)
	}

	lineStride := stride * planes
	switch {
	case bpp == 1 && planes == 1:
		img := raster.NewGray(w, h)
		for y := 0; y < h; y++ {
			img.ExpandBits(y, bits[y*lineStride:], true)
		}
		return img, nil

	case bpp == 1 && planes == 4:
		return assemblePCXPlanar(bits, w, h, stride, headerPalette(&hdr)), nil

	case bpp == 4 && planes == 1:
		return assemblePCXNibbles(bits, w, h, stride, headerPalette(&hdr)), nil

	case bpp == 8 && planes == 1:
		return assemblePCXIndexed(bits, w, h, stride, trailerPalette(data)), nil

	case bpp == 8 && planes == 3:
		return assemblePCXRGB(bits, w, h, stride), nil
	}
	return nil, fmt.Errorf("pcx: %d bpp with %d planes: %w", bpp, planes, ErrUnsupported)
}

// headerPalette reads the 16-color table stored inside the header.
func headerPalette(hdr *PCXHeader) raster.Palette {
	return raster.ReadPalette(hdr.ColorMap[:], 16, false)
}

// trailerPalette locates the optional 256-color palette at the tail of an
// 8-bit file: the last 769 bytes start with a 0x0C marker when present.
// Files without it get a grayscale ramp.
func trailerPalette(data []byte) raster.Palette {
	if len(data) >= 769 && data[len(data)-769] == pcxPaletteMagic {
		return raster.ReadPalette(data[len(data)-768:], 256, false)
	}
	return raster.GrayRamp()
}

// assemblePCXPlanar combines one bit from each of the four EGA planes into a
// palette index per pixel.
func assemblePCXPlanar(bits []byte, w, h, stride int, pal raster.Palette) *raster.Image {
	img := raster.NewRGB(w, h)
	lineStride := stride * 4
	for y := 0; y < h; y++ {
		line := bits[y*lineStride:]
		for x := 0; x < w; x++ {
			shift := 7 - (x & 7)
			idx := 0
			for p := 0; p < 4; p++ {
				bit := (line[p*stride+x/8] >> shift) & 1
				idx |= int(bit) << p
			}
			img.SetRGB(x, y, pal.Lookup(idx))
		}
	}
	return img
}

// assemblePCXNibbles unpacks two palette indexes per byte, upper nibble
// first.
func assemblePCXNibbles(bits []byte, w, h, stride int, pal raster.Palette) *raster.Image {
	img := raster.NewRGB(w, h)
	for y := 0; y < h; y++ {
		line := bits[y*stride:]
		for x := 0; x < w; x++ {
			b := line[x/2]
			idx := int(b >> 4)
			if x%2 == 1 {
				idx = int(b & 0x0F)
			}
			img.SetRGB(x, y, pal.Lookup(idx))
		}
	}
	return img
}

// assemblePCXIndexed maps each payload byte through the 256-color palette.
func assemblePCXIndexed(bits []byte, w, h, stride int, pal raster.Palette) *raster.Image {
	img := raster.NewRGB(w, h)
	for y := 0; y < h; y++ {
		line := bits[y*stride:]
		for x := 0; x < w; x++ {
			img.SetRGB(x, y, pal.Lookup(int(line[x])))
		}
	}
	return img
}

// assemblePCXRGB interleaves the three color planes of a scanline into
// packed RGB pixels. Bytes past the image width are alignment padding.
func assemblePCXRGB(bits []byte, w, h, stride int) *raster.Image {
	img := raster.NewRGB(w, h)
	lineStride := stride * 3
	for y := 0; y < h; y++ {
		line := bits[y*lineStride:]
		for x := 0; x < w; x++ {
			img.SetRGB(x, y, [3]byte{line[x], line[stride+x], line[2*stride+x]})
		}
	}
	return img
}
