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
	"fmt"
	"path/filepath"
	"strings"

	"github.com/reyco2000/vintageview/internal/raster"
)

// Variant names which sub-parser would handle a file. Detect computes it
// from the magic checks alone. The exported decode entry points run their
// own inline cascade of the same magic checks and do not switch on a
// Variant value.
type Variant int

const (
	VariantUnknown Variant = iota
	VariantARTBitmap
	VariantARTAOL
	VariantARTPFS
	VariantARTGeneric
	VariantMACStandard
	VariantMACPNTG
	VariantPICPictor
	VariantPICPNTG
	VariantPCX
	VariantTIFF
)

func (v Variant) String() string {
	switch v {
	case VariantARTBitmap:
		return "art/bitmap"
	case VariantARTAOL:
		return "art/aol"
	case VariantARTPFS:
		return "art/pfs"
	case VariantARTGeneric:
		return "art/generic"
	case VariantMACStandard:
		return "mac/standard"
	case VariantMACPNTG:
		return "mac/pntg"
	case VariantPICPictor:
		return "pic/pictor"
	case VariantPICPNTG:
		return "pic/pntg"
	case VariantPCX:
		return "pcx"
	case VariantTIFF:
		return "tiff"
	}
	return "unknown"
}

// FileHeader describes one supported format: its canonical extension, the
// magic prefixes used for sniffing, and the decode entry point. Decoders are
// pure functions over the whole file contents and keep no state across
// calls, so they are safe to use from concurrent goroutines.
type FileHeader struct {
	Ext         string
	Description string
	Signatures  [][]byte
	DecodeFile  func(data []byte) (*raster.Image, error)
}

var fileHeaders = []FileHeader{
	artFileHeader,
	macFileHeader,
	picFileHeader,
	pcxFileHeader,
	tiffFileHeader,
}

// Decoders returns the registered format descriptors.
func Decoders() []FileHeader {
	return fileHeaders
}

// extAliases maps secondary extensions onto the canonical one.
var extAliases = map[string]string{
	"tiff": "tif",
}

// Ext normalizes a file name or extension to a canonical lowercase
// extension without the leading dot.
func Ext(name string) string {
	ext := strings.ToLower(name)
	if strings.ContainsAny(ext, "./") {
		ext = strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	}
	if canon, ok := extAliases[ext]; ok {
		return canon
	}
	return ext
}

// Supported reports whether files named like name have a registered decoder.
func Supported(name string) bool {
	_, err := headerFor(name)
	return err == nil
}

// Decode routes the file contents to the decoder selected by the name's
// extension. All further variant detection happens inside that decoder.
func Decode(name string, data []byte) (*raster.Image, error) {
	hdr, err := headerFor(name)
	if err != nil {
		return nil, err
	}
	return hdr.DecodeFile(data)
}

// Detect reports the variant the extension-selected decoder would try first
// for the given contents. It inspects magic bytes only and does not validate
// the file, so a decode may still fall through to a different variant.
func Detect(name string, data []byte) Variant {
	switch Ext(name) {
	case "art":
		return detectART(data)
	case "mac":
		return detectMAC(data)
	case "pic":
		return detectPIC(data)
	case "pcx":
		return VariantPCX
	case "tif":
		return VariantTIFF
	}
	return VariantUnknown
}

func headerFor(name string) (FileHeader, error) {
	ext := Ext(name)
	for _, hdr := range fileHeaders {
		if hdr.Ext == ext {
			return hdr, nil
		}
	}
	return FileHeader{}, fmt.Errorf("no decoder for extension %q: %w", ext, ErrInvalidFormat)
}
