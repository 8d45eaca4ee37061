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
	"github.com/reyco2000/vintageview/pkg/table"
)

type headers []FileHeader

// FileRegistry indexes decoders by their magic-byte signatures for sniffing
// files whose extension is missing or wrong. Each signature maps to a list of
// candidates, so two formats registering the same prefix are both kept.
type FileRegistry struct {
	table *table.PrefixTable[headers]
}

func NewFileRegistry() *FileRegistry {
	return &FileRegistry{
		table: table.New[headers](),
	}
}

func (r *FileRegistry) Add(hdr FileHeader) {
	for _, sig := range hdr.Signatures {
		hdrs, _ := r.table.Get(sig)
		r.table.Insert(sig, append(hdrs, hdr))
	}
}

// Search walks every registered signature matching a prefix of data and
// hands the candidate headers to handleHeader until it returns true.
func (r *FileRegistry) Search(data []byte, handleHeader func(hdr FileHeader) bool) {
	if r.table.Size() == 0 {
		return
	}
	r.table.Walk(data, func(hdrs headers) bool {
		for _, hdr := range hdrs {
			if handleHeader(hdr) {
				return true
			}
		}
		return false
	})
}

func BuildFileRegistry(hdrs ...FileHeader) *FileRegistry {
	r := NewFileRegistry()
	for _, hdr := range hdrs {
		r.Add(hdr)
	}
	return r
}

var defaultRegistry = BuildFileRegistry(fileHeaders...)

// Identify sniffs the decoder for data by magic bytes alone. MacPaint files
// carry no usable leading magic and are only reachable by extension.
func Identify(data []byte) (FileHeader, bool) {
	var (
		found FileHeader
		ok    bool
	)
	defaultRegistry.Search(data, func(hdr FileHeader) bool {
		found, ok = hdr, true
		return true
	})
	return found, ok
}
