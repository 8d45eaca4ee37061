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
package gallery

import (
	"bytes"
	"fmt"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/reyco2000/vintageview/internal/format"
	"github.com/reyco2000/vintageview/internal/logger"
	"github.com/reyco2000/vintageview/pkg/pbar"
	utilio "github.com/reyco2000/vintageview/pkg/util/io"
	utilos "github.com/reyco2000/vintageview/pkg/util/os"
)

// Entry is one decodable image found in a gallery directory.
type Entry struct {
	Name string // source base name with the extension swapped for .png
	Path string // path of the source file
	Size int64  // size of the source file in bytes
}

// sniffLen bounds how much of a file is read for magic-byte identification.
const sniffLen = 512

// List walks dir and collects every file a registered decoder can handle.
// Files are picked up by extension first; files with an unknown extension
// are sniffed by magic bytes so renamed downloads still show up.
func List(dir string) ([]Entry, error) {
	var entries []Entry
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !format.Supported(path) && !sniffSupported(path) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		entries = append(entries, Entry{
			Name: pngName(d.Name()),
			Path: path,
			Size: info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func sniffSupported(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	buf := make([]byte, sniffLen)
	n, _ := f.Read(buf)
	_, ok := format.Identify(buf[:n])
	return ok
}

func pngName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + ".png"
}

// DecodePNG decodes the image file at path and returns it encoded as PNG.
func DecodePNG(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	name := path
	if !format.Supported(path) {
		if hdr, ok := format.Identify(data); ok {
			name = hdr.Ext
		}
	}

	img, err := format.Decode(name, data)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img.ToImage()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Options configures a batch conversion run.
type Options struct {
	OutDir string
	Log    *logger.Logger
}

// Convert decodes every supported file under dir and writes the results as
// PNGs into OutDir. Individual decode failures are logged and skipped; the
// run fails only when no supported file is found or on filesystem errors.
func Convert(dir string, opts Options) error {
	entries, err := List(dir)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("no supported images under %s", dir)
	}

	if _, err := utilos.EnsureDir(opts.OutDir, false); err != nil {
		return err
	}

	var total int64
	for _, e := range entries {
		total += e.Size
	}

	bar := pbar.NewProgressBarState(total)
	converted := 0
	for _, e := range entries {
		pngData, err := DecodePNG(e.Path)
		if err != nil {
			opts.Log.Warnf("skipping %s: %v", e.Path, err)
			bar.ProcessedBytes += e.Size
			continue
		}

		outPath := filepath.Join(opts.OutDir, e.Name)
		if err := utilio.CopyFile(outPath, bytes.NewReader(pngData)); err != nil {
			return err
		}
		opts.Log.Debugf("converted %s -> %s", e.Path, outPath)

		converted++
		bar.ProcessedBytes += e.Size
		bar.FilesDone = converted
		bar.Render(false)
	}
	bar.Render(true)
	bar.Finish()

	opts.Log.Infof("converted %d/%d images to %s", converted, len(entries), opts.OutDir)
	return nil
}
