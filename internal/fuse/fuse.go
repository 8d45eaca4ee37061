//go:build linux
// +build linux

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
package fuse

import (
	"context"
	"os"
	"sort"
	"sync"
	"time"

	"bazil.org/fuse"
	"bazil.org/fuse/fs"

	"github.com/reyco2000/vintageview/internal/gallery"
)

// GalleryFS exposes a directory of legacy images as a flat read-only tree
// of decoded PNG files. Decoding happens on first access to a file (stat or
// read) and the result is cached for the lifetime of the mount.
type GalleryFS struct {
	mtx     sync.Mutex
	entries map[string]gallery.Entry
	decoded map[string][]byte

	mountpoint string
}

func (g *GalleryFS) Root() (fs.Node, error) {
	return &Dir{fs: g}, nil
}

// render returns the cached PNG rendition of the named entry, decoding the
// source file on the first request.
func (g *GalleryFS) render(name string) ([]byte, error) {
	g.mtx.Lock()
	defer g.mtx.Unlock()

	if data, ok := g.decoded[name]; ok {
		return data, nil
	}
	e, ok := g.entries[name]
	if !ok {
		return nil, fuse.ENOENT
	}
	data, err := gallery.DecodePNG(e.Path)
	if err != nil {
		return nil, fuse.EIO
	}
	g.decoded[name] = data
	return data, nil
}

// Dir implements both fs.Node and fs.HandleReadDirAller
type Dir struct {
	fs *GalleryFS
}

func (*Dir) Attr(ctx context.Context, a *fuse.Attr) error {
	a.Mode = os.ModeDir | 0555
	return nil
}

func (d *Dir) Lookup(ctx context.Context, name string) (fs.Node, error) {
	if _, ok := d.fs.entries[name]; ok {
		return File{fs: d.fs, name: name}, nil
	}
	return nil, fuse.ENOENT
}

func (d *Dir) ReadDirAll(ctx context.Context) ([]fuse.Dirent, error) {
	dirEntries := make([]fuse.Dirent, 0, len(d.fs.entries))
	for name := range d.fs.entries {
		dirEntries = append(dirEntries, fuse.Dirent{
			Name: name,
			Type: fuse.DT_File,
		})
	}
	sort.Slice(dirEntries, func(i, j int) bool {
		return dirEntries[i].Name < dirEntries[j].Name
	})
	for i := range dirEntries {
		dirEntries[i].Inode = uint64(i)
	}
	return dirEntries, nil
}

// File implements both fs.Node and fs.HandleReader
type File struct {
	fs   *GalleryFS
	name string
}

func (f File) Attr(ctx context.Context, a *fuse.Attr) error {
	data, err := f.fs.render(f.name)
	if err != nil {
		return err
	}
	a.Mode = 0444
	a.Size = uint64(len(data))
	a.Mtime = time.Now()
	return nil
}

func (f File) Read(ctx context.Context, req *fuse.ReadRequest, resp *fuse.ReadResponse) error {
	data, err := f.fs.render(f.name)
	if err != nil {
		return err
	}

	offset := req.Offset
	if offset >= int64(len(data)) {
		resp.Data = []byte{}
		return nil
	}

	end := offset + int64(req.Size)
	if end > int64(len(data)) {
		end = int64(len(data))
	}
	resp.Data = data[offset:end]
	return nil
}
