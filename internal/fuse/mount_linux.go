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
	"log"
	"os"
	"os/signal"
	"syscall"

	"bazil.org/fuse"
	fusefs "bazil.org/fuse/fs"

	"github.com/reyco2000/vintageview/internal/gallery"
	utilos "github.com/reyco2000/vintageview/pkg/util/os"
)

// Mount exposes the given gallery entries as decoded PNGs under mountpoint
// and blocks until the filesystem is unmounted (SIGINT/SIGTERM).
func Mount(mountpoint string, entries []gallery.Entry) error {
	created, err := utilos.EnsureDir(mountpoint, true)
	if err != nil {
		return err
	}
	if created {
		defer os.Remove(mountpoint)
	}

	c, err := fuse.Mount(mountpoint)
	if err != nil {
		return err
	}
	defer c.Close()

	byName := make(map[string]gallery.Entry, len(entries))
	for _, e := range entries {
		byName[e.Name] = e
	}

	gfs := &GalleryFS{
		entries:    byName,
		decoded:    make(map[string][]byte),
		mountpoint: mountpoint,
	}

	go func() {
		srv := fusefs.New(c, nil)
		if err := srv.Serve(gfs); err != nil {
			log.Fatalf("Serve error: %v", err)
		}
	}()
	return waitForUmount(mountpoint)
}

func waitForUmount(mountpoint string) error {
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)

	log.Printf("gallery mounted at %s, press Ctrl-C to unmount", mountpoint)

	const maxUnmountRetries = 3

	for attempt := 1; ; attempt++ {
		sig := <-sigc
		log.Printf("signal received: %v, unmounting %s (attempt %d/%d)", sig, mountpoint, attempt, maxUnmountRetries)

		err := fuse.Unmount(mountpoint)
		if err == nil {
			return nil
		}
		if attempt >= maxUnmountRetries {
			return err
		}
		log.Printf("unmount failed: %v, waiting for another signal to retry", err)
	}
}
