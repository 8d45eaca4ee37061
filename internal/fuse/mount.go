//go:build !linux
// +build !linux

package fuse

import (
	"fmt"

	"github.com/reyco2000/vintageview/internal/gallery"
)

func Mount(mountpoint string, entries []gallery.Entry) error {
	return fmt.Errorf("FUSE mount is only supported on Linux")
}
