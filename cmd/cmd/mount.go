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
package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reyco2000/vintageview/internal/fuse"
	"github.com/reyco2000/vintageview/internal/gallery"
)

func DefineMountCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mount <directory>",
		Short: "Mount a directory of legacy images as decoded PNGs",
		Long: `The 'mount' command exposes a directory of ART, MacPaint, PICtor, PCX and TIFF
files as a read-only FUSE filesystem of decoded PNGs. Images are decoded lazily on
first access. The mount is released on SIGINT/SIGTERM.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunMount,
	}

	cmd.Flags().StringP("mountpoint", "m", "", "directory where the gallery will be mounted; derived from the source directory if not specified")
	return cmd
}

func RunMount(cmd *cobra.Command, args []string) error {
	entries, err := gallery.List(args[0])
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("no supported images under %s", args[0])
	}

	mountpoint, _ := cmd.Flags().GetString("mountpoint")
	if mountpoint == "" {
		mountpoint = getMountpoint(args[0])
	}
	return fuse.Mount(mountpoint, entries)
}

// getMountpoint derives a mountpoint name from the source directory.
func getMountpoint(dir string) string {
	base := filepath.Base(strings.TrimSuffix(dir, string(filepath.Separator)))
	if base == "." || base == string(filepath.Separator) {
		base = "gallery"
	}
	return base + "_mnt"
}
