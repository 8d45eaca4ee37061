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
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/reyco2000/vintageview/internal/format"
	fmtutil "github.com/reyco2000/vintageview/pkg/util/format"
)

func DefineInfoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "info <file>",
		Short:        "Decode an image and print its properties",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunInfo,
	}
	return cmd
}

func RunInfo(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	img, err := format.Decode(args[0], data)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", args[0], err)
	}

	channels := "grayscale"
	if img.Channels == 3 {
		channels = "rgb"
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "file\t%s\n", args[0])
	fmt.Fprintf(w, "variant\t%s\n", format.Detect(args[0], data))
	fmt.Fprintf(w, "dimensions\t%dx%d\n", img.Width, img.Height)
	fmt.Fprintf(w, "channels\t%s\n", channels)
	fmt.Fprintf(w, "file size\t%s\n", fmtutil.FormatBytes(int64(len(data))))
	fmt.Fprintf(w, "decoded size\t%s\n", fmtutil.FormatBytes(int64(img.Size())))
	return w.Flush()
}
