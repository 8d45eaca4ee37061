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
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reyco2000/vintageview/internal/gallery"
	"github.com/reyco2000/vintageview/internal/logger"
	utilio "github.com/reyco2000/vintageview/pkg/util/io"
)

func DefineConvertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <file|directory>",
		Short: "Decode legacy images and export them as PNG",
		Long: `The 'convert' command decodes one ART, MacPaint, PICtor, PCX or TIFF file
and writes the result as a PNG. Given a directory, every supported file under it
is converted in one pass.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunConvert,
	}

	cmd.Flags().StringP("output", "o", "", "output PNG file (or directory for batch conversion)")
	return cmd
}

func RunConvert(cmd *cobra.Command, args []string) error {
	log := newLogger(cmd)
	output, _ := cmd.Flags().GetString("output")

	info, err := os.Stat(args[0])
	if err != nil {
		return err
	}

	if info.IsDir() {
		if output == "" {
			output = strings.TrimSuffix(args[0], string(filepath.Separator)) + "_png"
		}
		return gallery.Convert(args[0], gallery.Options{
			OutDir: output,
			Log:    log,
		})
	}

	if output == "" {
		ext := filepath.Ext(args[0])
		output = strings.TrimSuffix(args[0], ext) + ".png"
	}

	pngData, err := gallery.DecodePNG(args[0])
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", args[0], err)
	}
	if err := utilio.CopyFile(output, bytes.NewReader(pngData)); err != nil {
		return err
	}
	log.Infof("wrote %s", output)
	return nil
}

func newLogger(cmd *cobra.Command) *logger.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	return logger.New(os.Stderr, logger.ParseLevel(level)).WithTimestamps()
}
