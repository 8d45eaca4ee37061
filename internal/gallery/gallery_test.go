package gallery_test

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reyco2000/vintageview/internal/gallery"
)

// tinyPCX is a minimal 2x1 8-bit grayscale PCX file.
func tinyPCX() []byte {
	hdr := make([]byte, 128)
	hdr[0] = 0x0A // manufacturer
	hdr[1] = 5    // version
	hdr[2] = 1    // RLE
	hdr[3] = 8    // bits per pixel
	hdr[8] = 1    // x_max = 1
	hdr[65] = 1   // planes
	hdr[66] = 2   // bytes per line
	return append(hdr, 0x10, 0x80)
}

func TestListAndDecodePNG(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shot.pcx"), tinyPCX(), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0644))

	entries, err := gallery.List(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "shot.png", entries[0].Name)

	data, err := gallery.DecodePNG(entries[0].Path)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 2, img.Bounds().Dx())
	require.Equal(t, 1, img.Bounds().Dy())
}

func TestListSniffsUnknownExtensions(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "renamed.dat"), tinyPCX(), 0644))

	entries, err := gallery.List(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "renamed.png", entries[0].Name)

	_, err = gallery.DecodePNG(entries[0].Path)
	require.NoError(t, err)
}
