package io

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// CopyFile copies data from the provided reader to the file at filePath.
// It creates or truncates the file and writes through a 32KB buffer.
func CopyFile(filePath string, r io.Reader) error {
	f, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file %q: %w", filePath, err)
	}
	defer f.Close()

	w := bufio.NewWriterSize(f, 32*1024)
	if _, err := io.Copy(w, r); err != nil {
		return err
	}
	return w.Flush()
}
