package format

import "fmt"

var byteUnits = []struct {
	size int64
	name string
}{
	{1 << 40, "TB"},
	{1 << 30, "GB"},
	{1 << 20, "MB"},
	{1 << 10, "KB"},
}

// FormatBytes renders b in human-readable units, avoiding ".00" for whole
// numbers.
func FormatBytes(b int64) string {
	for _, u := range byteUnits {
		if b < u.size {
			continue
		}
		val := float64(b) / float64(u.size)
		if val == float64(int(val)) {
			return fmt.Sprintf("%.0f%s", val, u.name)
		}
		return fmt.Sprintf("%.2f%s", val, u.name)
	}
	return fmt.Sprintf("%dB", b)
}
