package widget

import "fmt"

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatSize renders a byte count for display, e.g. "500.00 Bytes",
// "1.00 KB", "3.25 MB". The unit is picked by dividing by 1024 until the
// value drops below 1024 or the largest unit is reached.
func FormatSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}

	unit := 0
	for v := bytes; v >= 1024 && unit < len(sizeUnits)-1; v /= 1024 {
		unit++
	}

	scaled := float64(bytes)
	for i := 0; i < unit; i++ {
		scaled /= 1024
	}
	return fmt.Sprintf("%.2f %s", scaled, sizeUnits[unit])
}
