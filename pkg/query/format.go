package query

import "strconv"

const (
	kib = int64(1) << 10
	mib = int64(1) << 20
	gib = int64(1) << 30
)

// FormatSize renders a byte count compactly for tag labels: the largest unit
// that keeps the value at 1 or above, rounded to a whole number.
func FormatSize(bytes int64) string {
	switch {
	case bytes >= gib:
		return strconv.FormatInt(roundDiv(bytes, gib), 10) + "GB"
	case bytes >= mib:
		return strconv.FormatInt(roundDiv(bytes, mib), 10) + "MB"
	case bytes >= kib:
		return strconv.FormatInt(roundDiv(bytes, kib), 10) + "KB"
	default:
		return strconv.FormatInt(bytes, 10) + "B"
	}
}

func roundDiv(n, d int64) int64 {
	return (n + d/2) / d
}
