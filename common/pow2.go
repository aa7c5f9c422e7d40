package common

import "strconv"

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n Size) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOfTwo rounds n up to the nearest power of two. NextPowerOfTwo(0)
// is 1.
func NextPowerOfTwo(n Size) Size {
	if n == 0 {
		return 1
	}

	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++

	return n
}

// Log2Floor returns floor(log2(n)) for n > 0.
func Log2Floor(n Size) int {
	log := 0
	for n >>= 1; n > 0; n >>= 1 {
		log++
	}
	return log
}

// FormatSize renders a byte count with the largest unit (B/KB/MB/GB) that
// keeps the displayed value at least 1.
func FormatSize(size Size) string {
	units := []string{"B", "KB", "MB", "GB"}
	display := float64(size)
	unitIndex := 0

	for display >= 1024.0 && unitIndex < len(units)-1 {
		display /= 1024.0
		unitIndex++
	}

	return strconv.FormatFloat(display, 'f', 2, 64) + " " + units[unitIndex]
}
