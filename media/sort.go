package media

import "slices"

// CompareDescendingBitrate orders formats by decreasing bitrate, for
// use with [slices.SortFunc]. Formats with unknown bitrate (NoValue)
// sort last.
func CompareDescendingBitrate(a, b *Format) int {
	switch {
	case a.Bitrate > b.Bitrate:
		return -1
	case a.Bitrate < b.Bitrate:
		return 1
	default:
		return 0
	}
}

// SortByDescendingBitrate sorts formats in place by decreasing bitrate.
func SortByDescendingBitrate(formats []*Format) {
	slices.SortStableFunc(formats, CompareDescendingBitrate)
}
