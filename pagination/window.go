package pagination

import "github.com/samber/lo"

// Window returns the page numbers to display around current: at most
// maxSize contiguous pages inside [1, total], centered on current when the
// boundaries allow it.
func Window(current, total, maxSize int) []int {
	if total <= 0 || maxSize <= 0 {
		return []int{}
	}

	start := max(1, current-maxSize/2)
	end := min(total, start+maxSize-1)

	if end-start+1 < maxSize {
		start = max(1, end-maxSize+1)
	}

	return lo.RangeFrom(start, end-start+1)
}

