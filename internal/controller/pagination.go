package controller

// DefaultWindowSize is how many page numbers the pagination strip shows.
const DefaultWindowSize = 5

// WindowPages computes which page numbers to display for the current page: a
// sliding window that sticks to the start and end near the boundaries.
func WindowPages(current, total int) []int {
	return WindowPagesN(current, total, DefaultWindowSize)
}

// WindowPagesN is WindowPages with an explicit window size.
func WindowPagesN(current, total, size int) []int {
	if total <= 0 || size <= 0 {
		return nil
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	half := size / 2
	var lo, hi int
	switch {
	case total <= size:
		lo, hi = 1, total
	case current <= half+1:
		lo, hi = 1, size
	case current >= total-half:
		lo, hi = total-size+1, total
	default:
		lo, hi = current-half, current+half
	}

	pages := make([]int, 0, hi-lo+1)
	for p := lo; p <= hi; p++ {
		pages = append(pages, p)
	}
	return pages
}
