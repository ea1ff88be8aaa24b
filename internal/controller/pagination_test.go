package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowPages_FewPages(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{1}, WindowPages(1, 1))
	assert.Equal(t, []int{1, 2, 3, 4}, WindowPages(2, 4))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, WindowPages(5, 5))
}

func TestWindowPages_SticksToStart(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{1, 2, 3, 4, 5}, WindowPages(1, 6))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, WindowPages(3, 12))
}

func TestWindowPages_SticksToEnd(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{2, 3, 4, 5, 6}, WindowPages(6, 6))
	assert.Equal(t, []int{8, 9, 10, 11, 12}, WindowPages(10, 12))
	assert.Equal(t, []int{8, 9, 10, 11, 12}, WindowPages(12, 12))
}

func TestWindowPages_SlidesInTheMiddle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{4, 5, 6, 7, 8}, WindowPages(6, 12))
}

func TestWindowPages_Properties(t *testing.T) {
	t.Parallel()

	for total := 1; total <= 15; total++ {
		for current := 1; current <= total; current++ {
			pages := WindowPages(current, total)

			want := total
			if want > DefaultWindowSize {
				want = DefaultWindowSize
			}
			assert.Len(t, pages, want, "total=%d current=%d", total, current)

			for i, p := range pages {
				assert.GreaterOrEqual(t, p, 1)
				assert.LessOrEqual(t, p, total)
				if i > 0 {
					assert.Equal(t, pages[i-1]+1, p, "window must be contiguous")
				}
			}
			assert.Contains(t, pages, current, "total=%d current=%d", total, current)
		}
	}
}

func TestWindowPages_DegenerateInputs(t *testing.T) {
	t.Parallel()

	assert.Nil(t, WindowPages(1, 0))
	assert.Equal(t, []int{1, 2, 3}, WindowPages(9, 3), "current past the end is clamped")
	assert.Equal(t, []int{1, 2, 3, 4, 5}, WindowPages(0, 12), "current below 1 is clamped")
}
