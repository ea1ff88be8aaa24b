package controller

import "math"

// Bucket is one counted slice of a page, e.g. "late" attendance.
type Bucket[T any] struct {
	Key   string
	Match func(T) bool
}

// Stats summarize the currently loaded page. Counts and percentages cover
// only the in-memory page, not the full filtered set; Total prefers the
// server-reported total when the response carried one. The page-only scope is
// inherited behavior and must not be widened silently.
type Stats struct {
	Total   int
	Counts  map[string]int
	Percent map[string]float64
}

// ComputeStats counts each bucket over the page items. Pass a negative
// serverTotal when the response carried no pagination block.
func ComputeStats[T any](buckets []Bucket[T], items []T, serverTotal int) Stats {
	s := Stats{
		Total:   len(items),
		Counts:  make(map[string]int, len(buckets)),
		Percent: make(map[string]float64, len(buckets)),
	}
	if serverTotal >= 0 {
		s.Total = serverTotal
	}

	for _, b := range buckets {
		n := 0
		for _, item := range items {
			if b.Match(item) {
				n++
			}
		}
		s.Counts[b.Key] = n
		if len(items) == 0 {
			s.Percent[b.Key] = 0
			continue
		}
		pct := float64(n) / float64(len(items)) * 100
		s.Percent[b.Key] = math.Round(pct*10) / 10
	}
	return s
}
