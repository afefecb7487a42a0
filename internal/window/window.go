// Package window converts a canonical now into epoch-aligned window starts.
package window

// Start returns the window-start timestamp for now: the largest multiple of
// duration that is <= now. Both values are in epoch seconds.
func Start(now, duration int64) int64 {
	return (now / duration) * duration
}

// CandidateStarts returns the ordered window starts a resolution should try:
// the current window, the preceding window, then the following window.
// The preceding window ranks before the following one because discovery
// indexing is observed to trail real time, not lead it.
func CandidateStarts(now, duration int64) []int64 {
	start := Start(now, duration)
	return []int64{start, start - duration, start + duration}
}
