// Package timesync supplies the canonical "now" used for window math.
// A remote time service is preferred when configured; the local wall clock
// is the fallback on any error, so a resolution never fails on time sync.
package timesync

import (
	"context"
	"time"
)

// Clock supplies the canonical now in epoch seconds.
type Clock interface {
	Now(ctx context.Context) int64
}

// LocalClock reads the local wall clock.
type LocalClock struct{}

// Now returns the local time in epoch seconds.
func (LocalClock) Now(_ context.Context) int64 {
	return time.Now().Unix()
}
