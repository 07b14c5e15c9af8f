package subtitle

import "time"

// DefaultFPS is the frame rate assumed when the caller does not know the
// video's real rate.
const DefaultFPS = 60.0

// FixOverlaps enforces a minimum gap between adjacent entries: whenever an
// entry ends at or after its successor starts, its end time is pulled back
// to one frame before that start. A single forward pass in stream order;
// chained overlaps across three or more entries are not re-resolved, and
// successors are never touched. Returns a fresh slice.
func FixOverlaps(entries []Entry, fps float64) []Entry {
	if fps <= 0 {
		fps = DefaultFPS
	}
	frame := time.Duration(float64(time.Second) / fps)

	fixed := make([]Entry, len(entries))
	copy(fixed, entries)

	for i := 0; i+1 < len(fixed); i++ {
		if fixed[i].End >= fixed[i+1].Start {
			fixed[i].End = fixed[i+1].Start - frame
		}
	}

	return fixed
}
