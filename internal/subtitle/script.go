package subtitle

// CJK ideograph detection. Lines are classified by character content
// rather than by a stored language tag; the range matches the CJK
// Unified Ideographs block only, so kana and hangul do not count.

const (
	cjkRangeStart = rune(0x4E00)
	cjkRangeEnd   = rune(0x9FFF)
)

// CountCJK returns the number of CJK ideographs in s.
func CountCJK(s string) int {
	count := 0
	for _, r := range s {
		if r >= cjkRangeStart && r <= cjkRangeEnd {
			count++
		}
	}
	return count
}

// ContainsCJK reports whether s holds at least one CJK ideograph.
func ContainsCJK(s string) bool {
	for _, r := range s {
		if r >= cjkRangeStart && r <= cjkRangeEnd {
			return true
		}
	}
	return false
}
