package subtitle

// MergeCJKThreshold is the CJK character count above which an entry is
// considered too dense to share screen time with its neighbor.
const MergeCJKThreshold = 20

// MergePairs compacts the stream by merging adjacent entries two at a time.
// A pair is merged into one entry spanning first.Start..second.End with the
// texts joined by a space. When the first entry of a candidate pair already
// carries more than MergeCJKThreshold CJK characters it is emitted alone and
// the walk advances by one, so the long line keeps its own display slot.
// Output indices are renumbered densely from 1.
func MergePairs(entries []Entry) []Entry {
	merged := make([]Entry, 0, (len(entries)+1)/2)

	i := 0
	for i < len(entries) {
		first := entries[i]

		if CountCJK(first.Text) > MergeCJKThreshold || i+1 >= len(entries) {
			merged = append(merged, first)
			i++
			continue
		}

		second := entries[i+1]
		merged = append(merged, Entry{
			Start: first.Start,
			End:   second.End,
			Text:  first.Text + " " + second.Text,
		})
		i += 2
	}

	for i := range merged {
		merged[i].Index = i + 1
	}

	return merged
}
