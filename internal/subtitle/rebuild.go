package subtitle

// RebuildWithTexts pairs the original entries' index and timing with the
// resolved texts. A shortfall in texts falls back to the original text for
// the unmatched tail; extra texts are ignored.
func RebuildWithTexts(entries []Entry, texts []string) []Entry {
	rebuilt := make([]Entry, len(entries))

	for i, entry := range entries {
		text := entry.Text
		if i < len(texts) && texts[i] != "" {
			text = texts[i]
		}
		rebuilt[i] = Entry{
			Index: entry.Index,
			Start: entry.Start,
			End:   entry.End,
			Text:  text,
		}
	}

	return rebuilt
}

// MergeBilingual combines two independently timed streams by index: one
// output entry per entry of first, carrying first's timing, with second's
// text for the same index appended on a new line when present.
func MergeBilingual(first, second []Entry) []Entry {
	byIndex := make(map[int]string, len(second))
	for _, entry := range second {
		byIndex[entry.Index] = entry.Text
	}

	merged := make([]Entry, len(first))
	for i, entry := range first {
		text := entry.Text
		if translated, ok := byIndex[entry.Index]; ok && translated != "" {
			text = entry.Text + "\n" + translated
		}
		merged[i] = Entry{
			Index: entry.Index,
			Start: entry.Start,
			End:   entry.End,
			Text:  text,
		}
	}

	return merged
}
