package translator

import (
	"regexp"
	"strconv"
	"strings"
)

// Indexed-line forms accepted from the collaborator, in preference order:
// "12. text" then "12: text".
var (
	periodLineRe = regexp.MustCompile(`^(\d+)\. (.*)$`)
	colonLineRe  = regexp.MustCompile(`^(\d+): (.*)$`)
)

// commentaryPrefixes mark lines the model sometimes prepends to its
// answer despite instructions; they are never part of a unit.
var commentaryPrefixes = []string{"#", "以下是", "翻译"}

type indexedLine struct {
	index     int
	separator byte // '.' or ':'
	payload   string
}

func parseIndexedLine(line string) (indexedLine, bool) {
	if m := periodLineRe.FindStringSubmatch(line); m != nil {
		index, err := strconv.Atoi(m[1])
		if err == nil {
			return indexedLine{index: index, separator: '.', payload: m[2]}, true
		}
	}
	if m := colonLineRe.FindStringSubmatch(line); m != nil {
		index, err := strconv.Atoi(m[1])
		if err == nil {
			return indexedLine{index: index, separator: ':', payload: m[2]}, true
		}
	}
	return indexedLine{}, false
}

func isCommentary(line string) bool {
	for _, prefix := range commentaryPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// ParseBatchResult extracts bilingual units from free-form collaborator
// output. Each unit starts at an indexed line; its second half is either
// the next line re-indexed with the same number and separator style, or
// the next line as bare text. The returned map holds one text per global
// sequence number (both halves joined with "\n" when present). The bool
// reports whether every encountered unit had both halves.
func ParseBatchResult(raw string) (map[int]string, bool) {
	lines := strings.Split(raw, "\n")
	units := make(map[int]string)
	allComplete := true

	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])
		if line == "" || isCommentary(line) {
			i++
			continue
		}

		head, ok := parseIndexedLine(line)
		if !ok {
			// stray text not attached to any unit
			i++
			continue
		}

		unit := head.payload
		complete := false

		if i+1 < len(lines) {
			next := strings.TrimSpace(lines[i+1])
			if sibling, ok := parseIndexedLine(next); ok {
				if sibling.index == head.index && sibling.separator == head.separator {
					unit = head.payload + "\n" + sibling.payload
					complete = true
					i++
				}
			} else if next != "" && !isCommentary(next) {
				unit = head.payload + "\n" + next
				complete = true
				i++
			}
		}

		units[head.index] = unit
		if !complete {
			allComplete = false
		}
		i++
	}

	return units, allComplete
}
