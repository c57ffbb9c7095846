package form

import (
	"strconv"
	"strings"
)

// LabelSeparator splits the id from the label in composite option strings.
const LabelSeparator = " - "

// ParseSelection extracts the leading id of an "id - label" option.
func ParseSelection(value string) (int64, bool) {
	head := strings.TrimSpace(strings.SplitN(value, LabelSeparator, 2)[0])
	if head == "" {
		return 0, false
	}
	for _, r := range head {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	id, err := strconv.ParseInt(head, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ParseSelections parses already validated options, skipping malformed ones.
func ParseSelections(values []string) []int64 {
	ids := make([]int64, 0, len(values))
	for _, v := range values {
		if id, ok := ParseSelection(v); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// Label composes an "id - label" option string.
func Label(id int64, label string) string {
	return strconv.FormatInt(id, 10) + LabelSeparator + label
}
