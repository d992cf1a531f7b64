package main

import (
	"regexp"
	"strings"
)

var betweenPattern = regexp.MustCompile(`(?i)^([a-zA-Z_]\w*)\s+between\s+(\S+)\s+and\s+(\S+)$`)

// parseFilter recognises the dialog filter grammar:
//
//	column=value
//	column=value1,value2,value3
//	column between start and end
//
// A colon works in place of the equals sign. Operator choice is left to the
// session core: one value, a between pair, or a membership list.
func parseFilter(text string) (column string, values []string, ok bool) {
	text = strings.TrimSpace(text)
	if m := betweenPattern.FindStringSubmatch(text); m != nil {
		return m[1], []string{m[2], m[3]}, true
	}

	sep := strings.IndexAny(text, "=:")
	if sep < 0 {
		return "", nil, false
	}
	column = strings.TrimSpace(text[:sep])
	if column == "" {
		return "", nil, false
	}
	for _, part := range strings.Split(text[sep+1:], ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}
	if len(values) == 0 {
		return "", nil, false
	}
	return column, values, true
}

// matchDataset finds a catalog dataset named anywhere in the user's message,
// so "let's look at payments" selects payments.
func matchDataset(names []string, text string) (string, bool) {
	known := make(map[string]string, len(names))
	for _, n := range names {
		known[strings.ToLower(n)] = n
	}
	lower := strings.ToLower(strings.TrimSpace(text))
	if name, ok := known[lower]; ok {
		return name, true
	}
	for _, word := range splitWords(lower) {
		if name, ok := known[word]; ok {
			return name, true
		}
	}
	return "", false
}

var wordPattern = regexp.MustCompile(`[a-z0-9_]+`)

func splitWords(s string) []string {
	return wordPattern.FindAllString(s, -1)
}

// looksLikeDirective reports whether the message carries chart directive
// keys, so the adjust stage can route it to the chart handler.
func looksLikeDirective(text string) bool {
	lower := strings.ToLower(text)
	for _, key := range []string{"chart=", "type=", "x=", "y=", "metrics=", "dimensions=", "breakdowns=", "group_by="} {
		if strings.Contains(lower, key) {
			return true
		}
	}
	return false
}
