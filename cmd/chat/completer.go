package main

import (
	"strings"

	"github.com/vizierhq/vizier/explore"
)

// completionContext describes what kind of completion is appropriate.
type completionContext int

const (
	contextCommand   completionContext = iota // start of line or partial command
	contextDataset                            // dataset names
	contextColumn                             // columns of the selected dataset
	contextEngine                             // after engine
	contextChartKey                           // chart directive keys and chart types
	contextNone                               // no completion
)

var engineNames = []string{"mysql", "postgres", "sqlite"}
var directiveKeys = []string{"breakdowns=", "chart=", "x=", "y="}

// chatCompleter implements readline's AutoCompleter interface.
type chatCompleter struct {
	chat *Chat
}

// Do returns completion candidates for the current line/cursor position.
func (cc *chatCompleter) Do(line []rune, pos int) (newLine [][]rune, length int) {
	lineStr := string(line[:pos])
	ctx, prefix := cc.parseContext(lineStr)

	var candidates []string
	switch ctx {
	case contextCommand:
		candidates = filterPrefix(cc.chat.commandNames(), prefix)
	case contextDataset:
		candidates = filterPrefix(cc.chat.state.Datasets(), prefix)
	case contextColumn:
		candidates = filterPrefix(cc.columnNames(), prefix)
	case contextEngine:
		candidates = filterPrefix(engineNames, prefix)
	case contextChartKey:
		candidates = cc.completeDirective(prefix)
	}

	for _, cand := range candidates {
		suffix := cand[len(prefix):]
		newLine = append(newLine, []rune(suffix))
	}
	length = len([]rune(prefix))
	return
}

// parseContext examines the line up to the cursor and decides what kind of
// completion is needed plus the prefix being typed.
func (cc *chatCompleter) parseContext(line string) (completionContext, string) {
	lower := strings.ToLower(line)

	for _, cmd := range cc.chat.commands {
		if !strings.HasSuffix(cmd.prefix, " ") {
			continue // exact-match commands have no arg completion
		}
		if strings.HasPrefix(lower, cmd.prefix) && cmd.completer != nil {
			return cmd.completer(line[len(cmd.prefix):])
		}
	}

	// Directive text completes keys and values anywhere in the line.
	if looksLikeDirective(line) || strings.Contains(line, "=") {
		return contextChartKey, lastToken(line)
	}

	// Dataset stage completes dataset names at the top level.
	if cc.chat.stage == stageDataset && !strings.Contains(strings.TrimSpace(line), " ") {
		word := strings.TrimSpace(line)
		if len(filterPrefix(cc.chat.state.Datasets(), word)) > 0 {
			return contextDataset, word
		}
	}

	return contextCommand, strings.TrimSpace(line)
}

// completeDirective completes chart directive keys, chart types after
// "chart=", and column names after "x=" or "breakdowns=".
func (cc *chatCompleter) completeDirective(prefix string) []string {
	if idx := strings.Index(prefix, "="); idx >= 0 {
		key := prefix[:idx]
		partial := prefix[idx+1:]
		// Only the part after the last comma is being typed.
		valuePrefix := prefix[:len(prefix)-len(partial)]
		if comma := strings.LastIndex(partial, ","); comma >= 0 {
			valuePrefix = prefix[:idx+1+comma+1]
			partial = partial[comma+1:]
		}
		var values []string
		switch key {
		case "chart", "type":
			values = explore.ChartTypes
		case "x", "breakdowns", "dimensions", "group_by":
			values = cc.columnNames()
		default:
			return nil
		}
		var out []string
		for _, v := range filterPrefix(values, partial) {
			out = append(out, valuePrefix+v)
		}
		return out
	}
	return filterPrefix(directiveKeys, prefix)
}

func (cc *chatCompleter) columnNames() []string {
	d, ok := cc.chat.state.Dataset()
	if !ok {
		return nil
	}
	return d.ColumnNames()
}

// filterPrefix returns items that start with prefix (case-insensitive).
func filterPrefix(items []string, prefix string) []string {
	if prefix == "" {
		result := make([]string, len(items))
		copy(result, items)
		return result
	}
	lowerPrefix := strings.ToLower(prefix)
	var result []string
	for _, item := range items {
		if strings.HasPrefix(strings.ToLower(item), lowerPrefix) {
			result = append(result, item)
		}
	}
	return result
}

// lastToken returns the last whitespace-separated token.
func lastToken(s string) string {
	if idx := strings.LastIndexAny(s, " \t"); idx >= 0 {
		return s[idx+1:]
	}
	return s
}
