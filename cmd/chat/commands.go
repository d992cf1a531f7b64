package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// commandEntry maps a dialog command prefix to its handler and optional
// tab-completer.
type commandEntry struct {
	prefix    string
	handler   func(args string) error
	completer func(args string) (completionContext, string) // nil = no arg completion
	hidden    bool                                          // excluded from commandNames()
}

// initCommands builds the command registry and sorts by prefix length descending.
func (c *Chat) initCommands() {
	c.commands = []commandEntry{
		// --- flow ---
		{prefix: "help", handler: func(_ string) error { c.cmdHelp(); return nil }},
		{prefix: "restart", handler: func(_ string) error { return c.cmdRestart() }},
		{prefix: "reset", handler: func(_ string) error { return c.cmdRestart() }, hidden: true},
		{prefix: "done", handler: func(_ string) error { return c.cmdDone() }},
		{prefix: "next", handler: func(_ string) error { return c.cmdDone() }, hidden: true},
		{prefix: "refresh", handler: func(_ string) error { return c.cmdRefresh() }},
		{prefix: "show", handler: func(_ string) error { return c.cmdRefresh() }, hidden: true},

		// --- inspection ---
		{prefix: "datasets", handler: func(_ string) error { c.cmdDatasets(); return nil }},
		{prefix: "columns", handler: func(_ string) error { return c.cmdColumns() }},
		{prefix: "related", handler: func(_ string) error { return c.cmdRelated() }},
		{prefix: "filters", handler: func(_ string) error { c.printFilters(); return nil }},
		{prefix: "sql", handler: func(_ string) error { return c.cmdSQL() }},
		{prefix: "state", handler: func(_ string) error { return c.cmdState() }},
		{prefix: "chart", handler: func(_ string) error { return c.cmdChartPath() }},

		// --- refinement ---
		{prefix: "filter ", handler: func(a string) error { return c.cmdFilter(a) }, completer: completeFilterArgs},
		{prefix: "unfilter ", handler: func(a string) error { return c.cmdUnfilter(a) }, completer: completeFilterArgs},
		{prefix: "dataset ", handler: func(a string) error { return c.handleDataset(a) }, completer: completeDatasetArgs},

		// --- database connectivity ---
		{prefix: "connect ", handler: func(a string) error { return c.cmdConnect(a) }},
		{prefix: "connect", handler: func(_ string) error { return c.cmdConnect("") }},
		{prefix: "disconnect", handler: func(_ string) error { return c.cmdDisconnect() }},
		{prefix: "engine ", handler: func(a string) error { return c.cmdEngine(a) }, completer: completeEngineArgs},
	}

	// Sort by prefix length descending so longest prefixes match first.
	sort.Slice(c.commands, func(i, j int) bool {
		return len(c.commands[i].prefix) > len(c.commands[j].prefix)
	})
}

// commandNames derives the command name list from the registry for tab completion.
func (c *Chat) commandNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, cmd := range c.commands {
		if cmd.hidden {
			continue
		}
		name := strings.TrimRight(cmd.prefix, " ")
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	// exit/quit are handled by the dialog loop, not Execute().
	for _, extra := range []string{"exit", "quit"} {
		if !seen[extra] {
			names = append(names, extra)
		}
	}
	sort.Strings(names)
	return names
}

// --- Command handlers ---

func (c *Chat) cmdHelp() {
	fmt.Fprintln(c.out, "  Workflow:")
	fmt.Fprintln(c.out, "    1. Pick a dataset by typing its name ('datasets' lists them).")
	fmt.Fprintln(c.out, "    2. Add filters with 'column=value' or 'column between start and end'.")
	fmt.Fprintln(c.out, "    3. Type 'done', then describe the chart, e.g.")
	fmt.Fprintln(c.out, "       chart=bar x=region,plan_type y=sum:monthly_spend breakdowns=status")
	fmt.Fprintln(c.out, "    4. Review the summary and tweak with 'chart=...', 'filter ...', or 'refresh'.")
	fmt.Fprintln(c.out, "  Commands:")
	fmt.Fprintf(c.out, "    %s\n", strings.Join(c.commandNames(), ", "))
}

func (c *Chat) cmdRestart() error {
	c.state.Reset()
	c.chartPath = ""
	c.Greet()
	return nil
}

func (c *Chat) cmdDone() error {
	switch c.stage {
	case stageDataset:
		return errors.New("pick a dataset first")
	case stageFilters:
		c.stage = stageChart
		c.chartPrompt()
		return nil
	default:
		return c.cmdRefresh()
	}
}

func (c *Chat) cmdRefresh() error {
	if _, ok := c.state.Dataset(); !ok {
		return errors.New("nothing to refresh; pick a dataset first")
	}
	return c.summarize()
}

func (c *Chat) cmdDatasets() {
	for _, name := range c.state.Datasets() {
		fmt.Fprintf(c.out, "  %s\n", name)
	}
}

func (c *Chat) cmdColumns() error {
	d, ok := c.state.Dataset()
	if !ok {
		return errors.New("no dataset selected")
	}
	for _, col := range d.Columns {
		flags := string(col.Kind)
		if col.Aggregatable {
			flags += ", aggregatable"
		}
		if col.Identifier {
			flags += ", identifier"
		}
		if col.Description != "" {
			fmt.Fprintf(c.out, "  %-20s %s  %s\n", col.Name, flags, col.Description)
		} else {
			fmt.Fprintf(c.out, "  %-20s %s\n", col.Name, flags)
		}
	}
	return nil
}

func (c *Chat) cmdRelated() error {
	related, err := c.state.SuggestRelated()
	if err != nil {
		return err
	}
	if len(related) == 0 {
		fmt.Fprintln(c.out, "  No related datasets found.")
		return nil
	}
	fmt.Fprintf(c.out, "  Related datasets: %s\n", strings.Join(related, ", "))
	return nil
}

func (c *Chat) cmdSQL() error {
	sql, err := c.state.Compile()
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "  %s\n", sql)
	return nil
}

// cmdState dumps the assembled session snapshot as JSON.
func (c *Chat) cmdState() error {
	payload, err := c.state.Assemble()
	if err != nil {
		return err
	}
	raw, err := json.MarshalIndent(payload, "  ", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	fmt.Fprintf(c.out, "  %s\n", raw)
	return nil
}

func (c *Chat) cmdChartPath() error {
	if c.chartPath == "" {
		fmt.Fprintln(c.out, "  No chart has been generated yet. Try 'refresh' first.")
		return nil
	}
	fmt.Fprintf(c.out, "  The latest chart is saved at: %s\n", c.chartPath)
	return nil
}

func (c *Chat) cmdFilter(args string) error {
	column, values, ok := parseFilter(args)
	if !ok {
		return errors.New("usage: filter column=value | filter column between start and end")
	}
	if _, err := c.state.AddFilter(column, "", values...); err != nil {
		return err
	}
	c.printFilters()
	if c.stage == stageAdjust {
		fmt.Fprintln(c.out, "  Regenerating summary...")
		return c.summarize()
	}
	return nil
}

func (c *Chat) cmdUnfilter(args string) error {
	column := strings.TrimSpace(args)
	if column == "" {
		return errors.New("usage: unfilter <column>")
	}
	c.state.RemoveFilter(column)
	c.printFilters()
	return nil
}

func (c *Chat) cmdConnect(args string) error {
	dsn := strings.TrimSpace(args)
	if dsn == "" {
		if c.lastDSN == "" {
			return errors.New("usage: connect <dsn>")
		}
		dsn = c.lastDSN
	}
	if c.conn != nil {
		_ = c.conn.close()
		c.conn = nil
	}
	conn, err := connect(c.engine, dsn)
	if err != nil {
		return err
	}
	c.conn = conn
	c.lastDSN = dsn
	if c.engine == "sqlite" {
		if err := seedDemoData(conn.db); err != nil {
			fmt.Fprintf(c.out, "  Note: demo data seeding failed: %v\n", err)
		}
	}
	fmt.Fprintf(c.out, "  Connected to %s (%s)\n", sanitizeDSN(dsn), c.engine)
	return nil
}

func (c *Chat) cmdDisconnect() error {
	if c.conn == nil {
		return errors.New("not connected")
	}
	err := c.conn.close()
	c.conn = nil
	fmt.Fprintln(c.out, "  Disconnected")
	return err
}

func (c *Chat) cmdEngine(args string) error {
	engine := strings.TrimSpace(strings.ToLower(args))
	if _, ok := driverName[engine]; !ok {
		return fmt.Errorf("unknown engine %q (postgres, mysql, sqlite)", engine)
	}
	if c.conn != nil {
		return errors.New("disconnect before switching engines")
	}
	c.engine = engine
	fmt.Fprintf(c.out, "  Engine set to %s\n", engine)
	return nil
}

// --- Shared completion helpers ---

// completeDatasetArgs completes the dataset command's single argument.
func completeDatasetArgs(args string) (completionContext, string) {
	return contextDataset, strings.TrimSpace(args)
}

// completeFilterArgs completes the column part of filter/unfilter arguments.
func completeFilterArgs(args string) (completionContext, string) {
	arg := strings.TrimSpace(args)
	if strings.ContainsAny(arg, "=: ") {
		return contextNone, ""
	}
	return contextColumn, arg
}

// completeEngineArgs completes the engine command's argument.
func completeEngineArgs(args string) (completionContext, string) {
	return contextEngine, strings.TrimSpace(args)
}
