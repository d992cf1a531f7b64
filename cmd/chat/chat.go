package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ergochat/readline"

	"github.com/vizierhq/vizier/catalog"
	"github.com/vizierhq/vizier/explore"
)

// stage tracks where the dialog is in the exploration flow.
type stage int

const (
	stageDataset stage = iota // waiting for a dataset name
	stageFilters              // collecting filters, 'done' advances
	stageChart                // waiting for a chart directive
	stageAdjust               // post-summary refinement loop
)

// previewRows caps the result preview shown after each summary.
const previewRows = 5

// Chat holds the dialog state: the exploration session, the current stage,
// the database connection, and the last rendered chart.
type Chat struct {
	state     *explore.State
	stage     stage
	engine    string
	conn      *dbConn // nil when disconnected
	lastDSN   string  // remembers the previous DSN for reconnect
	chartDir  string
	chartPath string
	commands  []commandEntry // command registry (sorted by prefix length desc)
	rl        *readline.Instance
	out       io.Writer // destination for dialog output (default os.Stdout)
}

// NewChat creates a dialog session for the given storage engine.
func NewChat(engine string, rl *readline.Instance) *Chat {
	c := &Chat{
		state:    explore.NewState(catalog.Builtin()),
		engine:   engine,
		chartDir: "charts",
		rl:       rl,
		out:      os.Stdout,
	}
	c.initCommands()
	return c
}

// Greet prints the opening prompt and puts the dialog in dataset selection.
func (c *Chat) Greet() {
	c.stage = stageDataset
	fmt.Fprintln(c.out, "Hi! I can help you explore your metrics.")
	fmt.Fprintln(c.out, "Pick a dataset to begin (type the name):")
	fmt.Fprintf(c.out, "  %s\n", strings.Join(c.state.Datasets(), ", "))
	fmt.Fprintln(c.out, "Type 'help' for guidance or 'exit' to quit.")
}

// Execute handles a single line of user input: registry commands first,
// then whatever the current stage expects.
func (c *Chat) Execute(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	lower := strings.ToLower(line)

	for _, cmd := range c.commands {
		if strings.HasSuffix(cmd.prefix, " ") {
			if strings.HasPrefix(lower, cmd.prefix) {
				return cmd.handler(line[len(cmd.prefix):])
			}
		} else {
			if lower == cmd.prefix {
				return cmd.handler("")
			}
		}
	}

	switch c.stage {
	case stageDataset:
		return c.handleDataset(line)
	case stageFilters:
		return c.handleFilters(line)
	case stageChart:
		return c.handleChart(line)
	default:
		return c.handleAdjust(line)
	}
}

// --- Stage handlers ---

func (c *Chat) handleDataset(text string) error {
	name, ok := matchDataset(c.state.Datasets(), text)
	if !ok {
		fmt.Fprintln(c.out, "  I couldn't find that dataset.")
		fmt.Fprintf(c.out, "  Available options: %s\n", strings.Join(c.state.Datasets(), ", "))
		return nil
	}

	d, err := c.state.SelectDataset(name)
	if err != nil {
		return err
	}
	c.stage = stageFilters
	c.chartPath = ""

	fmt.Fprintf(c.out, "  Exploring %q.\n", d.Name)
	fmt.Fprintln(c.out, "  Add filters as 'column=value' or 'column between start and end'; 'done' to move on.")
	if suggestions := c.state.SuggestFilters(); len(suggestions) > 0 {
		fmt.Fprintln(c.out, "  Suggested filters:")
		for _, sug := range suggestions {
			fmt.Fprintf(c.out, "    - %s\n", sug)
		}
	}
	if related, err := c.state.SuggestRelated(); err == nil && len(related) > 0 {
		fmt.Fprintf(c.out, "  Related datasets you can switch to later: %s\n", strings.Join(related, ", "))
	}
	return nil
}

func (c *Chat) handleFilters(text string) error {
	column, values, ok := parseFilter(text)
	if !ok {
		fmt.Fprintln(c.out, "  I didn't understand that filter.")
		fmt.Fprintln(c.out, "  Use 'column=value', 'column=v1,v2', or 'column between start and end'; 'done' when finished.")
		return nil
	}

	if _, err := c.state.AddFilter(column, "", values...); err != nil {
		return err
	}
	c.printFilters()
	fmt.Fprintln(c.out, "  Add another filter or type 'done' to continue.")
	return nil
}

func (c *Chat) handleChart(text string) error {
	if !looksLikeDirective(text) {
		c.chartPrompt()
		return nil
	}
	if err := c.state.ApplyChartDirective(text); err != nil {
		return err
	}
	return c.summarize()
}

func (c *Chat) handleAdjust(text string) error {
	if looksLikeDirective(text) {
		if err := c.state.ApplyChartDirective(text); err != nil {
			return err
		}
		return c.summarize()
	}
	fmt.Fprintln(c.out, "  You can tweak the chart with 'chart=bar x=region y=sum:monthly_spend',")
	fmt.Fprintln(c.out, "  refine with 'filter column=value', re-run with 'refresh', or 'restart' to begin again.")
	return nil
}

func (c *Chat) chartPrompt() {
	fmt.Fprintln(c.out, "  Let's design a chart.")
	if d, ok := c.state.Dataset(); ok {
		fmt.Fprintf(c.out, "  Available columns: %s\n", strings.Join(d.ColumnNames(), ", "))
	}
	fmt.Fprintln(c.out, "  Try 'chart=bar x=region,plan_type y=sum:monthly_spend breakdowns=status'.")
	fmt.Fprintf(c.out, "  Chart types: %s\n", strings.Join(explore.ChartTypes, ", "))
}

// summarize compiles the session, runs the query when connected, previews
// the rows, and renders the chart. It always leaves the dialog in the
// adjust stage.
func (c *Chat) summarize() error {
	payload, err := c.state.Assemble()
	if err != nil {
		return err
	}
	c.stage = stageAdjust

	fmt.Fprintln(c.out, "  Here's the summary of your exploration:")
	fmt.Fprintf(c.out, "  Dataset: %s\n", payload.Dataset)
	c.printFilters()
	fmt.Fprintf(c.out, "  Dimensions: %s\n", orNone(strings.Join(payload.Dimensions, ", ")))
	fmt.Fprintf(c.out, "  Metrics: %s\n", orNone(metricsLine(payload.Metrics)))
	fmt.Fprintf(c.out, "  Chart: %s\n", orNone(payload.Visualization.ChartType))
	fmt.Fprintf(c.out, "  SQL: %s\n", payload.SQL)

	if c.conn == nil {
		fmt.Fprintln(c.out, "  (not connected; use 'connect' to run the query and render the chart)")
		return nil
	}

	columns, rows, err := c.conn.query(payload.SQL)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, "  Top rows:")
	fmt.Fprint(c.out, previewTable(columns, rows))

	path, err := renderChart(c.chartDir, rows, payload.Visualization, payload.Metrics)
	switch {
	case err != nil:
		c.chartPath = ""
		fmt.Fprintf(c.out, "  Warning: unable to render chart: %v\n", err)
	case path == "":
		c.chartPath = ""
		fmt.Fprintln(c.out, "  No chart generated (no result rows or metrics).")
	default:
		c.chartPath = path
		fmt.Fprintf(c.out, "  Chart saved to: %s\n", path)
	}

	fmt.Fprintln(c.out, "  Adjust with 'chart=...', 'filter column=value', 'refresh', or 'restart'.")
	return nil
}

func (c *Chat) printFilters() {
	filters := c.state.Filters()
	if len(filters) == 0 {
		fmt.Fprintln(c.out, "  Filters: (none)")
		return
	}
	fmt.Fprintln(c.out, "  Filters:")
	for _, f := range filters {
		fmt.Fprintf(c.out, "    - %s %s %s\n", f.Column, f.Op, strings.Join(f.Values, ", "))
	}
}

// previewTable renders the first few result rows in the usual table layout.
func previewTable(columns []string, rows []map[string]string) string {
	if len(rows) == 0 {
		return "  (no results)\n"
	}
	n := len(rows)
	if n > previewRows {
		n = previewRows
	}
	data := make([][]string, n)
	for i := 0; i < n; i++ {
		cells := make([]string, len(columns))
		for j, col := range columns {
			cells[j] = rows[i][col]
		}
		data[i] = cells
	}
	table := formatTable(columns, data)
	if len(rows) > previewRows {
		table += fmt.Sprintf("... (%d more rows)\n", len(rows)-previewRows)
	}
	return table
}

func metricsLine(metrics []explore.Metric) string {
	parts := make([]string, len(metrics))
	for i, m := range metrics {
		parts[i] = fmt.Sprintf("%s(%s) as %s", m.Agg, m.Column, m.Alias)
	}
	return strings.Join(parts, ", ")
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
