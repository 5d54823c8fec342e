package reporters

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/term"

	"github.com/smykla-skalski/anot/internal/color"
	"github.com/smykla-skalski/anot/internal/doctor"
	"github.com/smykla-skalski/anot/internal/xdg"
)

// Layout limits for the table. A column costs a border plus one space of
// padding on each side, and the table closes with one more border.
const (
	minTableWidth   = 40
	minMessageWidth = 20
	minNameWidth    = 5
	iconWidth       = 1
	cellPadding     = 2
	columnOverhead  = 1 + cellPadding
	messageShare    = 60
)

var borderRunes = []string{"╭", "╮", "╰", "╯", "│", "─", "┬", "┴", "├", "┤", "┼"}

// TableReporter renders results as a rounded table, one merged header row
// per category, followed by a colored summary line.
type TableReporter struct {
	out   io.Writer
	theme color.Theme
	width int
}

// NewTableReporter creates a TableReporter writing to out, sized to the
// terminal behind out when there is one.
func NewTableReporter(out io.Writer, theme color.Theme) *TableReporter {
	return &TableReporter{out: out, theme: theme, width: terminalWidth(out)}
}

// WithWidth fixes the table width instead of asking the terminal.
// Widths below the table minimum let cells size themselves.
func (r *TableReporter) WithWidth(width int) *TableReporter {
	r.width = width

	return r
}

// Report writes the header, the table and the summary.
func (r *TableReporter) Report(results []doctor.CheckResult, verbose bool) {
	fmt.Fprintln(r.out, header)
	fmt.Fprintln(r.out)

	if tbl := r.Render(results, verbose); tbl != "" {
		fmt.Fprintln(r.out, tbl)
		fmt.Fprintln(r.out)
	}

	fmt.Fprintln(r.out, RenderSummary(results, r.theme))
}

// Render returns the table alone, or "" when there is nothing to show.
func (r *TableReporter) Render(results []doctor.CheckResult, verbose bool) string {
	groups := GroupResultsByCategory(results)
	if len(groups) == 0 {
		return ""
	}

	columns := []string{"", "Check", "Message"}
	if verbose {
		columns = append(columns, "Details")
	}

	widths := columnWidths(r.width, results, verbose)

	var buf bytes.Buffer

	t := tablewriter.NewTable(&buf, tableOptions(widths)...)
	t.Header(columns)

	for _, g := range groups {
		title := r.theme.Header.Render(getCategoryName(g.Category))

		// Identical cells after the icon collapse into one spanning header.
		_ = t.Append(append([]string{""}, slices.Repeat([]string{title}, len(columns)-1)...))

		for _, res := range sortBySeverity(g.Results) {
			_ = t.Append(resultRow(res, verbose, widths, r.theme))
		}
	}

	_ = t.Render()

	return dimBorders(strings.TrimRight(buf.String(), "\n"), r.theme)
}

func tableOptions(widths []int) []tablewriter.Option {
	opts := []tablewriter.Option{
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Symbols:  tw.NewSymbols(tw.StyleRounded),
			Settings: tw.Settings{Separators: tw.Separators{BetweenRows: tw.On}},
		})),
		tablewriter.WithPadding(tw.Padding{Left: " ", Right: " "}),
		tablewriter.WithConfig(tablewriter.NewConfigBuilder().
			WithTrimSpace(tw.Off).
			Row().Merging().WithMode(tw.MergeHorizontal).Build().
			Formatting().WithAutoWrap(tw.WrapNormal).Build().
			Build().Build()),
	}

	if widths == nil {
		return opts
	}

	cells := make(tw.Mapper[int, int], len(widths))
	for col, w := range widths {
		cells[col] = w + cellPadding
	}

	return append(opts, tablewriter.WithColumnWidths(cells))
}

// resultRow builds the cells of one result, padded to widths when set.
func resultRow(res doctor.CheckResult, verbose bool, widths []int, theme color.Theme) []string {
	row := []string{
		StyledIcon(res, theme),
		theme.CheckName.Render(res.Name),
		collapseHome(res.Message),
	}

	if verbose {
		row = append(row, collapseHome(strings.Join(res.Details, "; ")))
	}

	if widths == nil {
		return row
	}

	for i := range row {
		row[i] = padToWidth(row[i], widths[i])
	}

	return row
}

// columnWidths splits a terminal width between the columns. The icon column
// is fixed, the name column fits the longest name unless that would starve
// the message, and verbose mode shares the rest between message and details.
// It returns nil when the terminal is unknown or too narrow for a table.
func columnWidths(width int, results []doctor.CheckResult, verbose bool) []int {
	if width < minTableWidth {
		return nil
	}

	count := 3
	if verbose {
		count = 4
	}

	free := width - count*columnOverhead - 1 - iconWidth
	if free < minMessageWidth+minNameWidth {
		return nil
	}

	name := minNameWidth
	for _, res := range results {
		name = max(name, runewidth.StringWidth(res.Name))
	}

	name = min(name, free-minMessageWidth)
	rest := free - name

	if !verbose {
		return []int{iconWidth, name, rest}
	}

	message := rest * messageShare / 100

	return []int{iconWidth, name, message, rest - message}
}

// padToWidth right-pads s to w visible columns, ignoring ANSI sequences.
func padToWidth(s string, w int) string {
	gap := w - runewidth.StringWidth(ansi.Strip(s))
	if gap <= 0 {
		return s
	}

	return s + strings.Repeat(" ", gap)
}

func dimBorders(s string, theme color.Theme) string {
	for _, r := range borderRunes {
		s = strings.ReplaceAll(s, r, theme.Muted.Render(r))
	}

	return s
}

// collapseHome abbreviates every occurrence of the home directory.
func collapseHome(s string) string {
	home := xdg.ExpandPathSilent("~")
	if home == "" || home == "~" {
		return s
	}

	return strings.ReplaceAll(s, home, "~")
}

// terminalWidth returns the width of the terminal behind out, then stderr,
// or 0 when neither is a terminal.
func terminalWidth(out io.Writer) int {
	for _, w := range []io.Writer{out, os.Stderr} {
		f, ok := w.(*os.File)
		if !ok {
			continue
		}

		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 { //nolint:gosec // fd fits int
			return cols
		}
	}

	return 0
}

// StatusIcon returns a single-column glyph for a result. Emoji are avoided
// because they break column alignment.
func StatusIcon(res doctor.CheckResult) string {
	switch {
	case res.IsPassed():
		return "✓"
	case res.IsSkipped():
		return "-"
	case res.IsError():
		return "✗"
	case res.IsWarning():
		return "!"
	case res.Status == doctor.StatusFail:
		return "i"
	default:
		return "?"
	}
}

// StyledIcon returns StatusIcon colored by theme.
func StyledIcon(res doctor.CheckResult, theme color.Theme) string {
	icon := StatusIcon(res)

	switch {
	case res.IsPassed():
		return theme.Pass.Render(icon)
	case res.IsSkipped():
		return theme.Skip.Render(icon)
	case res.IsError():
		return theme.Fail.Render(icon)
	case res.Status == doctor.StatusFail:
		return theme.Warning.Render(icon)
	default:
		return icon
	}
}

// RenderSummary returns the summary line, coloring only non-zero problem
// counts.
func RenderSummary(results []doctor.CheckResult, theme color.Theme) string {
	c := countResults(results)

	parts := []string{
		highlight(fmt.Sprintf("%d error(s)", c.errors), c.errors > 0, theme.Fail),
		highlight(fmt.Sprintf("%d warning(s)", c.warnings), c.warnings > 0, theme.Warning),
		theme.Pass.Render(fmt.Sprintf("%d passed", c.passed)),
	}

	if c.skipped > 0 {
		parts = append(parts, theme.Skip.Render(fmt.Sprintf("%d skipped", c.skipped)))
	}

	return "Summary: " + strings.Join(parts, ", ")
}

func highlight(text string, on bool, style lipgloss.Style) string {
	if !on {
		return text
	}

	return style.Render(text)
}

// severityRank orders errors first and skipped checks last.
func severityRank(res doctor.CheckResult) int {
	switch {
	case res.IsError():
		return 0
	case res.IsWarning():
		return 1
	case res.IsSkipped():
		return 3
	default:
		return 2
	}
}

func sortBySeverity(results []doctor.CheckResult) []doctor.CheckResult {
	sorted := slices.Clone(results)
	slices.SortStableFunc(sorted, func(a, b doctor.CheckResult) int {
		return severityRank(a) - severityRank(b)
	})

	return sorted
}
