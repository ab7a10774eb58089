package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Round log layout constants
const (
	roundLogMargin   = 8  // Rows reserved for title, help and borders
	roundNumberWidth = 4  // "#12"
	roundTimeWidth   = 10 // "1h02m03s"
	maxRoundRecords  = 200
)

// RoundRecord is one finished round of the current session.
type RoundRecord struct {
	Number  int
	Elapsed time.Duration // Session time when the round ended
	Summary string
}

// RoundLog is a scrollable table of the rounds played in this session.
// Nothing is persisted; the log lives as long as the session.
type RoundLog struct {
	table   table.Model
	records []RoundRecord
	width   int
	height  int
}

// NewRoundLog creates an empty round log sized for the terminal.
func NewRoundLog(width, height int) RoundLog {
	r := RoundLog{width: width, height: height}
	r.table = r.createTable()
	return r
}

// createTable creates a new table with columns fitted to the width.
func (r *RoundLog) createTable() table.Model {
	summaryWidth := r.width - roundNumberWidth - roundTimeWidth - 10 // Borders and cell padding
	summaryWidth = max(summaryWidth, 20)

	columns := []table.Column{
		{Title: "#", Width: roundNumberWidth},
		{Title: "Time", Width: roundTimeWidth},
		{Title: "Outcome", Width: summaryWidth},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(r.height-roundLogMargin, 3)),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Add appends a finished round and keeps the newest one selected.
func (r *RoundLog) Add(rec RoundRecord) {
	r.records = append(r.records, rec)
	if len(r.records) > maxRoundRecords {
		r.records = r.records[len(r.records)-maxRoundRecords:]
	}
	r.updateTableRows()
}

// Records returns the recorded rounds, oldest first.
func (r RoundLog) Records() []RoundRecord {
	return r.records
}

// Resize rebuilds the table for a new terminal size.
func (r *RoundLog) Resize(width, height int) {
	r.width = width
	r.height = height
	r.table = r.createTable()
	r.updateTableRows()
}

// updateTableRows updates the table with the current records.
func (r *RoundLog) updateTableRows() {
	rows := make([]table.Row, len(r.records))
	for i, rec := range r.records {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", rec.Number),
			rec.Elapsed.Truncate(time.Second).String(),
			rec.Summary,
		}
	}
	r.table.SetRows(rows)
	r.table.GotoBottom()
}

// Update passes scrolling keys to the table.
func (r RoundLog) Update(msg tea.Msg) (RoundLog, tea.Cmd) {
	var cmd tea.Cmd
	r.table, cmd = r.table.Update(msg)
	return r, cmd
}

// View renders the log with a title.
func (r RoundLog) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("ROUNDS THIS SESSION", r.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(r.records) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		box := tableStyle.Render(emptyStyle.Render("No rounds finished yet."))
		b.WriteString(lipgloss.PlaceHorizontal(r.width, lipgloss.Center, box))
		return b.String()
	}

	b.WriteString(tableStyle.Render(r.table.View()))
	return b.String()
}

// centerText pads text on the left to center it within width.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	padding := (width - textWidth) / 2
	return strings.Repeat(" ", padding) + text
}
