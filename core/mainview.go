package core

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"bswizard/widgets"
)

// MainView is the resting screen: the imported-statements table with a
// monthly net-movement chart underneath. It never sits on the modal stack.
type MainView struct {
	table   table.Model
	monthly []MonthlyPoint
	loaded  bool
	width   int
	height  int
}

func NewMainView() *MainView {
	t := table.New(
		table.WithColumns(statementColumns(96)),
		table.WithFocused(true),
		table.WithHeight(8),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorBorder).
		BorderBottom(true).
		Bold(true).
		Foreground(colorAccent)
	s.Selected = s.Selected.
		Foreground(colorText).
		Background(colorSurface0).
		Bold(false)
	t.SetStyles(s)
	return &MainView{table: t, width: 100, height: 24}
}

func statementColumns(width int) []table.Column {
	name := width - 12 - 14 - 14 - 6
	if name < 16 {
		name = 16
	}
	return []table.Column{
		{Title: "Statement", Width: name},
		{Title: "Imported", Width: 12},
		{Title: "Transactions", Width: 14},
		{Title: "Net", Width: 14},
	}
}

func (v *MainView) Resize(width, height int) {
	v.width, v.height = width, height
	v.table.SetColumns(statementColumns(max(40, width-4)))
}

func (v *MainView) SetData(rows []StatementRow, monthly []MonthlyPoint) {
	trows := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		trows = append(trows, table.Row{
			r.Name,
			r.ImportedOn.Format("2006-01-02"),
			fmt.Sprintf("%d", r.TxCount),
			FormatCents(r.NetCents),
		})
	}
	v.table.SetRows(trows)
	v.monthly = monthly
	v.loaded = true
}

func (v *MainView) Title() string { return "Bank Statement Wizard" }

func (v *MainView) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd, false
}

func (v *MainView) View(width, height int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Bank Statement Wizard"))
	b.WriteString("\n")
	if !v.loaded || len(v.table.Rows()) == 0 {
		empty := lipgloss.NewStyle().Foreground(colorMuted).Padding(1, 2).
			Render("No statements yet. Press F2 to open the Statements menu and add one.")
		b.WriteString(empty)
		return b.String()
	}

	tableHeight := max(4, min(len(v.table.Rows())+1, height/2))
	v.table.SetHeight(tableHeight)
	b.WriteString(v.table.View())

	chartHeight := height - tableHeight - 4
	if chartHeight >= 6 && len(v.monthly) >= 2 {
		points := make([]widgets.ChartPoint, 0, len(v.monthly))
		for _, p := range v.monthly {
			points = append(points, widgets.ChartPoint{
				When:  p.Month,
				Value: float64(p.NetCents) / 100,
			})
		}
		b.WriteString("\n\n")
		b.WriteString(widgets.RenderMonthlyChart(points, max(20, width-4), chartHeight))
	}
	return b.String()
}

// FormatCents renders a signed cent amount as dollars for the table.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
