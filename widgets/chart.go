package widgets

import (
	"fmt"
	"time"

	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
)

// ChartPoint is one month of net movement, in dollars.
type ChartPoint struct {
	When  time.Time
	Value float64
}

var (
	chartLineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#fab387"))
	chartAxisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#585b70"))
	chartLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	chartTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
)

// RenderMonthlyChart draws the monthly net-movement line for the dashboard.
// Needs at least two points and a few rows of height; otherwise returns "".
func RenderMonthlyChart(points []ChartPoint, width, height int) string {
	if len(points) < 2 || width < 20 || height < 5 {
		return ""
	}

	minVal, maxVal := points[0].Value, points[0].Value
	for _, p := range points[1:] {
		if p.Value < minVal {
			minVal = p.Value
		}
		if p.Value > maxVal {
			maxVal = p.Value
		}
	}
	if minVal == maxVal {
		maxVal = minVal + 1
	}

	chart := tslc.New(width, height-1)
	chart.SetStyle(chartLineStyle)
	chart.AxisStyle = chartAxisStyle
	chart.LabelStyle = chartLabelStyle
	chart.SetTimeRange(points[0].When, points[len(points)-1].When)
	chart.SetViewTimeRange(points[0].When, points[len(points)-1].When)
	chart.SetYRange(minVal, maxVal)
	chart.SetViewYRange(minVal, maxVal)
	chart.XLabelFormatter = func(_ int, v float64) string {
		return time.Unix(int64(v), 0).UTC().Format("Jan06")
	}
	chart.YLabelFormatter = func(_ int, v float64) string {
		return fmt.Sprintf("%.0f", v)
	}

	for _, p := range points {
		chart.Push(tslc.TimePoint{Time: p.When, Value: p.Value})
	}
	chart.DrawBraille()

	return chartTitleStyle.Render("Monthly net movement ($)") + "\n" + chart.View()
}
