// Package charts renders insight series as PNG images.
package charts

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"pocketledger/internal/insights"
)

// Renderer turns aggregation output into chart PNGs.
type Renderer struct{}

// NewRenderer creates a chart renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// BreakdownPie renders the expense-by-category breakdown as a pie chart.
// Returns nil bytes when there is nothing to draw.
func (r *Renderer) BreakdownPie(slices []insights.CategorySlice) ([]byte, error) {
	if len(slices) == 0 {
		return nil, nil
	}

	values := make([]chart.Value, 0, len(slices))
	for _, s := range slices {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%.2f)", s.Name, s.Amount),
			Value: s.Amount,
		})
	}

	pie := chart.PieChart{
		Width:  800,
		Height: 800,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MonthlySeries renders monthly income and expense totals as two line
// series over the months of the window.
func (r *Renderer) MonthlySeries(series []insights.MonthlyPoint) ([]byte, error) {
	if len(series) == 0 {
		return nil, nil
	}

	xValues := make([]float64, len(series))
	income := make([]float64, len(series))
	expenses := make([]float64, len(series))
	ticks := make([]chart.Tick, len(series))
	for i, point := range series {
		xValues[i] = float64(i)
		income[i] = point.Income
		expenses[i] = point.Expenses
		ticks[i] = chart.Tick{Value: float64(i), Label: point.Label}
	}

	graph := chart.Chart{
		Width:  1200,
		Height: 600,
		Background: chart.Style{
			Padding:   chart.Box{Top: 50, Left: 50, Right: 50, Bottom: 50},
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.XAxis{Ticks: ticks},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Income",
				XValues: xValues,
				YValues: income,
				Style:   chart.Style{StrokeColor: chart.ColorGreen, StrokeWidth: 2},
			},
			chart.ContinuousSeries{
				Name:    "Expenses",
				XValues: xValues,
				YValues: expenses,
				Style:   chart.Style{StrokeColor: chart.ColorRed, StrokeWidth: 2},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BalanceLine renders the running balance as a time series.
func (r *Renderer) BalanceLine(points []insights.BalancePoint) ([]byte, error) {
	if len(points) == 0 {
		return nil, nil
	}

	xValues := make([]time.Time, len(points))
	yValues := make([]float64, len(points))
	for i, point := range points {
		xValues[i] = time.UnixMilli(point.Date).UTC()
		yValues[i] = point.Balance
	}

	graph := chart.Chart{
		Width:  1200,
		Height: 600,
		Background: chart.Style{
			Padding:   chart.Box{Top: 50, Left: 50, Right: 50, Bottom: 50},
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("Jan 02"),
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Balance",
				XValues: xValues,
				YValues: yValues,
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 2},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
