package risk

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/stockdeck/stockdeck/internal/models"
)

// maxChartSKULen caps SKU labels on the bar chart so long identifiers do
// not collide. Display-only; the ranking itself never truncates.
const maxChartSKULen = 12

// RenderUrgencyDonut renders the urgency histogram as a PNG donut chart.
// Returns an error when no bucket has a non-zero count.
func RenderUrgencyDonut(buckets []models.UrgencyBucket) ([]byte, error) {
	if len(buckets) == 0 {
		return nil, fmt.Errorf("no urgency buckets to render")
	}

	values := make([]chart.Value, len(buckets))
	for i, b := range buckets {
		values[i] = chart.Value{
			Value: float64(b.Count),
			Label: fmt.Sprintf("%s (%d)", b.Label, b.Count),
			Style: chart.Style{
				FillColor: drawing.ColorFromHex(strings.TrimPrefix(b.Color, "#")),
			},
		}
	}

	graph := chart.DonutChart{
		Title:  "Risk Level Distribution",
		Width:  480,
		Height: 400,
		Values: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}

// RenderTopRevenueBar renders the revenue-at-risk ranking as a PNG bar
// chart. Records are expected ranked already (see TopByRevenue).
func RenderTopRevenueBar(records []models.RiskRecord) ([]byte, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no risk records to render")
	}

	bars := make([]chart.Value, len(records))
	for i, rec := range records {
		label := rec.SKU
		if len(label) > maxChartSKULen {
			label = label[:maxChartSKULen] + "..."
		}
		bars[i] = chart.Value{
			Value: rec.RevenueAtRisk,
			Label: label,
			Style: chart.Style{
				FillColor: drawing.ColorFromHex("4ECDC4"),
			},
		}
	}

	graph := chart.BarChart{
		Title:    "Revenue at Risk",
		Width:    900,
		Height:   400,
		BarWidth: 48,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.0f", f)
				}
				return ""
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}
