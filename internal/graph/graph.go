// Package graph рисует график настроения в PNG.
package graph

import (
	"bytes"
	"errors"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/s1edev/trackerFeel/pkg/models"
)

var (
	lineColor       = drawing.ColorFromHex("4CAF50")
	backgroundColor = drawing.ColorFromHex("FAFAFA")
	gridColor       = drawing.ColorFromHex("BDBDBD")
)

// ErrNoEntries — нечего рисовать.
var ErrNoEntries = errors.New("нет записей для графика")

// Render строит PNG-график по записям в хронологическом порядке.
func Render(entries []models.MoodEntry) ([]byte, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	xs := make([]time.Time, len(entries))
	ys := make([]float64, len(entries))
	for i, e := range entries {
		xs[i] = e.CreatedAt
		ys[i] = float64(models.MoodValue(e.Mood))
	}
	if len(xs) == 1 {
		// ряд из одной точки не рисуется, дублируем её
		xs = append(xs, xs[0].Add(time.Hour))
		ys = append(ys, ys[0])
	}

	ticks := make([]chart.Tick, 0, 5)
	for v := 1; v <= 5; v++ {
		ticks = append(ticks, chart.Tick{Value: float64(v), Label: models.MoodEmoji[v]})
	}

	c := chart.Chart{
		Width:      1200,
		Height:     600,
		Background: chart.Style{FillColor: backgroundColor},
		Canvas:     chart.Style{FillColor: backgroundColor},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("02.01"),
			GridMajorStyle: chart.Style{
				StrokeColor:     gridColor,
				StrokeWidth:     0.8,
				StrokeDashArray: []float64{4, 4},
			},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0.5, Max: 5.5},
			Ticks: ticks,
			GridMajorStyle: chart.Style{
				StrokeColor:     gridColor,
				StrokeWidth:     0.8,
				StrokeDashArray: []float64{4, 4},
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Style: chart.Style{
					StrokeColor: lineColor,
					StrokeWidth: 2.5,
					DotColor:    lineColor,
					DotWidth:    4,
				},
				XValues: xs,
				YValues: ys,
			},
		},
	}

	var buf bytes.Buffer
	if err := c.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
