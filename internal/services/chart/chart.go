// Package chart renders the wallet value / profit series to a PNG image.
package chart

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/vadiminshakov/coinreport/internal/domain"
)

var (
	walletColor = drawing.Color{R: 220, G: 60, B: 60, A: 255}
	profitColor = drawing.Color{R: 60, G: 160, B: 90, A: 255}
)

// Export renders the ordered series as a PNG at path: wallet value in
// red, mark-to-today profit in green, transaction times on the X axis.
func Export(points []domain.SeriesPoint, currency, path string) error {
	if len(points) < 2 {
		return errors.Errorf("need at least two series points to render a chart, got %d", len(points))
	}

	xs := make([]float64, len(points))
	walletValues := make([]float64, len(points))
	profits := make([]float64, len(points))
	ticks := make([]chart.Tick, len(points))
	for i, p := range points {
		xs[i] = float64(i)
		walletValues[i] = p.WalletValue.InexactFloat64()
		profits[i] = p.Profit.InexactFloat64()
		ticks[i] = chart.Tick{Value: float64(i), Label: p.Label}
	}

	cur := strings.ToUpper(currency)
	graph := chart.Chart{
		Title:  fmt.Sprintf("Wallet Value and Profit Over Time (%s)", cur),
		Width:  1200,
		Height: 800,
		XAxis: chart.XAxis{
			Name:  "Time",
			Ticks: ticks,
			Style: chart.Style{TextRotationDegrees: 45},
		},
		YAxis: chart.YAxis{
			Name: cur,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    fmt.Sprintf("Wallet Value (%s)", cur),
				XValues: xs,
				YValues: walletValues,
				Style: chart.Style{
					StrokeColor: walletColor,
					DotColor:    walletColor,
					DotWidth:    3,
				},
			},
			chart.ContinuousSeries{
				Name:    fmt.Sprintf("Profit (%s)", cur),
				XValues: xs,
				YValues: profits,
				Style: chart.Style{
					StrokeColor: profitColor,
					DotColor:    profitColor,
					DotWidth:    3,
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create plot file %s", path)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return errors.Wrap(err, "failed to render plot")
	}
	return nil
}
