package chart

import (
	"bytes"
	"fmt"
	"io"
	"math"

	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/MKhiriev/sheetcharts/models"
)

const (
	defaultWidth  = 1024
	defaultHeight = 576

	// x labels are thinned out above this many points
	maxTickLabels = 24
)

// Renderer draws datasets with go-chart.
type Renderer struct {
	Width  int
	Height int
}

func NewRenderer() *Renderer {
	return &Renderer{Width: defaultWidth, Height: defaultHeight}
}

// Render writes ds drawn as kind to w in the requested format.
func (r *Renderer) Render(w io.Writer, format models.ExportFormat, kind models.ChartType, title string, ds models.Dataset) error {
	switch format {
	case models.ExportPNG:
		return r.PNG(w, kind, title, ds)
	case models.ExportPDF:
		return r.PDF(w, kind, title, ds)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// PNG writes ds drawn as kind to w. Polar area charts are drawn as pies and
// radar charts as lines.
func (r *Renderer) PNG(w io.Writer, kind models.ChartType, title string, ds models.Dataset) error {
	if ds.Len() == 0 {
		return ErrEmptyDataset
	}

	var err error
	switch kind.OrDefault() {
	case models.ChartBar:
		err = r.bar(title, ds).Render(gochart.PNG, w)
	case models.ChartLine, models.ChartRadar:
		err = r.line(title, ds).Render(gochart.PNG, w)
	case models.ChartPie, models.ChartPolarArea:
		values, vErr := positiveValues(ds)
		if vErr != nil {
			return vErr
		}
		err = gochart.PieChart{Title: title, Width: r.Width, Height: r.Height, Values: values}.Render(gochart.PNG, w)
	case models.ChartDoughnut:
		values, vErr := positiveValues(ds)
		if vErr != nil {
			return vErr
		}
		err = gochart.DonutChart{Title: title, Width: r.Width, Height: r.Height, Values: values}.Render(gochart.PNG, w)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedChartType, kind)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}

	return nil
}

func (r *Renderer) bar(title string, ds models.Dataset) gochart.BarChart {
	bars := make([]gochart.Value, ds.Len())
	for i := range bars {
		bars[i] = gochart.Value{Label: ds.Labels[i], Value: ds.Values[i]}
	}

	// bars share the plot width evenly
	slot := max((r.Width-120)/ds.Len(), 2)
	barWidth := max(slot*3/4, 1)

	return gochart.BarChart{
		Title:      title,
		Width:      r.Width,
		Height:     r.Height,
		BarWidth:   barWidth,
		BarSpacing: max(slot-barWidth, 1),
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      gochart.Style{Hidden: ds.Len() > maxTickLabels},
		YAxis:      gochart.YAxis{Name: ds.Label, Range: valueRange(ds.Values, true)},
		Bars:       bars,
	}
}

func (r *Renderer) line(title string, ds models.Dataset) gochart.Chart {
	xs := make([]float64, ds.Len())
	for i := range xs {
		xs[i] = float64(i)
	}
	ys := ds.Values

	step := max(ds.Len()/maxTickLabels, 1)
	ticks := make([]gochart.Tick, 0, ds.Len()/step+1)
	for i := 0; i < ds.Len(); i += step {
		ticks = append(ticks, gochart.Tick{Value: float64(i), Label: ds.Labels[i]})
	}

	// go-chart needs two x values; a single row is drawn as a flat segment
	if ds.Len() == 1 {
		xs = []float64{0, 1}
		ys = []float64{ds.Values[0], ds.Values[0]}
		ticks = []gochart.Tick{{Value: 0, Label: ds.Labels[0]}, {Value: 1, Label: ""}}
	}

	ch := gochart.Chart{
		Title:      title,
		Width:      r.Width,
		Height:     r.Height,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: gochart.XAxis{
			Range: &gochart.ContinuousRange{Min: 0, Max: math.Max(float64(ds.Len()-1), 1)},
			Ticks: ticks,
		},
		YAxis: gochart.YAxis{Range: valueRange(ds.Values, false)},
		Series: []gochart.Series{
			gochart.ContinuousSeries{Name: ds.Label, XValues: xs, YValues: ys},
		},
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}

	return ch
}

// valueRange spans every value, optionally anchored at zero, and never
// collapses to a single point.
func valueRange(values []float64, withZero bool) *gochart.ContinuousRange {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	if withZero {
		lo, hi = math.Min(lo, 0), math.Max(hi, 0)
	}
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	return &gochart.ContinuousRange{Min: lo, Max: hi}
}

// positiveValues keeps the slices a pie can draw.
func positiveValues(ds models.Dataset) ([]gochart.Value, error) {
	values := make([]gochart.Value, 0, ds.Len())
	for i, v := range ds.Values {
		if v > 0 {
			values = append(values, gochart.Value{Label: ds.Labels[i], Value: v})
		}
	}
	if len(values) == 0 {
		return nil, ErrNoPositiveValues
	}
	return values, nil
}

// pngBytes renders into memory.
func (r *Renderer) pngBytes(kind models.ChartType, title string, ds models.Dataset) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.PNG(&buf, kind, title, ds); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
