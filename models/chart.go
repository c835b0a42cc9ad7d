package models

// ChartType is one of the chart kinds a user can pick.
type ChartType string

const (
	ChartBar       ChartType = "bar"
	ChartLine      ChartType = "line"
	ChartPie       ChartType = "pie"
	ChartDoughnut  ChartType = "doughnut"
	ChartPolarArea ChartType = "polarArea"
	ChartRadar     ChartType = "radar"
)

// DefaultChartType is used when a request leaves the chart kind blank.
const DefaultChartType = ChartBar

// ChartTypes lists every supported chart kind in picker order.
var ChartTypes = []ChartType{ChartBar, ChartLine, ChartPie, ChartDoughnut, ChartPolarArea, ChartRadar}

// Valid reports whether c is one of the supported chart kinds.
func (c ChartType) Valid() bool {
	for _, t := range ChartTypes {
		if c == t {
			return true
		}
	}
	return false
}

// OrDefault returns c, or DefaultChartType when c is empty.
func (c ChartType) OrDefault() ChartType {
	if c == "" {
		return DefaultChartType
	}
	return c
}

// ExportFormat is the output format of a rendered chart.
type ExportFormat string

const (
	ExportPNG ExportFormat = "png"
	ExportPDF ExportFormat = "pdf"
)

// Valid reports whether f is a supported export format.
func (f ExportFormat) Valid() bool {
	return f == ExportPNG || f == ExportPDF
}

// ContentType returns the MIME type of the format.
func (f ExportFormat) ContentType() string {
	if f == ExportPDF {
		return "application/pdf"
	}
	return "image/png"
}

// Dataset is the labeled series handed to the chart renderer. Labels and
// Values always have the same length: one entry per data row.
type Dataset struct {
	Label  string    `json:"label"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// Len returns the number of points in the dataset.
func (d Dataset) Len() int {
	return len(d.Labels)
}

// Axes is the user's choice of columns and chart kind.
type Axes struct {
	XAxis     string    `json:"xAxis"`
	YAxis     string    `json:"yAxis"`
	ChartType ChartType `json:"chartType"`
}

// Complete reports whether both columns are chosen.
func (a Axes) Complete() bool {
	return a.XAxis != "" && a.YAxis != ""
}
