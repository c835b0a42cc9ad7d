// Package tui holds the terminal screens of the sheetcharts CLI: the
// interactive axis and chart-type picker and the version page.
package tui

import (
	"context"
	"errors"
	"io"

	"github.com/MKhiriev/sheetcharts/internal/logger"
	"github.com/MKhiriev/sheetcharts/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	input  io.Reader
	output io.Writer

	logger *logger.Logger
}

// New returns a TUI bound to the given terminal streams; nil streams mean
// stdin and stdout.
func New(input io.Reader, output io.Writer, logger *logger.Logger) *TUI {
	return &TUI{input: input, output: output, logger: logger}
}

// PickAxes asks for whichever of the x column, y column and chart type
// preset leaves empty. With nothing to ask it returns preset unchanged.
func (t *TUI) PickAxes(ctx context.Context, columns []string, preset models.Axes) (models.Axes, error) {
	if len(columns) == 0 {
		return models.Axes{}, errors.New("spreadsheet has no columns")
	}

	model := newPickerModel(columns, preset)
	if model.done() {
		return preset, nil
	}

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if t.input != nil {
		opts = append(opts, tea.WithInput(t.input))
	}
	if t.output != nil {
		opts = append(opts, tea.WithOutput(t.output))
	}

	finalModel, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return models.Axes{}, err
	}

	result, ok := finalModel.(pickerModel)
	if !ok {
		return models.Axes{}, tea.ErrProgramKilled
	}
	if result.quit || !result.done() {
		return models.Axes{}, ErrUserQuit
	}

	t.logger.Debug().
		Str("x_axis", result.axes.XAxis).
		Str("y_axis", result.axes.YAxis).
		Str("chart_type", string(result.axes.ChartType)).
		Msg("axes picked")

	return result.axes, nil
}
