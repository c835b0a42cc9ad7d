package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/sheetcharts/internal/logger"
	"github.com/MKhiriev/sheetcharts/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	quitKey  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}
)

// press feeds keys to the model and reports whether the last one quit.
func press(t *testing.T, m pickerModel, msgs ...tea.Msg) (pickerModel, bool) {
	t.Helper()
	var quit bool
	for _, msg := range msgs {
		next, cmd := m.Update(msg)
		m = next.(pickerModel)
		quit = cmd != nil && isQuit(cmd)
	}
	return m, quit
}

func isQuit(cmd tea.Cmd) bool {
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestPicker_AsksOnlyForMissingChoices(t *testing.T) {
	tests := []struct {
		name      string
		preset    models.Axes
		wantSteps []pickField
	}{
		{"nothing preset", models.Axes{}, []pickField{fieldX, fieldY, fieldChart}},
		{"x preset", models.Axes{XAxis: "Month"}, []pickField{fieldY, fieldChart}},
		{"only chart missing", models.Axes{XAxis: "Month", YAxis: "Revenue"}, []pickField{fieldChart}},
		{"all preset", models.Axes{XAxis: "Month", YAxis: "Revenue", ChartType: models.ChartPie}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newPickerModel([]string{"Month", "Revenue"}, tt.preset)

			var got []pickField
			for _, s := range m.steps {
				got = append(got, s.field)
			}
			assert.Equal(t, tt.wantSteps, got)
			assert.Equal(t, len(tt.wantSteps) == 0, m.done())
		})
	}
}

func TestPicker_FullWalk(t *testing.T) {
	m := newPickerModel([]string{"Month", "Region", "Revenue"}, models.Axes{})

	// x: Month; y: Revenue (two down); chart: line (one down)
	m, quit := press(t, m, enterKey, downKey, downKey, enterKey, downKey, enterKey)

	require.True(t, quit)
	assert.True(t, m.done())
	assert.False(t, m.quit)
	assert.Equal(t, models.Axes{XAxis: "Month", YAxis: "Revenue", ChartType: models.ChartLine}, m.axes)
}

func TestPicker_BackAndQuit(t *testing.T) {
	t.Run("esc goes back one step", func(t *testing.T) {
		m := newPickerModel([]string{"A", "B"}, models.Axes{})

		m, quit := press(t, m, enterKey, escKey)

		assert.False(t, quit)
		assert.Equal(t, 0, m.idx)
	})

	t.Run("esc on the first step cancels", func(t *testing.T) {
		m := newPickerModel([]string{"A", "B"}, models.Axes{})

		m, quit := press(t, m, escKey)

		assert.True(t, quit)
		assert.True(t, m.quit)
	})

	t.Run("q cancels", func(t *testing.T) {
		m := newPickerModel([]string{"A", "B"}, models.Axes{})

		m, quit := press(t, m, enterKey, quitKey)

		assert.True(t, quit)
		assert.True(t, m.quit)
	})
}

func TestPicker_View(t *testing.T) {
	m := newPickerModel([]string{"Month", "Revenue"}, models.Axes{})
	m, _ = press(t, m, tea.WindowSizeMsg{Width: 80, Height: 30}, enterKey)

	view := m.View()

	assert.Contains(t, view, "Y axis: values")
	assert.Contains(t, view, "step 2/3")
	assert.Contains(t, view, "Month")
}

func TestPickAxes_NothingToAsk(t *testing.T) {
	ui := New(nil, nil, logger.Nop())
	preset := models.Axes{XAxis: "Month", YAxis: "Revenue", ChartType: models.ChartBar}

	got, err := ui.PickAxes(context.Background(), []string{"Month", "Revenue"}, preset)

	require.NoError(t, err)
	assert.Equal(t, preset, got)
}

func TestPickAxes_NoColumns(t *testing.T) {
	_, err := New(nil, nil, logger.Nop()).PickAxes(context.Background(), nil, models.Axes{})
	assert.Error(t, err)
}

func TestHumanizeError(t *testing.T) {
	assert.Empty(t, HumanizeError(nil))
	assert.Equal(t, "server unreachable: check the address and your network",
		HumanizeError(errors.New(`Post "http://x/api/auth/login": dial tcp 127.0.0.1:1: connect: connection refused`)))
	assert.Equal(t, "file too large", HumanizeError(errors.New("file too large")))
}

func TestRenderVersion(t *testing.T) {
	client := models.NewAppBuildInfo("1.0.0", "", "abc")

	withServer := RenderVersion(client, &models.VersionResponse{Version: "1.0.1"})
	assert.Contains(t, withServer, "Client version: 1.0.0")
	assert.Contains(t, withServer, "Client build date: N/A")
	assert.Contains(t, withServer, "Server version: 1.0.1")

	offline := RenderVersion(client, nil)
	assert.Contains(t, offline, "Server version: unreachable")
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "Revenue", fitText("Revenue", 10))
	assert.Equal(t, "Reve...", fitText("Revenue (USD)", 7))
	assert.Equal(t, "Вы", fitText("Выручка", 2))
}
