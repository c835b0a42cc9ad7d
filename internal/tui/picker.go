package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/sheetcharts/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

type pickField int

const (
	fieldX pickField = iota
	fieldY
	fieldChart
)

// option is one selectable column or chart type.
type option struct {
	value string
	hint  string
}

func (o option) Title() string       { return o.value }
func (o option) Description() string { return o.hint }
func (o option) FilterValue() string { return o.value }

type pickStep struct {
	field pickField
	list  list.Model
}

// pickerModel walks the user through the missing chart choices, one list per
// choice. Choices already present in the preset are not asked again.
type pickerModel struct {
	steps []pickStep
	idx   int
	axes  models.Axes
	quit  bool
}

func newPickerModel(columns []string, preset models.Axes) pickerModel {
	m := pickerModel{axes: preset}

	columnItems := func(hint string) []list.Item {
		items := make([]list.Item, 0, len(columns))
		for _, c := range columns {
			items = append(items, option{value: c, hint: hint})
		}
		return items
	}

	if preset.XAxis == "" {
		m.steps = append(m.steps, newPickStep(fieldX, "X axis: labels", columnItems("use as labels")))
	}
	if preset.YAxis == "" {
		m.steps = append(m.steps, newPickStep(fieldY, "Y axis: values", columnItems("use as numeric values")))
	}
	if preset.ChartType == "" {
		charts := make([]list.Item, 0, len(models.ChartTypes))
		for _, c := range models.ChartTypes {
			charts = append(charts, option{value: string(c), hint: chartHint(c)})
		}
		m.steps = append(m.steps, newPickStep(fieldChart, "Chart type", charts))
	}

	return m
}

func newPickStep(field pickField, title string, items []list.Item) pickStep {
	l := list.New(items, list.NewDefaultDelegate(), 40, 16)
	l.Title = title
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.DisableQuitKeybindings()
	return pickStep{field: field, list: l}
}

func chartHint(c models.ChartType) string {
	switch c {
	case models.ChartBar:
		return "default"
	case models.ChartPie, models.ChartDoughnut, models.ChartPolarArea:
		return "shares of a whole"
	default:
		return ""
	}
}

func (m pickerModel) done() bool {
	return m.idx >= len(m.steps)
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done() {
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := appStyle.GetFrameSize()
		for i := range m.steps {
			m.steps[i].list.SetSize(msg.Width-h, msg.Height-v-4)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			m.quit = true
			return m, tea.Quit
		case key.Matches(msg, keys.back):
			if m.idx == 0 {
				m.quit = true
				return m, tea.Quit
			}
			m.idx--
			return m, nil
		case key.Matches(msg, keys.enter):
			m = m.choose()
			if m.done() {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.steps[m.idx].list, cmd = m.steps[m.idx].list.Update(msg)
	return m, cmd
}

func (m pickerModel) choose() pickerModel {
	step := m.steps[m.idx]
	selected, ok := step.list.SelectedItem().(option)
	if !ok {
		return m
	}

	switch step.field {
	case fieldX:
		m.axes.XAxis = selected.value
	case fieldY:
		m.axes.YAxis = selected.value
	case fieldChart:
		m.axes.ChartType = models.ChartType(selected.value)
	}
	m.idx++
	return m
}

func (m pickerModel) View() string {
	if m.done() {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.steps[m.idx].list.View())
	b.WriteString("\n")
	if summary := m.summary(); summary != "" {
		b.WriteString(summaryStyle.Render(summary))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(fmt.Sprintf("step %d/%d  ↑/↓ move  enter choose  esc back  q quit", m.idx+1, len(m.steps))))

	return appStyle.Render(b.String())
}

func (m pickerModel) summary() string {
	var parts []string
	if m.axes.XAxis != "" {
		parts = append(parts, "x: "+selectedStyle.Render(fitText(m.axes.XAxis, 24)))
	}
	if m.axes.YAxis != "" {
		parts = append(parts, "y: "+selectedStyle.Render(fitText(m.axes.YAxis, 24)))
	}
	if m.axes.ChartType != "" {
		parts = append(parts, "chart: "+selectedStyle.Render(string(m.axes.ChartType)))
	}
	return strings.Join(parts, "  ")
}
