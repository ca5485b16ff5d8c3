package analytics

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/trackly/internal/constants"
	"github.com/julianstephens/trackly/internal/metrics"
	"github.com/julianstephens/trackly/internal/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type Model struct {
	habits  []models.Habit
	entries []models.Entry
	width   int
}

func New(habits []models.Habit, entries []models.Entry, width, height int) Model {
	return Model{habits: habits, entries: entries, width: width}
}

func (m *Model) SetData(habits []models.Habit, entries []models.Entry) {
	m.habits = habits
	m.entries = entries
}

func (m *Model) SetSize(width, height int) {
	m.width = width
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

func (m Model) View() string {
	if len(m.habits) == 0 {
		return "Create habits to see analytics data."
	}

	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("Past %d Days Success Rate (%%)", constants.TrendWindowDays)))
	b.WriteString("\n\n")

	series := metrics.WindowSeries(m.habits, m.entries, time.Now(), constants.TrendWindowDays)

	nameWidth := 16
	b.WriteString(strings.Repeat(" ", nameWidth))
	for _, point := range series {
		d, _ := time.Parse(constants.DateFormat, point.Date)
		b.WriteString(fmt.Sprintf(" %4s", d.Format("Mon")[:3]))
	}
	b.WriteString("\n")

	for _, habit := range m.habits {
		name := habit.Name
		if len(name) > nameWidth {
			name = name[:nameWidth-3] + "..."
		}
		b.WriteString(name + strings.Repeat(" ", nameWidth-len(name)))
		for _, point := range series {
			b.WriteString(fmt.Sprintf(" %3.0f%%", point.Percent[habit.ID]))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Lifetime Stats"))
	b.WriteString("\n\n")

	for _, habit := range m.habits {
		stats := metrics.LifetimeFor(habit, m.entries)
		b.WriteString(fmt.Sprintf("%-16s %s\n",
			habit.Name,
			dimStyle.Render(fmt.Sprintf("goal reached: %d   total logs: %d", stats.GoalReached, stats.TotalLogs))))
	}

	return b.String()
}
