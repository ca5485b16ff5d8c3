package dashboard

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/trackly/internal/constants"
	"github.com/julianstephens/trackly/internal/metrics"
	"github.com/julianstephens/trackly/internal/models"
)

// BumpMsg asks the app to adjust today's value for a habit
type BumpMsg struct {
	HabitID string
	Delta   float64
}

type KeyMap struct {
	Increase key.Binding
	Decrease key.Binding
	Up       key.Binding
	Down     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Increase: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "log progress"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "undo progress"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
	}
}

type row struct {
	habit models.Habit
	bar   progress.Model
}

type Model struct {
	rows     []row
	entries  []models.Entry
	cursor   int
	keys     KeyMap
	width    int
	selStyle lipgloss.Style
}

// habitColor maps a habit's opaque color token to a terminal color
func habitColor(token string) lipgloss.Color {
	switch token {
	case "rose":
		return lipgloss.Color("211")
	case "emerald":
		return lipgloss.Color("42")
	case "amber":
		return lipgloss.Color("214")
	case "violet":
		return lipgloss.Color("135")
	case "sky":
		return lipgloss.Color("39")
	default: // indigo
		return lipgloss.Color("63")
	}
}

func New(habits []models.Habit, entries []models.Entry, width, height int) Model {
	m := Model{
		keys:     DefaultKeyMap(),
		width:    width,
		selStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
	}
	m.SetData(habits, entries)
	return m
}

// SetData refreshes the rendered habits and entries after a mutation
func (m *Model) SetData(habits []models.Habit, entries []models.Entry) {
	rows := make([]row, len(habits))
	for i, h := range habits {
		bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
		bar.Width = 30
		rows[i] = row{habit: h, bar: bar}
	}
	m.rows = rows
	m.entries = entries
	if m.cursor >= len(rows) {
		m.cursor = 0
	}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Increase):
			if m.cursor < len(m.rows) {
				id := m.rows[m.cursor].habit.ID
				return m, func() tea.Msg { return BumpMsg{HabitID: id, Delta: 1} }
			}
		case key.Matches(msg, m.keys.Decrease):
			if m.cursor < len(m.rows) {
				id := m.rows[m.cursor].habit.ID
				return m, func() tea.Msg { return BumpMsg{HabitID: id, Delta: -1} }
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	if len(m.rows) == 0 {
		return "No habits tracked yet.\n\nGo to the Habits tab to start tracking your first activity."
	}

	today := time.Now().Format(constants.DateFormat)
	var b strings.Builder

	for i, r := range m.rows {
		p := metrics.ProgressFor(r.habit, m.entries, today)

		marker := "  "
		name := lipgloss.NewStyle().Foreground(habitColor(r.habit.Color)).Render(r.habit.Name)
		if i == m.cursor {
			marker = "> "
			name = m.selStyle.Render(r.habit.Name)
		}

		b.WriteString(fmt.Sprintf("%s%s\n", marker, name))
		b.WriteString(fmt.Sprintf("  %v/%v %s  (%d%%)\n",
			p.Value, r.habit.Goal, r.habit.Unit, int(math.Round(p.Percent))))
		b.WriteString("  " + r.bar.ViewAs(p.CappedPercent/100) + "\n\n")
	}

	return b.String()
}
