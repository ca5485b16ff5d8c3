package insights

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/trackly/internal/insight"
)

// RefreshMsg asks the app to trigger a new generation
type RefreshMsg struct{}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	quoteStyle  = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("141"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type KeyMap struct {
	Refresh key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
	}
}

type Model struct {
	svc       *insight.Service
	spinner   spinner.Model
	keys      KeyMap
	hasHabits bool
}

func New(svc *insight.Service, hasHabits bool) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{
		svc:       svc,
		spinner:   sp,
		keys:      DefaultKeyMap(),
		hasHabits: hasHabits,
	}
}

func (m *Model) SetHasHabits(hasHabits bool) {
	m.hasHabits = hasHabits
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Refresh) && m.hasHabits {
			return m, func() tea.Msg { return RefreshMsg{} }
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	if !m.hasHabits {
		return "You need habits to get insights."
	}

	switch m.svc.State() {
	case insight.StateLoading:
		return fmt.Sprintf("%s Analyzing your habit data...", m.spinner.View())

	case insight.StateFailed:
		return errorStyle.Render("Unable to generate insights at the moment.") +
			"\n" + dimStyle.Render(m.svc.ErrMessage()) +
			"\n\nPress r to retry."

	case insight.StateReady:
		data := m.svc.Data()
		var b strings.Builder

		b.WriteString(headerStyle.Render("Smart Analysis"))
		b.WriteString("\n\n")
		b.WriteString(data.Summary)
		b.WriteString("\n\n")

		b.WriteString(headerStyle.Render("Recommendations"))
		b.WriteString("\n")
		for _, rec := range data.Recommendations {
			b.WriteString("  • " + rec + "\n")
		}
		b.WriteString("\n")

		b.WriteString(quoteStyle.Render("“" + data.MotivationalQuote + "”"))
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render("Press r to refresh."))

		return b.String()

	default:
		return "Press r to generate insights."
	}
}
