package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/trackly/internal/insight"
	"github.com/julianstephens/trackly/internal/models"
	"github.com/julianstephens/trackly/internal/tracker"
	"github.com/julianstephens/trackly/internal/tui/components/analytics"
	"github.com/julianstephens/trackly/internal/tui/components/dashboard"
	"github.com/julianstephens/trackly/internal/tui/components/habitlist"
	"github.com/julianstephens/trackly/internal/tui/components/insights"
)

type SessionState int

const (
	StateDashboard SessionState = iota
	StateHabits
	StateAnalytics
	StateInsights
	StateAddHabit
	StateConfirmDelete
)

// tabCount is the number of cycleable top-level tabs
const tabCount = 4

type HabitFormModel struct {
	Name  string
	Goal  string
	Unit  string
	Color string
	Icon  string
}

// insightResultMsg carries a finished generation back to the model. ID ties
// the result to the request that started it so stale results can be dropped.
type insightResultMsg struct {
	id   int
	data *models.InsightData
	err  error
}

type Model struct {
	tracker  *tracker.Tracker
	gen      insight.Generator
	insights *insight.Service

	state SessionState
	keys  KeyMap
	help  help.Model

	dashModel      dashboard.Model
	habitsModel    habitlist.Model
	analyticsModel analytics.Model
	insightsModel  insights.Model

	form      *huh.Form
	habitForm *HabitFormModel

	habitToDeleteID string
	errMessage      string

	quitting bool
	width    int
	height   int
}

func NewModel(tr *tracker.Tracker, gen insight.Generator) Model {
	habits, entries := tr.Snapshot()
	svc := insight.NewService()

	m := Model{
		tracker:        tr,
		gen:            gen,
		insights:       svc,
		state:          StateDashboard,
		keys:           DefaultKeyMap(),
		help:           help.New(),
		dashModel:      dashboard.New(habits, entries, 0, 0),
		habitsModel:    habitlist.New(habits, 0, 0),
		analyticsModel: analytics.New(habits, entries, 0, 0),
		insightsModel:  insights.New(svc, len(habits) > 0),
	}

	return m
}

// refreshData pushes the tracker's current collections into every component
func (m *Model) refreshData() {
	habits, entries := m.tracker.Snapshot()
	m.dashModel.SetData(habits, entries)
	m.habitsModel.SetHabits(habits)
	m.analyticsModel.SetData(habits, entries)
	m.insightsModel.SetHasHabits(len(habits) > 0)
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateDashboard:
		keys = append(keys, m.keys.Increase, m.keys.Decrease)
	case StateHabits:
		keys = append(keys, m.keys.Add, m.keys.Delete)
	case StateInsights:
		keys = append(keys, m.keys.Refresh)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down}

	var actions []key.Binding
	switch m.state {
	case StateDashboard:
		actions = []key.Binding{m.keys.Increase, m.keys.Decrease}
	case StateHabits:
		actions = []key.Binding{m.keys.Add, m.keys.Delete}
	case StateInsights:
		actions = []key.Binding{m.keys.Refresh}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return m.insightsModel.Init()
}
