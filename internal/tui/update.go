package tui

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/trackly/internal/constants"
	"github.com/julianstephens/trackly/internal/insight"
	"github.com/julianstephens/trackly/internal/models"
	"github.com/julianstephens/trackly/internal/tui/components/dashboard"
	"github.com/julianstephens/trackly/internal/tui/components/habitlist"
	"github.com/julianstephens/trackly/internal/tui/components/insights"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle Add Habit State
	if m.state == StateAddHabit {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.errMessage = ""
			m.state = StateHabits
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			goal, err := strconv.ParseFloat(strings.TrimSpace(m.habitForm.Goal), 64)
			if err != nil {
				// The form validator already rejects non-numeric goals, so
				// this only guards against programmatic misuse
				m.errMessage = "goal must be a number"
				m.form.State = huh.StateNormal
				return m, tea.Batch(cmds...)
			}

			draft := models.HabitDraft{
				Name:  m.habitForm.Name,
				Goal:  goal,
				Unit:  m.habitForm.Unit,
				Color: m.habitForm.Color,
				Icon:  m.habitForm.Icon,
			}
			if _, err := m.tracker.AddHabit(draft); err == nil {
				m.refreshData()
				m.errMessage = ""
				m.state = StateHabits
			} else {
				// Stay in form state on error to allow retry
				m.errMessage = err.Error()
				m.form.State = huh.StateNormal
			}
		case huh.StateAborted:
			m.errMessage = ""
			m.state = StateHabits
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Confirm Delete State
	if m.state == StateConfirmDelete {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				if err := m.tracker.DeleteHabit(m.habitToDeleteID); err == nil {
					m.refreshData()
				}
				m.state = StateHabits
				m.habitToDeleteID = ""
			case "n", "N", "esc", "q":
				m.state = StateHabits
				m.habitToDeleteID = ""
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		// Adjust height for tabs and help
		contentHeight := msg.Height - 4

		h, v := docStyle.GetFrameSize()
		m.dashModel.SetSize(msg.Width-h, contentHeight-v)
		m.habitsModel.SetSize(msg.Width-h, contentHeight-v)
		m.analyticsModel.SetSize(msg.Width-h, contentHeight-v)

	case dashboard.BumpMsg:
		today := time.Now().Format(constants.DateFormat)
		if _, err := m.tracker.BumpEntry(msg.HabitID, today, msg.Delta); err == nil {
			m.refreshData()
		}
		return m, nil

	case habitlist.AddHabitMsg:
		m.habitForm = &HabitFormModel{}
		m.form = NewHabitForm(m.habitForm)
		m.state = StateAddHabit
		return m, m.form.Init()

	case habitlist.DeleteHabitMsg:
		m.habitToDeleteID = msg.ID
		m.state = StateConfirmDelete
		return m, nil

	case insights.RefreshMsg:
		if cmd := m.generateInsight(); cmd != nil {
			return m, cmd
		}
		return m, nil

	case insightResultMsg:
		m.insights.Resolve(msg.id, msg.data, msg.err)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = SessionState((int(m.state) + 1) % tabCount)
			if cmd := m.maybeAutoGenerate(); cmd != nil {
				return m, cmd
			}
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = SessionState((int(m.state) - 1 + tabCount) % tabCount)
			if cmd := m.maybeAutoGenerate(); cmd != nil {
				return m, cmd
			}
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd

	// Spinner ticks always reach the insights component, even while another
	// tab is active, so a pending generation keeps animating
	if _, ok := msg.(spinner.TickMsg); ok {
		m.insightsModel, cmd = m.insightsModel.Update(msg)
		return m, cmd
	}

	switch m.state {
	case StateDashboard:
		m.dashModel, cmd = m.dashModel.Update(msg)
		cmds = append(cmds, cmd)
	case StateHabits:
		m.habitsModel, cmd = m.habitsModel.Update(msg)
		cmds = append(cmds, cmd)
	case StateAnalytics:
		m.analyticsModel, cmd = m.analyticsModel.Update(msg)
		cmds = append(cmds, cmd)
	case StateInsights:
		m.insightsModel, cmd = m.insightsModel.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// maybeAutoGenerate kicks off a generation when the insights tab is opened
// for the first time. Ready and Failed results stay put until the user
// refreshes explicitly.
func (m *Model) maybeAutoGenerate() tea.Cmd {
	if m.state != StateInsights || m.insights.State() != insight.StateIdle {
		return nil
	}
	return m.generateInsight()
}

func (m *Model) generateInsight() tea.Cmd {
	if m.gen == nil {
		return nil
	}
	habits, entries := m.tracker.Snapshot()
	habitCtx := insight.BuildContext(habits, entries)
	if habitCtx == nil {
		return nil
	}

	id := m.insights.Begin()
	gen := m.gen
	return tea.Batch(
		m.insightsModel.Init(),
		func() tea.Msg {
			data, err := gen.Generate(context.Background(), habitCtx)
			return insightResultMsg{id: id, data: data, err: err}
		},
	)
}
