package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateDashboard:
		content = docStyle.Render(m.dashModel.View())
	case StateHabits:
		content = docStyle.Render(m.habitsModel.View())
	case StateAnalytics:
		content = docStyle.Render(m.analyticsModel.View())
	case StateInsights:
		content = docStyle.Render(m.insightsModel.View())
	case StateAddHabit:
		content = m.viewAddHabit()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Today", "Habits", "Analytics", "Insights"}
	for i, title := range tabTitles {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewAddHabit() string {
	content := m.form.View()
	if m.errMessage != "" {
		content = lipgloss.JoinVertical(lipgloss.Left,
			errStyle.Render(m.errMessage),
			content,
		)
	}
	return content
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			errStyle.Render("Delete this habit and all of its logged progress?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
