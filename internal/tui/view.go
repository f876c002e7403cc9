package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

const helpText = "tab/shift+tab focus • h hover • r restart • esc clear • q quit"

// View renders the page centred in the window.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	scope := m.page.Scope()
	title := titleStyle.Render(fmt.Sprintf("themekit • %s", scope.Mode()))

	body := lipgloss.JoinVertical(lipgloss.Center,
		title,
		m.page.View(),
		helpStyle.Render(helpText),
	)

	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}
