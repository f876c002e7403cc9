package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if cmd != nil {
			m.frame++
			m.sync()
		}
		return m, cmd
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.page.Buttons())

	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "tab", "down", "j":
		if count > 0 {
			m.focus = (m.focus + 1) % count
		}
	case "shift+tab", "up", "k":
		if count > 0 {
			if m.focus <= 0 {
				m.focus = count - 1
			} else {
				m.focus--
			}
		}
	case "esc":
		m.focus = -1
		m.hovered = false
	case "h":
		m.hovered = !m.hovered
	case "r":
		m.frame = 0
		m.log.Debug("animation restarted")
	default:
		return m, nil
	}

	m.sync()
	return m, nil
}
