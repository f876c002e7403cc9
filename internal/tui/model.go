package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/themekit/internal/logger"
	"github.com/alexisbeaulieu97/themekit/internal/showcase"
)

// Model is the Bubbletea state of the interactive preview. The spinner only
// paces the animation; the frame shown by the logo is counted here so that
// it can be restarted.
type Model struct {
	page     *showcase.Showcase
	spinner  spinner.Model
	frame    int
	focus    int
	hovered  bool
	width    int
	height   int
	quitting bool
	log      *logger.Logger
}

// NewModel constructs a preview for a mounted page.
func NewModel(page *showcase.Showcase, log *logger.Logger) Model {
	m := Model{
		page:    page,
		spinner: spinner.New(spinner.WithSpinner(page.Logo().Spinner())),
		focus:   showcase.NoFocus,
		log:     log,
	}
	m.sync()
	return m
}

// Init starts the logo animation.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Frame returns the current animation frame.
func (m Model) Frame() int {
	return m.frame
}

// Focused returns the index of the focused button or showcase.NoFocus.
func (m Model) Focused() int {
	return m.focus
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// sync pushes the model state into the page before rendering.
func (m Model) sync() {
	m.page.SetFrame(m.frame)
	m.page.Focus(m.focus)
	for i := range m.page.Buttons() {
		m.page.SetHover(i, m.hovered && i == m.focus)
	}
}
