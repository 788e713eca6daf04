package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// Ensure viewAdapter can be used as tea.Model.
var _ tea.Model = (*viewAdapter)(nil)

// viewAdapter wraps a View to implement tea.Model.
type viewAdapter struct {
	view View
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func AsTeaModel(v View) tea.Model {
	return &viewAdapter{view: v}
}

// Init implements tea.Model.
func (a *viewAdapter) Init() tea.Cmd {
	return a.view.Init()
}

// Update implements tea.Model.
func (a *viewAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	v, cmd := a.view.Update(msg)
	a.view = v
	return a, cmd
}

// View implements tea.Model.
func (a *viewAdapter) View() string {
	return a.view.View()
}
