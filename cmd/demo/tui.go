package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	frameLight = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
	frameDark = frameLight.
			BorderForeground(lipgloss.Color("213")).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("235"))
	errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

type tickMsg time.Time

// model hosts the component tree. Every state change happens inside Update,
// on bubbletea's goroutine, including the ones the ticker asks for.
type model struct {
	app   *app
	tick  time.Duration
	frame string
	err   error
}

func newModel(a *app, tick time.Duration) model {
	m := model{app: a, tick: tick}
	m.frame, m.err = a.frame()
	return m
}

func (m model) Init() tea.Cmd {
	return m.nextTick()
}

func (m model) nextTick() tea.Cmd {
	if m.tick <= 0 {
		return nil
	}
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
		m.err = m.app.dispatch(msg.String())
	case tickMsg:
		m.app.increment()
		cmd = m.nextTick()
	}

	frame, err := m.app.frame()
	if err != nil {
		m.err = err
	} else {
		m.frame = frame
	}
	return m, cmd
}

func (m model) View() string {
	style := frameLight
	if m.app.state.Get().Theme == themeDark {
		style = frameDark
	}
	view := style.Render(m.frame)
	if m.err != nil {
		view = lipgloss.JoinVertical(lipgloss.Left, view, errStyle.Render("error: "+m.err.Error()))
	}
	return view + "\n"
}
