package console

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wvietor/ibkr-go/clipboard"
)

type viewMode int

const (
	viewList viewMode = iota
	viewInspect
)

// Model is the Bubble Tea model driving the console.
type Model struct {
	events  chan Event
	history []Event

	cursor int
	follow bool
	width  int
	height int
	view   viewMode

	inspectScroll int
}

// New creates a console Model that reads Events off feed until it closes.
func New(feed chan Event) Model {
	return Model{
		events: feed,
		follow: true,
	}
}

type eventMsg struct{ Event Event }
type closedMsg struct{}

func recvEvent(feed chan Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-feed
		if !ok {
			return closedMsg{}
		}
		return eventMsg{Event: ev}
	}
}

func (m Model) Init() tea.Cmd {
	return recvEvent(m.events)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		m.history = append(m.history, msg.Event)
		if m.follow && m.view == viewList {
			m.cursor = len(m.history) - 1
		}
		return m, recvEvent(m.events)

	case closedMsg:
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case viewInspect:
			return m.updateInspect(msg)
		case viewList:
			return m.updateList(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		if len(m.history) > 0 {
			m.view = viewInspect
			m.inspectScroll = 0
		}
		return m, nil
	case "c":
		if ev := m.cursorEvent(); ev != nil {
			_ = clipboard.Copy(context.Background(), eventJSON(*ev))
		}
		return m, nil
	case "j", "down":
		if m.cursor < len(m.history)-1 {
			m.cursor++
		}
		m.follow = m.cursor == len(m.history)-1
		return m, nil
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		m.follow = false
		return m, nil
	case "g":
		m.cursor = 0
		m.follow = false
		return m, nil
	case "G":
		m.cursor = max(len(m.history)-1, 0)
		m.follow = true
		return m, nil
	}
	return m, nil
}

func (m Model) updateInspect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc":
		m.view = viewList
		return m, nil
	case "c":
		if ev := m.cursorEvent(); ev != nil {
			_ = clipboard.Copy(context.Background(), eventJSON(*ev))
		}
		return m, nil
	case "j", "down":
		m.inspectScroll++
		return m, nil
	case "k", "up":
		if m.inspectScroll > 0 {
			m.inspectScroll--
		}
		return m, nil
	}
	return m, nil
}

func (m Model) cursorEvent() *Event {
	if m.cursor < 0 || m.cursor >= len(m.history) {
		return nil
	}
	return &m.history[m.cursor]
}

func (m Model) View() string {
	if m.width == 0 {
		return ""
	}
	if len(m.history) == 0 {
		return "Waiting for gateway events..."
	}

	switch m.view {
	case viewInspect:
		return m.renderInspector()
	case viewList:
	}

	footer := "q: quit  j/k: navigate  enter: inspect  c: copy json  g/G: top/bottom"

	listHeight := max(m.height-6, 3)
	return m.renderList(listHeight) + "\n" + m.renderPreview() + "\n" + footer
}
