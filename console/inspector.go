package console

import (
	"encoding/json"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wvietor/ibkr-go/render"
)

// eventJSON marshals an Event's Detail payload for the inspector pane and
// the clipboard-copy action. Marshal failures fall back to the summary
// line rather than surfacing an error the user can't act on.
func eventJSON(ev Event) string {
	b, err := json.MarshalIndent(ev.Detail, "", "  ")
	if err != nil {
		return ev.Summary
	}
	return string(b)
}

func (m Model) inspectLines() []string {
	ev := m.cursorEvent()
	if ev == nil {
		return nil
	}
	return strings.Split(render.JSON(eventJSON(*ev)), "\n")
}

func (m Model) inspectVisibleRows() int {
	return max(m.height-6, 3)
}

func (m Model) renderInspector() string {
	ev := m.cursorEvent()
	if ev == nil {
		return ""
	}

	innerWidth := max(m.width-4, 20)
	header := lipgloss.NewStyle().Bold(true).Render(string(ev.Kind)+" @ "+formatTime(ev.Time)) + "\n\n"

	lines := m.inspectLines()
	visible := m.inspectVisibleRows()
	scroll := min(m.inspectScroll, max(len(lines)-visible, 0))
	end := min(scroll+visible, len(lines))
	body := strings.Join(lines[scroll:end], "\n")

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Width(innerWidth).
		BorderForeground(lipgloss.Color("240"))

	footer := "\n\nq/esc: back  j/k: scroll  c: copy json"
	return border.Render(header+body) + footer
}
