package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	colKind = 10
	colReq  = 8
	colTime = 14
)

func kindColor(k Kind) lipgloss.Color {
	switch k {
	case KindError:
		return lipgloss.Color("1")
	case KindOrder, KindExecution:
		return lipgloss.Color("3")
	case KindPnL, KindAccount, KindPosition:
		return lipgloss.Color("2")
	case KindSystem:
		return lipgloss.Color("5")
	default:
		return lipgloss.Color("6")
	}
}

func (m Model) renderList(maxRows int) string {
	innerWidth := max(m.width-4, 20)
	colSummary := max(innerWidth-colKind-colReq-colTime-4, 10)

	title := fmt.Sprintf(" ibkr-console (%d events) ", len(m.history))

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Width(innerWidth).
		BorderForeground(lipgloss.Color("240"))

	dataRows := max(maxRows-1, 1)
	start := 0
	if len(m.history) > dataRows {
		start = max(m.cursor-dataRows/2, 0)
		if start+dataRows > len(m.history) {
			start = len(m.history) - dataRows
		}
	}
	end := min(start+dataRows, len(m.history))

	header := fmt.Sprintf("  %-*s %-*s %-*s %s", colKind, "Kind", colReq, "ReqID", colTime, "Time", "Summary")
	rows := []string{lipgloss.NewStyle().Bold(true).Render(header)}

	for i := start; i < end; i++ {
		ev := m.history[i]
		marker := "  "
		if i == m.cursor {
			marker = "▶ "
		}

		reqID := "-"
		if ev.RequestID != 0 {
			reqID = fmt.Sprintf("%d", ev.RequestID)
		}

		row := fmt.Sprintf("%s%s %-*s %-*s %s",
			marker,
			lipgloss.NewStyle().Foreground(kindColor(ev.Kind)).Render(padRight(string(ev.Kind), colKind)),
			colReq, reqID,
			colTime, formatTime(ev.Time),
			truncate(ev.Summary, colSummary),
		)
		if i == m.cursor {
			row = lipgloss.NewStyle().Bold(true).Render(row)
		}
		rows = append(rows, row)
	}

	content := strings.Join(rows, "\n")
	box := border.Render(content)
	lines := strings.Split(box, "\n")
	if len(lines) > 0 {
		borderFg := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
		titleStyle := lipgloss.NewStyle().Bold(true)
		dashes := max(innerWidth-len([]rune(title)), 0)
		lines[0] = borderFg.Render("╭") + titleStyle.Render(title) + borderFg.Render(strings.Repeat("─", dashes)+"╮")
		box = strings.Join(lines, "\n")
	}
	return box
}

func (m Model) renderPreview() string {
	ev := m.cursorEvent()
	if ev == nil {
		return ""
	}
	innerWidth := max(m.width-4, 20)

	lines := []string{
		"Kind:    " + string(ev.Kind),
		"Time:    " + formatTime(ev.Time),
	}
	if ev.RequestID != 0 {
		lines = append(lines, fmt.Sprintf("ReqID:   %d", ev.RequestID))
	}
	lines = append(lines, "Summary: "+ev.Summary)

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Width(innerWidth).
		BorderForeground(lipgloss.Color("240"))
	return border.Render(strings.Join(lines, "\n"))
}
