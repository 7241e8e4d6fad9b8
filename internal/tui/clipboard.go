package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

type clipboardMsg struct {
	n   int
	err error
}

// copyOrderCmd copies titles, one per line, to the system clipboard.
func copyOrderCmd(titles []string) tea.Cmd {
	s := strings.Join(titles, "\n")
	return func() tea.Msg {
		return clipboardMsg{n: len(titles), err: clipboard.WriteAll(s)}
	}
}
