package tui

import (
	"errors"
	"io"
	"log"
	"os"
	"strings"

	"dragsort/internal/model"
	"dragsort/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

// DebugLogPath receives log output when DRAGSORT_DEBUG is set.
const DebugLogPath = "dragsort-debug.log"

// Run shows the list until the user quits and returns the final order.
//
// Integration contract: drag-and-drop is driven by terminal mouse reporting
// (cell motion mode). Every row of an item block belongs to the item, so
// there are no child regions to exclude from hit testing.
func Run(settings store.Settings) (model.Order, error) {
	applyThemePreference()
	applyColorProfilePreference()

	if strings.TrimSpace(os.Getenv("DRAGSORT_DEBUG")) != "" {
		f, err := tea.LogToFile(DebugLogPath, "dragsort")
		if err != nil {
			return model.Order{}, err
		}
		defer f.Close()
	} else {
		// Anything written to stderr would corrupt the alt screen.
		log.SetOutput(io.Discard)
	}

	m := newAppModel(settings)
	defer m.zones.Close()

	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	if err != nil {
		return model.Order{}, err
	}
	fm, ok := final.(appModel)
	if !ok {
		return model.Order{}, errors.New("unexpected final model")
	}
	return fm.Order()
}
