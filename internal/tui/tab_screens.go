package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/nudge/internal/ipc"
)

// screenItem implements list.Item for the screen layout view.
type screenItem struct {
	info ipc.ScreenInfo
}

func (i screenItem) Title() string {
	prefix := "  "
	if i.info.Primary {
		prefix = "* "
	}
	label := i.info.Name
	if i.info.Role != "" {
		label += "  [" + i.info.Role + "]"
	}
	return prefix + label
}

func (i screenItem) Description() string {
	return fmt.Sprintf("  %dx%d at %d,%d",
		i.info.Width, i.info.Height, i.info.X, i.info.Y)
}

func (i screenItem) FilterValue() string { return i.info.Name }

// ScreensTab is the sub-model for the screen layout tab.
type ScreensTab struct {
	list      list.Model
	ipcClient *ipc.Client

	width  int
	height int
}

// NewScreensTab creates the screen layout sub-model.
func NewScreensTab(ipcClient *ipc.Client) ScreensTab {
	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(0)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Screens"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	return ScreensTab{
		list:      l,
		ipcClient: ipcClient,
	}
}

// Refresh reloads the screen layout from the daemon.
func (st *ScreensTab) Refresh() {
	if st.ipcClient == nil {
		return
	}
	data, err := st.ipcClient.GetScreens()
	if err != nil {
		st.list.SetItems(nil)
		return
	}
	items := make([]list.Item, len(data.Screens))
	for i, scr := range data.Screens {
		items[i] = screenItem{info: scr}
	}
	st.list.SetItems(items)
}

// Update implements the sub-model contract.
func (st ScreensTab) Update(msg tea.Msg) (ScreensTab, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		st.width = msg.Width
		st.height = msg.Height
		st.list.SetSize(msg.Width, msg.Height)
		return st, nil

	case refreshMsg:
		st.Refresh()
		return st, nil
	}

	var cmd tea.Cmd
	st.list, cmd = st.list.Update(msg)
	return st, cmd
}

// View implements the sub-model contract.
func (st ScreensTab) View() string {
	if len(st.list.Items()) == 0 {
		return lipgloss.NewStyle().
			Width(st.width).
			Height(st.height).
			Foreground(lipgloss.Color("241")).
			Align(lipgloss.Center, lipgloss.Center).
			Render("no screens reported")
	}
	return st.list.View()
}
