package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/nudge/internal/ipc"
)

// windowItem implements list.Item for the window browser.
type windowItem struct {
	info ipc.WindowInfo
}

func (i windowItem) Title() string {
	prefix := "  "
	if i.info.Focused {
		prefix = "* "
	}
	title := i.info.Title
	if title == "" {
		title = i.info.App
	}
	suffix := ""
	if i.info.Minimized {
		suffix = " (minimized)"
	}
	return prefix + title + suffix
}

func (i windowItem) Description() string {
	return fmt.Sprintf("  %s  %dx%d at %d,%d",
		i.info.App, i.info.Width, i.info.Height, i.info.X, i.info.Y)
}

func (i windowItem) FilterValue() string { return i.info.Title }

// statusMsg is sent after an IPC action completes.
type statusMsg struct {
	text string
}

// clearStatusMsg clears the status message after a delay.
type clearStatusMsg struct{}

// refreshMsg triggers a refresh of daemon data.
type refreshMsg struct{}

// WindowsTab is the sub-model for the window browser tab.
type WindowsTab struct {
	list      list.Model
	ipcClient *ipc.Client

	width  int
	height int
}

// NewWindowsTab creates the window browser sub-model.
func NewWindowsTab(ipcClient *ipc.Client) WindowsTab {
	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(0)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Windows (front to back)"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	return WindowsTab{
		list:      l,
		ipcClient: ipcClient,
	}
}

// Refresh reloads the window list from the daemon.
func (wt *WindowsTab) Refresh() {
	if wt.ipcClient == nil {
		return
	}
	data, err := wt.ipcClient.GetWindows()
	if err != nil {
		wt.list.SetItems(nil)
		return
	}
	items := make([]list.Item, len(data.Windows))
	for i, w := range data.Windows {
		items[i] = windowItem{info: w}
	}
	wt.list.SetItems(items)
}

// Update implements the sub-model contract.
func (wt WindowsTab) Update(msg tea.Msg) (WindowsTab, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		wt.width = msg.Width
		wt.height = msg.Height
		wt.list.SetSize(msg.Width, msg.Height)
		return wt, nil

	case refreshMsg:
		wt.Refresh()
		return wt, nil
	}

	var cmd tea.Cmd
	wt.list, cmd = wt.list.Update(msg)
	return wt, cmd
}

// View implements the sub-model contract.
func (wt WindowsTab) View() string {
	if len(wt.list.Items()) == 0 {
		return lipgloss.NewStyle().
			Width(wt.width).
			Height(wt.height).
			Foreground(lipgloss.Color("241")).
			Align(lipgloss.Center, lipgloss.Center).
			Render("no managed windows")
	}
	return wt.list.View()
}
