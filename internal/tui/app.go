// Package tui is a live dashboard for the daemon: it shows the managed
// windows and the screen layout over IPC, and fires window operations
// from the keyboard.
package tui

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/1broseidon/nudge/internal/ipc"
)

// refreshInterval is how often daemon state is re-polled.
const refreshInterval = 2 * time.Second

// tickMsg drives the periodic refresh.
type tickMsg time.Time

// model is the root bubbletea model for the TUI.
type model struct {
	ipcClient *ipc.Client

	// Tab navigation
	activeTab Tab

	// Sub-models
	windowsTab WindowsTab
	screensTab ScreensTab

	// Daemon state
	daemonConnected bool
	screenCount     int
	windowCount     int

	statusText string

	// Terminal dimensions
	width  int
	height int
}

func newModel() model {
	m := model{
		activeTab: TabWindows,
		ipcClient: ipc.NewClient(),
	}

	m.refreshDaemonStatus()
	m.windowsTab = NewWindowsTab(m.ipcClient)
	m.screensTab = NewScreensTab(m.ipcClient)
	m.windowsTab.Refresh()
	m.screensTab.Refresh()

	return m
}

func (m *model) refreshDaemonStatus() {
	status, err := m.ipcClient.GetStatus()
	if err != nil {
		m.daemonConnected = false
		m.screenCount = 0
		m.windowCount = 0
		return
	}
	m.daemonConnected = true
	m.screenCount = status.ScreenCount
	m.windowCount = status.WindowCount
}

// contentHeight returns the height available for tab content.
func (m model) contentHeight() int {
	// Approximate: status bar (1) + tab bar (2 with margin) + help bar (1)
	h := m.height - 4
	if h < 1 {
		h = 1
	}
	return h
}

// keyOps maps dashboard keys to daemon operations.
var keyOps = map[string]string{
	"left":  "focus-left",
	"right": "focus-right",
	"up":    "focus-up",
	"down":  "focus-down",
	"h":     "resize-left",
	"l":     "resize-right",
	"k":     "resize-up",
	"j":     "resize-down",
	"[":     "cycle-left",
	"]":     "cycle-right",
	"c":     "center",
	"m":     "maximize",
	"x":     "compact",
}

// runOpCmd fires one operation against the daemon and reports the outcome.
func (m model) runOpCmd(op string) tea.Cmd {
	client := m.ipcClient
	return func() tea.Msg {
		if err := client.RunOp(op); err != nil {
			return statusMsg{text: fmt.Sprintf("%s failed: %v", op, err)}
		}
		return statusMsg{text: op}
	}
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil

		case "shift+tab":
			m.activeTab = (m.activeTab - 1 + tabCount) % tabCount
			return m, nil

		case "1":
			m.activeTab = TabWindows
			return m, nil
		case "2":
			m.activeTab = TabScreens
			return m, nil

		case "r":
			return m, func() tea.Msg { return refreshMsg{} }
		}

		if op, ok := keyOps[key]; ok {
			return m, m.runOpCmd(op)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		subMsg := tea.WindowSizeMsg{Width: m.width, Height: m.contentHeight()}
		m.windowsTab, _ = m.windowsTab.Update(subMsg)
		m.screensTab, _ = m.screensTab.Update(subMsg)
		return m, nil

	case tickMsg:
		m.refreshDaemonStatus()
		m.windowsTab.Refresh()
		m.screensTab.Refresh()
		return m, tick()

	case statusMsg:
		m.statusText = msg.text
		m.refreshDaemonStatus()
		m.windowsTab, _ = m.windowsTab.Update(refreshMsg{})
		m.screensTab, _ = m.screensTab.Update(refreshMsg{})
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return clearStatusMsg{}
		})

	case clearStatusMsg:
		m.statusText = ""
		return m, nil

	case refreshMsg:
		m.refreshDaemonStatus()
		m.windowsTab, _ = m.windowsTab.Update(msg)
		m.screensTab, _ = m.screensTab.Update(msg)
		return m, nil
	}

	// Delegate to active tab's sub-model
	switch m.activeTab {
	case TabWindows:
		var cmd tea.Cmd
		m.windowsTab, cmd = m.windowsTab.Update(msg)
		return m, cmd
	case TabScreens:
		var cmd tea.Cmd
		m.screensTab, cmd = m.screensTab.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	statusBar := renderStatusBar(m.daemonConnected, m.screenCount, m.windowCount, m.statusText, m.width)
	tabBar := renderTabBar(m.activeTab, m.width)
	helpBar := renderHelpBar(m.width)

	usedHeight := lipgloss.Height(statusBar) + lipgloss.Height(tabBar) + lipgloss.Height(helpBar)
	contentHeight := m.height - usedHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	var content string
	switch m.activeTab {
	case TabWindows:
		content = m.windowsTab.View()
	case TabScreens:
		content = m.screensTab.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		statusBar,
		tabBar,
		content,
		helpBar,
	)
}

// Run starts the dashboard, blocking until the user quits.
func Run() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("tui requires an interactive terminal (stdin/stdout must be TTYs)")
	}

	p := tea.NewProgram(newModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
