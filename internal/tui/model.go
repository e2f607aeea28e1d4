package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"prochide/internal/app"
)

const rpcTimeout = 4 * time.Second

// Controller defines the subset of app.App behaviour the TUI needs.
type Controller interface {
	Status() (app.DaemonStatus, error)
	StartDaemon() (*app.DaemonHandle, error)
	List(ctx context.Context, timeout time.Duration) ([]app.Target, error)
	HideEnabled(ctx context.Context, timeout time.Duration) (bool, error)
	Enable(ctx context.Context, params app.EnableParams) error
	Disable(ctx context.Context, timeout time.Duration) error
	Remove(ctx context.Context, params app.RemoveParams) error
}

// Model represents the Bubble Tea state.
type Model struct {
	controller Controller

	list    list.Model
	targets []app.Target

	daemonStatus app.DaemonStatus
	hideEnabled  bool
	statusMsg    string

	err     error
	loading bool

	width  int
	height int

	lastUpdated time.Time
}

// New constructs a TUI model with default styles.
func New(ctrl Controller) *Model {
	delegate := list.NewDefaultDelegate()
	lst := list.New([]list.Item{}, delegate, 0, 0)
	lst.Title = "Hide list"
	lst.SetShowHelp(false)
	lst.SetFilteringEnabled(false)
	lst.DisableQuitKeybindings()

	return &Model{
		controller: ctrl,
		list:       lst,
		statusMsg:  "Checking daemon status…",
		loading:    true,
	}
}

// Run spins up the Bubble Tea program with sensible defaults.
func Run(ctrl Controller) error {
	m := New(ctrl)
	prog := tea.NewProgram(m, tea.WithAltScreen())
	_, err := prog.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(checkDaemonStatusCmd(m.controller), loadTargetsCmd(m.controller))
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.height > 5 {
			m.list.SetSize(msg.Width, msg.Height-5)
		}

	case daemonStatusMsg:
		m.daemonStatus = msg.status
		if msg.status.Running {
			if msg.status.PID > 0 {
				m.statusMsg = fmt.Sprintf("Daemon running (pid %d).", msg.status.PID)
			} else {
				m.statusMsg = "Daemon running."
			}
		} else {
			m.statusMsg = "Daemon is not running. Press s to start it."
			m.targets = nil
			m.list.SetItems(nil)
		}

	case targetsLoadedMsg:
		m.loading = false
		m.err = nil
		m.targets = msg.targets
		m.hideEnabled = msg.enabled
		items := make([]list.Item, 0, len(msg.targets))
		for _, t := range msg.targets {
			items = append(items, targetItem{Target: t})
		}
		m.list.SetItems(items)
		m.lastUpdated = time.Now()

	case daemonStartedMsg:
		m.statusMsg = "Daemon started."
		return m, tea.Batch(checkDaemonStatusCmd(m.controller), loadTargetsCmd(m.controller))

	case actionDoneMsg:
		m.statusMsg = msg.text
		m.loading = true
		return m, loadTargetsCmd(m.controller)

	case errMsg:
		m.loading = false
		m.err = msg.err

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			return m, loadTargetsCmd(m.controller)
		case "s":
			if !m.daemonStatus.Running {
				m.statusMsg = "Starting daemon…"
				return m, startDaemonCmd(m.controller)
			}
		case "e":
			if m.daemonStatus.Running && !m.hideEnabled {
				return m, enableCmd(m.controller)
			}
		case "d":
			if m.daemonStatus.Running && m.hideEnabled {
				return m, disableCmd(m.controller)
			}
		case "x", "delete":
			if current := m.currentTarget(); current != nil {
				return m, removeCmd(m.controller, *current)
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	statusStyle := lipgloss.NewStyle().Bold(true)
	if !m.daemonStatus.Running {
		statusStyle = statusStyle.Foreground(lipgloss.Color("203"))
	} else {
		statusStyle = statusStyle.Foreground(lipgloss.Color("42"))
	}
	b.WriteString(statusStyle.Render(m.statusMsg))
	b.WriteByte('\n')

	if m.daemonStatus.Running {
		state := "Hide: disabled"
		color := lipgloss.Color("244")
		if m.hideEnabled {
			state = "Hide: enabled"
			color = lipgloss.Color("42")
		}
		b.WriteString(lipgloss.NewStyle().Foreground(color).Render(state))
		b.WriteByte('\n')
	}

	if m.loading {
		b.WriteString("Loading hide list…\n")
	} else if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
		b.WriteString(errStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteByte('\n')
	}

	if len(m.list.Items()) == 0 && !m.loading && m.err == nil && m.daemonStatus.Running {
		b.WriteString("Hide list is empty.\n")
	} else {
		b.WriteString(m.list.View())
		b.WriteByte('\n')
	}

	help := "Commands: q quit • r reload • s start daemon • e enable • d disable • x remove"
	if !m.lastUpdated.IsZero() {
		help += fmt.Sprintf(" • last update %s", m.lastUpdated.Format(time.Kitchen))
	}
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

// targetItem adapts app.Target to the bubbles list item interface.
type targetItem struct {
	Target app.Target
}

func (t targetItem) Title() string {
	if t.Target.Isolated() {
		return t.Target.Process + " (isolated)"
	}
	return t.Target.Process
}

func (t targetItem) Description() string {
	return "package=" + t.Target.Package
}

func (t targetItem) FilterValue() string {
	return t.Target.String()
}

func (m *Model) currentTarget() *app.Target {
	if len(m.targets) == 0 {
		return nil
	}
	idx := m.list.Index()
	if idx < 0 || idx >= len(m.targets) {
		return nil
	}
	return &m.targets[idx]
}

type daemonStatusMsg struct {
	status app.DaemonStatus
}

type targetsLoadedMsg struct {
	targets []app.Target
	enabled bool
}

type daemonStartedMsg struct{}

type actionDoneMsg struct{ text string }

type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func checkDaemonStatusCmd(ctrl Controller) tea.Cmd {
	return func() tea.Msg {
		status, err := ctrl.Status()
		if err != nil {
			return errMsg{err}
		}
		return daemonStatusMsg{status: status}
	}
}

func loadTargetsCmd(ctrl Controller) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
		defer cancel()
		targets, err := ctrl.List(ctx, rpcTimeout)
		if err != nil {
			return errMsg{err}
		}
		enabled, err := ctrl.HideEnabled(ctx, rpcTimeout)
		if err != nil {
			return errMsg{err}
		}
		return targetsLoadedMsg{targets: targets, enabled: enabled}
	}
}

func enableCmd(ctrl Controller) tea.Cmd {
	return func() tea.Msg {
		if err := ctrl.Enable(context.Background(), app.EnableParams{Timeout: rpcTimeout}); err != nil {
			return errMsg{err}
		}
		return actionDoneMsg{text: "Hide enabled."}
	}
}

func disableCmd(ctrl Controller) tea.Cmd {
	return func() tea.Msg {
		if err := ctrl.Disable(context.Background(), rpcTimeout); err != nil {
			return errMsg{err}
		}
		return actionDoneMsg{text: "Hide disabled."}
	}
}

func removeCmd(ctrl Controller, t app.Target) tea.Cmd {
	return func() tea.Msg {
		err := ctrl.Remove(context.Background(), app.RemoveParams{
			TargetParams: app.TargetParams{Package: t.Package, Process: t.Process},
			Timeout:      rpcTimeout,
		})
		if err != nil {
			return errMsg{err}
		}
		return actionDoneMsg{text: "Removed " + t.String() + "."}
	}
}

func startDaemonCmd(ctrl Controller) tea.Cmd {
	return func() tea.Msg {
		if _, err := ctrl.StartDaemon(); err != nil {
			return errMsg{err}
		}
		// Give the daemon a moment to bind the socket.
		time.Sleep(300 * time.Millisecond)
		return daemonStartedMsg{}
	}
}
