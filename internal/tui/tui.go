// Package tui provides a Bubble Tea terminal user interface for animbatch.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kohaku-dev/animbatch/internal/config"
	"github.com/kohaku-dev/animbatch/internal/export"
	"github.com/kohaku-dev/animbatch/internal/model"
	"github.com/kohaku-dev/animbatch/internal/render"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	assetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateExporting
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   export.ProgressLevel
}

// tracker collects progress from the manager's callbacks. The callbacks
// fire on worker goroutines, so the Bubble Tea loop never reads it
// directly; it polls a snapshot on every tick.
type tracker struct {
	mu       sync.Mutex
	settled  int
	total    int
	label    string
	logs     []LogEntry
	statuses map[string]model.AssetStatus
}

func newTracker() *tracker {
	return &tracker{statuses: make(map[string]model.AssetStatus)}
}

func (t *tracker) callbacks(verbose bool) export.Callbacks {
	return export.Callbacks{
		OnProgress: func(completed, total int, label string) {
			t.mu.Lock()
			t.settled, t.total, t.label = completed, total, label
			t.mu.Unlock()
		},
		OnAssetStatus: func(assetID string, status model.AssetStatus) {
			t.mu.Lock()
			t.statuses[assetID] = status
			t.mu.Unlock()
		},
		OnEvent: func(event export.ProgressEvent) {
			if event.Level == export.LevelVerbose && !verbose {
				return
			}
			t.mu.Lock()
			t.logs = append(t.logs, LogEntry{Message: event.Message, Level: event.Level})
			if len(t.logs) > 10 {
				t.logs = t.logs[len(t.logs)-10:]
			}
			t.mu.Unlock()
		},
	}
}

// snapshot copies the tracker state for rendering.
func (t *tracker) snapshot() (settled, total int, label string, logs []LogEntry, statuses map[string]model.AssetStatus) {
	t.mu.Lock()
	defer t.mu.Unlock()
	logs = append([]LogEntry(nil), t.logs...)
	statuses = make(map[string]model.AssetStatus, len(t.statuses))
	for k, v := range t.statuses {
		statuses[k] = v
	}
	return t.settled, t.total, t.label, logs, statuses
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	logs      []LogEntry
	err       error

	// Export run
	ctx      context.Context
	cancel   context.CancelFunc
	tracker  *tracker
	assets   []*model.AnimationAsset
	statuses map[string]model.AssetStatus
	result   *export.Result

	// Progress counters
	settledTasks int
	totalTasks   int
	currentLabel string

	// Options
	atlasMode bool
	noNaming  bool
	verbose   bool

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel() Model {
	ti := textinput.New()
	ti.Placeholder = "hero_knight goblin_warrior"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  config.DefaultSettings(),
		logs:      make([]LogEntry, 0),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ExportDoneMsg is sent when the whole batch run finishes.
	ExportDoneMsg struct {
		Result *export.Result
		Err    error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateExporting {
				// Cancellation is quiet: the run finishes with whatever
				// already rendered, so keep polling until ExportDoneMsg.
				m.cancel()
			}

		case "enter":
			if m.state == StateInput && strings.TrimSpace(m.textInput.Value()) != "" {
				m.state = StateExporting
				m.tracker = newTracker()
				return m, tea.Batch(m.startExport(), m.spinner.Tick, m.tickProgress())
			}

		case "a":
			if m.state == StateInput {
				m.atlasMode = !m.atlasMode
			}

		case "n":
			if m.state == StateInput {
				m.noNaming = !m.noNaming
			}

		case "v":
			if m.state == StateInput {
				m.verbose = !m.verbose
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for a new run
				m.state = StateInput
				m.logs = nil
				m.err = nil
				m.tracker = nil
				m.assets = nil
				m.statuses = nil
				m.result = nil
				m.settledTasks = 0
				m.totalTasks = 0
				m.currentLabel = ""
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.textInput.SetValue("")
				m.textInput.Focus()
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ExportDoneMsg:
		if m.tracker != nil {
			m.settledTasks, m.totalTasks, m.currentLabel, m.logs, m.statuses = m.tracker.snapshot()
		}
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.result = msg.Result
			m.state = StateComplete
		}

	case TickMsg:
		if m.tracker != nil && m.state == StateExporting {
			m.settledTasks, m.totalTasks, m.currentLabel, m.logs, m.statuses = m.tracker.snapshot()

			var percent float64
			if m.totalTasks > 0 {
				percent = float64(m.settledTasks) / float64(m.totalTasks)
			}
			progressCmd := m.progress.SetPercent(percent)
			cmds = append(cmds, progressCmd, m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update text input
	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("animbatch"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Batch export animation assets"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateExporting:
		b.WriteString(m.viewExporting())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Enter asset keys (space-separated):"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	// Options
	atlasCheck := "[ ]"
	if m.atlasMode {
		atlasCheck = "[x]"
	}
	namingCheck := "[x]"
	if m.noNaming {
		namingCheck = "[ ]"
	}
	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[x]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Pack frames into atlas pages (a)\n", atlasCheck))
	b.WriteString(fmt.Sprintf("  %s Canonical naming layout (n)\n", namingCheck))
	b.WriteString(fmt.Sprintf("  %s Verbose/debug output (v)\n", verboseCheck))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Frames root: %s", m.settings.FramesRoot)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Archive: %s", m.settings.OutputPath)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewExporting() string {
	var b strings.Builder

	// Asset list with live statuses
	if len(m.assets) > 0 {
		b.WriteString(subtitleStyle.Render(fmt.Sprintf("Exporting %d asset(s):", len(m.assets))))
		b.WriteString("\n")
		for _, asset := range m.assets {
			status := m.statuses[asset.ID]
			if status == "" {
				status = model.StatusIdle
			}
			nameStyle := assetStyle
			if status.Terminal() {
				nameStyle = dimStyle
				if status == model.StatusFailed {
					nameStyle = errorStyle
				}
			}
			b.WriteString(nameStyle.Render(fmt.Sprintf("  %s", asset.Name)))
			b.WriteString(dimStyle.Render(fmt.Sprintf("  [%s]", status)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.totalTasks == 0 {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(subtitleStyle.Render("Scanning assets..."))
		b.WriteString("\n\n")
	} else {
		var percent float64
		if m.totalTasks > 0 {
			percent = float64(m.settledTasks) / float64(m.totalTasks)
		}
		b.WriteString(m.progress.ViewAs(percent))
		b.WriteString("\n")
		b.WriteString(infoStyle.Render(fmt.Sprintf("Tasks: %d/%d", m.settledTasks, m.totalTasks)))
		if m.currentLabel != "" {
			b.WriteString(dimStyle.Render("  " + m.currentLabel))
		}
		b.WriteString("\n\n")
	}

	// Logs
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	partial := 0
	failed := 0
	for _, ar := range m.result.Assets {
		if ar.Status == model.StatusFailed {
			failed++
		} else if ar.PartialFailures {
			partial++
		}
	}

	summary := fmt.Sprintf(
		"Export complete\n\n"+
			"Assets: %d\n"+
			"Tasks: %d/%d\n"+
			"Archive: %s (%.2f MB)",
		len(m.result.Assets),
		m.result.CompletedTasks,
		m.result.TotalTasks,
		m.settings.OutputPath,
		float64(m.result.ArchiveSize)/1024/1024,
	)
	if failed > 0 {
		summary += fmt.Sprintf("\nFailed assets: %d", failed)
	}
	if partial > 0 {
		summary += fmt.Sprintf("\nPartial failures: %d", partial)
	}
	b.WriteString(boxStyle.Render(summary))

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Export failed:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case export.LevelError:
			style = errorStyle
			prefix = "✗"
		case export.LevelWarning:
			style = warningStyle
			prefix = "!"
		case export.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case export.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: start • a: atlas • n: naming • v: verbose • esc: quit"
	case StateExporting:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: new export • q: quit"
	}
	return ""
}

// startExport builds the run from the current input and options and
// executes the whole batch in the background. Progress flows through the
// tracker; the finished result arrives as ExportDoneMsg.
func (m *Model) startExport() tea.Cmd {
	settings := *m.settings
	if m.atlasMode {
		settings.SpriteMode = "atlas"
	}
	if m.noNaming {
		settings.NamingEnabled = false
	}

	keys := strings.Fields(m.textInput.Value())
	assets := make([]*model.AnimationAsset, len(keys))
	for i, key := range keys {
		assets[i] = &model.AnimationAsset{
			ID:       key,
			Name:     key,
			AssetKey: key,
			Status:   model.StatusIdle,
		}
	}
	m.assets = assets

	ctx := m.ctx
	tr := m.tracker
	verbose := m.verbose

	return func() tea.Msg {
		cfg, err := settings.ToExportConfig()
		if err != nil {
			return ExportDoneMsg{Err: err}
		}

		engine := render.NewPool(render.NewDirEngine(settings.FramesRoot), settings.Workers)
		manager := export.NewManager(cfg, engine, tr.callbacks(verbose))

		result, err := manager.Run(ctx, assets)
		if err != nil {
			return ExportDoneMsg{Err: err}
		}
		if err := os.WriteFile(settings.OutputPath, result.Archive, 0644); err != nil {
			return ExportDoneMsg{Err: fmt.Errorf("writing archive: %w", err)}
		}
		return ExportDoneMsg{Result: result}
	}
}

// Run starts the TUI application.
func Run() error {
	p := tea.NewProgram(NewModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
