// Package tui provides a Bubble Tea terminal user interface for spool lookups.
package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/handiism/spoolid/internal/catalog"
	"github.com/handiism/spoolid/internal/config"
	"github.com/handiism/spoolid/internal/display"
	"github.com/handiism/spoolid/internal/export"
	"github.com/handiism/spoolid/internal/generate"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ECDC4")).
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

	// oledStyle mimics the reader's 128x64 monochrome display.
	oledStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("#3A3A3A")).
			Background(lipgloss.Color("#000000")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Width(24).
			Padding(1, 1)

	oledMissStyle = oledStyle.
			Foreground(lipgloss.Color("#FFE66D"))
)

// State represents the current UI state.
type State int

const (
	StateLookup State = iota
	StateBrowse
	StateGenerating
	StateComplete
	StateError
)

// LogEntry represents a generator log message in the UI.
type LogEntry struct {
	Message string
	Level   generate.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	input    textinput.Model
	table    table.Model
	spinner  spinner.Model
	catalog  *catalog.Catalog
	settings *config.Settings
	log      *zap.Logger
	logs     []LogEntry
	err      error

	// Last resolved lookup, nil before the first one.
	result *display.Result

	// Generation
	cancel    context.CancelFunc
	generated int

	width  int
	height int
}

// NewModel creates a new TUI model over cat. A nil settings uses the
// defaults; a nil logger discards logs.
func NewModel(cat *catalog.Catalog, settings *config.Settings, logger *zap.Logger) Model {
	if settings == nil {
		settings = config.DefaultSettings()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	ti := textinput.New()
	ti.Placeholder = "10101 or GFA00,A00-K0"
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 30

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4"))

	tbl := table.New(
		table.WithColumns([]table.Column{
			{Title: "Code", Width: 6},
			{Title: "Material", Width: 18},
			{Title: "Color", Width: 22},
			{Title: "Variant", Width: 8},
			{Title: "ID", Width: 6},
		}),
		table.WithRows(catalogRows(cat)),
		table.WithHeight(12),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#6C757D")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#000000")).
		Background(lipgloss.Color("#4ECDC4"))
	tbl.SetStyles(styles)

	return Model{
		state:    StateLookup,
		input:    ti,
		table:    tbl,
		spinner:  sp,
		catalog:  cat,
		settings: settings,
		log:      logger,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Message types
type (
	// ProgressMsg carries one generator progress event.
	ProgressMsg struct {
		Event generate.ProgressEvent

		next tea.Cmd
	}

	// GenerateDoneMsg is sent when a catalog refresh finishes.
	GenerateDoneMsg struct {
		Catalog *catalog.Catalog
		Records int
		Err     error
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(5, min(msg.Height-10, 30)))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit

		case "esc":
			switch m.state {
			case StateLookup:
				return m, tea.Quit
			case StateGenerating:
				m.cancel()
				return m, nil
			default:
				m.toLookup()
				return m, nil
			}

		case "tab":
			switch m.state {
			case StateLookup:
				m.state = StateBrowse
				m.input.Blur()
				m.table.Focus()
				return m, nil
			case StateBrowse:
				m.toLookup()
				return m, nil
			}

		case "enter":
			switch m.state {
			case StateLookup:
				if q, ok := parseQuery(m.input.Value()); ok {
					m.resolve(q)
				}
				return m, nil
			case StateBrowse:
				if row := m.table.SelectedRow(); row != nil {
					m.resolve(display.CodeQuery(row[0]))
					m.input.SetValue(row[0])
					m.toLookup()
				}
				return m, nil
			case StateComplete, StateError:
				m.toLookup()
				return m, nil
			}

		case "ctrl+r":
			if m.state == StateLookup || m.state == StateBrowse {
				cmd := m.startGenerate()
				return m, cmd
			}
		}

	case spinner.TickMsg:
		if m.state == StateGenerating {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case ProgressMsg:
		if msg.Event.Level != generate.LevelVerbose {
			m.logs = append(m.logs, LogEntry{Message: msg.Event.Message, Level: msg.Event.Level})
			// Keep only last 10 logs
			if len(m.logs) > 10 {
				m.logs = m.logs[len(m.logs)-10:]
			}
		}
		cmds = append(cmds, msg.next)

	case progressClosedMsg:
		// Generator finished reporting; GenerateDoneMsg follows.

	case GenerateDoneMsg:
		if m.cancel != nil {
			m.cancel()
			m.cancel = nil
		}
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
			break
		}
		m.catalog = msg.Catalog
		m.generated = msg.Records
		m.table.SetRows(catalogRows(msg.Catalog))
		m.result = nil
		m.state = StateComplete
	}

	switch m.state {
	case StateLookup:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	case StateBrowse:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) toLookup() {
	m.state = StateLookup
	m.err = nil
	m.table.Blur()
	m.input.Focus()
}

func (m *Model) resolve(q display.Query) {
	res := display.Resolve(m.catalog, q, m.settings.FallbackLabel)
	m.result = &res
	m.log.Debug("lookup", zap.String("query", q.String()), zap.Bool("found", res.Found))
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("spoolid"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Bambu Lab filament lookup (%d records)", m.catalog.Count())))
	b.WriteString("\n\n")

	switch m.state {
	case StateLookup:
		b.WriteString(m.viewLookup())
	case StateBrowse:
		b.WriteString(m.table.View())
		b.WriteString("\n")
	case StateGenerating:
		b.WriteString(m.viewGenerating())
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

func (m Model) viewLookup() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Filament code or MATERIAL,VARIANT:"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.result != nil {
		b.WriteString(renderOLED(*m.result))
		b.WriteString("\n")
		if m.result.Found {
			rec := m.result.Record
			b.WriteString(infoStyle.Render(fmt.Sprintf("code %s  variant %s  material %s",
				rec.FilamentCode, orDash(rec.VariantID), orDash(rec.MaterialID))))
		} else {
			b.WriteString(warningStyle.Render(fmt.Sprintf("no match for %s", m.result.Query)))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewGenerating() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Refreshing catalog from the RFID library..."))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	box := boxStyle.Render(fmt.Sprintf(
		"Catalog refreshed\n\n"+
			"Generated: %d\n"+
			"Total:     %d\n"+
			"Output:    %s",
		m.generated,
		m.catalog.Count(),
		m.settings.OutputDir,
	))
	b.WriteString(box)
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case generate.LevelError:
			style = errorStyle
			prefix = "✗"
		case generate.LevelWarning:
			style = warningStyle
			prefix = "!"
		case generate.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case generate.LevelInfo:
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
	case StateLookup:
		return "enter: look up • tab: browse • ctrl+r: refresh catalog • esc: quit"
	case StateBrowse:
		return "↑/↓: move • enter: select • tab/esc: back • ctrl+r: refresh catalog"
	case StateGenerating:
		return "esc: cancel"
	case StateComplete, StateError:
		return "enter/esc: back • ctrl+c: quit"
	}
	return ""
}

// renderOLED draws the two display lines the way the reader shows them.
func renderOLED(res display.Result) string {
	style := oledStyle
	if !res.Found {
		style = oledMissStyle
	}
	return style.Render(res.Line1 + "\n\n" + res.Line2)
}

type progressClosedMsg struct{}

// startGenerate runs the generator in the background and reloads the
// catalog from its output when it finishes.
func (m *Model) startGenerate() tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.state = StateGenerating
	m.logs = nil
	m.err = nil

	events := make(chan generate.ProgressEvent, 64)
	return tea.Batch(
		generateCmd(ctx, m.settings, m.log, events),
		waitForProgress(events),
		m.spinner.Tick,
	)
}

// generateCmd runs one generation. Progress events are sent to events,
// which is closed when the run ends; events that find it full are dropped.
func generateCmd(ctx context.Context, settings *config.Settings, logger *zap.Logger, events chan generate.ProgressEvent) tea.Cmd {
	return func() tea.Msg {
		manager := generate.NewManager(settings, logger, func(event generate.ProgressEvent) {
			select {
			case events <- event:
			default:
			}
		})

		result, err := manager.Run(ctx)
		close(events)
		if err != nil {
			return GenerateDoneMsg{Err: err}
		}

		cat, err := catalog.Load(filepath.Join(settings.OutputDir, export.FormatJSON.FileName()))
		if err != nil {
			return GenerateDoneMsg{Err: fmt.Errorf("reload catalog: %w", err)}
		}

		return GenerateDoneMsg{Catalog: cat, Records: len(result.Records)}
	}
}

// waitForProgress delivers the next progress event and re-arms itself
// until the channel is closed.
func waitForProgress(events <-chan generate.ProgressEvent) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return progressClosedMsg{}
		}
		return ProgressMsg{Event: event, next: waitForProgress(events)}
	}
}

// parseQuery reads "10101" or "GFA00,A00-K0" from the input line.
// Codes are passed through unvalidated so that a miss shows what was typed.
func parseQuery(s string) (display.Query, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return display.Query{}, false
	}
	if materialID, variantID, ok := strings.Cut(s, ","); ok {
		return display.PairQuery(strings.TrimSpace(materialID), strings.TrimSpace(variantID)), true
	}
	return display.CodeQuery(s), true
}

func catalogRows(cat *catalog.Catalog) []table.Row {
	rows := make([]table.Row, 0, cat.Count())
	for _, rec := range cat.All() {
		rows = append(rows, table.Row{rec.FilamentCode, rec.Name, rec.Color, rec.VariantID, rec.MaterialID})
	}
	return rows
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// Run starts the TUI application.
func Run(cat *catalog.Catalog, settings *config.Settings, logger *zap.Logger) error {
	p := tea.NewProgram(NewModel(cat, settings, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
