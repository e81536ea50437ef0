// Package tui implements the terminal user interface
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/oisee/chorddepth/pkg/config"
	"github.com/oisee/chorddepth/pkg/progression"
	"github.com/oisee/chorddepth/pkg/theory"
)

// Model is the main TUI model
type Model struct {
	Config *config.Config
	Styles Styles

	// Analysis state
	Chords     []string
	Analyses   []theory.Analysis
	Center     theory.PitchClass
	TuningName string
	Tuning     []theory.PitchClass

	// View state
	Width    int
	Height   int
	Input    string
	ShowHelp bool

	// Status message
	StatusMsg string

	updates <-chan progression.Update
	logger  *slog.Logger
}

// NewModel creates a new TUI model from a validated config
func NewModel(cfg *config.Config, logger *slog.Logger) (Model, error) {
	if logger == nil {
		logger = slog.Default()
	}

	tuning, err := cfg.TuningPitches(cfg.Tuning)
	if err != nil {
		return Model{}, err
	}
	center, err := cfg.CenterPitch()
	if err != nil {
		return Model{}, err
	}

	m := Model{
		Config:     cfg,
		Styles:     DefaultStyles(),
		Center:     center,
		TuningName: cfg.Tuning,
		Tuning:     tuning,
		Width:      120,
		Height:     30,
		logger:     logger,
	}
	m.setChords(cfg.Progression)
	return m, nil
}

// WithUpdates makes the model follow a progression watcher
func (m Model) WithUpdates(updates <-chan progression.Update) Model {
	m.updates = updates
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		waitForUpdate(m.updates),
	)
}

// progressionMsg is sent when the watched file changes
type progressionMsg progression.Update

// watchClosedMsg is sent when the watcher stops
type watchClosedMsg struct{}

func waitForUpdate(updates <-chan progression.Update) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		u, ok := <-updates
		if !ok {
			return watchClosedMsg{}
		}
		return progressionMsg(u)
	}
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case progressionMsg:
		if msg.Error != nil {
			m.StatusMsg = "Reload failed: " + msg.Error.Error()
		} else {
			m.setChords(msg.Chords)
			m.StatusMsg = fmt.Sprintf("Reloaded %d chords", len(msg.Chords))
		}
		return m, waitForUpdate(m.updates)

	case watchClosedMsg:
		m.updates = nil
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Typed or pasted text never triggers a binding
	if msg.Type == tea.KeyRunes {
		m.Input += string(msg.Runes)
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "f1":
		m.ShowHelp = !m.ShowHelp

	case "enter":
		m.submit()

	case "backspace":
		if r := []rune(m.Input); len(r) > 0 {
			m.Input = string(r[:len(r)-1])
		}

	case "ctrl+u":
		m.Input = ""

	// Tonal center moves around the circle of fifths
	case "up":
		m.setCenter(m.Center.Transpose(7))

	case "down":
		m.setCenter(m.Center.Transpose(-7))

	case "tab":
		m.cycleTuning(1)

	case "shift+tab":
		m.cycleTuning(-1)

	case " ":
		m.Input += " "
	}

	return m, nil
}

// submit replaces the progression with the typed chords; blank input is ignored
func (m *Model) submit() {
	chords := progression.Split(m.Input)
	if len(chords) == 0 {
		return
	}
	m.setChords(chords)
	m.Input = ""
	m.StatusMsg = ""
}

func (m *Model) setChords(chords []string) {
	m.Chords = chords
	m.analyze()
}

func (m *Model) setCenter(center theory.PitchClass) {
	m.Center = center
	m.StatusMsg = "Center " + center.Name()
	m.analyze()
}

func (m *Model) cycleTuning(step int) {
	names := m.Config.TuningNames()
	if len(names) == 0 {
		return
	}
	idx := 0
	for i, name := range names {
		if name == m.TuningName {
			idx = i
			break
		}
	}
	idx = (idx + step + len(names)) % len(names)

	tuning, err := m.Config.TuningPitches(names[idx])
	if err != nil {
		m.StatusMsg = err.Error()
		return
	}
	m.TuningName = names[idx]
	m.Tuning = tuning
	m.StatusMsg = "Tuning " + names[idx]
	m.analyze()
}

func (m *Model) analyze() {
	m.Analyses = make([]theory.Analysis, len(m.Chords))
	for i, symbol := range m.Chords {
		m.Analyses[i] = theory.AnalyzeSymbol(symbol, m.Tuning, m.Center)
		if err := m.Analyses[i].Err; err != nil {
			m.logger.Debug("Chord not analyzed", "symbol", symbol, "error", err)
		}
	}
}

// View implements tea.Model
func (m Model) View() string {
	if m.ShowHelp {
		return m.helpView()
	}

	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.inputView())
	b.WriteString("\n")
	b.WriteString(RenderTable(m.Analyses, m.Tuning, m.Styles))
	b.WriteString("\n")
	b.WriteString(m.footerView())

	return b.String()
}

func (m Model) headerView() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("14")).
		Render("CHORDDEPTH")

	names := make([]string, len(m.Tuning))
	for i, pc := range m.Tuning {
		names[i] = pc.Name()
	}

	info := fmt.Sprintf(" │ Center:%s │ Tuning:%s (%s) │ Chords:%d",
		m.Center.Name(), m.TuningName, strings.Join(names, " "), len(m.Chords))
	if m.StatusMsg != "" {
		info += " │ " + m.StatusMsg
	}

	return title + info
}

func (m Model) inputView() string {
	width := m.Width - 2
	if width < 20 {
		width = 20
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Foreground(lipgloss.Color("14")).
		Width(width).
		Render(m.Input + "█")
}

func (m Model) footerView() string {
	keys := " [Enter]Analyze [↑↓]Center [Tab]Tuning [F1]Help [Esc]Quit"
	return lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(keys)
}

func (m Model) helpView() string {
	help := `
╔══════════════════════════════════════════════════════════════════╗
║                      CHORDDEPTH HELP                             ║
╠══════════════════════════════════════════════════════════════════╣
║ INPUT                                                            ║
║   Type chords separated by spaces, e.g.  Fm9 C/Bb G13 Dbdim7     ║
║   Enter     Analyze the typed chords                             ║
║   Bksp      Delete a character                                   ║
║   Ctrl+U    Clear the input line                                 ║
║                                                                  ║
║ REFERENCE                                                        ║
║   ↑ / ↓     Move the tonal center a fifth up / down              ║
║   Tab       Next tuning (Shift+Tab previous)                     ║
║                                                                  ║
║ DEPTH COLUMN                                                     ║
║   green     Fits the center key                                  ║
║   yellow    Fits a key one fifth away                            ║
║   red       Fits a more distant key                              ║
║   magenta   No key fits every note; all best keys listed         ║
║                                                                  ║
║ STRING COLUMNS                                                   ║
║   green     Chord tone      cyan    Scale tone                   ║
║   X(..)     Outside both chord and scale                         ║
║                                                                  ║
║                              [F1] Close help                     ║
╚══════════════════════════════════════════════════════════════════╝
`
	return lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Render(help)
}
