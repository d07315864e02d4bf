// ============================================================================
// meinRECHENWERK (mRW) - Lokale Rechenplattform
// ============================================================================
//
// Package:     repl
// Description: Main Bubbletea model for the mRW REPL
// Created:     2026-07-23
// License:     MIT
// ============================================================================

package repl

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	rwlog "github.com/msto63/mRW/foundation/core/log"
	"github.com/msto63/mRW/foundation/expr"
	"github.com/msto63/mRW/pkg/core/version"
)

// Model is the main Bubbletea model for the mRW REPL
type Model struct {
	// State
	width      int
	height     int
	ready      bool
	showTokens bool // F2: Token-Anzeige
	showAST    bool // F3: AST-Anzeige

	// Components
	textarea textarea.Model
	viewport viewport.Model

	// Engine state
	engine       *expr.Engine
	engineName   string
	history      []HistoryEntry
	lastDuration time.Duration

	// Input history
	inputHistory []string // Liste der bisherigen Eingaben
	historyIndex int      // Aktuelle Position in der Historie (-1 = neue Eingabe)
	currentInput string   // Zwischenspeicher für aktuelle Eingabe beim Navigieren
}

// Config holds REPL configuration
type Config struct {
	EngineName     string
	MaxInputLength int
	ShowTokens     bool
	ShowAST        bool
	Variables      map[string]float64
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		EngineName:     "mrw",
		MaxInputLength: 4096,
	}
}

// New creates a new REPL model with its own engine and environment
func New(cfg Config) (Model, error) {
	if cfg.EngineName == "" {
		cfg.EngineName = DefaultConfig().EngineName
	}
	if cfg.MaxInputLength <= 0 {
		cfg.MaxInputLength = DefaultConfig().MaxInputLength
	}

	// Setup textarea
	ta := textarea.New()
	ta.Placeholder = "Ausdruck eingeben... (Enter zum Auswerten)"
	ta.Focus()
	ta.CharLimit = cfg.MaxInputLength
	ta.SetWidth(80)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = FocusedInputStyle
	ta.BlurredStyle.Base = InputStyle

	// Das Terminal gehört Bubbletea; Engine-Logs gehen ins Leere
	engine, err := expr.NewEngine(expr.Options{
		Logger:              rwlog.New().WithOutput(io.Discard),
		MaxExpressionLength: cfg.MaxInputLength,
	})
	if err != nil {
		return Model{}, err
	}

	// Zusätzliche Variablen aus der Konfiguration vorbelegen
	for name, value := range cfg.Variables {
		engine.Environment().Set(name, value)
	}

	// Load input history
	inputHistory := LoadInputHistory()

	return Model{
		textarea:     ta,
		engine:       engine,
		engineName:   cfg.EngineName,
		showTokens:   cfg.ShowTokens,
		showAST:      cfg.ShowAST,
		history:      []HistoryEntry{},
		inputHistory: inputHistory,
		historyIndex: -1, // -1 bedeutet: keine Historie-Navigation aktiv
	}, nil
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		tea.EnterAltScreen,
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4 // Titelpanel
		footerHeight := 7 // Eingabe + Statusleiste + Hilfe
		viewportHeight := msg.Height - headerHeight - footerHeight

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.textarea.SetWidth(msg.Width - 4)
		m.updateViewportContent()
	}

	// Textarea updates
	m.textarea, cmd = m.textarea.Update(msg)
	cmds = append(cmds, cmd)

	// Viewport updates
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		_ = SaveInputHistory(m.inputHistory)
		return m, tea.Quit

	case tea.KeyCtrlL:
		// Verlauf leeren, Variablen bleiben erhalten
		m.history = nil
		m.updateViewportContent()
		return m, nil

	case tea.KeyEnter:
		input := strings.TrimSpace(m.textarea.Value())
		if input != "" {
			// Zur Historie hinzufügen (nur wenn nicht identisch mit letztem Eintrag)
			if len(m.inputHistory) == 0 || m.inputHistory[len(m.inputHistory)-1] != input {
				m.inputHistory = append(m.inputHistory, input)
				// Historie auf maximal 100 Einträge begrenzen
				if len(m.inputHistory) > 100 {
					m.inputHistory = m.inputHistory[len(m.inputHistory)-100:]
				}
				// Historie speichern
				_ = SaveInputHistory(m.inputHistory)
			}
			// Historie-Index zurücksetzen
			m.historyIndex = -1
			m.currentInput = ""

			m.evaluate(input)
			m.textarea.Reset()
			m.updateViewportContent()
			m.viewport.GotoBottom()
		}
		return m, nil

	case tea.KeyUp:
		// Nach oben in der Historie navigieren
		if len(m.inputHistory) > 0 {
			if m.historyIndex == -1 {
				// Erste Navigation: aktuelle Eingabe speichern
				m.currentInput = m.textarea.Value()
				m.historyIndex = len(m.inputHistory) - 1
			} else if m.historyIndex > 0 {
				m.historyIndex--
			}
			m.textarea.SetValue(m.inputHistory[m.historyIndex])
			// Cursor ans Ende setzen
			m.textarea.CursorEnd()
		}
		return m, nil

	case tea.KeyDown:
		// Nach unten in der Historie navigieren
		if m.historyIndex != -1 {
			if m.historyIndex < len(m.inputHistory)-1 {
				m.historyIndex++
				m.textarea.SetValue(m.inputHistory[m.historyIndex])
			} else {
				// Zurück zur aktuellen Eingabe
				m.historyIndex = -1
				m.textarea.SetValue(m.currentInput)
			}
			// Cursor ans Ende setzen
			m.textarea.CursorEnd()
		}
		return m, nil

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil
	}

	// Check for F2 (Token-Anzeige umschalten)
	if msg.String() == "f2" {
		m.showTokens = !m.showTokens
		m.history = append(m.history, HistoryEntry{
			Note:      toggleNote("Token-Anzeige", m.showTokens),
			Timestamp: time.Now(),
		})
		m.updateViewportContent()
		m.viewport.GotoBottom()
		return m, nil
	}

	// Check for F3 (AST-Anzeige umschalten)
	if msg.String() == "f3" {
		m.showAST = !m.showAST
		m.history = append(m.history, HistoryEntry{
			Note:      toggleNote("AST-Anzeige", m.showAST),
			Timestamp: time.Now(),
		})
		m.updateViewportContent()
		m.viewport.GotoBottom()
		return m, nil
	}

	// Pass other keys to textarea
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

// evaluate runs one expression against the session engine and records the
// outcome in the history. The environment is not synchronized; evaluation
// stays inside the update loop.
func (m *Model) evaluate(input string) {
	entry := HistoryEntry{
		Input:     input,
		Timestamp: time.Now(),
	}

	if m.showTokens {
		if tokens, err := m.engine.Tokenize(input); err == nil {
			parts := make([]string, len(tokens))
			for i, tok := range tokens {
				parts[i] = tok.String()
			}
			entry.Tokens = strings.Join(parts, " ")
		}
	}

	if m.showAST {
		if tree, err := m.engine.TreeString(input); err == nil {
			entry.Tree = tree
		}
	}

	res, err := m.engine.Evaluate(context.Background(), input)
	if err != nil {
		entry.ErrorText = err.Error()
	} else {
		entry.Result = res.FormattedValue()
		entry.Duration = res.ExecutionTime
		m.lastDuration = res.ExecutionTime
	}

	m.history = append(m.history, entry)
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Lade Rechner..."
	}

	var b strings.Builder

	// Header with logo
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	// History viewport
	b.WriteString(m.renderHistoryArea())
	b.WriteString("\n")

	// Input area
	b.WriteString(m.renderInputArea())
	b.WriteString("\n")

	// Status bar
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	// Help bar
	b.WriteString(m.renderHelpBar())

	return b.String()
}

// renderHeader renders the title panel with logo and subtitle
func (m Model) renderHeader() string {
	logo := LogoStyle.Render(Logo)
	subtitle := SubHeaderStyle.Render("Interaktiver Ausdrucksrechner")

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		logo,
		strings.Repeat(" ", 3),
		subtitle,
	)

	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

// renderHistoryArea renders the history viewport
func (m Model) renderHistoryArea() string {
	return HistoryPanelStyle.Width(m.width - 2).Height(m.viewport.Height + 2).Render(m.viewport.View())
}

// renderInputArea renders the input textarea
func (m Model) renderInputArea() string {
	return FocusedInputStyle.Width(m.width - 2).Render(m.textarea.View())
}

// renderStatusBar renders the status bar with engine name, variable count,
// and last evaluation duration
func (m Model) renderStatusBar() string {
	// Left: engine name and version
	leftPart := StatusLabelStyle.Render("Engine: ") +
		StatusValueStyle.Render(m.engineName) +
		HelpDescStyle.Render(" v"+version.REPL)

	// Center: display toggles
	centerPart := RenderToggle("Tokens", m.showTokens) + "  " + RenderToggle("AST", m.showAST)

	// Right: variable count and last duration
	rightPart := StatusLabelStyle.Render(fmt.Sprintf("%d Variablen", m.engine.Environment().Len()))
	if m.lastDuration > 0 {
		rightPart += HelpDescStyle.Render(" | " + m.lastDuration.Round(time.Microsecond).String())
	}

	// Calculate padding
	leftLen := lipgloss.Width(leftPart)
	centerLen := lipgloss.Width(centerPart)
	rightLen := lipgloss.Width(rightPart)
	totalLen := leftLen + centerLen + rightLen
	availableSpace := m.width - totalLen - 4
	if availableSpace < 2 {
		availableSpace = 2
	}
	leftPadding := availableSpace / 2
	rightPadding := availableSpace - leftPadding

	content := leftPart + strings.Repeat(" ", leftPadding) + centerPart + strings.Repeat(" ", rightPadding) + rightPart

	return StatusBarStyle.Width(m.width - 2).Render(content)
}

// renderHelpBar renders the help shortcuts bar
func (m Model) renderHelpBar() string {
	// Die Hinweise beschreiben die Wirkung des nächsten Tastendrucks
	var tokenHint, astHint string
	if m.showTokens {
		tokenHint = "Tokens aus"
	} else {
		tokenHint = "Tokens an"
	}
	if m.showAST {
		astHint = "AST aus"
	} else {
		astHint = "AST an"
	}

	items := []string{
		RenderKeyHint("Enter", "auswerten"),
		RenderKeyHint("↑/↓", "Historie"),
		RenderKeyHint("F2", tokenHint),
		RenderKeyHint("F3", astHint),
		RenderKeyHint("PgUp/PgDn", "blättern"),
		RenderKeyHint("Ctrl+L", "leeren"),
		RenderKeyHint("Ctrl+C", "beenden"),
	}

	return HelpStyle.Render(strings.Join(items, "  "))
}

// updateViewportContent updates the viewport with the current history
func (m *Model) updateViewportContent() {
	var content strings.Builder

	if len(m.history) == 0 {
		content.WriteString(SystemMessageStyle.Render("Gib einen Ausdruck ein, z.B. (2 + 3) * 4 oder x = 42"))
		content.WriteString("\n")
	}

	for _, entry := range m.history {
		if entry.IsNote() {
			content.WriteString(SystemMessageStyle.Render(entry.Note))
			content.WriteString("\n\n")
			continue
		}

		// Input line with timestamp
		timeStr := entry.Timestamp.Format("15:04:05")
		content.WriteString(RenderPromptLabel() + " " + ExpressionStyle.Render(entry.Input) + "  " + HelpDescStyle.Render(timeStr))
		content.WriteString("\n")

		if entry.Tokens != "" {
			content.WriteString(TokenStyle.Width(m.width - 6).Render(entry.Tokens))
			content.WriteString("\n")
		}

		if entry.Tree != "" {
			content.WriteString(TreeStyle.Width(m.width - 6).Render(entry.Tree))
			content.WriteString("\n")
		}

		if entry.Failed() {
			content.WriteString(ErrorMessageStyle.Width(m.width - 6).Render(IconError + " " + entry.ErrorText))
		} else {
			line := ResultStyle.Render(IconResult + " " + entry.Result)
			if entry.Duration > 0 {
				line += HelpDescStyle.Render(fmt.Sprintf("  (%s)", entry.Duration.Round(time.Microsecond)))
			}
			content.WriteString(line)
		}
		content.WriteString("\n\n")
	}

	m.viewport.SetContent(content.String())
}

// toggleNote formats a toggle status note
func toggleNote(label string, on bool) string {
	if on {
		return label + " aktiviert"
	}
	return label + " deaktiviert"
}

// Run starts the REPL TUI
func Run(cfg Config) error {
	m, err := New(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
