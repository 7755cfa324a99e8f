package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-scramble/internal/core"
	"github.com/vovakirdan/tui-scramble/internal/games/scramble"
)

// Rows around the game screen: the count field above, the help line below.
const (
	headerRows = 1
	footerRows = 1
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ModelOptions tweaks a new Model.
type ModelOptions struct {
	// Count pre-fills the tile count field.
	Count string

	// Logger receives round events. Nil discards them.
	Logger *log.Logger

	// ScreenshotDir is where ctrl+s writes the screen. Empty means ~/.scramble/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model running one scramble game.
type Model struct {
	game          *scramble.Game
	screen        *core.Screen
	config        core.RuntimeConfig
	input         textinput.Model
	keys          KeyMap
	keyMapper     *KeyMapper
	help          help.Model
	inputFrame    core.InputFrame
	gameState     core.GameState
	logger        *log.Logger
	screenshotDir string
	round         int
	quitting      bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg holds the full terminal size; the game gets what is left between
// the count field and the help line.
func NewModel(game *scramble.Game, cfg core.RuntimeConfig, opts ModelOptions) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "n"
	input.CharLimit = 3
	input.Width = 3
	input.SetValue(opts.Count)
	input.Focus()

	keys := DefaultKeyMap()
	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	gw, gh := gameSize(cfg.ScreenW, cfg.ScreenH)
	return Model{
		game:          game,
		screen:        core.NewScreen(gw, gh),
		config:        cfg,
		input:         input,
		keys:          keys,
		keyMapper:     NewKeyMapper(keys),
		help:          h,
		inputFrame:    core.NewInputFrame(),
		logger:        opts.Logger,
		screenshotDir: opts.ScreenshotDir,
	}
}

func gameSize(w, h int) (int, int) {
	return core.Max(w, 0), core.Max(h-headerRows-footerRows, 0)
}

// gameConfig is the runtime config the game sees.
func (m Model) gameConfig() core.RuntimeConfig {
	rc := m.config
	rc.ScreenW, rc.ScreenH = gameSize(m.config.ScreenW, m.config.ScreenH)
	return rc
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	return tea.Batch(tickCmd(m.config.TickRate), textinput.Blink)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if m.input.Focused() {
		switch {
		case msg.String() == "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			m.inputFrame.Submit(m.input.Value())
			return m, nil
		case key.Matches(msg, m.keys.Board):
			if m.round > 0 {
				m.input.Blur()
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	if key.Matches(msg, m.keys.EditCount) {
		cmd := m.input.Focus()
		return m, cmd
	}
	if key.Matches(msg, m.keys.Start) {
		m.inputFrame.Submit(m.input.Value())
		return m, nil
	}
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse turns left presses into board clicks. A press on the header
// focuses the count field.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y < headerRows {
		cmd := m.input.Focus()
		return m, cmd
	}
	m.inputFrame.Click(msg.X, msg.Y-headerRows)
	return m, nil
}

// handleResize processes window resize events. The round keeps going.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	gw, gh := gameSize(msg.Width, msg.Height)
	m.screen.Resize(gw, gh)
	m.game.Resize(gw, gh)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	for _, e := range result.Events {
		m.logger.Debug(e, "tick", m.game.Snapshot().Tick)
	}

	// A new round moves the focus from the count field to the board.
	if r := m.game.Session().Round(); r != m.round {
		m.round = r
		m.input.Blur()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.screenshotDir
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".scramble", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.headerView() + "\n" + RenderScreen(m.screen) + "\n" + helpStyle.Render(m.helpView())
}

func (m Model) headerView() string {
	hint := m.game.Prompt()
	if !m.input.Focused() {
		hint = "press n to change the count"
	}
	return labelStyle.Render(" Tiles ") + m.input.View() + "  " + hintStyle.Render(hint)
}

func (m Model) helpView() string {
	if m.input.Focused() {
		return m.help.ShortHelpView([]key.Binding{m.keys.Submit, m.keys.Board, m.keys.Screenshot})
	}
	return m.help.View(m.keys)
}

// CountFocused reports whether key presses go to the tile count field.
func (m Model) CountFocused() bool {
	return m.input.Focused()
}

// Game returns the game driven by the model.
func (m Model) Game() *scramble.Game {
	return m.game
}

// Run starts the Bubble Tea program with the given model.
func Run(game *scramble.Game, cfg core.RuntimeConfig, opts ModelOptions) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Tiles are clicked with the mouse
	)

	_, err := p.Run()
	return err
}
