package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/spiralfill/internal/core"
	"github.com/vovakirdan/spiralfill/internal/registry"
	"github.com/vovakirdan/spiralfill/internal/storage"
)

// Choices offered by the menu option rows. The first entry keeps whatever
// the config file says.
var (
	difficultyChoices = []string{"", "easy", "normal", "hard", "fixed"}
	sizeChoices       = []int{0, 5, 7, 9, 11, 15, 21}
)

// MenuItem represents a selectable game in the menu.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
	HighScore   int
}

// MenuModel is the Bubble Tea model for the game picker.
// Rows are the games followed by the difficulty and board size options.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	difficulty     int // index into difficultyChoices
	size           int // index into sizeChoices
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		item := MenuItem{GameID: g.ID, Title: g.Title, Description: g.Description}
		if store != nil {
			if hs, err := store.HighScore(g.ID); err == nil {
				item.HighScore = hs
			}
		}
		items = append(items, item)
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

func (m MenuModel) rows() int {
	return len(m.items) + 2
}

func (m MenuModel) onDifficulty() bool {
	return m.cursor == len(m.items)
}

func (m MenuModel) onSize() bool {
	return m.cursor == len(m.items)+1
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < m.rows()-1 {
			m.cursor++
		}
	case MenuActionLeft:
		m.cycle(-1)
	case MenuActionRight:
		m.cycle(1)
	case MenuActionSelect:
		switch {
		case m.cursor < len(m.items):
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		default:
			m.cycle(1)
		}
	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

// cycle steps the option under the cursor, wrapping around.
func (m *MenuModel) cycle(d int) {
	switch {
	case m.onDifficulty():
		m.difficulty = wrap(m.difficulty+d, len(difficultyChoices))
	case m.onSize():
		m.size = wrap(m.size+d, len(sizeChoices))
	}
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCursor     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	menuDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("S P I R A L F I L L"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a game", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := item.Title
		if item.HighScore > 0 {
			line = fmt.Sprintf("%s  (best %d)", line, item.HighScore)
		}
		b.WriteString(centerText(m.row(i, line), m.width))
		b.WriteString("\n")
		if i == m.cursor && item.Description != "" {
			b.WriteString(centerText(menuDimStyle.Render(item.Description), m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.row(len(m.items), "Difficulty: < "+difficultyLabel(m.Options())+" >"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.row(len(m.items)+1, "Board:      < "+sizeLabel(m.Options())+" >"), m.width))
	b.WriteString("\n\n")

	controls := "Up/Down: Navigate  |  Left/Right: Change  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")
	return b.String()
}

func (m MenuModel) row(i int, text string) string {
	if i == m.cursor {
		return menuCursor.Render("> " + text)
	}
	return "  " + text
}

func difficultyLabel(o registry.Options) string {
	if o.Difficulty == "" {
		return "config"
	}
	return o.Difficulty
}

func sizeLabel(o registry.Options) string {
	if o.Size == 0 {
		return "config"
	}
	return fmt.Sprintf("%dx%d", o.Size, o.Size)
}

// Options returns the overrides currently chosen in the menu.
func (m MenuModel) Options() registry.Options {
	return registry.Options{
		Difficulty: difficultyChoices[m.difficulty],
		Size:       sizeChoices[m.size],
	}
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within the given width, ignoring ANSI styling.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// createGame builds a registered game and applies menu overrides.
func createGame(id string, opts registry.Options) (registry.Game, error) {
	game, err := registry.Create(id)
	if err != nil {
		return nil, err
	}
	if c, ok := game.(registry.Configurable); ok {
		if err := c.Configure(opts); err != nil {
			return nil, err
		}
	}
	return game, nil
}
