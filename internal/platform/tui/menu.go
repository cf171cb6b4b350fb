package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Radialsum/X800W/internal/registry"
	"github.com/Radialsum/X800W/internal/storage"
)

// menuItem is one selectable line of the mode menu.
type menuItem struct {
	gameID string // empty for non-game entries
	title  string
	desc   string
	best   int
}

const (
	scoresItem = "High Scores"
	quitItem   = "Quit"
)

// MenuResult holds the outcome of the mode menu.
type MenuResult struct {
	GameID          string
	WantsScoreboard bool
	Quit            bool
}

// MenuModel lets the player choose a game mode or open the high scores.
type MenuModel struct {
	items    []menuItem
	cursor   int
	keys     MenuKeyMap
	help     help.Model
	width    int
	height   int
	result   *MenuResult
	quitting bool
}

// NewMenuModel lists every registered mode. Best scores are read from store
// when it is not nil.
func NewMenuModel(store *storage.Store, width, height int) MenuModel {
	var items []menuItem
	for _, info := range registry.List() {
		item := menuItem{gameID: info.ID, title: info.Title, desc: info.Description}
		if store != nil {
			if best, err := store.HighScore(info.ID); err == nil {
				item.best = best
			}
		}
		items = append(items, item)
	}
	items = append(items, menuItem{title: scoresItem}, menuItem{title: quitItem})

	h := help.New()
	h.Width = width

	return MenuModel{
		items:  items,
		keys:   DefaultMenuKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
}

// Init initializes the model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
		m.quitting = true
		m.result = &MenuResult{Quit: true}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		item := m.items[m.cursor]
		switch {
		case item.gameID != "":
			m.result = &MenuResult{GameID: item.gameID}
		case item.title == scoresItem:
			m.result = &MenuResult{WantsScoreboard: true}
		default:
			m.quitting = true
			m.result = &MenuResult{Quit: true}
		}
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.result != nil {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	selectedStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("2 0 4 8"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.title
		if item.best > 0 {
			line += fmt.Sprintf("  (best %d)", item.best)
		}
		if i == m.cursor {
			line = selectedStyle.Render("> " + strings.TrimPrefix(line, "  "))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
		if item.desc != "" {
			b.WriteString(centerText(descStyle.Render(item.desc), m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText(descStyle.Render(m.help.View(m.keys)), m.width))

	return b.String()
}

// Result returns the selection, or nil while the player is choosing.
func (m MenuModel) Result() *MenuResult {
	return m.result
}

// IsQuitting returns true if user wants to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText pads text on the left to center it within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunMenu runs the mode menu and returns the player's choice.
func RunMenu(store *storage.Store, width, height int) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(store, width, height),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return MenuResult{}, err
	}
	m, ok := final.(MenuModel)
	if !ok || m.Result() == nil {
		return MenuResult{Quit: true}, nil
	}
	return *m.Result(), nil
}
