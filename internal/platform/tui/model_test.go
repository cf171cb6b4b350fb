package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Radialsum/X800W/internal/core"
	_ "github.com/Radialsum/X800W/internal/games/t2048"
	"github.com/Radialsum/X800W/internal/registry"
	"github.com/Radialsum/X800W/internal/storage"
)

func testConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	return cfg
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func newGameModel(t *testing.T, store *storage.Store) GameModel {
	t.Helper()
	game, err := registry.Create("2048")
	require.NoError(t, err)
	return NewGameModel(game, store, nil, testConfig(), "tester")
}

// send delivers msg and then one tick.
func send(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	next, _ = next.Update(TickMsg{})
	return next.(GameModel)
}

// playUntilScore cycles through the directions until something merges.
func playUntilScore(t *testing.T, m GameModel) GameModel {
	t.Helper()
	dirs := []tea.KeyMsg{
		{Type: tea.KeyLeft}, {Type: tea.KeyUp}, {Type: tea.KeyRight}, {Type: tea.KeyDown},
	}
	for i := 0; i < 400 && m.State().Score == 0; i++ {
		m = send(t, m, dirs[i%len(dirs)])
	}
	require.Positive(t, m.State().Score, "no merge happened")
	require.False(t, m.State().GameOver)
	return m
}

func TestGameModelMove(t *testing.T) {
	m := newGameModel(t, nil)
	require.Zero(t, m.State().Moves)

	before := m.State().Moves
	for _, k := range []tea.KeyMsg{{Type: tea.KeyLeft}, {Type: tea.KeyUp}, {Type: tea.KeyRight}} {
		m = send(t, m, k)
	}
	assert.Greater(t, m.State().Moves, before)
	assert.NotEmpty(t, m.View())
}

func TestGameModelRestartRecordsResult(t *testing.T) {
	store := openStore(t)
	m := playUntilScore(t, newGameModel(t, store))

	firstUUID := m.GameUUID()
	score := m.State().Score

	m = send(t, m, runes("r"))
	assert.NotEqual(t, firstUUID, m.GameUUID(), "a restarted game needs a new uuid")
	assert.Zero(t, m.State().Moves)
	assert.Zero(t, m.State().Score)

	r, err := store.ResultByUUID(firstUUID)
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, score, r.Score)
	assert.Equal(t, "2048", r.GameID)
	assert.Equal(t, "tester", r.Player)
}

func TestGameModelRestartWhilePaused(t *testing.T) {
	m := playUntilScore(t, newGameModel(t, nil))

	id, moves := m.GameUUID(), m.State().Moves
	m = send(t, m, runes("p"))
	require.True(t, m.State().Paused)

	m = send(t, m, runes("r"))
	assert.Equal(t, id, m.GameUUID())
	assert.Equal(t, moves, m.State().Moves)
}

func TestGameModelQuitAndBack(t *testing.T) {
	store := openStore(t)

	m := newGameModel(t, store)
	next, cmd := m.Update(runes("q"))
	m = next.(GameModel)
	assert.True(t, m.IsQuitting())
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())

	scores, err := store.TopScores("2048", 10)
	require.NoError(t, err)
	assert.Empty(t, scores, "empty games are not recorded")

	m = playUntilScore(t, newGameModel(t, store))
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(GameModel)
	assert.True(t, m.BackToMenu())
	assert.False(t, m.IsQuitting())

	r, err := store.ResultByUUID(m.GameUUID())
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, m.State().Score, r.Score)
}

func TestGameModelResizeKeepsGame(t *testing.T) {
	m := playUntilScore(t, newGameModel(t, nil))
	moves := m.State().Moves

	m = send(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})
	assert.True(t, m.State().Paused, "a small window pauses the game")

	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.False(t, m.State().Paused)
	assert.Equal(t, moves, m.State().Moves)
}
