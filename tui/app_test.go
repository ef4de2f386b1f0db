package tui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/gallows/config"
	"github.com/domino14/gallows/game"
	"github.com/domino14/gallows/testhelpers"
)

func newTestApp(t *testing.T, words ...string) *TUIApp {
	t.Helper()
	app := NewTUIApp(config.DefaultConfig(), testhelpers.Dictionary(t, words...))
	t.Cleanup(app.Cleanup)
	return app
}

func status(t *TUIApp) string {
	return t.statusBar.GetText(true)
}

func TestBotFlow(t *testing.T) {
	app := newTestApp(t, "cat")
	app.startMatch(game.GameConfig{Mode: game.ModeBot, Rounds: 1}, [2]string{})
	require.NotNil(t, app.match)
	assert.Equal(t, game.Playing, app.match.Status())
	assert.Equal(t, "Player's turn to guess", status(app))

	app.submitGuess("z")
	assert.Equal(t, "Z is not in the word.", status(app))
	assert.Equal(t, strings.TrimRight(game.Stage(5), "\n"), strings.TrimRight(app.panel.stage.GetText(false), "\n"))
	assert.Contains(t, app.panel.used.GetText(true), "Used letters: Z")
	assert.Contains(t, app.panel.header.GetText(true), "Round 1 of 1")

	app.submitGuess("ca")
	assert.Equal(t, "Not a valid guess. Please enter a word with 3 letters.", status(app))
	app.submitGuess("z")
	assert.Equal(t, "You already guessed the letter Z", status(app))

	app.submitGuess("cat")
	assert.Equal(t, game.Over, app.match.Status())
	assert.Equal(t, "Congrats, Player! You guessed the word!", app.match.RoundResultText())

	app.advance()
	assert.Nil(t, app.match)
}

func TestBotRestartAndBack(t *testing.T) {
	app := newTestApp(t, "dog")
	app.startMatch(game.GameConfig{Mode: game.ModeBot, Rounds: 3}, [2]string{})
	app.submitGuess("x")
	assert.Equal(t, 5, app.match.Round().Tries())

	app.restart()
	assert.Equal(t, "New word chosen.", status(app))
	assert.Equal(t, game.MaxTries, app.match.Round().Tries())

	app.submitGuess("dog")
	assert.Equal(t, game.RoundOver, app.match.Status())
	app.advance()
	require.NotNil(t, app.match)
	assert.Equal(t, game.Playing, app.match.Status())
	assert.Equal(t, "Round 2 of 3", app.match.RoundLabel())

	app.backToMenu()
	assert.Nil(t, app.match)
}

func TestPvPFlow(t *testing.T) {
	app := newTestApp(t, "unused")
	app.startMatch(game.GameConfig{Mode: game.ModePvP, Rounds: 1}, [2]string{"Ann", ""})
	require.NotNil(t, app.match)
	assert.Equal(t, game.AwaitingWord, app.match.Status())
	assert.Equal(t, "Ann", app.match.Setter())
	assert.Equal(t, "Player 2", app.match.Guesser())

	require.NoError(t, app.match.BeginRound("cat"))
	app.showGame()
	assert.Contains(t, app.panel.header.GetText(true), "Player 2's turn to guess")

	// restart is ignored outside bot mode
	app.restart()
	assert.Equal(t, game.MaxTries, app.match.Round().Tries())

	app.submitGuess("cat")
	assert.Equal(t, game.RoundOver, app.match.Status())
	app.advance()
	assert.Equal(t, game.AwaitingWord, app.match.Status())
	assert.Equal(t, "Player 2", app.match.Setter())
}

// closeViewer presses Esc in the open log viewer.
func closeViewer(t *testing.T, app *TUIApp) {
	t.Helper()
	viewer, ok := app.app.GetFocus().(*tview.TextView)
	require.True(t, ok, "log viewer should have focus")
	capture := viewer.GetInputCapture()
	require.NotNil(t, capture)
	assert.Nil(t, capture(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestLogViewerKeepsRoundResults(t *testing.T) {
	app := newTestApp(t, "cat")
	app.startMatch(game.GameConfig{Mode: game.ModeBot, Rounds: 2}, [2]string{})
	app.submitGuess("cat")
	require.Equal(t, game.RoundOver, app.match.Status())
	results := app.root
	_, isModal := results.(*tview.Modal)
	require.True(t, isModal)
	focus := app.app.GetFocus()

	app.showLogViewer()
	assert.NotSame(t, results, app.root)
	closeViewer(t, app)

	// The results stay up, and dismissing them still starts the next round.
	assert.Same(t, results, app.root)
	assert.Same(t, focus, app.app.GetFocus())
	assert.Equal(t, game.RoundOver, app.match.Status())
	app.advance()
	assert.Equal(t, game.Playing, app.match.Status())
	app.submitGuess("d")
	assert.Equal(t, "D is not in the word.", status(app))
}

func TestLogViewerKeepsSecretWordForm(t *testing.T) {
	app := newTestApp(t, "unused")
	app.startMatch(game.GameConfig{Mode: game.ModePvP, Rounds: 1}, [2]string{"Ann", "Bob"})
	require.Equal(t, game.AwaitingWord, app.match.Status())
	form, ok := app.root.(*tview.Form)
	require.True(t, ok)

	app.showLogViewer()
	closeViewer(t, app)
	assert.Same(t, form, app.root)
	assert.Equal(t, game.AwaitingWord, app.match.Status())
}

func TestLogViewerFromMenu(t *testing.T) {
	app := newTestApp(t, "cat")
	app.showMenu()
	menu := app.root
	app.showLogViewer()
	closeViewer(t, app)
	assert.Same(t, menu, app.root)
	assert.Nil(t, app.match)
}

func TestLogCapture(t *testing.T) {
	lc := NewLogCapture(2)
	for _, m := range []string{"a\n", "b\n", "c\n"} {
		_, err := lc.Write([]byte(m))
		require.NoError(t, err)
	}
	assert.Equal(t, "b\nc\n", lc.GetMessages())
	lc.Clear()
	assert.Equal(t, "", lc.GetMessages())
}

func TestLoggingGoesToCapture(t *testing.T) {
	app := newTestApp(t, "cat")
	app.startMatch(game.GameConfig{Mode: game.ModeBot, Rounds: 1}, [2]string{})
	assert.Contains(t, app.logCapture.GetMessages(), "new match")
}
