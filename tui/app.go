// Package tui is a full-screen front end for the game, built on tview.
package tui

import (
	"errors"
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"

	"github.com/domino14/gallows/config"
	"github.com/domino14/gallows/game"
	"github.com/domino14/gallows/lexicon"
)

type TUIApp struct {
	app        *tview.Application
	cfg        *config.Config
	dict       *lexicon.Dictionary
	match      *game.Match
	layout     *tview.Flex
	root       tview.Primitive
	fullscreen bool
	panel      *GamePanel
	statusBar  *tview.TextView
	logCapture *LogCapture
	logCloser  io.Closer
}

func NewTUIApp(cfg *config.Config, dict *lexicon.Dictionary) *TUIApp {
	app := tview.NewApplication()
	// Enable mouse support for clicking buttons
	app.EnableMouse(true)

	tuiApp := &TUIApp{
		app:  app,
		cfg:  cfg,
		dict: dict,
	}
	tuiApp.initLogging(cfg.LogFile(), cfg.DebugLogging())

	tuiApp.setupLayout()
	tuiApp.setupKeyBindings()
	return tuiApp
}

func (t *TUIApp) setupLayout() {
	t.panel = NewGamePanel(t)
	t.statusBar = tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)
	t.statusBar.SetBorder(true).SetTitle("Status")

	t.layout = tview.NewFlex().SetDirection(tview.FlexRow)
	t.layout.AddItem(t.panel.GetView(), 0, 1, true)
	t.layout.AddItem(t.statusBar, 3, 0, false)
}

func (t *TUIApp) setupKeyBindings() {
	t.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		// Let input fields handle their own key events
		if _, ok := t.app.GetFocus().(*tview.InputField); ok {
			return event
		}
		switch event.Rune() {
		case 'd':
			t.showLogViewer()
			return nil
		}
		return event
	})
}

func (t *TUIApp) Run() error {
	t.showMenu()
	return t.app.Run()
}

// Cleanup abandons any match in progress and closes the log file.
func (t *TUIApp) Cleanup() {
	if t.match != nil {
		t.match.Abort()
		t.match = nil
	}
	if t.logCloser != nil {
		t.logCloser.Close()
	}
}

func (t *TUIApp) updateStatus(message string) {
	t.statusBar.SetText(message)
}

// setRoot remembers the root so overlays like the log viewer can put it back.
func (t *TUIApp) setRoot(root tview.Primitive, fullscreen bool) *tview.Application {
	t.root, t.fullscreen = root, fullscreen
	return t.app.SetRoot(root, fullscreen)
}

func (t *TUIApp) showGame() {
	t.setRoot(t.layout, true)
	t.panel.Refresh()
	t.app.SetFocus(t.panel.input)
}

func (t *TUIApp) startMatch(cfg game.GameConfig, players [2]string) {
	var src game.WordSource
	if cfg.Mode == game.ModeBot {
		src = t.dict
	}
	m, err := game.NewMatch(cfg, players, src)
	if err != nil {
		t.showMessage("Error: "+err.Error(), t.showMenu)
		return
	}
	t.match = m
	if cfg.Mode == game.ModePvP {
		t.askWord()
		return
	}
	if _, err := m.Start(); err != nil {
		t.match = nil
		t.showMessage("Error: "+err.Error(), t.showMenu)
		return
	}
	t.updateStatus(m.TurnLabel())
	t.showGame()
}

func (t *TUIApp) submitGuess(text string) {
	if t.match == nil {
		return
	}
	res, err := t.match.Guess(text)
	if err != nil {
		fb := "Error: " + err.Error()
		var ge *game.GuessError
		if errors.As(err, &ge) {
			fb = ge.Feedback()
		}
		t.updateStatus("[yellow]" + tview.Escape(fb))
		return
	}
	t.updateStatus(res.Feedback())
	t.panel.Refresh()
	if t.match.Status() == game.Playing {
		return
	}
	t.showMessage(t.match.RoundResultText(), t.advance)
}

// advance moves on from a finished round: the next word, or the final
// scores.
func (t *TUIApp) advance() {
	if t.match.Status() == game.Over {
		t.finishMatch()
		return
	}
	if t.match.Config().Mode == game.ModePvP {
		if err := t.match.PrepareNext(); err != nil {
			log.Error().Err(err).Msg("advancing match")
			t.finishMatch()
			return
		}
		t.askWord()
		return
	}
	st, err := t.match.Next()
	if err != nil || st == game.Aborted {
		if err != nil {
			log.Error().Err(err).Msg("advancing match")
		}
		t.finishMatch()
		return
	}
	t.updateStatus(t.match.TurnLabel())
	t.showGame()
}

func (t *TUIApp) restart() {
	if t.match == nil || t.match.Config().Mode != game.ModeBot {
		return
	}
	if err := t.match.Restart(); err != nil {
		t.updateStatus("Error: " + err.Error())
		return
	}
	if t.match.Done() {
		t.finishMatch()
		return
	}
	t.updateStatus("New word chosen.")
	t.panel.Refresh()
}

// backToMenu abandons the match.
func (t *TUIApp) backToMenu() {
	if t.match != nil {
		t.match.Abort()
	}
	t.finishMatch()
}

func (t *TUIApp) finishMatch() {
	if t.match == nil {
		t.showMenu()
		return
	}
	text := t.match.FinalScoresText()
	t.match = nil
	t.showMessage(text, t.showMenu)
}
