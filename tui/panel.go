package tui

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"

	"github.com/domino14/gallows/game"
)

// GamePanel is the game screen: the gallows, the word so far and the guess
// entry.
type GamePanel struct {
	view    *tview.Flex
	tuiApp  *TUIApp
	header  *tview.TextView
	stage   *tview.TextView
	pattern *tview.TextView
	used    *tview.TextView
	input   *tview.InputField
	buttons *tview.Flex
	restart *tview.Button
	back    *tview.Button
}

func NewGamePanel(tuiApp *TUIApp) *GamePanel {
	panel := &GamePanel{tuiApp: tuiApp}
	panel.setup()
	return panel
}

func (gp *GamePanel) setup() {
	gp.header = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)

	gp.stage = tview.NewTextView().SetWrap(false)
	gp.stage.SetBorder(true).SetTitle("Gallows")

	gp.pattern = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)
	gp.pattern.SetBorder(true).SetTitle("Word")

	gp.used = tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true)
	gp.used.SetBorder(true).SetTitle("Guessed")

	gp.input = tview.NewInputField().
		SetLabel("Guess: ").
		SetFieldWidth(30)
	gp.input.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			text := strings.TrimSpace(gp.input.GetText())
			gp.input.SetText("")
			if text != "" {
				gp.tuiApp.submitGuess(text)
			}
		case tcell.KeyTab:
			if gp.tuiApp.match != nil && gp.tuiApp.match.Config().Mode == game.ModeBot {
				gp.tuiApp.app.SetFocus(gp.restart)
			} else {
				gp.tuiApp.app.SetFocus(gp.back)
			}
		}
	})

	gp.restart = tview.NewButton("Restart").SetSelectedFunc(func() {
		gp.tuiApp.restart()
	})
	gp.back = tview.NewButton("Back to Menu").SetSelectedFunc(func() {
		gp.tuiApp.backToMenu()
	})
	gp.buttons = tview.NewFlex().SetDirection(tview.FlexColumn)
	gp.layoutButtons(true)
	gp.restart.SetInputCapture(gp.tabTo(gp.back))
	gp.back.SetInputCapture(gp.tabTo(gp.input))

	middle := tview.NewFlex().SetDirection(tview.FlexColumn)
	middle.AddItem(gp.stage, 16, 0, false)
	middle.AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(gp.pattern, 3, 0, false).
		AddItem(gp.used, 0, 1, false), 0, 1, false)

	gp.view = tview.NewFlex().SetDirection(tview.FlexRow)
	gp.view.SetBorder(true).SetTitle("Hangman")
	gp.view.AddItem(gp.header, 2, 0, false)
	gp.view.AddItem(middle, 0, 1, false)
	gp.view.AddItem(gp.input, 1, 0, true)
	gp.view.AddItem(gp.buttons, 1, 0, false)
}

// tabTo moves focus to next on Tab, and back to the guess entry on Escape.
func (gp *GamePanel) tabTo(next tview.Primitive) func(*tcell.EventKey) *tcell.EventKey {
	return func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyTab:
			gp.tuiApp.app.SetFocus(next)
			return nil
		case tcell.KeyEscape:
			gp.tuiApp.app.SetFocus(gp.input)
			return nil
		}
		return event
	}
}

// layoutButtons lays out the button row. Restart only exists against the
// bot.
func (gp *GamePanel) layoutButtons(withRestart bool) {
	gp.buttons.Clear()
	if withRestart {
		gp.buttons.AddItem(gp.restart, 0, 1, false)
		gp.buttons.AddItem(nil, 2, 0, false)
	}
	gp.buttons.AddItem(gp.back, 0, 1, false)
}

func (gp *GamePanel) GetView() tview.Primitive {
	return gp.view
}

func (gp *GamePanel) Refresh() {
	m := gp.tuiApp.match
	if m == nil {
		return
	}
	log.Debug().Str("match", m.ID()).Stringer("status", m.Status()).Msg("TUI: refreshing game panel")
	gp.header.SetText(m.RoundLabel() + "\n" + tview.Escape(m.TurnLabel()+"    "+m.ScoreLine()))
	gp.layoutButtons(m.Config().Mode == game.ModeBot)

	r := m.Round()
	if r == nil {
		gp.stage.SetText(game.Stage(game.MaxTries))
		gp.pattern.SetText("")
		gp.used.SetText("")
		return
	}
	gp.stage.SetText(game.Stage(r.Tries()))
	gp.pattern.SetText("[::b]" + r.Pattern())

	var sb strings.Builder
	sb.WriteString("Tries left: " + strconv.Itoa(r.Tries()) + "\n")
	sb.WriteString("Used letters: " + r.UsedLetters() + "\n")
	if words := r.GuessedWords(); len(words) > 0 {
		sb.WriteString("Used words: " + strings.Join(words, ", ") + "\n")
	}
	gp.used.SetText(tview.Escape(sb.String()))
}
