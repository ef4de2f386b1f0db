package tui

import (
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/gallows/alphabet"
	"github.com/domino14/gallows/game"
)

func (t *TUIApp) showMenu() {
	modal := tview.NewModal().
		SetText("Welcome to Hangman!\n\nChoose a mode.").
		AddButtons([]string{"Play vs Bot", "Player vs Player", "Exit"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			log.Debug().Int("buttonIndex", buttonIndex).Str("buttonLabel", buttonLabel).Msg("TUI: menu button selected")
			switch buttonIndex {
			case 0:
				t.showLimits(game.ModeBot)
			case 1:
				t.showLimits(game.ModePvP)
			case 2:
				t.app.Stop()
			}
		})
	t.setRoot(modal, false).SetFocus(modal)
}

func (t *TUIApp) showLimits(mode game.Mode) {
	labels := lo.Map(game.Limits, func(l game.Limit, _ int) string { return l.String() })
	modal := tview.NewModal().
		SetText("Choose a round limit.").
		AddButtons(append(labels, "Cancel")).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			if buttonIndex < 0 || buttonIndex >= len(game.Limits) {
				t.showMenu()
				return
			}
			cfg := game.GameConfig{Mode: mode, Rounds: game.Limits[buttonIndex].Rounds}
			if mode == game.ModePvP {
				t.showNamesForm(cfg)
				return
			}
			t.startMatch(cfg, [2]string{})
		})
	t.setRoot(modal, false).SetFocus(modal)
}

func (t *TUIApp) showNamesForm(cfg game.GameConfig) {
	defaults := game.DefaultPlayers(game.ModePvP)
	form := tview.NewForm()
	form.AddInputField(defaults[0]+" name", "", 30, nil, nil)
	form.AddInputField(defaults[1]+" name", "", 30, nil, nil)
	form.AddButton("Start", func() {
		var players [2]string
		for i := range players {
			players[i] = form.GetFormItem(i).(*tview.InputField).GetText()
		}
		t.startMatch(cfg, players)
	})
	form.AddButton("Cancel", func() {
		t.showMenu()
	})

	form.SetBorder(true).SetTitle("Player vs Player").SetTitleAlign(tview.AlignLeft)
	t.setRoot(form, true).SetFocus(form)
}

// askWord collects the secret word from the current setter. Cancelling
// ends the match.
func (t *TUIApp) askWord() {
	setter, guesser := t.match.Setter(), t.match.Guesser()
	form := tview.NewForm()
	form.AddPasswordField("Secret word", "", 30, '*', nil)
	submit := func() {
		word, ok := alphabet.NormalizeWord(form.GetFormItem(0).(*tview.InputField).GetText())
		if !ok {
			t.showMessage("Invalid Input: Please enter a valid word.", t.askWord)
			return
		}
		if err := t.match.BeginRound(word); err != nil {
			log.Error().Err(err).Msg("beginning round")
			t.showMessage("Error: "+err.Error(), t.askWord)
			return
		}
		t.updateStatus(t.match.TurnLabel())
		t.showGame()
	}
	form.AddButton("OK", submit)
	form.AddButton("Cancel", func() {
		t.match.Abort()
		t.finishMatch()
	})

	form.SetBorder(true).
		SetTitle(setter + ", choose a word (" + guesser + ", look away!)").
		SetTitleAlign(tview.AlignLeft)
	t.setRoot(form, true).SetFocus(form)
}

// showMessage shows text until it is dismissed, then calls then.
func (t *TUIApp) showMessage(text string, then func()) {
	modal := tview.NewModal().
		SetText(text).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(int, string) {
			then()
		})
	t.setRoot(modal, false).SetFocus(modal)
}
