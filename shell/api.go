package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/domino14/gallows/game"
)

func (sc *ShellController) wordSource(mode game.Mode) game.WordSource {
	if mode == game.ModePvP {
		return playerSource{sc: sc}
	}
	return sc.dict
}

func (sc *ShellController) roundsFor(cmd *shellcmd) (int, error) {
	if key := cmd.options.String("limit"); key != "" {
		l, err := game.LimitFromString(key)
		if err != nil {
			return 0, err
		}
		return l.Rounds, nil
	}
	if len(cmd.args) > 1 {
		n, err := strconv.Atoi(cmd.args[1])
		if err != nil {
			return 0, fmt.Errorf("rounds must be a number: %q", cmd.args[1])
		}
		return n, nil
	}
	return sc.config.DefaultRounds(), nil
}

// names collects the pvp player names. Names given as -p1 / -p2 are not
// asked for.
func (sc *ShellController) names(cmd *shellcmd) ([2]string, bool) {
	var players [2]string
	defaults := game.DefaultPlayers(game.ModePvP)
	for i, key := range []string{"p1", "p2"} {
		if v := cmd.options.String(key); v != "" {
			players[i] = v
			continue
		}
		name, ok := sc.ask(fmt.Sprintf("Enter name for %s: ", defaults[i]), false)
		if !ok {
			return players, false
		}
		players[i] = name
	}
	return players, true
}

func (sc *ShellController) newMatch(cmd *shellcmd) (*Response, error) {
	if sc.match != nil {
		return nil, errors.New("a match is in progress; use `menu` to abandon it first")
	}
	if len(cmd.args) == 0 {
		return nil, errors.New("new bot|pvp [rounds]")
	}
	mode, err := game.ModeFromString(cmd.args[0])
	if err != nil {
		return nil, err
	}
	rounds, err := sc.roundsFor(cmd)
	if err != nil {
		return nil, err
	}
	cfg := game.GameConfig{Mode: mode, Rounds: rounds}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var players [2]string
	if mode == game.ModePvP {
		var ok bool
		if players, ok = sc.names(cmd); !ok {
			return msg("Match cancelled."), nil
		}
	}
	m, err := game.NewMatch(cfg, players, sc.wordSource(mode))
	if err != nil {
		return nil, err
	}
	sc.match = m
	st, err := m.Start()
	if err != nil {
		sc.match = nil
		return nil, err
	}
	if st == game.Aborted {
		sc.match = nil
		return msg("Match cancelled."), nil
	}
	return msg(sc.match.ToDisplayText()), nil
}

// rejection turns a rejected guess into the message a player sees.
func rejection(err error) error {
	var ge *game.GuessError
	if errors.As(err, &ge) {
		return errors.New(ge.Feedback())
	}
	return err
}

func (sc *ShellController) guess(text string) (*Response, error) {
	if sc.match == nil {
		return nil, game.ErrNoActiveRound
	}
	res, err := sc.match.Guess(text)
	if err != nil {
		return nil, rejection(err)
	}
	if fb := res.Feedback(); fb != "" {
		sc.showMessage(fb)
	}

	r := sc.match.Round()
	if sc.match.Status() == game.Playing {
		if sc.options.showBoard {
			return msg(sc.match.ToDisplayText()), nil
		}
		return msg(r.Pattern()), nil
	}
	if r.State() == game.RoundLost {
		sc.showMessage(game.Stage(0))
	}
	sc.showMessage(sc.match.RoundResultText())
	if sc.match.Status() == game.Over {
		return sc.endMatch(), nil
	}

	st, err := sc.match.Next()
	if err != nil {
		return nil, err
	}
	if st == game.Aborted {
		return sc.endMatch(), nil
	}
	return msg(sc.match.ToDisplayText()), nil
}

// endMatch shows the final scores and goes back to the menu.
func (sc *ShellController) endMatch() *Response {
	text := sc.match.FinalScoresText()
	sc.match = nil
	return msg(text)
}

func (sc *ShellController) abandon() string {
	sc.match.Abort()
	return "Match abandoned.\n" + sc.endMatch().message
}

func (sc *ShellController) backToMenu() (*Response, error) {
	if sc.match == nil {
		return msg("Already at the menu."), nil
	}
	return msg(sc.abandon()), nil
}

func (sc *ShellController) show() (*Response, error) {
	if sc.match == nil {
		return nil, errors.New("no match in progress")
	}
	return msg(sc.match.ToDisplayText()), nil
}

func (sc *ShellController) scores() (*Response, error) {
	if sc.match == nil {
		return nil, errors.New("no match in progress")
	}
	return msg(sc.match.RoundLabel() + "\n" + sc.match.ScoreLine()), nil
}

func (sc *ShellController) restart() (*Response, error) {
	if sc.match == nil {
		return nil, errors.New("no match in progress")
	}
	if err := sc.match.Restart(); err != nil {
		return nil, err
	}
	if sc.match.Status() == game.Aborted {
		return sc.endMatch(), nil
	}
	return msg("New word chosen.\n" + sc.match.ToDisplayText()), nil
}

func (sc *ShellController) limits() (*Response, error) {
	lines := lo.Map(game.Limits, func(l game.Limit, _ int) string {
		return fmt.Sprintf("  %-9s %s", l.Key, l)
	})
	return msg("Round limits (new <mode> -limit <key>):\n" + strings.Join(lines, "\n")), nil
}

func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return msg(sc.options.ToDisplayText()), nil
	}
	opt := cmd.args[0]
	if len(cmd.args) == 1 {
		_, val := sc.options.Show(opt)
		return msg(val), nil
	}
	ret, err := sc.options.Set(opt, cmd.args[1:])
	if err != nil {
		return nil, err
	}
	return msg("set " + opt + " to " + ret), nil
}
