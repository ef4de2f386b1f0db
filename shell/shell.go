package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/gallows/alphabet"
	"github.com/domino14/gallows/config"
	"github.com/domino14/gallows/game"
	"github.com/domino14/gallows/lexicon"
)

const (
	menuPrompt = "\033[31mgallows>\033[0m "
	// guessPromptFmt takes the guesser's name.
	guessPromptFmt = "\033[32m%s guess>\033[0m "
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errQuit              = errors.New("quit")
)

type shellcmd struct {
	cmd     string
	args    []string
	options cmdOptions
}

type cmdOptions map[string]string

func (c cmdOptions) String(key string) string {
	return c[key]
}

func (c cmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v, ok := c[key]
	if !ok {
		return defaultI, nil
	}
	return strconv.Atoi(v)
}

// extractFields splits a line the way a POSIX shell would, then separates
// positional arguments from -key value options.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := cmdOptions{}
	for idx := 1; idx < len(fields); idx++ {
		if strings.HasPrefix(fields[idx], "-") && len(fields[idx]) > 1 {
			if idx == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			options[fields[idx][1:]] = fields[idx+1]
			idx++
			continue
		}
		args = append(args, fields[idx])
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

type ShellController struct {
	l       *readline.Instance
	in      prompter
	out     io.Writer
	config  *config.Config
	dict    *lexicon.Dictionary
	options *ShellOptions
	match   *game.Match
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func writeln(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config, dict *lexicon.Dictionary) (*ShellController, error) {
	sc := newShellController(cfg, dict, nil, nil)
	l, err := readline.NewEx(&readline.Config{
		Prompt:          menuPrompt,
		HistoryFile:     cfg.HistoryFile(),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",
		AutoComplete:    NewShellCompleter(sc),

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	sc.l = l
	sc.in = readlinePrompter{l: l}
	sc.out = l.Stdout()
	return sc, nil
}

func newShellController(cfg *config.Config, dict *lexicon.Dictionary, in prompter, out io.Writer) *ShellController {
	opts := NewShellOptions()
	return &ShellController{in: in, out: out, config: cfg, dict: dict, options: opts}
}

func (sc *ShellController) showMessage(msg string) {
	writeln(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

func (sc *ShellController) inRound() bool {
	return sc.match != nil && sc.match.Status() == game.Playing
}

// isGuess reports whether a lone word typed during a round is a guess. A
// word as long as the secret is always a guess, even if it names a command.
func (sc *ShellController) isGuess(word string) bool {
	if alphabet.Len(word) == alphabet.Len(sc.match.Round().Word()) {
		return true
	}
	return !roundCommands[strings.ToLower(word)]
}

func (sc *ShellController) prompt() string {
	if sc.inRound() {
		return fmt.Sprintf(guessPromptFmt, sc.match.Guesser())
	}
	return menuPrompt
}

// commands that still work as commands while a round is being played.
// Anything else typed during a round is a guess.
var roundCommands = map[string]bool{
	"guess": true, "show": true, "scores": true, "restart": true,
	"menu": true, "back": true, "help": true, "set": true, "exit": true, "bye": true,
}

// commandPrefix forces a line to be read as a command during a round.
const commandPrefix = ":"

func (sc *ShellController) handle(line string) (*Response, error) {
	if sc.inRound() {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, commandPrefix) {
			line = strings.TrimPrefix(trimmed, commandPrefix)
		} else if fields := strings.Fields(line); len(fields) == 1 && sc.isGuess(fields[0]) {
			return sc.guess(fields[0])
		}
	}
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(cmd.cmd) {
	case "new":
		return sc.newMatch(cmd)
	case "limits":
		return sc.limits()
	case "guess", "g":
		if len(cmd.args) != 1 {
			return nil, errors.New("guess <letter or word>")
		}
		return sc.guess(cmd.args[0])
	case "show", "s":
		return sc.show()
	case "scores":
		return sc.scores()
	case "restart":
		return sc.restart()
	case "menu", "back":
		return sc.backToMenu()
	case "set":
		return sc.set(cmd)
	case "help":
		if len(cmd.args) == 0 {
			return msg(sc.usage()), nil
		}
		return msg(usageTopic(cmd.args[0])), nil
	case "exit", "bye":
		return nil, errQuit
	default:
		return nil, fmt.Errorf("command %v not found", strconv.Quote(cmd.cmd))
	}
}

// run reads and handles lines until the player quits or input ends.
func (sc *ShellController) run() {
	sc.showMessage("Welcome to Gallows. Type `help` for commands, `new bot` or `new pvp` to play.")
	for {
		line, err := sc.in.Prompt(sc.prompt(), false)
		if errors.Is(err, readline.ErrInterrupt) {
			if sc.match != nil {
				sc.showMessage(sc.abandon())
				continue
			}
			if len(line) == 0 {
				return
			}
			continue
		} else if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Error().Err(err).Msg("reading input")
			}
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		resp, err := sc.handle(line)
		if errors.Is(err, errQuit) {
			return
		} else if err != nil {
			sc.showError(err)
		} else if resp != nil && resp.message != "" {
			sc.showMessage(resp.message)
		}
	}
}

// Loop runs the shell, then signals sig so the caller can shut down.
func (sc *ShellController) Loop(sig chan os.Signal) {
	if sc.l != nil {
		defer sc.l.Close()
	}
	sc.run()
	log.Debug().Msgf("Exiting readline loop...")
	sig <- syscall.SIGINT
}

func (sc *ShellController) Cleanup() {
	if sc.match != nil {
		sc.match.Abort()
		sc.match = nil
	}
}
