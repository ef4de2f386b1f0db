// Package game holds the rules of a Hangman match: a Round evaluates
// guesses against one secret word, and a Match strings rounds together,
// keeps score and decides whose turn it is to set and to guess.
//
// Neither type knows how it is being displayed. A presentation layer reads
// state off them and forwards the player's input.
package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidMode       = errors.New("invalid mode")
	ErrInvalidRounds     = errors.New("number of rounds must be at least 1")
	ErrInvalidLimit      = errors.New("unknown round limit")
	ErrWrongStatus       = errors.New("not allowed right now")
	ErrNoActiveRound     = errors.New("no round in progress")
	ErrNoWordSource      = errors.New("match has no word source")
	ErrRestartNotAllowed = errors.New("restart is only available against the bot")
)

type Mode int

const (
	ModeBot Mode = iota
	ModePvP
)

func (m Mode) String() string {
	switch m {
	case ModeBot:
		return "bot"
	case ModePvP:
		return "pvp"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func ModeFromString(mode string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "bot":
		return ModeBot, nil
	case "pvp":
		return ModePvP, nil
	}
	return ModeBot, fmt.Errorf("%w: %q (choose bot or pvp)", ErrInvalidMode, mode)
}

// Limit is one of the preset round counts offered on the menu.
type Limit struct {
	Key    string
	Name   string
	Rounds int
}

var Limits = []Limit{
	{Key: "coin", Name: "The Coin", Rounds: 1},
	{Key: "triangle", Name: "The Triangle", Rounds: 3},
	{Key: "dice", Name: "The Dice", Rounds: 6},
	{Key: "roulette", Name: "Russian Roulette", Rounds: 7},
}

func (l Limit) String() string {
	if l.Rounds == 1 {
		return l.Name + " (1 Round)"
	}
	return fmt.Sprintf("%s (%d Rounds)", l.Name, l.Rounds)
}

func LimitFromString(key string) (Limit, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, l := range Limits {
		if l.Key == key {
			return l, nil
		}
	}
	return Limit{}, fmt.Errorf("%w: %q", ErrInvalidLimit, key)
}

// GameConfig is fixed for the life of a match.
type GameConfig struct {
	Mode   Mode
	Rounds int
}

func (c GameConfig) Validate() error {
	if c.Mode != ModeBot && c.Mode != ModePvP {
		return fmt.Errorf("%w: %v", ErrInvalidMode, c.Mode)
	}
	if c.Rounds < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidRounds, c.Rounds)
	}
	return nil
}

// TurnsPerRound is how many rounds are played for each requested round:
// in pvp every player takes a turn as guesser.
func (c GameConfig) TurnsPerRound() int {
	if c.Mode == ModePvP {
		return 2
	}
	return 1
}

// Target is the number of rounds after which the match ends.
func (c GameConfig) Target() int {
	return c.Rounds * c.TurnsPerRound()
}

func DefaultPlayers(mode Mode) [2]string {
	if mode == ModePvP {
		return [2]string{"Player 1", "Player 2"}
	}
	return [2]string{"Player", "Bot"}
}

// WordSource supplies the secret word for a round. A false return means the
// setter declined to give one, which ends the match early.
type WordSource interface {
	NextWord(setter string) (string, bool)
}

type Status int

const (
	AwaitingWord Status = iota
	Playing
	RoundOver
	Over
	Aborted
)

func (s Status) String() string {
	switch s {
	case AwaitingWord:
		return "awaiting word"
	case Playing:
		return "playing"
	case RoundOver:
		return "round over"
	case Over:
		return "over"
	case Aborted:
		return "aborted"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

type PlayerScore struct {
	Name  string
	Score int
}

// Match is a sequence of rounds bounded by the requested round count.
type Match struct {
	id      string
	cfg     GameConfig
	players [2]string
	src     WordSource

	scores    [2]int
	completed int
	setter    int
	guesser   int
	status    Status
	round     *Round
}

// NewMatch sets up a match. Empty player names fall back to the defaults
// for the mode. src may be nil if the caller only ever uses BeginRound.
func NewMatch(cfg GameConfig, players [2]string, src WordSource) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	defaults := DefaultPlayers(cfg.Mode)
	for i := range players {
		players[i] = strings.TrimSpace(players[i])
		if players[i] == "" {
			players[i] = defaults[i]
		}
	}
	m := &Match{
		id:      uuid.NewString(),
		cfg:     cfg,
		players: players,
		src:     src,
		status:  AwaitingWord,
	}
	if cfg.Mode == ModePvP {
		m.setter, m.guesser = 0, 1
	} else {
		m.setter, m.guesser = 1, 0
	}
	log.Info().Str("match", m.id).Stringer("mode", cfg.Mode).Int("rounds", cfg.Rounds).
		Strs("players", players[:]).Msg("new match")
	return m, nil
}

func (m *Match) ID() string { return m.id }
func (m *Match) Config() GameConfig { return m.cfg }
func (m *Match) Players() [2]string { return m.players }
func (m *Match) Status() Status { return m.status }
func (m *Match) Completed() int { return m.completed }
func (m *Match) Target() int { return m.cfg.Target() }
func (m *Match) SetterIndex() int { return m.setter }
func (m *Match) GuesserIndex() int { return m.guesser }
func (m *Match) Setter() string { return m.players[m.setter] }
func (m *Match) Guesser() string { return m.players[m.guesser] }
func (m *Match) Done() bool { return m.status == Over || m.status == Aborted }
func (m *Match) Score(player int) int { return m.scores[player] }

// Round is the current round, or the one that just finished while the
// match waits to advance. It is nil before the first word is set.
func (m *Match) Round() *Round {
	return m.round
}

// DisplayRound is the round number to show in a "Round N of M" label.
func (m *Match) DisplayRound() int {
	return min(m.completed/m.cfg.TurnsPerRound()+1, m.cfg.Rounds)
}

func (m *Match) RoundLabel() string {
	return fmt.Sprintf("Round %d of %d", m.DisplayRound(), m.cfg.Rounds)
}

func (m *Match) Scores() []PlayerScore {
	return []PlayerScore{
		{Name: m.players[0], Score: m.scores[0]},
		{Name: m.players[1], Score: m.scores[1]},
	}
}

func (m *Match) wrongStatus(op string) error {
	return fmt.Errorf("%w: cannot %s while the match is %s", ErrWrongStatus, op, m.status)
}

// Start fetches the first word and begins the first round.
func (m *Match) Start() (Status, error) {
	if m.status != AwaitingWord || m.round != nil {
		return m.status, m.wrongStatus("start")
	}
	return m.fetch()
}

func (m *Match) fetch() (Status, error) {
	if m.src == nil {
		return m.status, ErrNoWordSource
	}
	word, ok := m.src.NextWord(m.Setter())
	if !ok {
		log.Info().Str("match", m.id).Str("setter", m.Setter()).Msg("setter declined; aborting match")
		m.status = Aborted
		return m.status, nil
	}
	if err := m.BeginRound(word); err != nil {
		return m.status, err
	}
	return m.status, nil
}

// BeginRound starts a round with a word the caller obtained from the
// setter. The match must be awaiting a word.
func (m *Match) BeginRound(word string) error {
	if m.status != AwaitingWord {
		return m.wrongStatus("begin a round")
	}
	r, err := NewRound(word)
	if err != nil {
		return err
	}
	m.round = r
	m.status = Playing
	log.Debug().Str("match", m.id).Int("completed", m.completed).Str("guesser", m.Guesser()).
		Msg("round started")
	return nil
}

// Guess forwards a guess to the current round and, if that ends the round,
// scores it.
func (m *Match) Guess(raw string) (GuessResult, error) {
	if m.status != Playing || m.round == nil {
		return GuessResult{}, ErrNoActiveRound
	}
	res, err := m.round.SubmitGuess(raw)
	if err != nil {
		return res, err
	}
	if m.round.Over() {
		m.finishRound()
	}
	return res, nil
}

func (m *Match) finishRound() {
	won := m.round.State() == RoundWon
	if won {
		m.scores[m.guesser]++
	}
	m.completed++
	if m.completed >= m.cfg.Target() {
		m.status = Over
	} else {
		m.status = RoundOver
	}
	log.Info().Str("match", m.id).Str("guesser", m.Guesser()).Bool("won", won).
		Int("completed", m.completed).Int("target", m.cfg.Target()).
		Ints("scores", m.scores[:]).Stringer("status", m.status).Msg("round finished")
}

// PrepareNext moves a finished round on to waiting for the next word,
// swapping setter and guesser in pvp.
func (m *Match) PrepareNext() error {
	if m.status != RoundOver {
		return m.wrongStatus("advance")
	}
	if m.cfg.Mode == ModePvP {
		m.setter, m.guesser = m.guesser, m.setter
	}
	m.status = AwaitingWord
	return nil
}

// Next advances to the following round, asking the word source for the
// new setter's word.
func (m *Match) Next() (Status, error) {
	if err := m.PrepareNext(); err != nil {
		return m.status, err
	}
	return m.fetch()
}

// Restart replaces the round in progress with a fresh one on a new word.
// Scores and round counters are left alone.
func (m *Match) Restart() error {
	if m.cfg.Mode != ModeBot {
		return ErrRestartNotAllowed
	}
	if m.status != Playing {
		return m.wrongStatus("restart")
	}
	if m.src == nil {
		return ErrNoWordSource
	}
	word, ok := m.src.NextWord(m.Setter())
	if !ok {
		m.status = Aborted
		return nil
	}
	r, err := NewRound(word)
	if err != nil {
		return err
	}
	m.round = r
	log.Debug().Str("match", m.id).Msg("round restarted")
	return nil
}

// Abort ends the match early. A match that is already over stays over.
func (m *Match) Abort() {
	if m.status == Over {
		return
	}
	m.status = Aborted
	log.Info().Str("match", m.id).Msg("match abandoned")
}
