package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/domino14/gallows/config"
	"github.com/domino14/gallows/lexicon"
	"github.com/domino14/gallows/shell"
	"github.com/domino14/gallows/tui"
)

func newRootCmd() *cobra.Command {
	cfg := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:           "gallows",
		Short:         "Hangman in the terminal, against the bot or a friend.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       GitVersion,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.Load(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cfg, os.Stderr)
			fmt.Println(banner)
			dict, err := loadDictionary(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return runShell(cfg, dict)
		},
	}
	config.BindFlags(cmd.PersistentFlags())

	cmd.AddCommand(newTUICmd(cfg), newWordsCmd(cfg))
	return cmd
}

func newTUICmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Play in a full-screen interface.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := loadDictionary(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			app := tui.NewTUIApp(cfg, dict)
			defer app.Cleanup()
			return app.Run()
		},
	}
}

func newWordsCmd(cfg *config.Config) *cobra.Command {
	var list bool
	cmd := &cobra.Command{
		Use:   "words [word...]",
		Short: "Show the word list in use, or check whether words are in it.",
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cfg, os.Stderr)
			dict, err := loadDictionary(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return describeWords(cmd.OutOrStdout(), dict, list, args)
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "print every word")
	return cmd
}

func describeWords(w io.Writer, dict *lexicon.Dictionary, list bool, check []string) error {
	fmt.Fprintf(w, "%s: %d words\n", dict.Name(), dict.Len())
	if list {
		for _, word := range dict.Words() {
			fmt.Fprintln(w, word)
		}
	}
	missing := 0
	for _, word := range check {
		if dict.Contains(word) {
			fmt.Fprintf(w, "%s: yes\n", strings.ToUpper(word))
		} else {
			fmt.Fprintf(w, "%s: no\n", strings.ToUpper(word))
			missing++
		}
	}
	if missing > 0 {
		return fmt.Errorf("%d of %d words not in %s", missing, len(check), dict.Name())
	}
	return nil
}

func loadDictionary(ctx context.Context, cfg *config.Config) (*lexicon.Dictionary, error) {
	paths := cfg.WordLists()
	if len(paths) == 0 {
		return lexicon.Default(), nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	dict, err := lexicon.LoadFiles(ctx, paths...)
	if err != nil {
		return nil, err
	}
	log.Info().Str("lexicon", dict.Name()).Int("words", dict.Len()).Msg("loaded word lists")
	return dict, nil
}

func setupLogging(cfg *config.Config, w io.Writer) {
	output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}

	var logger zerolog.Logger
	if cfg.DebugLogging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	logger.Debug().Interface("settings", cfg.SanitizedSettings()).Msg("Debug logging is on")
}

func runShell(cfg *config.Config, dict *lexicon.Dictionary) error {
	sc, err := shell.NewShellController(cfg, dict)
	if err != nil {
		return err
	}

	done := make(chan struct{})
	sig := make(chan os.Signal, 1)
	go func() {
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Debug().Msg("got quit signal...")
		close(done)
	}()

	go sc.Loop(sig)
	<-done

	sc.Cleanup()
	log.Debug().Msg("shell shutting down")
	return nil
}
