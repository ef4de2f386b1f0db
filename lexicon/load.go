package lexicon

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

var ErrUnsupportedFormat = errors.New("unsupported word list format")

// parseText reads one word per line. Blank lines and lines starting with #
// are skipped.
func parseText(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// parseYAML accepts either a top-level sequence of words or a mapping with
// a "words" sequence.
func parseYAML(data []byte) ([]string, error) {
	var list []string
	if err := yaml.Unmarshal(data, &list); err == nil {
		return list, nil
	}
	var doc struct {
		Words []string `yaml:"words"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Words, nil
}

func readWords(path string) ([]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", "":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return parseText(f)
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return parseYAML(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// LoadFile builds a dictionary from a .txt or .yaml word list.
func LoadFile(path string) (*Dictionary, error) {
	words, err := readWords(path)
	if err != nil {
		return nil, fmt.Errorf("loading word list %s: %w", path, err)
	}
	d, err := New(filepath.Base(path), words)
	if err != nil {
		return nil, fmt.Errorf("loading word list %s: %w", path, err)
	}
	log.Info().Str("path", path).Int("words", d.Len()).Msg("loaded word list")
	return d, nil
}

// LoadFiles reads every path concurrently and merges them, in the order
// given, into one dictionary.
func LoadFiles(ctx context.Context, paths ...string) (*Dictionary, error) {
	if len(paths) == 1 {
		return LoadFile(paths[0])
	}
	lists := make([][]string, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			words, err := readWords(p)
			if err != nil {
				return fmt.Errorf("loading word list %s: %w", p, err)
			}
			lists[i] = words
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var all []string
	for _, l := range lists {
		all = append(all, l...)
	}
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}
	d, err := New(strings.Join(names, "+"), all)
	if err != nil {
		return nil, err
	}
	log.Info().Strs("paths", paths).Int("words", d.Len()).Msg("loaded word lists")
	return d, nil
}
