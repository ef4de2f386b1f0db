package shell

import (
	"fmt"
	"strconv"
	"strings"
)

type ShellOptions struct {
	// showBoard redraws the gallows after every guess.
	showBoard bool
	// hideWords keeps the pvp secret word off the screen while it is typed.
	hideWords bool
}

func NewShellOptions() *ShellOptions {
	return &ShellOptions{showBoard: true, hideWords: true}
}

var optionKeys = []string{"showall", "hidden"}

func (opts *ShellOptions) Show(key string) (bool, string) {
	switch key {
	case "showall":
		return true, fmt.Sprintf("%v", opts.showBoard)
	case "hidden":
		return true, fmt.Sprintf("%v", opts.hideWords)
	default:
		return false, "No such option: " + key
	}
}

func (opts *ShellOptions) Set(key string, values []string) (string, error) {
	if len(values) != 1 {
		return "", fmt.Errorf("set %s takes exactly one value", key)
	}
	b, err := strconv.ParseBool(values[0])
	if err != nil {
		return "", fmt.Errorf("%s must be true or false", key)
	}
	switch key {
	case "showall":
		opts.showBoard = b
	case "hidden":
		opts.hideWords = b
	default:
		return "", fmt.Errorf("no such option: %s", key)
	}
	return strconv.FormatBool(b), nil
}

func (opts *ShellOptions) ToDisplayText() string {
	out := strings.Builder{}
	out.WriteString("Settings:\n")
	for _, key := range optionKeys {
		_, val := opts.Show(key)
		out.WriteString("  " + key + ": ")
		out.WriteString(val + "\n")
	}
	return out.String()
}
