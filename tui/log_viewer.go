package tui

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogCapture implements io.Writer to capture log messages
type LogCapture struct {
	messages []string
	mutex    sync.Mutex
	maxLines int
}

func NewLogCapture(maxLines int) *LogCapture {
	return &LogCapture{
		messages: make([]string, 0),
		maxLines: maxLines,
	}
}

func (lc *LogCapture) Write(p []byte) (n int, err error) {
	lc.mutex.Lock()
	defer lc.mutex.Unlock()

	lc.messages = append(lc.messages, string(p))
	// Keep only the last N messages
	if len(lc.messages) > lc.maxLines {
		lc.messages = lc.messages[len(lc.messages)-lc.maxLines:]
	}
	return len(p), nil
}

func (lc *LogCapture) GetMessages() string {
	lc.mutex.Lock()
	defer lc.mutex.Unlock()
	return strings.Join(lc.messages, "")
}

func (lc *LogCapture) Clear() {
	lc.mutex.Lock()
	defer lc.mutex.Unlock()
	lc.messages = lc.messages[:0]
}

func (t *TUIApp) showLogViewer() {
	prevRoot, prevFullscreen, prevFocus := t.root, t.fullscreen, t.app.GetFocus()

	logText := tview.NewTextView().
		SetWrap(true).
		SetScrollable(true)
	logText.SetBorder(true).SetTitle("Debug Log (Press ESC to close)")

	if t.logCapture != nil {
		logText.SetText(t.logCapture.GetMessages())
		logText.ScrollToEnd()
	} else {
		logText.SetText("No log capture active")
	}

	flex := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(logText, 0, 3, true).
			AddItem(nil, 0, 1, false), 0, 3, true).
		AddItem(nil, 0, 1, false)

	logText.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape {
			t.closeLogViewer(prevRoot, prevFullscreen, prevFocus)
			return nil
		}
		return event
	})

	t.setRoot(flex, true).SetFocus(logText)
}

// closeLogViewer puts back whatever was on screen when the viewer opened.
func (t *TUIApp) closeLogViewer(root tview.Primitive, fullscreen bool, focus tview.Primitive) {
	if root == nil {
		t.showMenu()
		return
	}
	t.setRoot(root, fullscreen)
	if focus == nil {
		focus = root
	}
	t.app.SetFocus(focus)
}

// initLogging points the global logger at the log viewer, and at path too
// if one is given. The terminal belongs to tview, so nothing goes to stderr.
func (t *TUIApp) initLogging(path string, debug bool) {
	t.logCapture = NewLogCapture(1000)

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	var w io.Writer = t.logCapture
	var openErr error
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			openErr = err
		} else {
			t.logCloser = f
			w = io.MultiWriter(f, t.logCapture)
		}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	if openErr != nil {
		log.Warn().Err(openErr).Str("logfile", path).Msg("could not open log file")
	}
	log.Info().Str("logfile", path).Msg("TUI logging initialized")
}
