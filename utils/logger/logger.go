// Package logger provides a small level-filtered, category-tagged logger for
// terminal output. Entries are colour-styled when the destination is a terminal.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Supported levels, lowest first.
const (
	LevelDebug   = "DEBUG"
	LevelInfo    = "INFO"
	LevelWarning = "WARNING"
	LevelError   = "ERROR"
)

var levelRank = map[string]int{
	LevelDebug:   0,
	LevelInfo:    1,
	LevelWarning: 2,
	LevelError:   3,
}

// Logger writes "time | level | category | message" lines.
type Logger struct {
	mu        sync.Mutex
	out       io.Writer
	threshold int
	now       func() time.Time

	styleInfo    lipgloss.Style
	styleDebug   lipgloss.Style
	styleError   lipgloss.Style
	styleWarning lipgloss.Style
	styleTime    lipgloss.Style
}

// New creates a logger writing to out. Entries below level are dropped.
func New(out io.Writer, level string) (*Logger, error) {
	rank, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = os.Stderr
	}

	r := lipgloss.NewRenderer(out)
	return &Logger{
		out:          out,
		threshold:    rank,
		now:          time.Now,
		styleInfo:    r.NewStyle().Foreground(lipgloss.Color("#00D8A7")),
		styleDebug:   r.NewStyle().Foreground(lipgloss.Color("#7D7DFF")),
		styleError:   r.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
		styleWarning: r.NewStyle().Foreground(lipgloss.Color("#FFA500")),
		styleTime:    r.NewStyle().Foreground(lipgloss.Color("#676767")),
	}, nil
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	l, _ := New(io.Discard, LevelError)
	l.threshold = len(levelRank)
	return l
}

func parseLevel(level string) (int, error) {
	upper := strings.ToUpper(strings.TrimSpace(level))
	if upper == "" {
		return levelRank[LevelInfo], nil
	}
	if upper == "WARN" {
		upper = LevelWarning
	}
	rank, ok := levelRank[upper]
	if !ok {
		return 0, fmt.Errorf("unknown log level %q", level)
	}
	return rank, nil
}

// ValidLevel reports whether level is accepted by New.
func ValidLevel(level string) bool {
	_, err := parseLevel(level)
	return err == nil
}

// Log adds an entry with the given level, category and message.
func (l *Logger) Log(level, typ, message string) {
	if l == nil {
		return
	}
	upperLevel := strings.ToUpper(level)
	rank, ok := levelRank[upperLevel]
	if !ok || rank < l.threshold {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var levelStyled string
	switch upperLevel {
	case LevelInfo:
		levelStyled = l.styleInfo.Render(upperLevel)
	case LevelDebug:
		levelStyled = l.styleDebug.Render(upperLevel)
	case LevelError:
		levelStyled = l.styleError.Render(upperLevel)
	case LevelWarning:
		levelStyled = l.styleWarning.Render(upperLevel)
	}

	timeStyled := l.styleTime.Render(l.now().Format("15:04:05"))
	fmt.Fprintf(l.out, "%s | %-7s | %-12s | %s\n", timeStyled, levelStyled, strings.ToUpper(typ), message)
}

func (l *Logger) Debug(typ, message string) { l.Log(LevelDebug, typ, message) }

func (l *Logger) Info(typ, message string) { l.Log(LevelInfo, typ, message) }

func (l *Logger) Warning(typ, message string) { l.Log(LevelWarning, typ, message) }

// Error logs message with err appended when present.
func (l *Logger) Error(typ, message string, err error) {
	if err != nil {
		message = message + ": " + err.Error()
	}
	l.Log(LevelError, typ, message)
}
