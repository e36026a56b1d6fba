package utils

import (
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

type logHandle struct {
	*logrus.Logger

	name     string
	colorful bool
}

func (l *logHandle) Format(e *logrus.Entry) ([]byte, error) {
	lvlStr := strings.ToUpper(e.Level.String())
	if l.colorful {
		var color int
		switch e.Level {
		case logrus.DebugLevel, logrus.TraceLevel:
			color = 34 // blue
		case logrus.WarnLevel:
			color = 33 // yellow
		case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
			color = 31 // red
		default:
			color = 32 // green
		}
		lvlStr = fmt.Sprintf("\033[1;%dm%s\033[0m", color, lvlStr)
	}
	const timeFormat = "2006/01/02 15:04:05.000000"
	str := fmt.Sprintf("%s %s[%d] <%s>: %s",
		e.Time.Format(timeFormat), l.name, os.Getpid(), lvlStr, strings.TrimRight(e.Message, "\n"))
	if e.Caller != nil {
		str += fmt.Sprintf(" [%s:%d]", path.Base(e.Caller.File), e.Caller.Line)
	}
	if len(e.Data) != 0 {
		fields := make([]string, 0, len(e.Data))
		for k, v := range e.Data {
			fields = append(fields, fmt.Sprintf("%s=%v", k, v))
		}
		sort.Strings(fields)
		str += " " + strings.Join(fields, " ")
	}
	return []byte(str + "\n"), nil
}

var (
	mu      sync.Mutex
	loggers = make(map[string]*logHandle)
	level   = logrus.InfoLevel
	output  = io.Writer(os.Stderr)
)

func newLogger(name string) *logHandle {
	l := &logHandle{Logger: logrus.New(), name: name, colorful: SupportANSIColor(output)}
	l.Formatter = l
	l.SetReportCaller(true)
	l.SetLevel(level)
	l.SetOutput(output)
	return l
}

// GetLogger returns a logger mapped to `name`
func GetLogger(name string) *logHandle {
	mu.Lock()
	defer mu.Unlock()

	if logger, ok := loggers[name]; ok {
		return logger
	}
	logger := newLogger(name)
	loggers[name] = logger
	return logger
}

// SetLogLevel sets Level to all the loggers in the map
func SetLogLevel(lvl logrus.Level) {
	mu.Lock()
	defer mu.Unlock()
	level = lvl
	for _, logger := range loggers {
		logger.SetLevel(lvl)
	}
}

func DisableLogColor() {
	mu.Lock()
	defer mu.Unlock()
	for _, logger := range loggers {
		logger.colorful = false
	}
}

// SetOutput redirects every logger, and loggers created later, to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	for _, logger := range loggers {
		logger.SetOutput(w)
		logger.colorful = SupportANSIColor(w)
	}
}

// SupportANSIColor reports whether w is a terminal that understands colour codes.
func SupportANSIColor(w io.Writer) bool {
	return IsTerminal(w) && os.Getenv("TERM") != "dumb"
}

// IsTerminal reports whether w is an *os.File attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
