package histogram

import (
	"fmt"
	"strings"

	"github.com/sgostarter/i/l"
)

type logLine struct {
	level l.Level
	text  string
}

type recorder struct {
	lines []logLine
}

func (r *recorder) Log(level l.Level, a ...interface{}) {
	r.lines = append(r.lines, logLine{level: level, text: fmt.Sprint(a...)})
}

func (r *recorder) Logf(level l.Level, format string, a ...interface{}) {
	r.lines = append(r.lines, logLine{level: level, text: fmt.Sprintf(format, a...)})
}

// warned reports whether a warning carrying err was logged.
func (r *recorder) warned(err error) bool {
	for _, line := range r.lines {
		if line.level == l.LevelWarn && strings.Contains(line.text, err.Error()) {
			return true
		}
	}

	return false
}

func newRecordingLogger() (l.Wrapper, *recorder) {
	r := &recorder{}

	logger := l.NewCommLoggerEx(false, r)
	logger.SetLevel(l.LevelDebug)

	return l.NewWrapper(logger), r
}
