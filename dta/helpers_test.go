package dta

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/luxdta/log"
	"github.com/arloliu/luxdta/sample"
)

func floatField(t *testing.T, s *sample.Sample, name string) float64 {
	t.Helper()

	v, ok := s.Get(name)
	require.True(t, ok, "missing field %q", name)
	f, ok := v.Float64()
	require.True(t, ok, "field %q is not numeric: %v", name, v.Value())

	return f
}

func boolField(t *testing.T, s *sample.Sample, name string) bool {
	t.Helper()

	v, ok := s.Get(name)
	require.True(t, ok, "missing field %q", name)
	b, ok := v.Bool()
	require.True(t, ok, "field %q is not a bool: %v", name, v.Value())

	return b
}

func epochOf(t *testing.T, s *sample.Sample) int64 {
	t.Helper()

	ts, ok := s.Time()
	require.True(t, ok, "missing time field")

	return ts
}

type logEntry struct {
	level string
	msg   string
}

// recordingLogger captures log calls.
type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordingLogger) add(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, msg: msg})
}

func (l *recordingLogger) Debug(msg string, _ ...log.Field) { l.add("debug", msg) }
func (l *recordingLogger) Info(msg string, _ ...log.Field)  { l.add("info", msg) }
func (l *recordingLogger) Warn(msg string, _ ...log.Field)  { l.add("warn", msg) }
func (l *recordingLogger) Error(msg string, _ ...log.Field) { l.add("error", msg) }

func (l *recordingLogger) has(level, msg string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.entries {
		if e.level == level && e.msg == msg {
			return true
		}
	}

	return false
}
