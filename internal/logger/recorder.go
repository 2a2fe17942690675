package logger

import (
	"sync"

	"github.com/arloliu/hostelmatch/types"
)

// Entry is one recorded log call.
type Entry struct {
	Level         string
	Msg           string
	KeysAndValues []any
}

// Value returns the value logged for key, or nil.
func (e Entry) Value(key string) any {
	for i := 0; i+1 < len(e.KeysAndValues); i += 2 {
		if k, ok := e.KeysAndValues[i].(string); ok && k == key {
			return e.KeysAndValues[i+1]
		}
	}

	return nil
}

// Recorder is a types.Logger that keeps every entry in memory for assertions.
// It is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

var _ types.Logger = (*Recorder)(nil)

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(level, msg string, kv []any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, Entry{Level: level, Msg: msg, KeysAndValues: append([]any(nil), kv...)})
}

// Debug records a debug entry.
func (r *Recorder) Debug(msg string, keysAndValues ...any) { r.record("debug", msg, keysAndValues) }

// Info records an info entry.
func (r *Recorder) Info(msg string, keysAndValues ...any) { r.record("info", msg, keysAndValues) }

// Warn records a warn entry.
func (r *Recorder) Warn(msg string, keysAndValues ...any) { r.record("warn", msg, keysAndValues) }

// Error records an error entry.
func (r *Recorder) Error(msg string, keysAndValues ...any) { r.record("error", msg, keysAndValues) }

// Fatal records a fatal entry (does NOT call os.Exit).
func (r *Recorder) Fatal(msg string, keysAndValues ...any) { r.record("fatal", msg, keysAndValues) }

// Entries returns a copy of all entries.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Entry(nil), r.entries...)
}

// Find returns the entries of the given level, or of every level when level is empty.
func (r *Recorder) Find(level string) []Entry {
	var out []Entry
	for _, e := range r.Entries() {
		if level == "" || e.Level == level {
			out = append(out, e)
		}
	}

	return out
}
