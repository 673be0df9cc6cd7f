// Package falkorlog provides the structured logging interface used across
// the client: connection pool, schema cache and query dispatch all log
// through this interface rather than calling logrus directly.
package falkorlog

import "fmt"

// Level mirrors logrus's level ordering so a falkorlog.Level can be
// converted to logrus.Level with a plain cast.
type Level uint8

const (
	FatalLevel Level = iota + 1
	ErrorLevel
	WarnLevel
	InfoLevel
	DebugLevel
	TraceLevel
)

// Unmarshal sets l from a level name: fatal, error, warn, info, debug or trace.
func (l *Level) Unmarshal(data string) error {
	for lvl, name := range []string{FatalLevel: "fatal", ErrorLevel: "error", WarnLevel: "warn", InfoLevel: "info", DebugLevel: "debug", TraceLevel: "trace"} {
		if name != "" && name == data {
			*l = Level(lvl)

			return nil
		}
	}

	return fmt.Errorf("unknown log level %q", data)
}

const (
	KeyGraph     = "graph"
	KeyConn      = "conn_id"
	KeyComponent = "component"
)

// Config configures the base logger returned by NewBaseLogger.
type Config struct {
	Level            Level
	FullTimestamp    bool
	DisableTimestamp bool
	TimestampFormat  string
}

// BaseLogger mints Logger instances sharing one underlying backend.
type BaseLogger interface {
	NewLogger() Logger
}

// Logger is a structured, leveled logger. Every With* method returns a new
// Logger carrying the additional context; the receiver is left untouched.
type Logger interface {
	Info(msg string)
	Infof(format string, args ...any)
	Trace(msg string)
	Tracef(format string, args ...any)
	Debug(msg string)
	Debugf(format string, args ...any)
	Warn(msg string)
	Warnf(format string, args ...any)
	Error(msg string)
	Errorf(format string, args ...any)
	Fatal(msg string)
	Fatalf(format string, args ...any)

	WithField(key string, value any) Logger
	WithFields(fields map[string]any) Logger

	// WithGraph tags subsequent log lines with the graph name they concern.
	WithGraph(name string) Logger

	GetFields() map[string]any
	GetField(key string) any
}
