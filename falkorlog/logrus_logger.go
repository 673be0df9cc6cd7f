package falkorlog

import (
	"github.com/sirupsen/logrus"
)

// logrusAdapter implements Logger on top of a logrus.Entry. Every With*
// call returns a fresh adapter wrapping the entry logrus itself returns,
// so a Logger value can be shared across goroutines once handed out.
type logrusAdapter struct {
	entry *logrus.Entry
}

type baseLogrus struct {
	logger *logrus.Logger
}

// NewBaseLogger builds a logrus-backed BaseLogger. A nil config uses
// debug-level text output with timestamps disabled, matching local
// development defaults.
func NewBaseLogger(config *Config) BaseLogger {
	if config == nil {
		config = &Config{
			Level:            DebugLevel,
			FullTimestamp:    false,
			TimestampFormat:  "2006-01-02 15:04:05",
			DisableTimestamp: true,
		}
	}

	base := logrus.New()
	base.SetLevel(logrus.Level(config.Level))
	base.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:    config.FullTimestamp,
		TimestampFormat:  config.TimestampFormat,
		DisableTimestamp: config.DisableTimestamp,
	})

	return &baseLogrus{logger: base}
}

func (b *baseLogrus) NewLogger() Logger {
	return &logrusAdapter{entry: logrus.NewEntry(b.logger)}
}

func (l *logrusAdapter) Info(msg string)                  { l.entry.Info(msg) }
func (l *logrusAdapter) Infof(format string, args ...any)  { l.entry.Infof(format, args...) }
func (l *logrusAdapter) Trace(msg string)                  { l.entry.Trace(msg) }
func (l *logrusAdapter) Tracef(format string, args ...any) { l.entry.Tracef(format, args...) }
func (l *logrusAdapter) Debug(msg string)                  { l.entry.Debug(msg) }
func (l *logrusAdapter) Debugf(format string, args ...any) { l.entry.Debugf(format, args...) }
func (l *logrusAdapter) Warn(msg string)                   { l.entry.Warn(msg) }
func (l *logrusAdapter) Warnf(format string, args ...any)  { l.entry.Warnf(format, args...) }
func (l *logrusAdapter) Error(msg string)                  { l.entry.Error(msg) }
func (l *logrusAdapter) Errorf(format string, args ...any) { l.entry.Errorf(format, args...) }
func (l *logrusAdapter) Fatal(msg string)                  { l.entry.Fatal(msg) }
func (l *logrusAdapter) Fatalf(format string, args ...any) { l.entry.Fatalf(format, args...) }

func (l *logrusAdapter) WithField(key string, value any) Logger {
	return &logrusAdapter{entry: l.entry.WithField(key, value)}
}

func (l *logrusAdapter) WithFields(fields map[string]any) Logger {
	return &logrusAdapter{entry: l.entry.WithFields(fields)}
}

func (l *logrusAdapter) WithGraph(name string) Logger {
	return &logrusAdapter{entry: l.entry.WithField(KeyGraph, name)}
}

func (l *logrusAdapter) GetFields() map[string]any {
	return l.entry.Data
}

func (l *logrusAdapter) GetField(key string) any {
	val, ok := l.entry.Data[key]
	if !ok {
		return nil
	}

	return val
}
