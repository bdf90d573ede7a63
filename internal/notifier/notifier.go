package notifier

import "github.com/rs/zerolog"

// Notifier is the console's toast sink. Every asynchronous failure ends
// here rather than escaping the screen that caused it.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Log writes notifications through zerolog.
type Log struct {
	log zerolog.Logger
}

func NewLog(log zerolog.Logger) *Log {
	return &Log{log: log}
}

func (l *Log) Success(msg string) {
	l.log.Info().Msg(msg)
}

func (l *Log) Error(msg string) {
	l.log.Error().Msg(msg)
}

// Recorder captures notifications for assertions in tests.
type Recorder struct {
	Successes []string
	Errors    []string
}

func (r *Recorder) Success(msg string) {
	r.Successes = append(r.Successes, msg)
}

func (r *Recorder) Error(msg string) {
	r.Errors = append(r.Errors, msg)
}
