package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type Logger struct {
	*zerolog.Logger
}

// New creates a JSON logger writing to stdout, tagged with the service name.
func New(service string) *Logger {
	return NewWithWriter(service, os.Stdout)
}

func NewWithWriter(service string, w io.Writer) *Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	logger := zerolog.New(w).
		With().
		Timestamp().
		Str("service", service).
		Logger()

	return &Logger{&logger}
}

// NewConsole creates a human readable logger for development.
func NewConsole(service string) *Logger {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	logger := zerolog.New(output).With().Timestamp().Str("service", service).Logger()
	return &Logger{&logger}
}

// WithRequestID adds the request id for tracing
func (l *Logger) WithRequestID(requestID string) *Logger {
	logger := l.Logger.With().Str("request_id", requestID).Logger()
	return &Logger{&logger}
}

func (l *Logger) WithError(err error) *Logger {
	logger := l.Logger.With().Err(err).Logger()
	return &Logger{&logger}
}

// LogScheduleRun logs the outcome of one scheduling run
func (l *Logger) LogScheduleRun(source string, jobCount int, avgWaiting, avgTurnaround float64, totalTime int, duration time.Duration) {
	l.Info().
		Str("action", "schedule_run").
		Str("source", source).
		Int("job_count", jobCount).
		Float64("avg_waiting_time", avgWaiting).
		Float64("avg_turnaround_time", avgTurnaround).
		Int("total_time", totalTime).
		Dur("duration", duration).
		Msg("FCFS schedule computed")
}

// LogRequest logs a served http request
func (l *Logger) LogRequest(method, path string, statusCode int, duration time.Duration, err error) {
	event := l.Info()
	if err != nil {
		event = l.Error().Err(err)
	}

	event.
		Str("action", "http_request").
		Str("method", method).
		Str("path", path).
		Int("status_code", statusCode).
		Dur("duration", duration).
		Msg("Request served")
}

// SetupLogger configures the global log level
func SetupLogger(level string) {
	switch strings.ToLower(level) {
	case "trace":
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
