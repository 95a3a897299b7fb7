package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/rafabene/users-api/internal/domain/ports"
)

// ZerologLogger implementa ports.Logger usando zerolog
type ZerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger cria um novo logger JSON em stdout
func NewZerologLogger(level string) ports.Logger {
	return NewZerologLoggerWithWriter(os.Stdout, level)
}

// NewZerologLoggerWithWriter permite direcionar a saída (útil em testes)
func NewZerologLoggerWithWriter(w io.Writer, level string) ports.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	logger := zerolog.New(w).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Logger()

	return &ZerologLogger{logger: logger}
}

// ParseLevel converte o nível configurado; valores desconhecidos viram info
func ParseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *ZerologLogger) Info(msg string, args ...any) {
	l.logger.Info().Fields(args).Msg(msg)
}

func (l *ZerologLogger) Error(msg string, args ...any) {
	l.logger.Error().Fields(args).Msg(msg)
}

func (l *ZerologLogger) Debug(msg string, args ...any) {
	l.logger.Debug().Fields(args).Msg(msg)
}

func (l *ZerologLogger) Warn(msg string, args ...any) {
	l.logger.Warn().Fields(args).Msg(msg)
}

func (l *ZerologLogger) With(args ...any) ports.Logger {
	return &ZerologLogger{
		logger: l.logger.With().Fields(args).Logger(),
	}
}
