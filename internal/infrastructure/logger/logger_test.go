package logger_test

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/iho/fintrack/internal/infrastructure/logger"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{level: "debug", want: zerolog.DebugLevel},
		{level: "info", want: zerolog.InfoLevel},
		{level: "warn", want: zerolog.WarnLevel},
		{level: "error", want: zerolog.ErrorLevel},
		{level: "bogus", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			log := logger.New(logger.Config{Level: tt.level, Format: "json"})
			if log.GetLevel() != tt.want {
				t.Errorf("expected level %s, got %s", tt.want, log.GetLevel())
			}
		})
	}
}

func TestNew_ConsoleFormat(t *testing.T) {
	// must not panic wiring the console writer
	log := logger.New(logger.Config{Level: "info", Format: "console"})
	log.Debug().Msg("suppressed")
}
