// Package logger envuelve zerolog para inyectarlo como dependencia explícita
// (el orquestador de fuentes y main lo reciben por parámetro, nunca global).
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config opciones del logger.
type Config struct {
	Env   string // development -> consola legible; cualquier otro -> JSON
	Level string // trace, debug, info, warn, error
}

// Logger logger estructurado de la aplicación.
type Logger struct {
	zl zerolog.Logger
}

// New crea el logger según el entorno. Un nivel desconocido cae a info.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	return &Logger{
		zl: zerolog.New(w).Level(level).With().Timestamp().Logger(),
	}
}

// Info evento de nivel info.
func (l *Logger) Info() *zerolog.Event { return l.zl.Info() }

// Warn evento de nivel warn (fuentes caídas, modo memoria, etc).
func (l *Logger) Warn() *zerolog.Event { return l.zl.Warn() }

// Error evento de nivel error.
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }

// Fatal evento fatal: loguea y termina el proceso.
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }
