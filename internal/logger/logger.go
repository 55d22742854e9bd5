// Package logger отдаёт настроенный zerolog-логгер.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New возвращает логгер с меткой сервиса и таймстампами.
func New(serviceName string) zerolog.Logger {
	return zerolog.New(os.Stdout).With().
		Str("service", serviceName).
		Timestamp().
		Logger()
}
