package logger

import (
	"go.uber.org/zap"
)

// New builds a zap logger appropriate for the given environment.
// Production mode gets JSON output at info level, everything else a
// human-readable development logger.
func New(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
