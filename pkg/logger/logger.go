package logger

import (
	"go.uber.org/zap"
)

// New returns the application logger. APP_ENV=development switches to the
// human-readable console encoder.
func New(env string) *zap.Logger {
	if env == "development" {
		return zap.Must(zap.NewDevelopment())
	}
	return zap.Must(zap.NewProduction())
}
