package config

import "go.uber.org/zap"

// NewLogger returns a JSON production logger, or a console logger for any
// env other than "production".
func NewLogger(env, service string) *zap.SugaredLogger {
	var logger *zap.Logger
	if env == "production" {
		logger = zap.Must(zap.NewProduction())
	} else {
		logger = zap.Must(zap.NewDevelopment())
	}
	return logger.Sugar().With("service", service)
}
