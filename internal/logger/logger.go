package logger

import "go.uber.org/zap"

// New returns a development logger for env "development" and a production
// logger otherwise.
func New(env string, debug bool) *zap.Logger {
	var (
		log *zap.Logger
		err error
	)
	if env == "development" || debug {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return log
}
