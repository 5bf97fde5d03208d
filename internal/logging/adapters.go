package logging

import (
	"time"

	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"
)

// gormWriter satisfies gorm's logger.Writer. gorm only calls it for
// warnings, errors and slow queries at the level configured below.
type gormWriter struct {
	log zerolog.Logger
}

func (w gormWriter) Printf(format string, args ...any) {
	w.log.Warn().Msgf(format, args...)
}

// NewGormLogger routes gorm's SQL diagnostics through zerolog.
func NewGormLogger(log zerolog.Logger) gormlogger.Interface {
	return gormlogger.New(gormWriter{log: Component(log, "gorm")}, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// CronLogger implements cron.Logger on top of zerolog.
type CronLogger struct {
	log zerolog.Logger
}

func NewCronLogger(log zerolog.Logger) CronLogger {
	return CronLogger{log: Component(log, "cron")}
}

func (l CronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l CronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}

// RestyLogger implements resty.Logger on top of zerolog.
type RestyLogger struct {
	log zerolog.Logger
}

func NewRestyLogger(log zerolog.Logger) RestyLogger {
	return RestyLogger{log: Component(log, "resty")}
}

func (l RestyLogger) Errorf(format string, v ...any) {
	l.log.Error().Msgf(format, v...)
}

func (l RestyLogger) Warnf(format string, v ...any) {
	l.log.Warn().Msgf(format, v...)
}

func (l RestyLogger) Debugf(format string, v ...any) {
	l.log.Debug().Msgf(format, v...)
}
