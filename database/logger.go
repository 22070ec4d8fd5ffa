package database

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// slowQueryThreshold marks queries worth flagging in an offline batch run.
const slowQueryThreshold = 500 * time.Millisecond

// GormLogger routes GORM's trace output through logrus so query failures
// and slow statements land in the same structured stream as the
// simulation events.
type GormLogger struct {
	level gormlogger.LogLevel
}

// NewGormLogger creates a logger at Warn level; queries are only surfaced
// when they fail or run slow.
func NewGormLogger() *GormLogger {
	return &GormLogger{level: gormlogger.Warn}
}

// LogMode implements gorm logger.Interface
func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	return &GormLogger{level: level}
}

// Info implements gorm logger.Interface
func (l *GormLogger) Info(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Info {
		logrus.Infof(msg, args...)
	}
}

// Warn implements gorm logger.Interface
func (l *GormLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Warn {
		logrus.Warnf(msg, args...)
	}
}

// Error implements gorm logger.Interface
func (l *GormLogger) Error(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Error {
		logrus.Errorf(msg, args...)
	}
}

// Trace implements gorm logger.Interface
func (l *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		logrus.WithFields(logrus.Fields{
			"sql":      sql,
			"rows":     rows,
			"duration": elapsed,
		}).WithError(err).Error("query_failed")
	case elapsed > slowQueryThreshold:
		sql, rows := fc()
		logrus.WithFields(logrus.Fields{
			"sql":      sql,
			"rows":     rows,
			"duration": elapsed,
		}).Warn("slow_query")
	}
}
