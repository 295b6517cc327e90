package trace

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Zap returns an observer that writes msg with the observed value at the given level.
func Zap[T any](logger *zap.Logger, msg string, level zapcore.Level) func(T) {
	return func(v T) {
		if ce := logger.Check(level, msg); ce != nil {
			ce.Write(zap.Any("value", v))
		}
	}
}

// ZapErr returns an observer for failures that logs err at error level.
func ZapErr[E error](logger *zap.Logger, msg string) func(E) {
	return func(err E) {
		logger.Error(msg, zap.Error(err))
	}
}

// Logrus returns an observer that writes msg at info level with the observed value as a field.
func Logrus[T any](logger logrus.FieldLogger, msg string) func(T) {
	return func(v T) {
		logger.WithField("value", v).Info(msg)
	}
}

// LogrusErr returns an observer for failures that logs err at error level.
func LogrusErr[E error](logger logrus.FieldLogger, msg string) func(E) {
	return func(err E) {
		logger.WithError(err).Error(msg)
	}
}
