package eventbus

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/go-kratos/kratos/v2/log"
)

// KratosLoggerAdapter adapts a Kratos logger to Watermill's LoggerAdapter.
type KratosLoggerAdapter struct {
	logger *log.Helper
	fields watermill.LogFields
}

// NewKratosLoggerAdapter creates a new Watermill logger adapter.
func NewKratosLoggerAdapter(logger log.Logger) watermill.LoggerAdapter {
	return &KratosLoggerAdapter{
		logger: log.NewHelper(logger),
		fields: make(watermill.LogFields),
	}
}

func (l *KratosLoggerAdapter) Error(msg string, err error, fields watermill.LogFields) {
	l.logger.Log(log.LevelError, append([]interface{}{"msg", msg}, l.toKeyvals(fields, err)...)...)
}

func (l *KratosLoggerAdapter) Info(msg string, fields watermill.LogFields) {
	l.logger.Log(log.LevelInfo, append([]interface{}{"msg", msg}, l.toKeyvals(fields, nil)...)...)
}

func (l *KratosLoggerAdapter) Debug(msg string, fields watermill.LogFields) {
	l.logger.Log(log.LevelDebug, append([]interface{}{"msg", msg}, l.toKeyvals(fields, nil)...)...)
}

func (l *KratosLoggerAdapter) Trace(msg string, fields watermill.LogFields) {
	l.logger.Log(log.LevelDebug, append([]interface{}{"msg", msg}, l.toKeyvals(fields, nil)...)...)
}

func (l *KratosLoggerAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	merged := make(watermill.LogFields, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &KratosLoggerAdapter{
		logger: l.logger,
		fields: merged,
	}
}

func (l *KratosLoggerAdapter) toKeyvals(fields watermill.LogFields, err error) []interface{} {
	keyvals := make([]interface{}, 0, (len(l.fields)+len(fields))*2+2)

	for k, v := range l.fields {
		keyvals = append(keyvals, k, v)
	}
	for k, v := range fields {
		keyvals = append(keyvals, k, v)
	}
	if err != nil {
		keyvals = append(keyvals, "error", err)
	}

	return keyvals
}
