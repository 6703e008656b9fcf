// Package notification is the sink the core reports user-facing outcomes
// through. The core only picks which condition fired; how a notice is
// presented (toast, terminal line, log) belongs to the implementation.
package notification

import "go.uber.org/zap"

// Severity classifies a notice for presentation.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Notifier receives user-facing notices.
type Notifier interface {
	Notify(title, message string, severity Severity)
}

// ZapNotifier writes notices to a zap logger. The CLI uses it in place of
// the dashboard's toast layer.
type ZapNotifier struct {
	logger *zap.Logger
}

func NewZapNotifier(logger *zap.Logger) *ZapNotifier {
	return &ZapNotifier{logger: logger}
}

func (n *ZapNotifier) Notify(title, message string, severity Severity) {
	fields := []zap.Field{
		zap.String("title", title),
		zap.String("severity", string(severity)),
	}
	switch severity {
	case SeverityError:
		n.logger.Warn(message, fields...)
	default:
		n.logger.Info(message, fields...)
	}
}
