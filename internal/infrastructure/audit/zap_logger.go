package audit

import (
	"context"

	"go.uber.org/zap"

	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/domain"
)

// ZapAuditLogger implements domain.AuditLogger on top of a structured logger.
type ZapAuditLogger struct {
	logger *zap.Logger
}

// NewZapAuditLogger creates a new audit logger
func NewZapAuditLogger(logger *zap.Logger) domain.AuditLogger {
	return &ZapAuditLogger{logger: logger.Named("audit")}
}

// LogEvent implements domain.AuditLogger
func (l *ZapAuditLogger) LogEvent(_ context.Context, event *domain.AuditEvent) {
	if event == nil {
		return
	}

	fields := []zap.Field{
		zap.String("event_type", string(event.EventType)),
		zap.Time("timestamp", event.Timestamp),
		zap.Bool("success", event.Success),
	}
	if event.ActorID != 0 {
		fields = append(fields, zap.Uint("actor_id", event.ActorID))
	}
	if event.Email != "" {
		fields = append(fields, zap.String("email", event.Email))
	}
	if event.ResourceType != "" {
		fields = append(fields,
			zap.String("resource_type", event.ResourceType),
			zap.String("resource_id", event.ResourceID),
		)
	}
	if len(event.Metadata) > 0 {
		fields = append(fields, zap.Any("metadata", event.Metadata))
	}

	if event.Success {
		l.logger.Info("audit event", fields...)
		return
	}
	fields = append(fields, zap.String("error", event.ErrorMsg))
	l.logger.Warn("audit event", fields...)
}
