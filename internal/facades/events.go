package facades

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/tmuriuki/cashlink/internal/logger"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AgentNotification is the payload published when an agent must act on a
// pending transaction.
type AgentNotification struct {
	AgentID   string    `json:"agent_id"`
	EventType string    `json:"event_type"`
	Payload   any       `json:"payload,omitempty"`
	SentAt    time.Time `json:"sent_at"`
}

// AuditEvent is the payload published to the security audit sink.
type AuditEvent struct {
	UserID    string    `json:"user_id"`
	EventType string    `json:"event_type"`
	Details   string    `json:"details,omitempty"`
	LoggedAt  time.Time `json:"logged_at"`
}

// EventsFacade publishes agent notifications and audit events to Kafka.
// Publishing is best-effort: failures are logged and never propagated, so
// they cannot affect the outcome of the surrounding operation.
type EventsFacade struct {
	notifyWriter KafkaWriter
	auditWriter  KafkaWriter
}

// NewEventsFacade creates a facade over the notification and audit topics.
// Either writer may be nil, in which case the corresponding events are dropped.
func NewEventsFacade(notifyWriter, auditWriter KafkaWriter) *EventsFacade {
	return &EventsFacade{
		notifyWriter: notifyWriter,
		auditWriter:  auditWriter,
	}
}

// NotifyAgent publishes a notification for the agent's device to pick up.
func (f *EventsFacade) NotifyAgent(ctx context.Context, agentID, eventType string, payload any) {
	if f.notifyWriter == nil {
		logger.Log.Warnw("notification writer not configured, skipping", "agent_id", agentID, "event", eventType)
		return
	}

	data, err := json.Marshal(AgentNotification{
		AgentID:   agentID,
		EventType: eventType,
		Payload:   payload,
		SentAt:    time.Now().UTC(),
	})
	if err != nil {
		logger.Log.Errorw("failed to marshal agent notification", "agent_id", agentID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(agentID),
		Value: data,
	}

	if err := f.notifyWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish agent notification", "agent_id", agentID, "event", eventType, "error", err)
	} else {
		logger.Log.Infow("agent notification published", "agent_id", agentID, "event", eventType)
	}
}

// LogEvent publishes an entry to the security audit sink.
func (f *EventsFacade) LogEvent(ctx context.Context, userID, eventType, details string) {
	if f.auditWriter == nil {
		return
	}

	data, err := json.Marshal(AuditEvent{
		UserID:    userID,
		EventType: eventType,
		Details:   details,
		LoggedAt:  time.Now().UTC(),
	})
	if err != nil {
		logger.Log.Errorw("failed to marshal audit event", "user_id", userID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(userID),
		Value: data,
	}

	if err := f.auditWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish audit event", "user_id", userID, "event", eventType, "error", err)
	}
}
