package facades

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func TestEventsFacade_NotifyAgent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockKafkaWriter(ctrl)

	var captured kafka.Message
	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, msgs ...kafka.Message) error {
			captured = msgs[0]
			return nil
		})

	facade := NewEventsFacade(writer, nil)
	facade.NotifyAgent(context.Background(), "agent-1", "cash_in_requested", map[string]string{"ref": "CL-1"})

	assert.Equal(t, "agent-1", string(captured.Key))

	var note AgentNotification
	assert.NoError(t, json.Unmarshal(captured.Value, &note))
	assert.Equal(t, "agent-1", note.AgentID)
	assert.Equal(t, "cash_in_requested", note.EventType)
	assert.False(t, note.SentAt.IsZero())
}

func TestEventsFacade_NotifyAgent_PublishErrorSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockKafkaWriter(ctrl)
	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(assert.AnError)

	facade := NewEventsFacade(writer, nil)

	// Must not panic or propagate the error.
	facade.NotifyAgent(context.Background(), "agent-1", "cash_out_requested", nil)
}

func TestEventsFacade_LogEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockKafkaWriter(ctrl)

	var captured kafka.Message
	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, msgs ...kafka.Message) error {
			captured = msgs[0]
			return nil
		})

	facade := NewEventsFacade(nil, writer)
	facade.LogEvent(context.Background(), "user-1", "transfer_sent", "CL-2")

	var event AuditEvent
	assert.NoError(t, json.Unmarshal(captured.Value, &event))
	assert.Equal(t, "user-1", event.UserID)
	assert.Equal(t, "transfer_sent", event.EventType)
	assert.Equal(t, "CL-2", event.Details)
}

func TestEventsFacade_NilWritersDropEvents(t *testing.T) {
	facade := NewEventsFacade(nil, nil)

	// Both sides are optional; nothing to assert beyond not panicking.
	facade.NotifyAgent(context.Background(), "agent-1", "cash_in_requested", nil)
	facade.LogEvent(context.Background(), "user-1", "pin_failed", "")
}
