package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/desafio/car-users-api/internal/logger"
	"github.com/desafio/car-users-api/internal/models"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// EventWriter defines a Kafka writer abstraction.
type EventWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// publishOwnershipEvent publishes an ownership change to Kafka. Publishing
// is best effort: failures are logged and never fail the request.
func publishOwnershipEvent(ctx context.Context, w EventWriter, operation string, userID *int64, carID int64, licensePlate string) {
	if w == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "operation", operation)
		return
	}

	ev := models.OwnershipEvent{
		EventID:      uuid.NewString(),
		Timestamp:    time.Now().Unix(),
		Operation:    operation,
		UserID:       userID,
		CarID:        carID,
		LicensePlate: licensePlate,
	}

	data, err := json.Marshal(ev)
	if err != nil {
		logger.Log.Errorw("failed to marshal ownership event", "event_id", ev.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(ev.EventID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish ownership event", "event_id", ev.EventID, "operation", operation, "error", err)
	} else {
		logger.Log.Infow("ownership event published", "event_id", ev.EventID, "operation", operation, "car_id", carID)
	}
}
