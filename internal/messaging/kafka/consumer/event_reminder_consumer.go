package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"rikumates/internal/events"
	"rikumates/internal/todo"

	"github.com/jackc/pgx/v5/pgconn"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeEventScheduled turns scheduled-event messages into preparation
// todos due the day before the event. Redeliveries hit the unique
// source-event constraint and are skipped.
func ConsumeEventScheduled(
	ctx context.Context,
	reader *kafkago.Reader,
	todoService todo.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.event_reminder")
	log.Info("event reminder consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("event reminder consumer stopped")
				return
			}
			log.Error("fetch event scheduled message failed", zap.Error(err))
			continue
		}

		var event events.EventScheduledMessage
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode event_scheduled message failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		input := todo.ReminderInput{
			EventID:   event.EventID,
			CompanyID: event.CompanyID,
			TaskName:  fmt.Sprintf("「%s」の準備", event.Title),
			DueDate:   event.ScheduledAt.AddDate(0, 0, -1),
		}

		_, err = todoService.CreateReminder(ctx, event.UserID, input)
		if err != nil {
			if isDuplicateReminder(err) {
				log.Warn("reminder todo already exists for event, skipping",
					zap.String("event_id", event.EventID),
					zap.String("user_id", event.UserID),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			log.Error("create reminder todo failed",
				zap.String("event_id", event.EventID),
				zap.String("user_id", event.UserID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit event scheduled message failed", zap.Error(err))
			continue
		}

		log.Info("reminder todo created from event_scheduled message",
			zap.String("event_id", event.EventID),
			zap.String("user_id", event.UserID),
		)
	}
}

func isDuplicateReminder(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "uq_todo_source_event"
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_todo_source_event")
}
