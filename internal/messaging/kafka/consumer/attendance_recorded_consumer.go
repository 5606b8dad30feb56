package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-presensi/internal/events"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// dailyStatusKey is incremented once per recorded attendance event so the
// ops dashboard can show same-day headcounts without touching postgres.
func dailyStatusKey(date, status string) string {
	return fmt.Sprintf("presensi:daily:%s:%s", date, status)
}

const dailyCounterTTL = 48 * time.Hour

func ConsumeAttendanceRecorded(
	ctx context.Context,
	reader *kafkago.Reader,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.attendance_recorded")
	log.Info("attendance recorded consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("attendance recorded consumer stopped")
				return
			}
			log.Error("fetch attendance message failed", zap.Error(err))
			continue
		}

		var event events.AttendanceRecordedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode attendance_recorded event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		// Clock-outs close an existing record; only record-creating events
		// count towards the daily totals.
		if event.EventType != events.AttendanceEventClockOut {
			key := dailyStatusKey(event.Date, event.Status)
			if err := rdb.Incr(ctx, key).Err(); err != nil {
				log.Error("increment daily counter failed",
					zap.String("key", key),
					zap.Error(err),
				)
				continue
			}
			_ = rdb.Expire(ctx, key, dailyCounterTTL).Err()
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit attendance message failed", zap.Error(err))
			continue
		}

		log.Info("attendance event processed",
			zap.String("event_type", event.EventType),
			zap.String("record_id", event.RecordID),
			zap.String("user_id", event.UserID),
		)
	}
}
