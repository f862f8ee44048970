package consumer

import (
	"context"
	"encoding/json"
	"time"

	"go-groupware/internal/events"
	"go-groupware/internal/notify"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Jeda retry FetchMessage, dobel tiap gagal berturut-turut.
const (
	fetchRetryMin = 500 * time.Millisecond
	fetchRetryMax = 30 * time.Second
)

// MessageReader dipenuhi oleh *kafkago.Reader (consumer group).
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ConsumeEmployeeLifecycle membaca topic lifecycle dan mengumumkan karyawan baru di /public.
// Notifikasi best-effort: message tetap di-commit walau publish gagal.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader MessageReader,
	publisher notify.Publisher,
	logger *zap.Logger,
) {
	if logger == nil {
		logger = zap.L()
	}
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	retry := fetchRetryMin
	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed",
				zap.Duration("retry_in", retry),
				zap.Error(err),
			)
			select {
			case <-ctx.Done():
				log.Info("employee lifecycle consumer stopped")
				return
			case <-time.After(retry):
			}
			retry = min(retry*2, fetchRetryMax)
			continue
		}
		retry = fetchRetryMin

		handleMessage(ctx, msg, publisher, log)

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
		}
	}
}

func handleMessage(ctx context.Context, msg kafkago.Message, publisher notify.Publisher, log *zap.Logger) {
	var event events.EmployeeRegistered
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode employee lifecycle event failed",
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		return
	}

	if event.EventType != events.EmployeeRegisteredEvent {
		log.Debug("skip employee lifecycle event", zap.String("event_type", event.EventType))
		return
	}

	if err := publisher.Publish(ctx, notify.PublicChannel, notify.NewColleague(event.Name)); err != nil {
		log.Warn("new colleague notification failed",
			zap.String("employee_id", event.EmployeeID),
			zap.Error(err),
		)
		return
	}

	log.Info("new colleague announced",
		zap.String("employee_id", event.EmployeeID),
		zap.String("request_id", event.RequestID),
	)
}
