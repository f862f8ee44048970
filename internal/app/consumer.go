package app

import (
	"context"

	"go-groupware/internal/events"
	"go-groupware/internal/messaging/kafka/consumer"
	"go-groupware/internal/notify"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const lifecycleGroupID = "go-groupware-api-notify"

// startLifecycleConsumer berjalan di proses API karena publish butuh hub WebSocket yang sama.
func startLifecycleConsumer(ctx context.Context, broker string, publisher notify.Publisher, logger *zap.Logger) {
	log := logger.Named("app.consumer")

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{broker},
		Topic:          events.EmployeeLifecycleTopic,
		GroupID:        lifecycleGroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.LastOffset,
	})

	go func() {
		defer func() {
			if err := reader.Close(); err != nil {
				log.Warn("close kafka reader failed", zap.Error(err))
			}
		}()
		consumer.ConsumeEmployeeLifecycle(ctx, reader, publisher, logger)
	}()

	log.Info("employee lifecycle consumer scheduled",
		zap.String("broker", broker),
		zap.String("topic", events.EmployeeLifecycleTopic),
	)
}
