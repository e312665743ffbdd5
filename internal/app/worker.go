package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/MarketApp/internal/core/ports"
	"github.com/GoArmGo/MarketApp/internal/messaging/payloads"
	"github.com/GoArmGo/MarketApp/internal/usecase"
)

// runWorker запускает потребителя RabbitMQ и удаляет картинки
// удаленных объявлений из файлового хранилища
func runWorker(
	ctx context.Context,
	logger *slog.Logger,
	fileStorage usecase.FileStorage,
	consumer ports.ImageCleanupConsumer,
) error {
	logger.Info("worker started, waiting for image cleanup tasks")

	workerCtx, cancelWorker := context.WithCancel(ctx)
	defer cancelWorker()

	// Обработчик задач: удаляет объект из MinIO по ключу из payload
	messageHandler := func(ctx context.Context, payload payloads.ImageCleanupPayload) error {
		logger.Info("worker: processing image cleanup task",
			"listing_id", payload.ListingID,
			"object_key", payload.ObjectKey,
		)

		if err := fileStorage.DeleteFile(ctx, payload.ObjectKey); err != nil {
			logger.Error("worker: failed to delete image",
				"object_key", payload.ObjectKey,
				"error", err,
			)
			return err
		}

		logger.Info("worker: image cleanup task completed", "object_key", payload.ObjectKey)
		return nil
	}

	if err := consumer.StartConsumingImageCleanup(workerCtx, messageHandler); err != nil {
		return fmt.Errorf("ошибка при запуске потребителя RabbitMQ: %w", err)
	}

	<-ctx.Done()

	logger.Info("worker: shutdown signal received, stopping")
	cancelWorker()

	return nil
}
