package ports

import (
	"context"

	"github.com/GoArmGo/MarketApp/internal/messaging/payloads"
)

// ImageCleanupPublisher определяет методы для публикации задач на удаление
// картинок объявлений. Этот интерфейс используется usecase-слоем при
// удалении объявления.
type ImageCleanupPublisher interface {
	PublishImageCleanup(ctx context.Context, payload payloads.ImageCleanupPayload) error
}

// ImageCleanupConsumer определяет методы для потребления задач на удаление
// картинок, используется воркером для получения задач из очереди
type ImageCleanupConsumer interface {
	// StartConsumingImageCleanup начинает прослушивание очереди,
	// принимает функцию-обработчик, которая будет вызываться для каждого
	// полученного сообщения
	StartConsumingImageCleanup(ctx context.Context, handler func(context.Context, payloads.ImageCleanupPayload) error) error
}
