package payloads

// ImageCleanupPayload представляет задачу на удаление картинки объявления
// из файлового хранилища через RabbitMQ. Публикуется при удалении объявления,
// у которого была загружена картинка.
type ImageCleanupPayload struct {
	ListingID string `json:"listing_id"`
	ObjectKey string `json:"object_key"`
}
