package di

import (
	"fmt"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/GoArmGo/MarketApp/internal/adapter/storage/minio"
	"github.com/GoArmGo/MarketApp/internal/app"
	"github.com/GoArmGo/MarketApp/internal/auth"
	"github.com/GoArmGo/MarketApp/internal/config"
	"github.com/GoArmGo/MarketApp/internal/database/client"
	"github.com/GoArmGo/MarketApp/internal/database/storage"
	"github.com/GoArmGo/MarketApp/internal/logger"
	"github.com/GoArmGo/MarketApp/internal/rabbitmq"
	"github.com/GoArmGo/MarketApp/internal/usecase"
)

// BuildApp инициализирует все зависимости и возвращает готовый объект App.
func BuildApp() (*app.App, error) {
	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogCfg := logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	}
	slogger := logger.NewSlog(slogCfg)

	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	// 2. Инициализация PostgreSQL клиента (sqlx + миграции)
	dbClient, err := client.NewClient(cfg, slogger)
	if err != nil {
		return nil, err
	}

	// 3. GORM-подключение для хранилища пользователей.
	// TranslateError нужен, чтобы нарушение уникального индекса email
	// превращалось в gorm.ErrDuplicatedKey.
	gormDB, err := gorm.Open(gormpostgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия GORM-соединения с БД: %w", err)
	}

	// 4. Инициализация хранилищ
	listingStorage := storage.NewListingStorage(dbClient.DB, slogger)
	userStorage := storage.NewGormUserStorage(gormDB, slogger)

	// 5. Инициализация файлового хранилища (S3 / MinIO)
	fileStorage, err := minio.NewMinioClient(cfg, slogger)
	if err != nil {
		return nil, err
	}

	// 6. Инициализация RabbitMQ клиента (publisher и consumer — один клиент)
	rabbitMQClient, err := rabbitmq.NewClient(cfg, slogger)
	if err != nil {
		return nil, err
	}

	// 7. Сервисы аутентификации
	passwordHasher := auth.NewPasswordHasher(0)
	tokenService := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	// 8. Инициализация бизнес-логики (usecases)
	authUseCase := usecase.NewAuthUseCase(userStorage, passwordHasher, tokenService, slogger)
	listingUseCase := usecase.NewListingUseCase(listingStorage, fileStorage, rabbitMQClient, slogger)

	// 9. Сборка итогового приложения
	application := app.NewApp(
		cfg,
		slogger,
		dbClient.DB,
		authUseCase,
		listingUseCase,
		tokenService,
		fileStorage,
		rabbitMQClient,
		rabbitMQClient,
	)

	slogger.Info("all dependencies initialized")
	return application, nil
}
