package app

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"

	"github.com/GoArmGo/MarketApp/internal/auth"
	"github.com/GoArmGo/MarketApp/internal/config"
	"github.com/GoArmGo/MarketApp/internal/core/ports"
	"github.com/GoArmGo/MarketApp/internal/usecase"
)

type App struct {
	Config         *config.Config
	logger         *slog.Logger
	db             *sqlx.DB
	authUseCase    usecase.AuthUseCase
	listingUseCase usecase.ListingUseCase
	tokenService   *auth.TokenService
	fileStorage    usecase.FileStorage
	consumer       ports.ImageCleanupConsumer
	publisher      ports.ImageCleanupPublisher
}

func NewApp(
	cfg *config.Config,
	logger *slog.Logger,
	db *sqlx.DB,
	authUseCase usecase.AuthUseCase,
	listingUseCase usecase.ListingUseCase,
	tokenService *auth.TokenService,
	fileStorage usecase.FileStorage,
	publisher ports.ImageCleanupPublisher,
	consumer ports.ImageCleanupConsumer,
) *App {
	return &App{
		Config:         cfg,
		logger:         logger,
		db:             db,
		authUseCase:    authUseCase,
		listingUseCase: listingUseCase,
		tokenService:   tokenService,
		fileStorage:    fileStorage,
		publisher:      publisher,
		consumer:       consumer,
	}
}

// LoggerIns возвращает основной логгер приложения
func (a *App) LoggerIns() *slog.Logger {
	return a.logger
}

func (a *App) Run(ctx context.Context, mode *string) error {
	// контекст для graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.logger.Info("starting application", "mode", *mode)

	var err error

	switch *mode {
	case "server":
		err = runServer(ctx, a.Config, a.logger, a.authUseCase, a.listingUseCase, a.tokenService)

	case "worker":
		err = runWorker(ctx, a.logger, a.fileStorage, a.consumer)

	default:
		err = fmt.Errorf("неизвестный режим: %s (используйте 'server' или 'worker')", *mode)
	}

	if err != nil {
		return err
	}

	a.logger.Info("shutting down")

	// аккуратно закрываем ресурсы
	if closeErr := a.Shutdown(); closeErr != nil {
		a.logger.Error("error during shutdown", "error", closeErr)
	}

	a.logger.Info("shutdown complete")
	return nil
}

// Shutdown закрывает все ресурсы приложения
func (a *App) Shutdown() error {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			return fmt.Errorf("ошибка закрытия БД: %w", err)
		}
	}

	// если publisher/consumer имеют методы Close — вызываем их
	if closer, ok := a.publisher.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
	if closer, ok := a.consumer.(interface{ Close() error }); ok {
		_ = closer.Close()
	}

	return nil
}
