package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/GoArmGo/MarketApp/internal/auth"
	"github.com/GoArmGo/MarketApp/internal/config"
	"github.com/GoArmGo/MarketApp/internal/handler"
	"github.com/GoArmGo/MarketApp/internal/usecase"
)

// runServer запускает HTTP сервер
func runServer(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	authUseCase usecase.AuthUseCase,
	listingUseCase usecase.ListingUseCase,
	tokenService *auth.TokenService,
) error {
	authHandler := handler.NewAuthHandler(authUseCase, logger)
	listingHandler := handler.NewListingHandler(listingUseCase, logger)

	r := chi.NewRouter()
	r.Use(handler.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	// Публичные маршруты
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)
	r.Post("/logout", authHandler.Logout)
	r.Get("/listings", listingHandler.ListListings)
	r.Get("/listings/{id}", listingHandler.GetListing)

	// Защищенные маршруты: требуют валидный bearer-токен
	r.Group(func(pr chi.Router) {
		pr.Use(handler.Authenticate(tokenService, logger))
		pr.Post("/listings", listingHandler.CreateListing)
		pr.Delete("/listings/{id}", listingHandler.DeleteListing)
	})

	serverAddr := fmt.Sprintf(":%s", cfg.ServerPort)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started", "addr", serverAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("ошибка при запуске сервера: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutdown signal received, stopping server")

	ctxServer, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxServer); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("server stopped gracefully")
	return nil
}
