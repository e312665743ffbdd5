package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/GoArmGo/MarketApp/internal/domain"
	"github.com/GoArmGo/MarketApp/internal/usecase"
)

// AuthHandler — обработчик HTTP-запросов регистрации и входа.
type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	logger      *slog.Logger
}

// NewAuthHandler создаёт новый экземпляр AuthHandler.
func NewAuthHandler(uc usecase.AuthUseCase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: uc,
		logger:      logger,
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register — регистрирует нового пользователя.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		respondWithError(w, http.StatusBadRequest, "Name, email, and password are required", h.logger)
		return
	}

	userID, err := h.authUseCase.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail):
			respondWithError(w, http.StatusConflict, "Email already registered", h.logger)
		case errors.Is(err, domain.ErrValidation):
			respondWithError(w, http.StatusBadRequest, "Name, email, and password are required", h.logger)
		default:
			h.logger.Error("failed to register user", "error", err)
			respondWithError(w, http.StatusInternalServerError, "Error registering user", h.logger)
		}
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message": "User registered successfully",
		"user_id": userID,
	}, h.logger)
}

// Login — проверяет учетные данные и выдает bearer-токен.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	if req.Email == "" || req.Password == "" {
		respondWithError(w, http.StatusBadRequest, "Email and password are required", h.logger)
		return
	}

	token, err := h.authUseCase.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			respondWithError(w, http.StatusBadRequest, "Invalid credentials", h.logger)
			return
		}
		h.logger.Error("failed to login user", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Error logging in", h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Login successful",
		"token":   token,
	}, h.logger)
}

// Logout — токены самодостаточны и не отзываются, поэтому выход
// сводится к подтверждению: клиент просто выбрасывает токен.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Logout successful. Token invalidation is not needed on the server side.",
	}, h.logger)
}
