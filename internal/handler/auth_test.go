package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/GoArmGo/MarketApp/internal/domain"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestAuthHandler_Register(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name        string
		body        string
		registerErr error
		wantStatus  int
		wantError   string
	}{
		{
			name:       "success",
			body:       `{"name":"Alice","email":"alice@example.com","password":"pass123"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid JSON",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid request body",
		},
		{
			name:       "missing fields",
			body:       `{"name":"Alice"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Name, email, and password are required",
		},
		{
			name:        "duplicate email",
			body:        `{"name":"Alice","email":"taken@example.com","password":"pass123"}`,
			registerErr: domain.ErrDuplicateEmail,
			wantStatus:  http.StatusConflict,
			wantError:   "Email already registered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockAuthUseCase{
				registerFn: func(ctx context.Context, name, email, password string) (uuid.UUID, error) {
					if tt.registerErr != nil {
						return uuid.Nil, tt.registerErr
					}
					return userID, nil
				},
			}
			h := NewAuthHandler(uc, testLogger())

			req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Register(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d, body %s", rec.Code, tt.wantStatus, rec.Body.String())
			}

			body := decodeBody(t, rec)
			if tt.wantError != "" {
				if body["error"] != tt.wantError {
					t.Errorf("error = %q, want %q", body["error"], tt.wantError)
				}
				return
			}
			if body["message"] != "User registered successfully" {
				t.Errorf("message = %q, want success message", body["message"])
			}
			if body["user_id"] != userID.String() {
				t.Errorf("user_id = %v, want %v", body["user_id"], userID)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		loginErr   error
		wantStatus int
		wantError  string
	}{
		{
			name:       "success",
			body:       `{"email":"alice@example.com","password":"pass123"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing fields",
			body:       `{"email":"alice@example.com"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Email and password are required",
		},
		{
			name:       "invalid credentials",
			body:       `{"email":"alice@example.com","password":"wrong"}`,
			loginErr:   domain.ErrInvalidCredentials,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid credentials",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockAuthUseCase{
				loginFn: func(ctx context.Context, email, password string) (string, error) {
					if tt.loginErr != nil {
						return "", tt.loginErr
					}
					return "signed-token", nil
				},
			}
			h := NewAuthHandler(uc, testLogger())

			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Login(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d, body %s", rec.Code, tt.wantStatus, rec.Body.String())
			}

			body := decodeBody(t, rec)
			if tt.wantError != "" {
				if body["error"] != tt.wantError {
					t.Errorf("error = %q, want %q", body["error"], tt.wantError)
				}
				return
			}
			if body["token"] != "signed-token" {
				t.Errorf("token = %q, want %q", body["token"], "signed-token")
			}
			if body["message"] != "Login successful" {
				t.Errorf("message = %q, want %q", body["message"], "Login successful")
			}
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	h := NewAuthHandler(&mockAuthUseCase{}, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := decodeBody(t, rec)
	if body["message"] != "Logout successful. Token invalidation is not needed on the server side." {
		t.Errorf("unexpected message %q", body["message"])
	}
}
