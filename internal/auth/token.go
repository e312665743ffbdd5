package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/GoArmGo/MarketApp/internal/domain"
)

// Claims представляет identity-полезную нагрузку bearer-токена.
// Claims не хранятся на сервере: токен самодостаточен и проверяется
// только подписью и сроком действия.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}

// TokenService выпускает и проверяет подписанные токены с ограниченным
// сроком действия. Секрет и TTL передаются явно при создании,
// глобального состояния нет.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService создает новый TokenService.
// ttl <= 0 означает срок действия 1 час.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue выпускает токен для пользователя. Срок действия фиксируется
// в момент выпуска.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("ошибка при подписании токена: %w", err)
	}
	return signed, nil
}

// Verify проверяет подпись и срок действия токена.
// Любая проблема (неверная подпись, поврежденный payload, истекший срок)
// возвращается как domain.ErrInvalidToken. Списка отзыва нет:
// валидная неистекшая подпись принимается всегда.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
