package domain

import "errors"

// Сентинельные ошибки доменного слоя. Хранилища и usecase оборачивают их
// через fmt.Errorf("...: %w", err), обработчики сопоставляют им HTTP-статусы.
var (
	// ErrValidation — отсутствующее или некорректное поле входных данных.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound — запрошенная запись отсутствует в хранилище.
	ErrNotFound = errors.New("not found")

	// ErrForbidden — операция запрещена для данного пользователя
	// (например, удаление чужого объявления).
	ErrForbidden = errors.New("forbidden")

	// ErrDuplicateEmail — email уже занят другим пользователем.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials — неверная пара email/пароль при входе.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken — подпись токена неверна, payload поврежден
	// или срок действия истек.
	ErrInvalidToken = errors.New("invalid token")

	// ErrCorruptHash — сохраненный хеш пароля имеет неверный формат.
	ErrCorruptHash = errors.New("corrupt password hash")
)
