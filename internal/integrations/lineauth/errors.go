package lineauth

import "errors"

var (
	// ErrTokenInvalid возвращается, когда access token не прошел проверку
	ErrTokenInvalid = errors.New("lineauth: access token is invalid or expired")

	// ErrInvalidResponse возвращается при неожиданном ответе LINE API
	ErrInvalidResponse = errors.New("lineauth: invalid response")

	// ErrInternal возвращается при сетевых и прочих внутренних ошибках
	ErrInternal = errors.New("lineauth: internal error")
)
