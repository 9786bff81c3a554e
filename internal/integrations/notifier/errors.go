package notifier

import "errors"

var (
	// ErrNotConfigured возвращается, когда URL webhook не задан
	ErrNotConfigured = errors.New("notifier: webhook url is not configured")

	// ErrDeliveryFailed возвращается, когда webhook не принял уведомление
	// Вызывающий код только логирует эту ошибку - доставка best effort
	ErrDeliveryFailed = errors.New("notifier: delivery failed")
)
