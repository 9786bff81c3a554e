package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrUserBlacklisted возвращается для клиента из черного списка
	ErrUserBlacklisted = errors.New("create_booking: user is blacklisted")

	// ErrInvalidDate возвращается при дате бронирования в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата вне окна видимости месяцев
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrStudioClosed возвращается, когда на дату не сконфигурировано ни одного слота
	ErrStudioClosed = errors.New("create_booking: studio is closed on this date")

	// ErrInvalidTimeSlot возвращается, когда время не входит в расписание даты
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrTooLateToBook возвращается при нарушении lead-time cutoff
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrSlotNotAvailable возвращается, когда слот уже занят другим бронированием
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrCustomerWrite возвращается при отказе записи клиента
	// Бронирование при этом не создается
	ErrCustomerWrite = errors.New("create_booking: failed to write customer")

	// ErrBookingWrite возвращается при отказе записи бронирования
	ErrBookingWrite = errors.New("create_booking: failed to write booking")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
