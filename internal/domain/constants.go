package domain

// Default configuration values
const (
	// DefaultLeadHours минимальное время до слота, за которое можно бронировать
	DefaultLeadHours = 48

	// DefaultNextMonthVisibleFromDay с какого числа текущего месяца открывается
	// бронирование на следующий месяц
	DefaultNextMonthVisibleFromDay = 15
)

// Business validation constants
const (
	MaxNameLength  = 100
	MaxPhoneLength = 32
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses статусы бронирований, не занимающие слот
// Используется при подсчете занятых слотов
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses статусы бронирований, занимающих слот
var ActiveStatuses = []BookingStatus{
	StatusConfirmed,
	StatusCompleted,
}
