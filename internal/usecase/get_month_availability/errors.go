package get_month_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_month_availability: invalid input data")

	// ErrMonthNotVisible возвращается, когда запрошенный месяц вне окна видимости
	// (прошедший месяц, либо следующий до наступления порогового числа)
	ErrMonthNotVisible = errors.New("get_month_availability: month is not visible yet")

	// ErrInternal возвращается при внутренних ошибках usecase
	// В частности, при отказе загрузки расписания: закрытый и неизвестный день
	// нельзя путать, поэтому сетка месяца в этом случае не строится вовсе
	ErrInternal = errors.New("get_month_availability: internal error")
)
