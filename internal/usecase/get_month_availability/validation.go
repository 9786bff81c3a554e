package get_month_availability

import (
	"fmt"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Year < 2000 || req.Year > 2100 {
		return fmt.Errorf("%w: year must be within 2000..2100", ErrInvalidInput)
	}

	if req.Month < time.January || req.Month > time.December {
		return fmt.Errorf("%w: month must be within 1..12", ErrInvalidInput)
	}

	return nil
}
