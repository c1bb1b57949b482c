package suggest_slots

import (
	"fmt"

	"github.com/roltrader/autoperks/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.FromDate.IsZero() {
		return fmt.Errorf("%w: fromDate is required", ErrInvalidInput)
	}

	if req.MaxSuggestions < 0 {
		return fmt.Errorf("%w: maxSuggestions cannot be negative", ErrInvalidInput)
	}

	return nil
}

// resolveMaxSuggestions возвращает лимит предложений с учетом значения по умолчанию
func resolveMaxSuggestions(requested int) int {
	if requested <= 0 {
		return domain.DefaultMaxSuggestions
	}
	return requested
}
