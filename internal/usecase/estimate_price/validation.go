package estimate_price

import (
	"fmt"

	"github.com/m04kA/SMC-BillboardService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Повторы и дни не проверяются: они приводятся к допустимому диапазону.
func validateRequest(req *Request) error {
	if req.BillboardID <= 0 {
		return fmt.Errorf("%w: billboardID must be positive", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime %q", ErrInvalidInput, req.StartTime)
	}

	if req.VideoDuration != nil && (*req.VideoDuration <= 0 || *req.VideoDuration > domain.MaxVideoDuration) {
		return fmt.Errorf("%w: videoDuration must be in 1..%d", ErrInvalidInput, domain.MaxVideoDuration)
	}

	return nil
}
