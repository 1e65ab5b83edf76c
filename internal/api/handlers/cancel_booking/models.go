package cancel_booking

import (
	"github.com/m04kA/SMC-BillboardService/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest(userID int64, isAdmin bool) *models.CancelBookingRequest {
	var reason *string
	if r.CancellationReason != nil && *r.CancellationReason != "" {
		reason = r.CancellationReason
	}

	return &models.CancelBookingRequest{
		UserID:             userID,
		IsAdmin:            isAdmin,
		CancellationReason: reason,
	}
}
