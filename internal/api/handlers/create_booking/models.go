package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BillboardService/internal/domain"
	createBooking "github.com/m04kA/SMC-BillboardService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-BillboardService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	BillboardID   int64   `json:"billboardId"`
	StartDate     string  `json:"startDate"` // "2024-06-01"
	EndDate       string  `json:"endDate"`   // включительно
	StartTime     string  `json:"startTime"` // "08:00"
	EndTime       string  `json:"endTime,omitempty"`
	ContentType   string  `json:"contentType"`
	VideoDuration *int    `json:"videoDuration,omitempty"`
	Reputation    *int    `json:"reputation,omitempty"`
	Price         float64 `json:"price"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	BillboardID   int64   `json:"billboardId"`
	UserID        int64   `json:"userId"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	ContentType   string  `json:"contentType"`
	Slot          string  `json:"slot"`
	VideoDuration int     `json:"videoDuration"`
	Reputation    int     `json:"reputation"`
	Price         float64 `json:"price"`
	ServerPrice   float64 `json:"serverPrice"`
	PriceMismatch bool    `json:"priceMismatch"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// errInvalidTime ошибка разбора времени, отличается от ошибки разбора даты
var errInvalidTime = types.ErrInvalidFormat

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, fmt.Errorf("startDate: %w", err)
	}

	endDate := startDate
	if r.EndDate != "" {
		endDate, err = time.Parse(domain.DateFormat, r.EndDate)
		if err != nil {
			return nil, fmt.Errorf("endDate: %w", err)
		}
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("startTime: %w", err)
	}

	var endTime types.TimeString
	if r.EndTime != "" {
		endTime, err = types.NewTimeStringFromString(r.EndTime)
		if err != nil {
			return nil, fmt.Errorf("endTime: %w", err)
		}
	}

	return &createBooking.Request{
		UserID:        userID,
		BillboardID:   r.BillboardID,
		StartDate:     startDate,
		EndDate:       endDate,
		StartTime:     startTime,
		EndTime:       endTime,
		ContentType:   domain.ContentType(r.ContentType),
		VideoDuration: r.VideoDuration,
		Reputation:    r.Reputation,
		Price:         r.Price,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		BillboardID:   resp.BillboardID,
		UserID:        resp.UserID,
		StartDate:     resp.StartDate.Format(domain.DateFormat),
		EndDate:       resp.EndDate.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		EndTime:       resp.EndTime.String(),
		ContentType:   resp.ContentType,
		Slot:          string(resp.Slot),
		VideoDuration: resp.VideoDuration,
		Reputation:    resp.Reputation,
		Price:         resp.Price,
		ServerPrice:   resp.ServerPrice,
		PriceMismatch: resp.PriceMismatch,
		Status:        resp.Status,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
