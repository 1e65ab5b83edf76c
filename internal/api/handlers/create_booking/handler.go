package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BillboardService/internal/api/handlers"
	"github.com/m04kA/SMC-BillboardService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-BillboardService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgBillboardNotFound  = "щит не найден"
	msgInvalidBookingDate = "некорректный период бронирования"
	msgInvalidData        = "некорректные данные бронирования"
	msgPriceMismatch      = "цена не совпадает с расчётной"
	msgSlotSaturated      = "в выбранном слоте недостаточно эфирного времени"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrBillboardNotFound):
			h.logger.Warn("POST /bookings - Billboard not found: billboard_id=%d", req.BillboardID)
			handlers.RespondNotFound(w, msgBillboardNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking dates: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid data: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, createBooking.ErrPriceMismatch):
			h.logger.Warn("POST /bookings - Price mismatch: user_id=%d, billboard_id=%d, price=%.2f",
				userID, req.BillboardID, req.Price)
			handlers.RespondUnprocessable(w, msgPriceMismatch)

		case errors.Is(err, createBooking.ErrSlotSaturated):
			h.logger.Warn("POST /bookings - Slot saturated: user_id=%d, billboard_id=%d, error=%v",
				userID, req.BillboardID, err)
			handlers.RespondConflict(w, msgSlotSaturated)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, billboard_id=%d, error=%v",
				userID, req.BillboardID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, billboard_id=%d",
		result.ID, userID, req.BillboardID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
