package update_billboard_pricing

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BillboardService/internal/api/handlers"
	"github.com/m04kA/SMC-BillboardService/internal/api/middleware"
	"github.com/m04kA/SMC-BillboardService/internal/service/billboards"
)

const (
	msgInvalidBillboardID = "некорректный ID щита"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "щит не найден"
	msgForbidden          = "доступ запрещен"
	msgInvalidData        = "цены слотов должны быть положительными"
)

type Handler struct {
	service BillboardService
	logger  Logger
}

func NewHandler(service BillboardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/billboards/{billboardId}/pricing
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	billboardID, err := strconv.ParseInt(mux.Vars(r)["billboardId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /billboards/{id}/pricing - Invalid billboard ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBillboardID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /billboards/{id}/pricing - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdatePricingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /billboards/{id}/pricing - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Сервис сам проверит, что пользователь владелец щита
	result, err := h.service.UpdatePricing(r.Context(), billboardID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, billboards.ErrBillboardNotFound):
			h.logger.Warn("PUT /billboards/{id}/pricing - Billboard not found: billboard_id=%d", billboardID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, billboards.ErrAccessDenied):
			h.logger.Warn("PUT /billboards/{id}/pricing - Access denied: billboard_id=%d, user_id=%d",
				billboardID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, billboards.ErrInvalidInput):
			h.logger.Warn("PUT /billboards/{id}/pricing - Invalid data: billboard_id=%d, error=%v", billboardID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /billboards/{id}/pricing - Failed to update pricing: billboard_id=%d, error=%v",
				billboardID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /billboards/{id}/pricing - Pricing updated successfully: billboard_id=%d, user_id=%d",
		billboardID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
