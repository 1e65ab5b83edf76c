package estimate_price

import (
	"net/url"
	"strconv"

	estimatePrice "github.com/m04kA/SMC-BillboardService/internal/usecase/estimate_price"
	"github.com/m04kA/SMC-BillboardService/pkg/types"
)

// EstimatePriceResponse HTTP response model
type EstimatePriceResponse struct {
	Success        bool    `json:"success"`
	BillboardID    int64   `json:"billboardId"`
	Slot           string  `json:"slot"`
	SlotPrice      float64 `json:"slotPrice"`
	BasePrice      float64 `json:"basePrice"`
	VideoDuration  int     `json:"videoDuration"`
	Reputation     int     `json:"reputation"`
	Days           int     `json:"days"`
	EstimatedPrice float64 `json:"estimatedPrice"`
	Price          float64 `json:"price"`
}

// ToUseCaseRequest собирает запрос use case из query параметров
func ToUseCaseRequest(billboardID int64, query url.Values) (*estimatePrice.Request, error) {
	startTime, err := types.NewTimeStringFromString(query.Get("startTime"))
	if err != nil {
		return nil, err
	}

	req := &estimatePrice.Request{
		BillboardID: billboardID,
		StartTime:   startTime,
	}

	if req.VideoDuration, err = optionalInt(query, "videoDuration"); err != nil {
		return nil, err
	}
	if req.Reputation, err = optionalInt(query, "reputation"); err != nil {
		return nil, err
	}
	if req.Days, err = optionalInt(query, "days"); err != nil {
		return nil, err
	}

	return req, nil
}

func optionalInt(query url.Values, key string) (*int, error) {
	raw := query.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *estimatePrice.Response) *EstimatePriceResponse {
	return &EstimatePriceResponse{
		Success:        true,
		BillboardID:    resp.BillboardID,
		Slot:           string(resp.Slot),
		SlotPrice:      resp.SlotPrice,
		BasePrice:      resp.BasePrice,
		VideoDuration:  resp.VideoDuration,
		Reputation:     resp.Reputation,
		Days:           resp.Days,
		EstimatedPrice: resp.EstimatedPrice,
		Price:          resp.Price,
	}
}
