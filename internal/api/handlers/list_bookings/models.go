package list_bookings

import (
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-BillboardService/internal/service/bookings/models"
)

// ToServiceRequest создает запрос сервиса из query параметров
func ToServiceRequest(query url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{}

	if v := query.Get("billboardId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		req.BillboardID = &id
	}

	if v := query.Get("userId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		req.UserID = &id
	}

	if v := query.Get("status"); v != "" {
		req.Status = &v
	}

	if v := query.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		req.Limit = limit
	}

	if v := query.Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		req.Offset = offset
	}

	return req, nil
}
