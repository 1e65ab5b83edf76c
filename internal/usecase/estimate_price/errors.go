package estimate_price

import "errors"

var (
	// ErrBillboardNotFound возвращается, когда щит не найден
	ErrBillboardNotFound = errors.New("estimate_price: billboard not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("estimate_price: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("estimate_price: internal error")
)
