package create_booking

import "errors"

var (
	// ErrBillboardNotFound возвращается, когда щит не найден
	ErrBillboardNotFound = errors.New("create_booking: billboard not found")

	// ErrInvalidDate возвращается при некорректном периоде бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking dates")

	// ErrPriceMismatch возвращается в режиме enforce, если цена клиента не совпала с серверной
	ErrPriceMismatch = errors.New("create_booking: client price does not match server price")

	// ErrSlotSaturated возвращается, когда в слоте не хватает эфирного времени
	ErrSlotSaturated = errors.New("create_booking: slot capacity exceeded")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
