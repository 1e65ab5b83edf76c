package billboards

import "errors"

var (
	// ErrBillboardNotFound возвращается, когда щит не найден
	ErrBillboardNotFound = errors.New("billboard not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец щита
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
