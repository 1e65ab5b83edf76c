package repair_prices

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных параметрах запуска
	ErrInvalidInput = errors.New("repair_prices: invalid input data")

	// ErrLockLost возвращается, если блокировку запуска не удалось продлить
	ErrLockLost = errors.New("repair_prices: run lock lost")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("repair_prices: internal error")
)
