package domain

import "errors"

var (
	// ErrInvalidStatus возвращается при неизвестном статусе бронирования
	ErrInvalidStatus = errors.New("domain: invalid booking status")

	// ErrInvalidCategory возвращается при неизвестной категории расхода
	ErrInvalidCategory = errors.New("domain: invalid expense category")
)
