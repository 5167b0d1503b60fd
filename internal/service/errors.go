package service

import (
	"errors"
	"fmt"

	"glutivia/internal/checkout"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	// ErrCheckoutBusy повторная отправка во время обработки платежа
	ErrCheckoutBusy = checkout.ErrBusy
	// ErrStaleGeneration результат генерации устарел: пользователь уже запустил новую
	ErrStaleGeneration = errors.New("generation superseded")
)

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}
