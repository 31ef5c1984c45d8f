package toss

import (
	"fmt"

	"github.com/fsdevblog/consulting-checkout/internal/domain"
)

// CodeAlreadyProcessed код ответа на повторное подтверждение уже проведенного платежа.
const CodeAlreadyProcessed = "ALREADY_PROCESSED_PAYMENT"

type StatusCodeError struct {
	Code int
}

func NewStatusCodeError(code int) *StatusCodeError {
	return &StatusCodeError{Code: code}
}

func (e *StatusCodeError) Error() string {
	return fmt.Sprintf("Unexpected status code %d", e.Code)
}

// RejectedError отказ шлюза в подтверждении платежа.
type RejectedError struct {
	Status  int
	Code    string
	Message string
}

func NewRejectedError(status int, code, message string) *RejectedError {
	return &RejectedError{Status: status, Code: code, Message: message}
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%s: status %d, code %q: %s", domain.ErrPaymentRejected.Error(), e.Status, e.Code, e.Message)
}

// Unwrap возвращает domain.ErrPaymentAlreadyConfirmed для повторного подтверждения и
// domain.ErrPaymentRejected во всех остальных случаях.
func (e *RejectedError) Unwrap() error {
	if e.Code == CodeAlreadyProcessed {
		return domain.ErrPaymentAlreadyConfirmed
	}
	return domain.ErrPaymentRejected
}
