package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")

	ErrInvalidQuantity         = errors.New("invalid quantity")
	ErrScheduleUnavailable     = errors.New("schedule unavailable")
	ErrInvalidCoupon           = errors.New("invalid coupon")
	ErrInsufficientBalance     = errors.New("insufficient balance")
	ErrInvalidPointAmount      = errors.New("invalid point amount")
	ErrAmountMismatch          = errors.New("amount mismatch")
	ErrOrderAlreadyFinalized   = errors.New("order already finalized")
	ErrInvalidOrderState       = errors.New("invalid order state")
	ErrEmptyOrder              = errors.New("order has no items")
	ErrOwnerConflict           = errors.New("owner conflict")
	ErrAuthRequired            = errors.New("authenticated user required")
	ErrGatewayUnavailable      = errors.New("payment gateway unavailable")
	ErrPaymentRejected         = errors.New("payment rejected by gateway")
	ErrPaymentAlreadyConfirmed = errors.New("payment already confirmed by gateway")
	ErrOrderBusy               = errors.New("order is being processed")
)

// AmountMismatchError подробности расхождения суммы, подтвержденной платежным шлюзом, и пересчитанной суммы.
type AmountMismatchError struct {
	OrderID  int64
	Expected decimal.Decimal
	Got      decimal.Decimal
}

func NewAmountMismatchError(orderID int64, expected, got decimal.Decimal) error {
	return &AmountMismatchError{OrderID: orderID, Expected: expected, Got: got}
}

func (e *AmountMismatchError) Error() string {
	return fmt.Sprintf(
		"order %d: %s: expected %s, got %s",
		e.OrderID,
		ErrAmountMismatch.Error(),
		e.Expected.String(),
		e.Got.String(),
	)
}

func (e *AmountMismatchError) Unwrap() error {
	return ErrAmountMismatch
}
