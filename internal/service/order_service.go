package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/fsdevblog/consulting-checkout/internal/domain"
	"github.com/fsdevblog/consulting-checkout/internal/repository/repoargs"
	"github.com/fsdevblog/consulting-checkout/pkg/uow"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	staleBatchSize       = 100
	notificationsTimeout = 5 * time.Second
)

// MaxItemQuantity наибольшее количество мест в одной позиции.
const MaxItemQuantity int32 = 100

// OrderService корзина и заказ: позиции, расчет суммы, оформление и фиксация оплаты.
type OrderService struct {
	uow      uow.UOW
	repos    *repositories
	locker   Locker
	notifier CartNotifier
	l        *logrus.Entry
	now      func() time.Time
	newCode  func() string
}

func NewOrderService(u uow.UOW, locker Locker, notifier CartNotifier, l *logrus.Logger) (*OrderService, error) {
	repos, err := uowRepositories(u)
	if err != nil {
		return nil, err
	}
	return &OrderService{
		uow:      u,
		repos:    repos,
		locker:   locker,
		notifier: notifier,
		l:        l.WithField("component", "order_service"),
		now:      time.Now,
		newCode:  uuid.NewString,
	}, nil
}

type AddItemArgs struct {
	// OrderID заказ, в который добавляется позиция. 0 - текущая корзина владельца, создается при необходимости.
	OrderID    int64
	ScheduleID int64
	Quantity   int32
}

// QuoteArgs купон и баллы, которые покупатель хочет применить к заказу.
type QuoteArgs struct {
	CouponID *int64
	Point    decimal.Decimal
}

type CheckoutResult struct {
	Order     *domain.Order
	OrderCode string
	Amount    decimal.Decimal
	OrderName string
}

// AddItem добавляет расписание в корзину, фиксируя текущую цену каталога в позиции.
//
// Возвращает ошибки:
//   - domain.ErrInvalidQuantity если quantity <= 0 или больше MaxItemQuantity
//   - domain.ErrScheduleUnavailable если расписание закрыто или мест не хватает
//   - domain.ErrRecordNotFound если заказ не найден или принадлежит другому владельцу
//   - domain.ErrInvalidOrderState если заказ уже не корзина.
func (o *OrderService) AddItem(ctx context.Context, owner domain.Owner, args AddItemArgs) (*domain.Order, error) {
	if err := validateQuantity(args.Quantity); err != nil {
		return nil, fmt.Errorf("add item: %w", err)
	}
	if owner.IsZero() {
		return nil, fmt.Errorf("add item: %w", domain.ErrAuthRequired)
	}

	lockKey := cartLockKey(owner)
	if args.OrderID != 0 {
		lockKey = orderLockKey(args.OrderID)
	}

	var order *domain.Order
	err := o.withLock(ctx, lockKey, func() error {
		return o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
			r, err := txRepositories(tx)
			if err != nil {
				return err
			}

			var cart *domain.Order
			if args.OrderID == 0 {
				cart, err = o.openCart(c, r, owner)
			} else {
				cart, err = loadCartForUpdate(c, r, owner, args.OrderID)
			}
			if err != nil {
				return err
			}

			items, err := r.items.GetByOrderID(c, cart.ID)
			if err != nil {
				return err //nolint:wrapcheck
			}
			wanted := int64(args.Quantity) + scheduleQuantity(items, args.ScheduleID, 0)
			availability, err := checkAvailability(c, r.schedules, args.ScheduleID, wanted)
			if err != nil {
				return err
			}

			if _, err = r.items.AddItem(c, repoargs.AddOrderItem{
				OrderID:    cart.ID,
				ScheduleID: args.ScheduleID,
				Quantity:   args.Quantity,
				UnitPrice:  availability.Price,
			}); err != nil {
				return err //nolint:wrapcheck
			}

			order, err = refreshSubtotal(c, r, cart)
			return err
		})
	})
	if err != nil {
		return nil, fmt.Errorf("add item: %w", err)
	}
	return order, nil
}

// UpdateItemQuantity меняет количество в позиции корзины.
func (o *OrderService) UpdateItemQuantity(
	ctx context.Context,
	owner domain.Owner,
	orderID, itemID int64,
	quantity int32,
) (*domain.Order, error) {
	if err := validateQuantity(quantity); err != nil {
		return nil, fmt.Errorf("update item quantity: %w", err)
	}

	order, err := o.mutateCart(ctx, owner, orderID, func(c context.Context, r *repositories, cart *domain.Order) error {
		items, err := r.items.GetByOrderID(c, cart.ID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		item, ok := findItem(items, itemID)
		if !ok {
			return fmt.Errorf("item %d of order %d: %w", itemID, cart.ID, domain.ErrRecordNotFound)
		}
		wanted := int64(quantity) + scheduleQuantity(items, item.ScheduleID, item.ID)
		if _, err = checkAvailability(c, r.schedules, item.ScheduleID, wanted); err != nil {
			return err
		}
		_, err = r.items.UpdateQuantity(c, cart.ID, itemID, quantity)
		return err //nolint:wrapcheck
	})
	if err != nil {
		return nil, fmt.Errorf("update item quantity: %w", err)
	}
	return order, nil
}

// RemoveItem удаляет позицию из корзины.
func (o *OrderService) RemoveItem(ctx context.Context, owner domain.Owner, orderID, itemID int64) (*domain.Order, error) {
	order, err := o.mutateCart(ctx, owner, orderID, func(c context.Context, r *repositories, cart *domain.Order) error {
		return r.items.Delete(c, cart.ID, itemID) //nolint:wrapcheck
	})
	if err != nil {
		return nil, fmt.Errorf("remove item: %w", err)
	}
	return order, nil
}

// ClearItems удаляет все позиции корзины. Сам заказ остается открытой корзиной.
func (o *OrderService) ClearItems(ctx context.Context, owner domain.Owner, orderID int64) (*domain.Order, error) {
	order, err := o.mutateCart(ctx, owner, orderID, func(c context.Context, r *repositories, cart *domain.Order) error {
		return r.items.DeleteByOrderID(c, cart.ID) //nolint:wrapcheck
	})
	if err != nil {
		return nil, fmt.Errorf("clear items: %w", err)
	}
	return order, nil
}

// Get возвращает заказ владельца вместе с позициями. Чужой заказ считается ненайденным.
func (o *OrderService) Get(ctx context.Context, owner domain.Owner, orderID int64) (*domain.Order, error) {
	order, err := o.repos.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if !order.OwnedBy(owner) {
		return nil, fmt.Errorf("get order %d: %w", orderID, domain.ErrRecordNotFound)
	}
	if order.Items, err = o.repos.items.GetByOrderID(ctx, orderID); err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

// GetByCode возвращает заказ по коду, переданному платежному шлюзу.
func (o *OrderService) GetByCode(ctx context.Context, code string) (*domain.Order, error) {
	order, err := o.repos.orders.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("get order by code: %w", err)
	}
	if order.Items, err = o.repos.items.GetByOrderID(ctx, order.ID); err != nil {
		return nil, fmt.Errorf("get order by code: %w", err)
	}
	return order, nil
}

// List возвращает заказы юзера, новые первыми.
func (o *OrderService) List(ctx context.Context, userID int64) ([]domain.Order, error) {
	orders, err := o.repos.orders.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return orders, nil
}

// ComputeQuote считает сумму к оплате без каких-либо изменений в базе. Повторный вызов с теми же
// аргументами дает тот же результат, пока не изменились корзина, купон или баланс баллов.
func (o *OrderService) ComputeQuote(
	ctx context.Context,
	owner domain.Owner,
	orderID int64,
	args QuoteArgs,
) (*domain.Quote, error) {
	order, err := o.Get(ctx, owner, orderID)
	if err != nil {
		return nil, err
	}
	quote, err := buildOwnerQuote(ctx, o.repos, owner, order.Items, args, o.now())
	if err != nil {
		return nil, fmt.Errorf("compute quote for order %d: %w", orderID, err)
	}
	return &quote, nil
}

// Checkout переводит корзину в ожидание оплаты и фиксирует выбранные купон и баллы.
//
// Алгоритм работы:
//  1. Блокирует заказ и проверяет, что это непустая корзина владельца.
//  2. Проверяет наличие мест по каждому расписанию.
//  3. Считает сумму с купоном и баллами, проверяя баланс.
//  4. Сохраняет расчет и время начала оплаты.
//
// Возвращает данные для платежного шлюза: код заказа, сумму и название.
func (o *OrderService) Checkout(
	ctx context.Context,
	owner domain.Owner,
	orderID int64,
	args QuoteArgs,
) (*CheckoutResult, error) {
	var result *CheckoutResult
	err := o.withLock(ctx, orderLockKey(orderID), func() error {
		return o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
			r, err := txRepositories(tx)
			if err != nil {
				return err
			}
			order, err := loadCartForUpdate(c, r, owner, orderID)
			if err != nil {
				return err
			}
			items, err := r.items.GetByOrderID(c, orderID)
			if err != nil {
				return err //nolint:wrapcheck
			}
			if len(items) == 0 {
				return fmt.Errorf("order %d: %w", orderID, domain.ErrEmptyOrder)
			}

			firstTitle, err := checkItemsAvailability(c, r.schedules, items)
			if err != nil {
				return err
			}

			now := o.now()
			quote, err := buildOwnerQuote(c, r, owner, items, args, now)
			if err != nil {
				return err
			}
			if err = r.orders.MarkPendingPayment(c, repoargs.OrderCheckout{
				ID:           orderID,
				Quote:        quote,
				PendingSince: now,
			}); err != nil {
				return err //nolint:wrapcheck
			}

			applyQuote(order, quote)
			order.Status = domain.OrderStatusPendingPayment
			order.PendingSince = &now
			order.Items = items

			result = &CheckoutResult{
				Order:     order,
				OrderCode: order.Code,
				Amount:    quote.Total,
				OrderName: orderName(firstTitle, len(items)),
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("checkout order %d: %w", orderID, err)
	}
	return result, nil
}

// RecomputeQuote пересчитывает сумму заказа, ожидающего оплату, по сохраненным позициям, купону и баллам.
// Срок действия купона проверяется на момент начала оплаты. Дополнительно проверяет баланс баллов и
// остаток мест, чтобы не подтверждать в шлюзе платеж, который нельзя будет зафиксировать.
func (o *OrderService) RecomputeQuote(ctx context.Context, order *domain.Order) (*domain.Quote, error) {
	items := order.Items
	if items == nil {
		var err error
		if items, err = o.repos.items.GetByOrderID(ctx, order.ID); err != nil {
			return nil, fmt.Errorf("recompute quote: %w", err)
		}
	}
	quote, err := o.storedQuote(ctx, o.repos, order, items)
	if err != nil {
		return nil, fmt.Errorf("recompute quote for order %d: %w", order.ID, err)
	}
	if quote.UsedPoint.IsPositive() {
		if _, err = reserveRedemption(ctx, o.repos.points, *order.UserID, quote.UsedPoint); err != nil {
			return nil, fmt.Errorf("recompute quote for order %d: %w", order.ID, err)
		}
	}
	if _, err = checkItemsAvailability(ctx, o.repos.schedules, items); err != nil {
		return nil, fmt.Errorf("recompute quote for order %d: %w", order.ID, err)
	}
	return &quote, nil
}

// RecordPaymentKey запоминает ключ платежа, подтвержденного шлюзом. Повторное подтверждение заказа
// с тем же ключом не обращается к шлюзу.
func (o *OrderService) RecordPaymentKey(ctx context.Context, orderID int64, paymentKey string) error {
	if err := o.repos.orders.RecordPaymentKey(ctx, orderID, paymentKey); err != nil {
		return fmt.Errorf("record payment key: %w", err)
	}
	return nil
}

// FinalizeOrder фиксирует оплату заказа.
//
// Параметры:
//   - ctx: контекст для управления жизненным циклом
//   - orderID: заказ в статусе pending_payment
//   - paymentKey: ключ платежа платежного шлюза
//   - verifiedAmount: сумма, подтвержденная шлюзом.
//
// Алгоритм работы:
//  1. Блокирует строку заказа. Уже оплаченный заказ возвращается без изменений.
//  2. Пересчитывает сумму и сравнивает с verifiedAmount. При расхождении возвращает *domain.AmountMismatchError,
//     заказ остается в pending_payment.
//  3. Блокирует расписания заказа и проверяет остаток мест.
//  4. В одной транзакции списывает баллы, помечает купон использованным и переводит заказ в paid.
//  5. После коммита уведомляет об очистке корзины. Ошибки уведомления только логируются.
func (o *OrderService) FinalizeOrder(
	ctx context.Context,
	orderID int64,
	paymentKey string,
	verifiedAmount decimal.Decimal,
) (*domain.Order, error) {
	var order *domain.Order
	var alreadyPaid bool

	err := o.withLock(ctx, orderLockKey(orderID), func() error {
		return o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
			alreadyPaid = false
			r, err := txRepositories(tx)
			if err != nil {
				return err
			}
			current, err := r.orders.GetByIDForUpdate(c, orderID)
			if err != nil {
				return err //nolint:wrapcheck
			}

			switch current.Status {
			case domain.OrderStatusPaid:
				alreadyPaid = true
				order = current
				return nil
			case domain.OrderStatusRefunded:
				return fmt.Errorf("order %d refunded: %w", orderID, domain.ErrOrderAlreadyFinalized)
			case domain.OrderStatusPendingPayment:
			default:
				return fmt.Errorf("order %d in status %s: %w", orderID, current.Status, domain.ErrInvalidOrderState)
			}

			items, err := r.items.GetByOrderID(c, orderID)
			if err != nil {
				return err //nolint:wrapcheck
			}
			quote, err := o.storedQuote(c, r, current, items)
			if err != nil {
				return err
			}
			if !quote.Total.Equal(verifiedAmount) {
				o.logAmountMismatch(current, quote.Total, verifiedAmount)
				return domain.NewAmountMismatchError(orderID, quote.Total, verifiedAmount)
			}

			if err = lockSchedules(c, r.schedules, items); err != nil {
				return err
			}
			if _, err = checkItemsAvailability(c, r.schedules, items); err != nil {
				return err
			}

			paidAt := o.now()
			if err = o.commitPaid(c, r, current, quote, paidAt); err != nil {
				return err
			}
			if err = r.orders.MarkPaid(c, repoargs.OrderPaid{
				ID:         orderID,
				Quote:      quote,
				PaymentKey: paymentKey,
				PaidAt:     paidAt,
			}); err != nil {
				return err //nolint:wrapcheck
			}

			applyQuote(current, quote)
			current.Status = domain.OrderStatusPaid
			current.PaymentKey = &paymentKey
			current.PaidAt = &paidAt
			current.Items = items
			order = current
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("finalize order %d: %w", orderID, err)
	}

	if !alreadyPaid {
		o.notifyPaid(ctx, *order)
	}
	return order, nil
}

// FailPayment переводит заказ в failed по отказу или отмене платежа. Журнал баллов и купоны не меняются.
// Повторный вызов для failed заказа ничего не делает.
func (o *OrderService) FailPayment(ctx context.Context, orderID int64) error {
	err := o.withLock(ctx, orderLockKey(orderID), func() error {
		return o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
			orderRepo, err := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
			if err != nil {
				return err //nolint:wrapcheck
			}
			order, err := orderRepo.GetByIDForUpdate(c, orderID)
			if err != nil {
				return err //nolint:wrapcheck
			}
			switch order.Status {
			case domain.OrderStatusPendingPayment:
				return orderRepo.MarkFailed(c, orderID, o.now()) //nolint:wrapcheck
			case domain.OrderStatusFailed:
				return nil
			case domain.OrderStatusPaid, domain.OrderStatusRefunded:
				return fmt.Errorf("order %d in status %s: %w", orderID, order.Status, domain.ErrOrderAlreadyFinalized)
			default:
				return fmt.Errorf("order %d in status %s: %w", orderID, order.Status, domain.ErrInvalidOrderState)
			}
		})
	})
	if err != nil {
		return fmt.Errorf("fail payment: %w", err)
	}
	return nil
}

// Reopen возвращает неоплаченный заказ в корзину. Если у владельца уже есть другая корзина,
// возвращает domain.ErrOwnerConflict.
func (o *OrderService) Reopen(ctx context.Context, owner domain.Owner, orderID int64) (*domain.Order, error) {
	var order *domain.Order
	err := o.withLock(ctx, orderLockKey(orderID), func() error {
		return o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
			r, err := txRepositories(tx)
			if err != nil {
				return err
			}
			current, err := loadOwnedForUpdate(c, r, owner, orderID)
			if err != nil {
				return err
			}
			if current.Status != domain.OrderStatusFailed {
				return fmt.Errorf("order %d in status %s: %w", orderID, current.Status, domain.ErrInvalidOrderState)
			}
			if hasCart, cartErr := hasOpenCart(c, r, owner); cartErr != nil {
				return cartErr
			} else if hasCart {
				return fmt.Errorf("reopen order %d: %w", orderID, domain.ErrOwnerConflict)
			}
			if err = r.orders.RevertToCart(c, orderID); err != nil {
				return err //nolint:wrapcheck
			}
			if order, err = r.orders.GetByID(c, orderID); err != nil {
				return err //nolint:wrapcheck
			}
			order.Items, err = r.items.GetByOrderID(c, orderID)
			return err //nolint:wrapcheck
		})
	})
	if err != nil {
		return nil, fmt.Errorf("reopen order: %w", err)
	}
	return order, nil
}

// Refund оформляет возврат оплаченного заказа. Списанные баллы возвращаются отдельной записью начисления,
// прошлые записи журнала не меняются. Купон остается использованным.
func (o *OrderService) Refund(ctx context.Context, orderID int64, reason string) (*domain.Order, error) {
	var order *domain.Order
	err := o.withLock(ctx, orderLockKey(orderID), func() error {
		return o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
			r, err := txRepositories(tx)
			if err != nil {
				return err
			}
			current, err := r.orders.GetByIDForUpdate(c, orderID)
			if err != nil {
				return err //nolint:wrapcheck
			}
			switch current.Status {
			case domain.OrderStatusPaid:
			case domain.OrderStatusRefunded:
				return fmt.Errorf("order %d: %w", orderID, domain.ErrOrderAlreadyFinalized)
			default:
				return fmt.Errorf("order %d in status %s: %w", orderID, current.Status, domain.ErrInvalidOrderState)
			}

			refundedAt := o.now()
			if err = r.orders.MarkRefunded(c, orderID, refundedAt); err != nil {
				return err //nolint:wrapcheck
			}
			if current.UsedPoint.IsPositive() && current.UserID != nil {
				if err = r.users.LockForUpdate(c, *current.UserID); err != nil {
					return err //nolint:wrapcheck
				}
				if _, err = r.points.Append(c, repoargs.PointEntryCreate{
					UserID:      *current.UserID,
					OrderID:     &orderID,
					ChangeType:  domain.PointChangeAccrual,
					Amount:      current.UsedPoint,
					Description: fmt.Sprintf("refund order #%d: %s", orderID, reason),
				}); err != nil {
					return err //nolint:wrapcheck
				}
			}

			current.Status = domain.OrderStatusRefunded
			current.RefundedAt = &refundedAt
			order = current
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("refund order: %w", err)
	}

	o.l.WithFields(logrus.Fields{
		"order_id": orderID,
		"reason":   reason,
	}).Info("order refunded")
	return order, nil
}

// ReapStalePending возвращает в корзину заказы, которые ждут оплату дольше ttl. Если у владельца уже есть
// новая корзина, зависший заказ помечается failed, его можно будет открыть заново позже. Заказы, платеж
// по которым уже подтвержден шлюзом, не трогаются.
// Возвращает количество обработанных заказов.
func (o *OrderService) ReapStalePending(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := o.now().Add(-ttl)
	ids, err := o.repos.orders.FindStalePending(ctx, cutoff, staleBatchSize)
	if err != nil {
		return 0, fmt.Errorf("reap stale pending orders: %w", err)
	}

	var reaped int
	for _, id := range ids {
		ok, reapErr := o.reapOne(ctx, id, cutoff)
		if reapErr != nil {
			o.l.WithError(reapErr).WithField("order_id", id).Warn("failed to reap stale pending order")
			continue
		}
		if ok {
			reaped++
		}
	}
	return reaped, nil
}

func (o *OrderService) reapOne(ctx context.Context, orderID int64, cutoff time.Time) (bool, error) {
	var reaped bool
	err := o.withLock(ctx, orderLockKey(orderID), func() error {
		return o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
			reaped = false
			r, err := txRepositories(tx)
			if err != nil {
				return err
			}
			order, err := r.orders.GetByIDForUpdate(c, orderID)
			if err != nil {
				return err //nolint:wrapcheck
			}
			// оплата могла завершиться или пройти в шлюзе после выборки
			if order.Status != domain.OrderStatusPendingPayment || order.PaymentKey != nil ||
				order.PendingSince == nil || order.PendingSince.After(cutoff) {
				return nil
			}

			hasCart, err := hasOpenCart(c, r, order.Owner())
			if err != nil {
				return err
			}
			if hasCart {
				err = r.orders.MarkFailed(c, orderID, o.now())
			} else {
				err = r.orders.RevertToCart(c, orderID)
			}
			if err != nil {
				return err //nolint:wrapcheck
			}
			reaped = true
			o.l.WithFields(logrus.Fields{
				"order_id":      orderID,
				"pending_since": order.PendingSince,
				"to_cart":       !hasCart,
			}).Info("stale pending order reaped")
			return nil
		})
	})
	return reaped, err
}

// withLock выполняет fn под распределенной блокировкой key.
func (o *OrderService) withLock(ctx context.Context, key string, fn func() error) error {
	unlock, err := o.locker.Obtain(ctx, key)
	if err != nil {
		return fmt.Errorf("obtain lock %s: %w", key, err)
	}
	defer unlock()
	return fn()
}

// mutateCart выполняет изменение позиций корзины владельца и пересчитывает ее сумму.
func (o *OrderService) mutateCart(
	ctx context.Context,
	owner domain.Owner,
	orderID int64,
	fn func(ctx context.Context, r *repositories, cart *domain.Order) error,
) (*domain.Order, error) {
	var order *domain.Order
	err := o.withLock(ctx, orderLockKey(orderID), func() error {
		return o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
			r, err := txRepositories(tx)
			if err != nil {
				return err
			}
			cart, err := loadCartForUpdate(c, r, owner, orderID)
			if err != nil {
				return err
			}
			if err = fn(c, r, cart); err != nil {
				return err
			}
			order, err = refreshSubtotal(c, r, cart)
			return err
		})
	})
	return order, err
}

// openCart находит открытую корзину владельца и блокирует ее, либо создает новую.
func (o *OrderService) openCart(ctx context.Context, r *repositories, owner domain.Owner) (*domain.Order, error) {
	cart, err := r.orders.FindOpenCart(ctx, owner)
	if err == nil {
		return r.orders.GetByIDForUpdate(ctx, cart.ID) //nolint:wrapcheck
	}
	if !errors.Is(err, domain.ErrRecordNotFound) {
		return nil, err //nolint:wrapcheck
	}

	cart, err = r.orders.CreateCart(ctx, repoargs.CreateCart{Code: o.newCode(), Owner: owner})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			return nil, fmt.Errorf("create cart: %w", domain.ErrOwnerConflict)
		}
		return nil, err //nolint:wrapcheck
	}
	o.l.WithFields(logrus.Fields{
		"order_id": cart.ID,
		"guest":    owner.IsGuest(),
	}).Debug("cart created")
	return cart, nil
}

// storedQuote пересчитывает сумму заказа по купону и баллам, записанным при оформлении.
func (o *OrderService) storedQuote(
	ctx context.Context,
	r *repositories,
	order *domain.Order,
	items []domain.OrderItem,
) (domain.Quote, error) {
	at := o.now()
	if order.PendingSince != nil {
		at = *order.PendingSince
	}

	subtotal := Subtotal(items)
	discount := decimal.Zero
	if order.CouponID != nil {
		if order.UserID == nil {
			return domain.Quote{}, fmt.Errorf("guest order %d with coupon: %w", order.ID, domain.ErrInvalidCoupon)
		}
		coupon, err := loadCoupon(ctx, r.coupons, *order.UserID, *order.CouponID)
		if err != nil {
			return domain.Quote{}, err
		}
		if discount, err = EvaluateCoupon(*coupon, subtotal, at); err != nil {
			return domain.Quote{}, err
		}
	}
	if order.UsedPoint.IsPositive() && order.UserID == nil {
		return domain.Quote{}, fmt.Errorf("guest order %d with points: %w", order.ID, domain.ErrInvalidPointAmount)
	}
	return BuildQuote(subtotal, order.CouponID, discount, order.UsedPoint)
}

// commitPaid списывает баллы и гасит купон оплачиваемого заказа.
func (o *OrderService) commitPaid(
	ctx context.Context,
	r *repositories,
	order *domain.Order,
	quote domain.Quote,
	at time.Time,
) error {
	if quote.UsedPoint.IsPositive() {
		reservation := domain.PointReservation{UserID: *order.UserID, Amount: quote.UsedPoint}
		if err := commitRedemption(ctx, r.users, r.points, reservation, order.ID, at); err != nil {
			return err
		}
	}
	if quote.CouponID != nil {
		if err := r.coupons.MarkUsed(ctx, *quote.CouponID, order.ID, at); err != nil {
			if errors.Is(err, domain.ErrRecordNotFound) {
				return fmt.Errorf("coupon %d already used: %w", *quote.CouponID, domain.ErrInvalidCoupon)
			}
			return err //nolint:wrapcheck
		}
	}
	return nil
}

func (o *OrderService) logAmountMismatch(order *domain.Order, expected, got decimal.Decimal) {
	fields := logrus.Fields{
		"order_id":   order.ID,
		"order_code": order.Code,
		"expected":   expected.String(),
		"got":        got.String(),
	}
	if order.UserID != nil {
		fields["user_id"] = *order.UserID
	}
	o.l.WithFields(fields).Warn("payment amount mismatch, order left pending for review")
}

func (o *OrderService) notifyPaid(ctx context.Context, order domain.Order) {
	c, cancel := context.WithTimeout(context.WithoutCancel(ctx), notificationsTimeout)
	defer cancel()

	log := o.l.WithField("order_id", order.ID)
	if err := o.notifier.ClearCart(c, order.Owner(), order.ID); err != nil {
		log.WithError(err).Error("failed to send clear cart notification")
	}
	if err := o.notifier.OrderPaid(c, order); err != nil {
		log.WithError(err).Error("failed to send order paid notification")
	}
}

// buildOwnerQuote считает сумму по позициям с купоном и баллами владельца. Гость не может применять
// купоны и баллы. Баланс баллов проверяется, но не списывается.
func buildOwnerQuote(
	ctx context.Context,
	r *repositories,
	owner domain.Owner,
	items []domain.OrderItem,
	args QuoteArgs,
	at time.Time,
) (domain.Quote, error) {
	if owner.IsGuest() && (args.CouponID != nil || !args.Point.IsZero()) {
		return domain.Quote{}, fmt.Errorf("coupons and points: %w", domain.ErrAuthRequired)
	}

	subtotal := Subtotal(items)
	discount := decimal.Zero
	if args.CouponID != nil {
		coupon, err := loadCoupon(ctx, r.coupons, owner.UserID, *args.CouponID)
		if err != nil {
			return domain.Quote{}, err
		}
		if discount, err = EvaluateCoupon(*coupon, subtotal, at); err != nil {
			return domain.Quote{}, err
		}
	}

	quote, err := BuildQuote(subtotal, args.CouponID, discount, args.Point)
	if err != nil {
		return domain.Quote{}, err
	}
	if quote.UsedPoint.IsPositive() {
		if _, err = reserveRedemption(ctx, r.points, owner.UserID, quote.UsedPoint); err != nil {
			return domain.Quote{}, err
		}
	}
	return quote, nil
}

func loadOwnedForUpdate(
	ctx context.Context,
	r *repositories,
	owner domain.Owner,
	orderID int64,
) (*domain.Order, error) {
	order, err := r.orders.GetByIDForUpdate(ctx, orderID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if !order.OwnedBy(owner) {
		return nil, fmt.Errorf("order %d: %w", orderID, domain.ErrRecordNotFound)
	}
	return order, nil
}

func loadCartForUpdate(
	ctx context.Context,
	r *repositories,
	owner domain.Owner,
	orderID int64,
) (*domain.Order, error) {
	order, err := loadOwnedForUpdate(ctx, r, owner, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.OrderStatusCart {
		return nil, fmt.Errorf("order %d in status %s: %w", orderID, order.Status, domain.ErrInvalidOrderState)
	}
	return order, nil
}

func hasOpenCart(ctx context.Context, r *repositories, owner domain.Owner) (bool, error) {
	_, err := r.orders.FindOpenCart(ctx, owner)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, domain.ErrRecordNotFound) {
		return false, nil
	}
	return false, err //nolint:wrapcheck
}

func validateQuantity(quantity int32) error {
	if quantity <= 0 || quantity > MaxItemQuantity {
		return fmt.Errorf("quantity %d: %w", quantity, domain.ErrInvalidQuantity)
	}
	return nil
}

// checkItemsAvailability проверяет остаток мест по каждому расписанию позиций.
// Возвращает название расписания первой позиции.
func checkItemsAvailability(ctx context.Context, repo ScheduleRepository, items []domain.OrderItem) (string, error) {
	var firstTitle string
	for i, item := range items {
		availability, err := checkAvailability(ctx, repo, item.ScheduleID, scheduleQuantity(items, item.ScheduleID, 0))
		if err != nil {
			return "", err
		}
		if i == 0 {
			firstTitle = availability.Title
		}
	}
	return firstTitle, nil
}

// lockSchedules блокирует строки расписаний позиций в порядке возрастания id.
func lockSchedules(ctx context.Context, repo ScheduleRepository, items []domain.OrderItem) error {
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		if !slices.Contains(ids, item.ScheduleID) {
			ids = append(ids, item.ScheduleID)
		}
	}
	slices.Sort(ids)
	for _, id := range ids {
		if err := repo.LockForUpdate(ctx, id); err != nil {
			if errors.Is(err, domain.ErrRecordNotFound) {
				return fmt.Errorf("schedule %d not found: %w", id, domain.ErrScheduleUnavailable)
			}
			return err //nolint:wrapcheck
		}
	}
	return nil
}

// checkAvailability проверяет, что расписание открыто и в нем есть quantity свободных мест.
func checkAvailability(
	ctx context.Context,
	repo ScheduleRepository,
	scheduleID int64,
	quantity int64,
) (*domain.ScheduleAvailability, error) {
	availability, err := repo.GetAvailability(ctx, scheduleID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, fmt.Errorf("schedule %d not found: %w", scheduleID, domain.ErrScheduleUnavailable)
		}
		return nil, err //nolint:wrapcheck
	}
	if availability.Status != domain.ScheduleStatusOpen {
		return nil, fmt.Errorf("schedule %d is %s: %w", scheduleID, availability.Status, domain.ErrScheduleUnavailable)
	}
	if int64(availability.CapacityRemaining) < quantity {
		return nil, fmt.Errorf(
			"schedule %d has %d places left, %d requested: %w",
			scheduleID,
			availability.CapacityRemaining,
			quantity,
			domain.ErrScheduleUnavailable,
		)
	}
	return availability, nil
}

// refreshSubtotal пересчитывает сумму корзины по позициям и сохраняет ее.
func refreshSubtotal(ctx context.Context, r *repositories, cart *domain.Order) (*domain.Order, error) {
	items, err := r.items.GetByOrderID(ctx, cart.ID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	subtotal := Subtotal(items)
	if err = r.orders.UpdateSubtotal(ctx, cart.ID, subtotal); err != nil {
		return nil, err //nolint:wrapcheck
	}
	cart.Subtotal = subtotal
	cart.CouponDiscount = decimal.Zero
	cart.UsedPoint = decimal.Zero
	cart.TotalAmount = subtotal
	cart.Items = items
	return cart, nil
}

// scheduleQuantity сумма количества по позициям расписания, кроме позиции exceptItemID.
func scheduleQuantity(items []domain.OrderItem, scheduleID, exceptItemID int64) int64 {
	var sum int64
	for _, item := range items {
		if item.ScheduleID == scheduleID && item.ID != exceptItemID {
			sum += int64(item.Quantity)
		}
	}
	return sum
}

func findItem(items []domain.OrderItem, itemID int64) (domain.OrderItem, bool) {
	for _, item := range items {
		if item.ID == itemID {
			return item, true
		}
	}
	return domain.OrderItem{}, false
}

func applyQuote(order *domain.Order, quote domain.Quote) {
	order.CouponID = quote.CouponID
	order.Subtotal = quote.Subtotal
	order.CouponDiscount = quote.CouponDiscount
	order.UsedPoint = quote.UsedPoint
	order.TotalAmount = quote.Total
}

// orderName название заказа для платежного шлюза.
func orderName(firstTitle string, itemsCount int) string {
	if itemsCount <= 1 {
		return firstTitle
	}
	return fmt.Sprintf("%s 외 %d건", firstTitle, itemsCount-1)
}

func orderLockKey(orderID int64) string {
	return fmt.Sprintf("order:%d", orderID)
}

func cartLockKey(owner domain.Owner) string {
	if owner.IsGuest() {
		return "cart:guest:" + owner.GuestToken
	}
	return fmt.Sprintf("cart:user:%d", owner.UserID)
}
