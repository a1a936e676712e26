package order

import (
	"context"
	"errors"
	"time"

	"lokapasar-be/internal/cart"
	"lokapasar-be/internal/coupon"
	"lokapasar-be/internal/logger"
	"lokapasar-be/internal/payment"
	"lokapasar-be/internal/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Service runs the checkout workflow and exposes order history.
type Service interface {
	Place(ctx context.Context, buyerID string, params PlaceParams) (*Order, error)
	GetByID(ctx context.Context, buyerID, orderID string) (*Order, error)
	ListByBuyer(ctx context.Context, buyerID string) ([]*Order, error)
	GetHistory(ctx context.Context, buyerID, orderID string) ([]*HistoryEntry, error)
	// ConfirmPayment finalizes a pending online order after the provider
	// reports the charge settled. Safe to call more than once.
	ConfirmPayment(ctx context.Context, chargeRef string) error
}

// CartStore reads and is cleared by checkout through the order transaction.
type CartStore interface {
	GetLines(ctx context.Context, buyerID string) ([]*cart.Line, error)
}

type UserStore interface {
	FindByID(ctx context.Context, id string) (*user.User, error)
	ListAddresses(ctx context.Context, userID string) ([]user.Address, error)
}

type CouponResolver interface {
	Resolve(ctx context.Context, code, buyerID string) (*coupon.Coupon, error)
}

type ChargeStore interface {
	SaveCharge(ctx context.Context, buyerID string, res *payment.ChargeResponse) (*payment.Charge, error)
}

// Notifier receives post-checkout events. Implementations must not block the
// request; delivery is best effort.
type Notifier interface {
	OrderPlaced(o *Order, buyer *user.User)
	LowStock(alerts []LowStockAlert)
}

type service struct {
	repo    Repository
	carts   CartStore
	users   UserStore
	coupons CouponResolver
	gateway payment.Gateway
	charges ChargeStore
	notify  Notifier
	now     func() time.Time
}

func NewService(
	repo Repository,
	carts CartStore,
	users UserStore,
	coupons CouponResolver,
	gateway payment.Gateway,
	charges ChargeStore,
	notify Notifier,
) Service {
	return &service{
		repo:    repo,
		carts:   carts,
		users:   users,
		coupons: coupons,
		gateway: gateway,
		charges: charges,
		notify:  notify,
		now:     time.Now,
	}
}

func (s *service) Place(ctx context.Context, buyerID string, params PlaceParams) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "PlaceOrder"),
		zap.String("buyer_id", buyerID),
	)

	if params.PaymentMethod != PaymentCOD && params.PaymentMethod != PaymentOnline {
		return nil, ErrInvalidPaymentMethod
	}

	lines, err := s.carts.GetLines(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	buyer, err := s.users.FindByID(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	addresses, err := s.users.ListAddresses(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	address, err := user.ResolveDeliveryAddress(addresses, params.AddressIndex)
	if err != nil {
		return nil, err
	}

	// Prices are re-read at this instant, so offers that lapsed since the
	// items went into the cart no longer discount.
	now := s.now()
	items := make([]*Item, 0, len(lines))
	subtotal := decimal.Zero
	for _, line := range lines {
		if line.Product.Stock < line.Quantity {
			return nil, ErrInsufficientStock
		}
		unit := line.Product.FinalPrice(now)
		lineTotal := unit.Mul(decimal.NewFromInt(int64(line.Quantity)))
		items = append(items, &Item{
			ProductID:  line.ProductID,
			Name:       line.Product.Name,
			SellerID:   line.Product.SellerID,
			SellerName: line.Product.SellerName,
			UnitPrice:  unit,
			Quantity:   line.Quantity,
			LineTotal:  lineTotal,
		})
		subtotal = subtotal.Add(lineTotal)
	}

	discount := decimal.Zero
	var couponID, couponCode *string
	redeemCoupon := false
	if params.CouponCode != nil && *params.CouponCode != "" {
		c, err := s.coupons.Resolve(ctx, *params.CouponCode, buyerID)
		if err != nil {
			return nil, err
		}
		if subtotal.LessThan(c.MinOrderValue) {
			return nil, coupon.ErrMinOrderNotMet
		}
		discount = c.Discount(subtotal)
		couponID = &c.ID
		couponCode = &c.Code
		redeemCoupon = c.SingleUse
	}

	total := subtotal.Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	o := &Order{
		ID:             uuid.New().String(),
		BuyerID:        buyerID,
		InvoiceNumber:  GenerateInvoiceNumber(),
		Subtotal:       subtotal,
		Discount:       discount,
		Total:          total,
		CouponID:       couponID,
		CouponCode:     couponCode,
		RedeemCoupon:   redeemCoupon,
		PaymentMethod:  params.PaymentMethod,
		PaymentStatus:  PaymentStatusPending,
		Status:         StatusPlaced,
		CreatedAt:      now,
		ShipLine1:      address.Line1,
		ShipLine2:      address.Line2,
		ShipCity:       address.City,
		ShipState:      address.State,
		ShipPostalCode: address.PostalCode,
		ShipCountry:    address.Country,
		Items:          items,
	}

	if params.PaymentMethod == PaymentOnline {
		res, err := s.gateway.Charge(ctx, payment.ChargeRequest{
			ReferenceID:   o.ID,
			Amount:        total,
			Currency:      "USD",
			CustomerEmail: buyer.Email,
			CardToken:     params.CardToken,
			Description:   o.InvoiceNumber,
		})
		if err != nil {
			// A declined card leaves no trace: no order row, no stock
			// movement, no coupon spend.
			log.Warn("charge failed, aborting checkout", zap.Error(err))
			if errors.Is(err, payment.ErrCardDeclined) {
				return nil, ErrPaymentDeclined
			}
			return nil, err
		}
		o.ChargeRef = &res.ChargeID
		if res.Status == payment.StatusSucceeded {
			o.PaymentStatus = PaymentStatusSucceeded
			o.Status = StatusPaid
		}
		if _, err := s.charges.SaveCharge(ctx, buyerID, res); err != nil {
			log.Error("failed to record charge", zap.Error(err))
		}
	}

	alerts, err := s.repo.Create(ctx, o)
	if err != nil {
		log.Error("failed to create order", zap.Error(err))
		// The charge was captured before the transaction; give the money
		// back since no order exists to back it.
		if o.ChargeRef != nil {
			if rerr := s.gateway.Refund(ctx, *o.ChargeRef); rerr != nil {
				log.Error("failed to refund charge after checkout failure",
					zap.String("charge_ref", *o.ChargeRef),
					zap.Error(rerr),
				)
			}
		}
		return nil, err
	}

	if s.notify != nil {
		s.notify.OrderPlaced(o, buyer)
		if len(alerts) > 0 {
			s.notify.LowStock(alerts)
		}
	}

	log.Info("order placed",
		zap.String("order_id", o.ID),
		zap.String("invoice_number", o.InvoiceNumber),
		zap.String("total", o.Total.String()),
	)
	return o, nil
}

func (s *service) GetByID(ctx context.Context, buyerID, orderID string) (*Order, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.BuyerID != buyerID {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func (s *service) ListByBuyer(ctx context.Context, buyerID string) ([]*Order, error) {
	return s.repo.ListByBuyer(ctx, buyerID)
}

func (s *service) GetHistory(ctx context.Context, buyerID, orderID string) ([]*HistoryEntry, error) {
	if _, err := s.GetByID(ctx, buyerID, orderID); err != nil {
		return nil, err
	}
	return s.repo.GetHistory(ctx, orderID)
}

func (s *service) ConfirmPayment(ctx context.Context, chargeRef string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ConfirmPayment"),
		zap.String("charge_ref", chargeRef),
	)

	o, err := s.repo.FindPendingByChargeRef(ctx, chargeRef)
	if errors.Is(err, ErrOrderNotFound) {
		// Either an unknown charge or a replayed callback; both are fine.
		log.Info("no pending order for charge, ignoring")
		return nil
	}
	if err != nil {
		return err
	}

	// The callback body is caller supplied; only the provider's own record
	// of the charge decides whether the order is paid.
	res, err := s.gateway.GetCharge(ctx, chargeRef)
	if errors.Is(err, payment.ErrChargeNotFound) {
		log.Warn("provider does not know this charge, ignoring callback")
		return nil
	}
	if err != nil {
		return err
	}
	if res.Status != payment.StatusSucceeded {
		log.Warn("charge not settled at provider, ignoring callback",
			zap.String("provider_status", string(res.Status)))
		return nil
	}

	if err := s.repo.MarkPaid(ctx, o.ID); err != nil && !errors.Is(err, ErrOrderNotFound) {
		return err
	}
	log.Info("order marked paid", zap.String("order_id", o.ID))
	return nil
}
