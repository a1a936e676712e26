package order

import (
	"context"
	"database/sql"
	"errors"

	"lokapasar-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

// lowStockThreshold is the stock level at or below which sellers are told to
// restock.
const lowStockThreshold = 10

type Repository interface {
	// Create persists the order, its items, the stock decrements, the coupon
	// redemption, the initial history entry, and the cart wipe in one
	// transaction. It returns alerts for products the order pushed to the
	// reorder threshold.
	Create(ctx context.Context, o *Order) ([]LowStockAlert, error)
	GetByID(ctx context.Context, id string) (*Order, error)
	ListByBuyer(ctx context.Context, buyerID string) ([]*Order, error)
	GetHistory(ctx context.Context, orderID string) ([]*HistoryEntry, error)
	FindPendingByChargeRef(ctx context.Context, chargeRef string) (*Order, error)
	MarkPaid(ctx context.Context, orderID string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const orderColumns = `
	id, buyer_id, invoice_number, subtotal, discount, total,
	coupon_id, coupon_code, payment_method, payment_status, charge_ref, status,
	ship_line1, ship_line2, ship_city, ship_state, ship_postal_code, ship_country,
	created_at`

func (r *repository) Create(ctx context.Context, o *Order) ([]LowStockAlert, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrder"),
		zap.String("order_id", o.ID),
		zap.String("buyer_id", o.BuyerID),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (
			id, buyer_id, invoice_number, subtotal, discount, total,
			coupon_id, coupon_code, payment_method, payment_status, charge_ref, status,
			ship_line1, ship_line2, ship_city, ship_state, ship_postal_code, ship_country
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		o.ID, o.BuyerID, o.InvoiceNumber, o.Subtotal, o.Discount, o.Total,
		o.CouponID, o.CouponCode, string(o.PaymentMethod), string(o.PaymentStatus), o.ChargeRef, o.Status,
		o.ShipLine1, o.ShipLine2, o.ShipCity, o.ShipState, o.ShipPostalCode, o.ShipCountry,
	)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return nil, err
	}

	var alerts []LowStockAlert
	for _, item := range o.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, product_id, name, seller_id, seller_name, unit_price, quantity, line_total)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			o.ID, item.ProductID, item.Name, item.SellerID, item.SellerName,
			item.UnitPrice, item.Quantity, item.LineTotal,
		)
		if err != nil {
			log.Error("failed to insert order item", zap.Error(err))
			return nil, err
		}

		// The guard on stock makes oversell impossible even under
		// concurrent checkouts; a miss means someone else got there first.
		var remaining int
		err = tx.QueryRowContext(ctx, `
			UPDATE products SET stock = stock - $1
			WHERE id = $2 AND stock >= $1
			RETURNING stock`,
			item.Quantity, item.ProductID,
		).Scan(&remaining)
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn("stock ran out during checkout", zap.String("product_id", item.ProductID))
			return nil, ErrInsufficientStock
		}
		if err != nil {
			log.Error("failed to decrement stock", zap.Error(err))
			return nil, err
		}

		if remaining <= lowStockThreshold {
			alerts = append(alerts, LowStockAlert{
				ProductID:   item.ProductID,
				ProductName: item.Name,
				SellerID:    item.SellerID,
				Stock:       remaining,
			})
		}
	}

	if o.CouponID != nil && o.RedeemCoupon {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO coupon_redemptions (coupon_id, buyer_id, order_id)
			VALUES ($1, $2, $3)`,
			*o.CouponID, o.BuyerID, o.ID,
		)
		if err != nil {
			log.Error("failed to record coupon redemption", zap.Error(err))
			return nil, err
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO order_history (order_id, status, note)
		VALUES ($1, $2, $3)`,
		o.ID, StatusPlaced, "order placed",
	)
	if err != nil {
		log.Error("failed to insert order history", zap.Error(err))
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM cart_items WHERE buyer_id = $1`, o.BuyerID)
	if err != nil {
		log.Error("failed to clear cart", zap.Error(err))
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	log.Info("order created",
		zap.String("invoice_number", o.InvoiceNumber),
		zap.Int("items", len(o.Items)),
	)
	return alerts, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Order, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	o, err := scanOrder(row)
	if err != nil {
		return nil, err
	}
	if err := r.attachItems(ctx, []*Order{o}); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *repository) ListByBuyer(ctx context.Context, buyerID string) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+orderColumns+` FROM orders
		WHERE buyer_id = $1
		ORDER BY created_at DESC`,
		buyerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *repository) attachItems(ctx context.Context, orders []*Order) error {
	byID := make(map[string]*Order, len(orders))
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
		ids = append(ids, o.ID)
	}
	if len(ids) == 0 {
		return nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, name, seller_id, seller_name, unit_price, quantity, line_total
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY id ASC`,
		pq.Array(ids),
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item Item
		err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.Name,
			&item.SellerID, &item.SellerName, &item.UnitPrice, &item.Quantity, &item.LineTotal,
		)
		if err != nil {
			return err
		}
		if o, ok := byID[item.OrderID]; ok {
			o.Items = append(o.Items, &item)
		}
	}
	return rows.Err()
}

func (r *repository) GetHistory(ctx context.Context, orderID string) ([]*HistoryEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, status, note, created_at
		FROM order_history
		WHERE order_id = $1
		ORDER BY id ASC`,
		orderID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.ID, &e.OrderID, &e.Status, &e.Note, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

func (r *repository) FindPendingByChargeRef(ctx context.Context, chargeRef string) (*Order, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+orderColumns+` FROM orders
		WHERE charge_ref = $1 AND payment_status = $2`,
		chargeRef, string(PaymentStatusPending),
	)
	return scanOrder(row)
}

func (r *repository) MarkPaid(ctx context.Context, orderID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE orders SET payment_status = $1, status = $2
		WHERE id = $3 AND payment_status = $4`,
		string(PaymentStatusSucceeded), StatusPaid, orderID, string(PaymentStatusPending),
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO order_history (order_id, status, note)
		VALUES ($1, $2, $3)`,
		orderID, StatusPaid, "payment confirmed",
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*Order, error) {
	var o Order
	err := row.Scan(
		&o.ID, &o.BuyerID, &o.InvoiceNumber, &o.Subtotal, &o.Discount, &o.Total,
		&o.CouponID, &o.CouponCode, &o.PaymentMethod, &o.PaymentStatus, &o.ChargeRef, &o.Status,
		&o.ShipLine1, &o.ShipLine2, &o.ShipCity, &o.ShipState, &o.ShipPostalCode, &o.ShipCountry,
		&o.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}
