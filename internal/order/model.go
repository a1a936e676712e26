package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentCOD    PaymentMethod = "cod"
	PaymentOnline PaymentMethod = "online"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusSucceeded PaymentStatus = "succeeded"
	PaymentStatusFailed    PaymentStatus = "failed"
)

const (
	StatusPlaced = "placed"
	StatusPaid   = "paid"
)

// Order snapshots everything needed to reproduce the purchase later: prices
// as charged, the delivery address as it was, and the coupon discount taken.
type Order struct {
	ID            string
	BuyerID       string
	InvoiceNumber string
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
	CouponID      *string
	CouponCode    *string
	// RedeemCoupon tells the order transaction to burn a single-use coupon
	// for this buyer. Not stored on the order row itself.
	RedeemCoupon  bool
	PaymentMethod PaymentMethod
	PaymentStatus PaymentStatus
	ChargeRef     *string
	Status        string
	CreatedAt     time.Time

	// Delivery address copied from the buyer's address book at placement.
	ShipLine1      string
	ShipLine2      string
	ShipCity       string
	ShipState      string
	ShipPostalCode string
	ShipCountry    string

	Items []*Item
}

type Item struct {
	ID         int64
	OrderID    string
	ProductID  string
	Name       string
	SellerID   string
	SellerName string
	UnitPrice  decimal.Decimal
	Quantity   int
	LineTotal  decimal.Decimal
}

type HistoryEntry struct {
	ID        int64
	OrderID   string
	Status    string
	Note      string
	CreatedAt time.Time
}

// LowStockAlert is raised when an order leaves a product at or below the
// reorder threshold.
type LowStockAlert struct {
	ProductID   string
	ProductName string
	SellerID    string
	Stock       int
}

type PlaceParams struct {
	PaymentMethod PaymentMethod
	AddressIndex  *int
	CouponCode    *string
	CardToken     string
}
