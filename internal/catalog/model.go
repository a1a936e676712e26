package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

type Brand struct {
	ID   string
	Name string
}

type Category struct {
	ID       string
	Name     string
	ParentID *string

	// ParentName is populated on reads for response mapping.
	ParentName *string
}

type Offer struct {
	ID              string
	Name            string
	DiscountPercent decimal.Decimal
	StartDate       time.Time
	EndDate         time.Time
	IsActive        bool
}

// ActiveAt reports whether the offer applies at the given instant. The
// window is half-open: [start, end).
func (o *Offer) ActiveAt(now time.Time) bool {
	if o == nil || !o.IsActive {
		return false
	}
	return !now.Before(o.StartDate) && now.Before(o.EndDate)
}

type UpdateOfferParams struct {
	Name            string
	DiscountPercent *decimal.Decimal
	StartDate       *time.Time
	EndDate         *time.Time
	IsActive        *bool
}
