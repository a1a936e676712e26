package rest

import (
	"time"

	"lokapasar-be/internal/cart"
	"lokapasar-be/internal/catalog"
	"lokapasar-be/internal/order"
	"lokapasar-be/internal/product"
	"lokapasar-be/internal/user"
	"lokapasar-be/internal/wishlist"

	"github.com/shopspring/decimal"
)

// --- Requests ---

type registerRequest struct {
	Username     string `json:"username" validate:"required,min=3,max=32"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	Phone        string `json:"phone"`
	FullName     string `json:"full_name"`
	Role         string `json:"role" validate:"required,oneof=buyer seller admin"`
	SecretCode   string `json:"secret_code"`
	StoreName    string `json:"store_name"`
	StoreAddress string `json:"store_address"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	Email        *string `json:"email" validate:"omitempty,email"`
	Phone        *string `json:"phone"`
	FullName     *string `json:"full_name"`
	StoreName    *string `json:"store_name"`
	StoreAddress *string `json:"store_address"`
}

type addressRequest struct {
	Line1      string `json:"line1" validate:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country" validate:"required"`
	Type       string `json:"type" validate:"omitempty,oneof=home other"`
	IsPrimary  bool   `json:"is_primary"`
}

type brandRequest struct {
	Name string `json:"name" validate:"required"`
}

type renameBrandRequest struct {
	NewName string `json:"new_name" validate:"required"`
}

type categoryRequest struct {
	Name       string  `json:"name" validate:"required"`
	ParentName *string `json:"parent_name"`
}

type updateCategoryRequest struct {
	NewName    string  `json:"new_name" validate:"required"`
	ParentName *string `json:"parent_name"`
}

type offerRequest struct {
	Name            string          `json:"name" validate:"required"`
	DiscountPercent decimal.Decimal `json:"discount_percent" validate:"required"`
	StartDate       time.Time       `json:"start_date" validate:"required"`
	EndDate         time.Time       `json:"end_date" validate:"required"`
	IsActive        bool            `json:"is_active"`
}

type updateOfferRequest struct {
	DiscountPercent *decimal.Decimal `json:"discount_percent"`
	StartDate       *time.Time       `json:"start_date"`
	EndDate         *time.Time       `json:"end_date"`
	IsActive        *bool            `json:"is_active"`
}

type createProductRequest struct {
	Name         string          `json:"name" validate:"required"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price" validate:"required"`
	Stock        int             `json:"stock" validate:"min=0"`
	CategoryName string          `json:"category_name" validate:"required"`
	BrandName    string          `json:"brand_name" validate:"required"`
	OfferName    *string         `json:"offer_name"`
}

type updateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	OfferName   *string          `json:"offer_name"`
}

type cartAddRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

type cartUpdateRequest struct {
	Quantity int `json:"quantity"`
}

type wishlistAddRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

type couponRequest struct {
	Code            string          `json:"code" validate:"required"`
	DiscountPercent decimal.Decimal `json:"discount_percent" validate:"required"`
	MaxDiscount     decimal.Decimal `json:"max_discount"`
	MinOrderValue   decimal.Decimal `json:"min_order_value"`
	SingleUse       bool            `json:"single_use"`
	Expiration      time.Time       `json:"expiration" validate:"required"`
}

type updateCouponRequest struct {
	DiscountPercent *decimal.Decimal `json:"discount_percent"`
	MaxDiscount     *decimal.Decimal `json:"max_discount"`
	MinOrderValue   *decimal.Decimal `json:"min_order_value"`
	SingleUse       *bool            `json:"single_use"`
	Expiration      *time.Time       `json:"expiration"`
}

type placeOrderRequest struct {
	PaymentMethod string  `json:"payment_method" validate:"required,oneof=cod online"`
	AddressIndex  *int    `json:"address_index"`
	CouponCode    *string `json:"coupon_code"`
	CardToken     string  `json:"card_token"`
}

type paymentCallbackRequest struct {
	ChargeID string `json:"charge_id" validate:"required"`
	Status   string `json:"status" validate:"required"`
}

// --- Responses ---

type userResponse struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	FullName     string `json:"full_name,omitempty"`
	Role         string `json:"role"`
	StoreName    string `json:"store_name,omitempty"`
	StoreAddress string `json:"store_address,omitempty"`
}

func toUserResponse(u *user.User) userResponse {
	return userResponse{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		Phone:        u.Phone,
		FullName:     u.FullName,
		Role:         string(u.Role),
		StoreName:    u.StoreName,
		StoreAddress: u.StoreAddress,
	}
}

type loginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        userResponse `json:"user"`
}

type addressResponse struct {
	Index      int    `json:"index"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country"`
	Type       string `json:"type"`
	IsPrimary  bool   `json:"is_primary"`
}

func toAddressResponses(addresses []user.Address) []addressResponse {
	out := make([]addressResponse, 0, len(addresses))
	for i, a := range addresses {
		out = append(out, addressResponse{
			Index:      i,
			Line1:      a.Line1,
			Line2:      a.Line2,
			City:       a.City,
			State:      a.State,
			PostalCode: a.PostalCode,
			Country:    a.Country,
			Type:       string(a.Type),
			IsPrimary:  a.IsPrimary,
		})
	}
	return out
}

type offerResponse struct {
	Name            string          `json:"name"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	StartDate       time.Time       `json:"start_date"`
	EndDate         time.Time       `json:"end_date"`
	IsActive        bool            `json:"is_active"`
}

func toOfferResponse(o *catalog.Offer) *offerResponse {
	if o == nil {
		return nil
	}
	return &offerResponse{
		Name:            o.Name,
		DiscountPercent: o.DiscountPercent,
		StartDate:       o.StartDate,
		EndDate:         o.EndDate,
		IsActive:        o.IsActive,
	}
}

type categoryResponse struct {
	Name       string  `json:"name"`
	ParentName *string `json:"parent_name,omitempty"`
}

type productResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	FinalPrice  decimal.Decimal `json:"final_price"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category"`
	Brand       string          `json:"brand"`
	Seller      string          `json:"seller"`
	Offer       *offerResponse  `json:"offer,omitempty"`
}

func toProductResponse(p *product.Product, now time.Time) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		FinalPrice:  p.FinalPrice(now),
		Stock:       p.Stock,
		Category:    p.CategoryName,
		Brand:       p.BrandName,
		Seller:      p.SellerName,
		Offer:       toOfferResponse(p.Offer),
	}
}

type cartLineResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type cartResponse struct {
	Items []cartLineResponse `json:"items"`
	Total decimal.Decimal    `json:"total"`
}

func toCartResponse(lines []*cart.Line, total decimal.Decimal, now time.Time) cartResponse {
	items := make([]cartLineResponse, 0, len(lines))
	for _, line := range lines {
		unit := line.Product.FinalPrice(now)
		items = append(items, cartLineResponse{
			ProductID: line.ProductID,
			Name:      line.Product.Name,
			UnitPrice: unit,
			Quantity:  line.Quantity,
			LineTotal: unit.Mul(decimal.NewFromInt(int64(line.Quantity))),
		})
	}
	return cartResponse{Items: items, Total: total}
}

type wishlistEntryResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	AddedAt   time.Time       `json:"added_at"`
}

func toWishlistResponses(entries []*wishlist.Entry) []wishlistEntryResponse {
	out := make([]wishlistEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, wishlistEntryResponse{
			ProductID: e.ProductID,
			Name:      e.Product.Name,
			Price:     e.Product.Price,
			AddedAt:   e.CreatedAt,
		})
	}
	return out
}

type orderItemResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Seller    string          `json:"seller"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type orderResponse struct {
	ID            string              `json:"id"`
	InvoiceNumber string              `json:"invoice_number"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	Discount      decimal.Decimal     `json:"discount"`
	Total         decimal.Decimal     `json:"total"`
	CouponCode    *string             `json:"coupon_code,omitempty"`
	PaymentMethod string              `json:"payment_method"`
	PaymentStatus string              `json:"payment_status"`
	Status        string              `json:"status"`
	CreatedAt     time.Time           `json:"created_at"`
	ShipTo        string              `json:"ship_to"`
	Items         []orderItemResponse `json:"items"`
}

func toOrderResponse(o *order.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, orderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Seller:    item.SellerName,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal,
		})
	}

	ship := o.ShipLine1
	if o.ShipLine2 != "" {
		ship += ", " + o.ShipLine2
	}
	ship += ", " + o.ShipCity
	if o.ShipState != "" {
		ship += ", " + o.ShipState
	}
	if o.ShipPostalCode != "" {
		ship += " " + o.ShipPostalCode
	}
	ship += ", " + o.ShipCountry

	return orderResponse{
		ID:            o.ID,
		InvoiceNumber: o.InvoiceNumber,
		Subtotal:      o.Subtotal,
		Discount:      o.Discount,
		Total:         o.Total,
		CouponCode:    o.CouponCode,
		PaymentMethod: string(o.PaymentMethod),
		PaymentStatus: string(o.PaymentStatus),
		Status:        o.Status,
		CreatedAt:     o.CreatedAt,
		ShipTo:        ship,
		Items:         items,
	}
}

type historyEntryResponse struct {
	Status    string    `json:"status"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toHistoryResponses(entries []*order.HistoryEntry) []historyEntryResponse {
	out := make([]historyEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, historyEntryResponse{
			Status:    e.Status,
			Note:      e.Note,
			CreatedAt: e.CreatedAt,
		})
	}
	return out
}
