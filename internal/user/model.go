package user

import (
	"time"

	"lokapasar-be/internal/rbac"
)

type User struct {
	ID             string
	Username       string
	Email          string
	Phone          string
	HashedPassword string
	FullName       string
	Role           rbac.Role
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Seller profile, empty for buyers and admins.
	StoreName    string
	StoreAddress string
}

type AddressType string

const (
	AddressTypeHome  AddressType = "home"
	AddressTypeOther AddressType = "other"
)

type Address struct {
	ID         int64
	UserID     string
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
	Type       AddressType
	IsPrimary  bool
	CreatedAt  time.Time
}

type RegisterParams struct {
	Username     string
	Email        string
	Password     string
	FullName     string
	Phone        string
	Role         rbac.Role
	SecretCode   string
	StoreName    string
	StoreAddress string
}

type UpdateProfileParams struct {
	UserID       string
	Email        *string
	FullName     *string
	Phone        *string
	StoreName    *string
	StoreAddress *string
}
