package rbac

// Role is an account role carried in the access token.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleSeller Role = "seller"
	RoleBuyer  Role = "buyer"
)

// Action is a guarded operation on the HTTP surface.
type Action string

const (
	ActionManageCatalog Action = "manage_catalog"
	ActionManageCoupon  Action = "manage_coupon"
	ActionPlaceOrder    Action = "place_order"
	ActionViewOrders    Action = "view_orders"
	ActionUseCart       Action = "use_cart"
	ActionUseWishlist   Action = "use_wishlist"
	ActionManageUsers   Action = "manage_users"
)

var policy = map[Action][]Role{
	ActionManageCatalog: {RoleAdmin, RoleSeller},
	ActionManageCoupon:  {RoleAdmin, RoleSeller},
	ActionPlaceOrder:    {RoleBuyer},
	ActionViewOrders:    {RoleBuyer},
	ActionUseCart:       {RoleBuyer},
	ActionUseWishlist:   {RoleBuyer},
	ActionManageUsers:   {RoleAdmin},
}

// Allow reports whether the given role may perform the given action.
// Unknown roles and unknown actions are denied.
func Allow(role Role, action Action) bool {
	for _, r := range policy[action] {
		if r == role {
			return true
		}
	}
	return false
}

// Valid reports whether the role is one of the known account roles.
func Valid(role Role) bool {
	switch role {
	case RoleAdmin, RoleSeller, RoleBuyer:
		return true
	}
	return false
}
