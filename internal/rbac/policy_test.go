package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllow(t *testing.T) {
	cases := []struct {
		name   string
		role   Role
		action Action
		want   bool
	}{
		{"AdminManagesCatalog", RoleAdmin, ActionManageCatalog, true},
		{"SellerManagesCatalog", RoleSeller, ActionManageCatalog, true},
		{"BuyerCannotManageCatalog", RoleBuyer, ActionManageCatalog, false},
		{"SellerManagesCoupons", RoleSeller, ActionManageCoupon, true},
		{"BuyerPlacesOrder", RoleBuyer, ActionPlaceOrder, true},
		{"SellerCannotPlaceOrder", RoleSeller, ActionPlaceOrder, false},
		{"AdminCannotPlaceOrder", RoleAdmin, ActionPlaceOrder, false},
		{"BuyerUsesCart", RoleBuyer, ActionUseCart, true},
		{"AdminManagesUsers", RoleAdmin, ActionManageUsers, true},
		{"SellerCannotManageUsers", RoleSeller, ActionManageUsers, false},
		{"UnknownRoleDenied", Role("superuser"), ActionManageCatalog, false},
		{"UnknownActionDenied", RoleAdmin, Action("drop_tables"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Allow(tc.role, tc.action))
		})
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(RoleAdmin))
	assert.True(t, Valid(RoleSeller))
	assert.True(t, Valid(RoleBuyer))
	assert.False(t, Valid(Role("root")))
	assert.False(t, Valid(Role("")))
}
