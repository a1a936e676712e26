package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateBrand(ctx context.Context, name string) (*Brand, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Brand), args.Error(1)
}

func (m *MockRepository) GetBrand(ctx context.Context, name string) (*Brand, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Brand), args.Error(1)
}

func (m *MockRepository) GetBrands(ctx context.Context) ([]*Brand, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Brand), args.Error(1)
}

func (m *MockRepository) RenameBrand(ctx context.Context, name, newName string) (*Brand, error) {
	args := m.Called(ctx, name, newName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Brand), args.Error(1)
}

func (m *MockRepository) DeleteBrand(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

func (m *MockRepository) CreateCategory(ctx context.Context, name string, parentName *string) (*Category, error) {
	args := m.Called(ctx, name, parentName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Category), args.Error(1)
}

func (m *MockRepository) GetCategory(ctx context.Context, name string) (*Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Category), args.Error(1)
}

func (m *MockRepository) GetCategories(ctx context.Context) ([]*Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Category), args.Error(1)
}

func (m *MockRepository) UpdateCategory(ctx context.Context, name, newName string, parentName *string) (*Category, error) {
	args := m.Called(ctx, name, newName, parentName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Category), args.Error(1)
}

func (m *MockRepository) DeleteCategory(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

func (m *MockRepository) CreateOffer(ctx context.Context, offer *Offer) (*Offer, error) {
	args := m.Called(ctx, offer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Offer), args.Error(1)
}

func (m *MockRepository) GetOffer(ctx context.Context, name string) (*Offer, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Offer), args.Error(1)
}

func (m *MockRepository) GetOffers(ctx context.Context) ([]*Offer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Offer), args.Error(1)
}

func (m *MockRepository) UpdateOffer(ctx context.Context, params UpdateOfferParams) (*Offer, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Offer), args.Error(1)
}

func (m *MockRepository) DeleteOffer(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

// --- Tests ---

func TestOffer_ActiveAt(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	offer := &Offer{
		Name:            "flash-sale",
		DiscountPercent: decimal.NewFromInt(20),
		StartDate:       now.Add(-time.Hour),
		EndDate:         now.Add(time.Hour),
		IsActive:        true,
	}

	t.Run("WithinWindow", func(t *testing.T) {
		assert.True(t, offer.ActiveAt(now))
	})

	t.Run("AtStartBoundaryInclusive", func(t *testing.T) {
		assert.True(t, offer.ActiveAt(offer.StartDate))
	})

	t.Run("AtEndBoundaryExclusive", func(t *testing.T) {
		assert.False(t, offer.ActiveAt(offer.EndDate))
	})

	t.Run("BeforeWindow", func(t *testing.T) {
		assert.False(t, offer.ActiveAt(offer.StartDate.Add(-time.Second)))
	})

	t.Run("InactiveFlag", func(t *testing.T) {
		inactive := *offer
		inactive.IsActive = false
		assert.False(t, inactive.ActiveAt(now))
	})

	t.Run("NilOffer", func(t *testing.T) {
		var o *Offer
		assert.False(t, o.ActiveAt(now))
	})
}

func TestService_CreateOffer(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		offer := Offer{
			Name:            "promo",
			DiscountPercent: decimal.NewFromInt(15),
			StartDate:       now,
			EndDate:         now.Add(24 * time.Hour),
			IsActive:        true,
		}
		mockRepo.On("CreateOffer", ctx, mock.Anything).Return(&offer, nil)

		res, err := svc.CreateOffer(ctx, offer)
		require.NoError(t, err)
		assert.Equal(t, "promo", res.Name)
	})

	t.Run("PercentOutOfRange", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		_, err := svc.CreateOffer(ctx, Offer{
			Name:            "bad",
			DiscountPercent: decimal.NewFromInt(120),
			StartDate:       now,
			EndDate:         now.Add(time.Hour),
		})
		assert.ErrorIs(t, err, ErrInvalidOffer)
		mockRepo.AssertNotCalled(t, "CreateOffer")
	})

	t.Run("EndBeforeStart", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		_, err := svc.CreateOffer(ctx, Offer{
			Name:            "bad",
			DiscountPercent: decimal.NewFromInt(10),
			StartDate:       now,
			EndDate:         now.Add(-time.Hour),
		})
		assert.ErrorIs(t, err, ErrInvalidOffer)
	})
}

func TestService_GetOffers(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)

	mockRepo.On("GetOffers", ctx).Return([]*Offer{
		{ID: "o-1", Name: "flash-sale"},
		{ID: "o-2", Name: "promo"},
	}, nil)

	offers, err := svc.GetOffers(ctx)
	require.NoError(t, err)
	require.Len(t, offers, 2)
	assert.Equal(t, "flash-sale", offers[0].Name)
}

func TestService_Brands(t *testing.T) {
	ctx := context.Background()

	t.Run("Create", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("CreateBrand", ctx, "Acme").Return(&Brand{ID: "b-1", Name: "Acme"}, nil)

		b, err := svc.CreateBrand(ctx, "Acme")
		require.NoError(t, err)
		assert.Equal(t, "b-1", b.ID)
	})

	t.Run("Duplicate", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("CreateBrand", ctx, "Acme").Return(nil, ErrBrandExists)

		_, err := svc.CreateBrand(ctx, "Acme")
		assert.ErrorIs(t, err, ErrBrandExists)
	})
}
