package notify

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"lokapasar-be/internal/order"
	"lokapasar-be/internal/user"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(e Email) error {
	return m.Called(e).Error(0)
}

type MockSMSSender struct {
	mock.Mock
}

func (m *MockSMSSender) Send(ctx context.Context, to, body string) error {
	return m.Called(ctx, to, body).Error(0)
}

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) FindByID(ctx context.Context, id string) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func sampleOrder() *order.Order {
	code := "SAVE10"
	return &order.Order{
		ID:            "o-1",
		BuyerID:       "b-1",
		InvoiceNumber: "INV-20260830-120000-001-0001",
		Subtotal:      decimal.NewFromInt(240),
		Discount:      decimal.NewFromInt(20),
		Total:         decimal.NewFromInt(220),
		CouponCode:    &code,
		PaymentMethod: order.PaymentCOD,
		PaymentStatus: order.PaymentStatusPending,
		Status:        order.StatusPlaced,
		CreatedAt:     time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		ShipLine1:     "1 Main St",
		ShipCity:      "Springfield",
		ShipCountry:   "US",
		Items: []*order.Item{
			{ProductID: "p-1", Name: "Widget", SellerName: "acme",
				UnitPrice: decimal.NewFromInt(80), Quantity: 3, LineTotal: decimal.NewFromInt(240)},
		},
	}
}

func sampleBuyer() *user.User {
	return &user.User{ID: "b-1", Username: "alice", Email: "alice@example.com", Phone: "+15550100"}
}

func TestWriteInvoicePDF(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteInvoicePDF(dir, sampleOrder(), sampleBuyer())
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(500))
	assert.Contains(t, path, "INV-20260830-120000-001-0001.pdf")
}

func TestDispatcher_OrderPlaced(t *testing.T) {
	t.Run("EmailsInvoiceAndTexts", func(t *testing.T) {
		mailer := new(MockMailer)
		sms := new(MockSMSSender)
		d := NewDispatcher(mailer, sms, new(MockUserStore), t.TempDir())

		mailer.On("Send", mock.MatchedBy(func(e Email) bool {
			return e.To == "alice@example.com" && e.AttachmentPath != ""
		})).Return(nil)
		sms.On("Send", mock.Anything, "+15550100", mock.Anything).Return(nil)

		d.sendOrderPlaced(sampleOrder(), sampleBuyer())

		mailer.AssertExpectations(t)
		sms.AssertExpectations(t)
	})

	t.Run("DeliveryFailuresAreSwallowed", func(t *testing.T) {
		mailer := new(MockMailer)
		sms := new(MockSMSSender)
		d := NewDispatcher(mailer, sms, new(MockUserStore), t.TempDir())

		mailer.On("Send", mock.Anything).Return(errors.New("smtp down"))
		sms.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("sms down"))

		assert.NotPanics(t, func() {
			d.sendOrderPlaced(sampleOrder(), sampleBuyer())
		})
	})

	t.Run("NoPhoneSkipsSMS", func(t *testing.T) {
		mailer := new(MockMailer)
		sms := new(MockSMSSender)
		d := NewDispatcher(mailer, sms, new(MockUserStore), t.TempDir())

		mailer.On("Send", mock.Anything).Return(nil)

		buyer := sampleBuyer()
		buyer.Phone = ""
		d.sendOrderPlaced(sampleOrder(), buyer)

		sms.AssertNotCalled(t, "Send")
	})
}

func TestDispatcher_LowStock(t *testing.T) {
	t.Run("EmailsSeller", func(t *testing.T) {
		mailer := new(MockMailer)
		users := new(MockUserStore)
		d := NewDispatcher(mailer, new(MockSMSSender), users, t.TempDir())

		users.On("FindByID", mock.Anything, "s-1").
			Return(&user.User{ID: "s-1", Username: "acme", Email: "acme@example.com"}, nil)
		mailer.On("Send", mock.MatchedBy(func(e Email) bool {
			return e.To == "acme@example.com"
		})).Return(nil)

		d.sendLowStock([]order.LowStockAlert{
			{ProductID: "p-1", ProductName: "Widget", SellerID: "s-1", Stock: 4},
		})

		mailer.AssertExpectations(t)
	})

	t.Run("UnknownSellerSkipped", func(t *testing.T) {
		mailer := new(MockMailer)
		users := new(MockUserStore)
		d := NewDispatcher(mailer, new(MockSMSSender), users, t.TempDir())

		users.On("FindByID", mock.Anything, "s-gone").
			Return(nil, user.ErrUserNotFound)

		d.sendLowStock([]order.LowStockAlert{
			{ProductID: "p-1", SellerID: "s-gone", Stock: 2},
		})

		mailer.AssertNotCalled(t, "Send")
	})
}

func TestSMSClient_Send(t *testing.T) {
	t.Run("PostsForm", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "+15550100", r.PostForm.Get("To"))
			assert.Equal(t, "+15550000", r.PostForm.Get("From"))
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		c := &smsClient{
			accountSID: "sid",
			authToken:  "token",
			from:       "+15550000",
			baseURL:    server.URL,
			httpClient: server.Client(),
		}
		require.NoError(t, c.Send(context.Background(), "+15550100", "hello"))
	})

	t.Run("ProviderError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		c := &smsClient{
			baseURL:    server.URL,
			httpClient: server.Client(),
		}
		assert.Error(t, c.Send(context.Background(), "+15550100", "hello"))
	})
}
