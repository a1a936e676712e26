package notify

import (
	"context"
	"fmt"
	"time"

	"lokapasar-be/internal/logger"
	"lokapasar-be/internal/order"
	"lokapasar-be/internal/user"

	"go.uber.org/zap"
)

// UserStore resolves seller contact details for restock alerts.
type UserStore interface {
	FindByID(ctx context.Context, id string) (*user.User, error)
}

// Dispatcher fans order events out to email and SMS in the background.
// Failures are logged and never surface to the buyer's request.
type Dispatcher struct {
	mailer     Mailer
	sms        SMSSender
	users      UserStore
	invoiceDir string
	timeout    time.Duration
}

func NewDispatcher(mailer Mailer, sms SMSSender, users UserStore, invoiceDir string) *Dispatcher {
	return &Dispatcher{
		mailer:     mailer,
		sms:        sms,
		users:      users,
		invoiceDir: invoiceDir,
		timeout:    30 * time.Second,
	}
}

func (d *Dispatcher) OrderPlaced(o *order.Order, buyer *user.User) {
	go d.sendOrderPlaced(o, buyer)
}

func (d *Dispatcher) sendOrderPlaced(o *order.Order, buyer *user.User) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	log := logger.L().With(
		zap.String("order_id", o.ID),
		zap.String("invoice_number", o.InvoiceNumber),
	)

	pdfPath, err := WriteInvoicePDF(d.invoiceDir, o, buyer)
	if err != nil {
		log.Error("failed to render invoice pdf", zap.Error(err))
		pdfPath = ""
	}

	body := fmt.Sprintf(
		"Hi %s,\n\nThanks for your order. Invoice %s totals %s.\nWe'll let you know when it ships.\n",
		buyer.Username, o.InvoiceNumber, o.Total.StringFixed(2),
	)
	err = d.mailer.Send(Email{
		To:             buyer.Email,
		Subject:        "Your order " + o.InvoiceNumber,
		Body:           body,
		AttachmentPath: pdfPath,
	})
	if err != nil {
		log.Error("failed to email invoice", zap.Error(err))
	}

	if buyer.Phone != "" {
		sms := fmt.Sprintf("Order %s received, total %s.", o.InvoiceNumber, o.Total.StringFixed(2))
		if err := d.sms.Send(ctx, buyer.Phone, sms); err != nil {
			log.Error("failed to send order sms", zap.Error(err))
		}
	}
}

func (d *Dispatcher) LowStock(alerts []order.LowStockAlert) {
	go d.sendLowStock(alerts)
}

func (d *Dispatcher) sendLowStock(alerts []order.LowStockAlert) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	for _, alert := range alerts {
		log := logger.L().With(
			zap.String("product_id", alert.ProductID),
			zap.Int("stock", alert.Stock),
		)

		seller, err := d.users.FindByID(ctx, alert.SellerID)
		if err != nil {
			log.Error("failed to look up seller for restock alert", zap.Error(err))
			continue
		}

		body := fmt.Sprintf(
			"Hi %s,\n\nStock for %q is down to %d. Time to restock.\n",
			seller.Username, alert.ProductName, alert.Stock,
		)
		err = d.mailer.Send(Email{
			To:      seller.Email,
			Subject: fmt.Sprintf("Low stock: %s", alert.ProductName),
			Body:    body,
		})
		if err != nil {
			log.Error("failed to send restock email", zap.Error(err))
		}
	}
}
