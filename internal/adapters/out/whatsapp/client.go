// Package whatsapp sends customer-facing messages through a WhatsApp gateway
// API. It implements both the notification port and the reward granter: the
// referral reward is delivered as a voucher message.
//
// All sends happen after the controlling transaction has committed; a failed
// delivery is the caller's to log, never to roll back on.
package whatsapp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"laundry/internal/core/domain/model/customer"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/go-resty/resty/v2"
)

const sendPath = "/api/v1/messages"

// Config carries the gateway connection settings.
type Config struct {
	BaseURL string
	Token   string
}

// Client talks to the WhatsApp gateway.
type Client struct {
	http   *resty.Client
	logger *slog.Logger
}

// NewClient creates a WhatsApp gateway client.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errs.NewValueIsRequiredError("whatsapp base URL")
	}
	if cfg.Token == "" {
		return nil, errs.NewValueIsRequiredError("whatsapp token")
	}

	return &Client{
		http: resty.New().
			SetBaseURL(cfg.BaseURL).
			SetAuthToken(cfg.Token).
			SetTimeout(10 * time.Second),
		logger: logger.With("component", "whatsapp_client"),
	}, nil
}

type sendMessageRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// SendOrderCompleted tells the customer their laundry is done.
func (c *Client) SendOrderCompleted(ctx context.Context, phone string, name string, orderID kernel.UUID) error {
	message := fmt.Sprintf(
		"Halo %s, pesanan laundry Anda (%s) telah selesai. Terima kasih telah menggunakan layanan kami!",
		name, orderID.String())

	return c.send(ctx, phone, message)
}

// SendPaymentRequest sends the customer the payment link for a freshly priced
// order.
func (c *Client) SendPaymentRequest(ctx context.Context, aggregate *order.Order, link order.PaymentLink) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	contact := aggregate.Contact()
	message := fmt.Sprintf(
		"Halo %s, total biaya laundry Anda Rp%s. Silakan lakukan pembayaran melalui tautan berikut: %s (berlaku hingga %s).",
		contact.Name,
		aggregate.PriceAfter().String(),
		link.URL(),
		link.ExpiresAt().Format("02 Jan 2006 15:04"),
	)

	return c.send(ctx, contact.Phone, message)
}

// GrantReward delivers the referral reward voucher to the customer.
func (c *Client) GrantReward(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	message := fmt.Sprintf(
		"Selamat %s! Anda mendapatkan voucher gratis satu kali cuci berkat referral Anda. Tunjukkan pesan ini di outlet kami.",
		aggregate.Name())

	return c.send(ctx, aggregate.Phone(), message)
}

func (c *Client) send(ctx context.Context, phone string, message string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(sendMessageRequest{Phone: phone, Message: message}).
		Post(sendPath)
	if err != nil {
		return fmt.Errorf("whatsapp send: %w", err)
	}
	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusCreated {
		return fmt.Errorf("whatsapp send: gateway responded with status %d", resp.StatusCode())
	}

	c.logger.DebugContext(ctx, "message delivered", "phone", phone)
	return nil
}
