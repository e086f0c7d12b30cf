// Package doku implements the payment gateway port against the Doku checkout
// API. Link generation happens mid-transaction during pricing, so every
// failure is surfaced as a PaymentGatewayError for the caller to roll back on.
package doku

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const (
	checkoutPath = "/checkout/v1/payment"
	statusPath   = "/orders/v1/status/{invoice}"

	transactionSuccess = "SUCCESS"
)

// Config carries the gateway connection settings.
type Config struct {
	BaseURL           string
	ClientID          string
	SecretKey         string
	LinkExpiryMinutes int
}

// Client talks to the Doku checkout API.
type Client struct {
	http      *resty.Client
	clientID  string
	secretKey string
	expiry    time.Duration
	logger    *slog.Logger
}

// NewClient creates a Doku gateway client.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errs.NewValueIsRequiredError("doku base URL")
	}
	if cfg.ClientID == "" {
		return nil, errs.NewValueIsRequiredError("doku client ID")
	}
	if cfg.SecretKey == "" {
		return nil, errs.NewValueIsRequiredError("doku secret key")
	}
	if cfg.LinkExpiryMinutes <= 0 {
		return nil, errs.NewValueIsInvalidError("doku link expiry minutes")
	}

	return &Client{
		http: resty.New().
			SetBaseURL(cfg.BaseURL).
			SetTimeout(10 * time.Second),
		clientID:  cfg.ClientID,
		secretKey: cfg.SecretKey,
		expiry:    time.Duration(cfg.LinkExpiryMinutes) * time.Minute,
		logger:    logger.With("component", "doku_client"),
	}, nil
}

type checkoutRequest struct {
	Order    checkoutOrder    `json:"order"`
	Payment  checkoutPayment  `json:"payment"`
	Customer checkoutCustomer `json:"customer"`
}

type checkoutOrder struct {
	InvoiceNumber string `json:"invoice_number"`
	Amount        string `json:"amount"`
}

type checkoutPayment struct {
	PaymentDueDate int `json:"payment_due_date"` // minutes
}

type checkoutCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type checkoutResponse struct {
	Response struct {
		Payment struct {
			URL string `json:"url"`
		} `json:"payment"`
	} `json:"response"`
}

type statusResponse struct {
	Transaction struct {
		Status string `json:"status"`
	} `json:"transaction"`
}

// GeneratePaymentLink creates a checkout link for the order's final price.
// The expiry is computed here, so the stored link and the gateway-side due
// date share one configuration source.
func (c *Client) GeneratePaymentLink(ctx context.Context, aggregate *order.Order) (order.PaymentLink, error) {
	if err := aggregate.Validate(); err != nil {
		return order.PaymentLink{}, err
	}
	if aggregate.PriceAfter().IsZero() {
		return order.PaymentLink{}, errs.NewValueIsRequiredError("price")
	}

	contact := aggregate.Contact()
	body := checkoutRequest{
		Order: checkoutOrder{
			InvoiceNumber: aggregate.ID().String(),
			Amount:        aggregate.PriceAfter().String(),
		},
		Payment: checkoutPayment{
			PaymentDueDate: int(c.expiry.Minutes()),
		},
		Customer: checkoutCustomer{
			Name:  contact.Name,
			Email: contact.Email,
			Phone: contact.Phone,
		},
	}

	var result checkoutResponse
	resp, err := c.request(ctx).
		SetBody(body).
		SetResult(&result).
		Post(checkoutPath)
	if err != nil {
		return order.PaymentLink{}, errs.NewPaymentGatewayError("generate payment link", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return order.PaymentLink{}, errs.NewPaymentGatewayError("generate payment link",
			fmt.Errorf("doku responded with status %d", resp.StatusCode()))
	}
	if result.Response.Payment.URL == "" {
		return order.PaymentLink{}, errs.NewPaymentGatewayError("generate payment link",
			fmt.Errorf("doku response carries no payment url"))
	}

	return order.NewPaymentLink(result.Response.Payment.URL, time.Now().Add(c.expiry))
}

// GetPaymentStatus reports the provider-side payment state for an order.
// Anything but a successful transaction maps to unpaid; the caller keeps
// polling until the link expires.
func (c *Client) GetPaymentStatus(ctx context.Context, orderID kernel.UUID) (order.PaymentStatus, error) {
	if err := orderID.Validate(); err != nil {
		return order.PaymentUnknown, err
	}

	var result statusResponse
	resp, err := c.request(ctx).
		SetPathParam("invoice", orderID.String()).
		SetResult(&result).
		Get(statusPath)
	if err != nil {
		return order.PaymentUnknown, errs.NewPaymentGatewayError("get payment status", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return order.PaymentUnknown, errs.NewPaymentGatewayError("get payment status",
			fmt.Errorf("doku responded with status %d", resp.StatusCode()))
	}

	if result.Transaction.Status == transactionSuccess {
		return order.PaymentPaid, nil
	}
	return order.PaymentUnpaid, nil
}

// request prepares one signed API call. Doku authenticates each request with
// the client id, a unique request id, a timestamp, and an HMAC signature over
// the three.
func (c *Client) request(ctx context.Context) *resty.Request {
	requestID := uuid.NewString()
	timestamp := time.Now().UTC().Format(time.RFC3339)

	return c.http.R().
		SetContext(ctx).
		SetHeader("Client-Id", c.clientID).
		SetHeader("Request-Id", requestID).
		SetHeader("Request-Timestamp", timestamp).
		SetHeader("Signature", c.sign(requestID, timestamp))
}

func (c *Client) sign(requestID string, timestamp string) string {
	mac := hmac.New(sha256.New, []byte(c.secretKey))
	fmt.Fprintf(mac, "Client-Id:%s\nRequest-Id:%s\nRequest-Timestamp:%s", c.clientID, requestID, timestamp)
	return "HMACSHA256=" + base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
