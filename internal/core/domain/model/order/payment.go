package order

import (
	"time"

	"laundry/internal/pkg/errs"
)

// PaymentLink is a value object carrying the gateway checkout URL for an
// order together with its expiry timestamp. A link is generated fresh each
// time pricing completes; a later generation supersedes the stored one, so an
// order holds at most one active link at a time.
type PaymentLink struct {
	url       string
	expiresAt time.Time
}

// NewPaymentLink creates a payment link value.
// The URL must be non-empty and the expiry must be set.
func NewPaymentLink(url string, expiresAt time.Time) (PaymentLink, error) {
	if url == "" {
		return PaymentLink{}, errs.NewValueIsRequiredError("payment link URL")
	}
	if expiresAt.IsZero() {
		return PaymentLink{}, errs.NewValueIsRequiredError("payment link expiry")
	}

	return PaymentLink{url: url, expiresAt: expiresAt}, nil
}

// URL returns the gateway checkout URL.
func (l PaymentLink) URL() string {
	return l.url
}

// ExpiresAt returns the instant after which the link can no longer be paid.
func (l PaymentLink) ExpiresAt() time.Time {
	return l.expiresAt
}

// IsExpired reports whether the link has expired as of now.
func (l PaymentLink) IsExpired(now time.Time) bool {
	return now.After(l.expiresAt)
}
