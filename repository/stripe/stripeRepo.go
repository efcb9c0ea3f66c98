package striperepo

import (
	"context"

	"github.com/stripe/stripe-go/v81"
)

// ProductReq describes the provider-side listing for a rentable car. The car
// id travels in product metadata so later checkouts find the same product.
type ProductReq struct {
	CarID       string
	Name        string
	Description string
	Images      []string
	UnitAmount  int64 // minor currency units per day
	Currency    string
}

type Product struct {
	ProductID string
	PriceID   string
}

type SessionReq struct {
	PriceID    string
	Quantity   int64
	UserID     string
	OrderID    string
	SuccessURL string
	CancelURL  string
}

type Session struct {
	SessionID string
	URL       string
}

type Repo interface {
	// FindProductByCarID searches the provider catalog by metadata; nil when absent.
	FindProductByCarID(ctx context.Context, carID string) (*Product, error)
	// CreateProduct is idempotent per car: the request carries an idempotency
	// key derived from the car id.
	CreateProduct(ctx context.Context, req ProductReq) (*Product, error)
	CreateCheckoutSession(ctx context.Context, req SessionReq) (*Session, error)
	// VerifyEvent parses a webhook payload, checking the signature when a
	// webhook secret is configured.
	VerifyEvent(payload []byte, sigHeader string) (*stripe.Event, error)
}
