package striperepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
	"github.com/stripe/stripe-go/v81/webhook"

	"github.com/furkanevin/car-rental/util/httpx"
)

type apiRepo struct {
	sc            *client.API
	webhookSecret string
}

func NewAPI(secretKey, webhookSecret string) Repo {
	sc := client.New(secretKey, stripe.NewBackends(httpx.Client()))
	return &apiRepo{sc: sc, webhookSecret: webhookSecret}
}

func (r *apiRepo) FindProductByCarID(ctx context.Context, carID string) (*Product, error) {
	params := &stripe.ProductSearchParams{
		SearchParams: stripe.SearchParams{
			Query:   fmt.Sprintf("metadata['car_id']:'%s'", carID),
			Context: ctx,
		},
	}

	iter := r.sc.Products.Search(params)
	if iter.Next() {
		return toProduct(iter.Product())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return nil, nil
}

func (r *apiRepo) CreateProduct(ctx context.Context, req ProductReq) (*Product, error) {
	params := &stripe.ProductParams{
		Name:        stripe.String(req.Name),
		Description: stripe.String(req.Description),
		Images:      stripe.StringSlice(req.Images),
		DefaultPriceData: &stripe.ProductDefaultPriceDataParams{
			Currency:   stripe.String(req.Currency),
			UnitAmount: stripe.Int64(req.UnitAmount),
		},
	}
	params.Context = ctx
	params.AddMetadata("car_id", req.CarID)
	// Concurrent first-time checkouts for the same car collapse to one product.
	params.SetIdempotencyKey("product-car-" + req.CarID)

	prod, err := r.sc.Products.New(params)
	if err != nil {
		return nil, err
	}
	return toProduct(prod)
}

func (r *apiRepo) CreateCheckoutSession(ctx context.Context, req SessionReq) (*Session, error) {
	params := &stripe.CheckoutSessionParams{
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			Price:    stripe.String(req.PriceID),
			Quantity: stripe.Int64(req.Quantity),
		}},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
	}
	params.Context = ctx
	params.AddMetadata("user_id", req.UserID)
	params.AddMetadata("order_id", req.OrderID)

	s, err := r.sc.CheckoutSessions.New(params)
	if err != nil {
		return nil, err
	}
	if s.URL == "" {
		return nil, errors.New("stripe: empty session url")
	}
	return &Session{SessionID: s.ID, URL: s.URL}, nil
}

func (r *apiRepo) VerifyEvent(payload []byte, sigHeader string) (*stripe.Event, error) {
	if r.webhookSecret != "" {
		ev, err := webhook.ConstructEvent(payload, sigHeader, r.webhookSecret)
		if err != nil {
			return nil, err
		}
		return &ev, nil
	}

	// No secret configured: accept unsigned payloads (local/dev trust model).
	ev := &stripe.Event{}
	if err := json.Unmarshal(payload, ev); err != nil {
		return nil, fmt.Errorf("bad webhook json: %w", err)
	}
	return ev, nil
}

func toProduct(p *stripe.Product) (*Product, error) {
	if p == nil {
		return nil, errors.New("stripe: nil product")
	}
	if p.DefaultPrice == nil || p.DefaultPrice.ID == "" {
		return nil, fmt.Errorf("stripe: product %s has no default price", p.ID)
	}
	return &Product{ProductID: p.ID, PriceID: p.DefaultPrice.ID}, nil
}
