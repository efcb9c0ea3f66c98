package paymentsvc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v81"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/furkanevin/car-rental/model"
	orderrepo "github.com/furkanevin/car-rental/repository/order"
	striperepo "github.com/furkanevin/car-rental/repository/stripe"
)

type Service interface {
	// HandleEvent processes a provider webhook delivery. Callers must answer
	// 2xx regardless of the returned error; the provider stops retrying on
	// any 2xx and a retry storm helps nobody.
	HandleEvent(ctx context.Context, sigHeader string, raw []byte) error
}

type service struct {
	sp striperepo.Repo
	or orderrepo.Repo
}

func New(sp striperepo.Repo, or orderrepo.Repo) Service {
	return &service{sp: sp, or: or}
}

func (s *service) HandleEvent(ctx context.Context, sigHeader string, raw []byte) error {
	event, err := s.sp.VerifyEvent(raw, sigHeader)
	if err != nil {
		return err
	}
	if event.Data == nil {
		return errors.New("webhook event has no data")
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return fmt.Errorf("bad session payload: %w", err)
	}

	orderID, err := primitive.ObjectIDFromHex(session.Metadata["order_id"])
	if err != nil {
		return fmt.Errorf("webhook session has no usable order_id: %w", err)
	}

	switch {
	case event.Type == stripe.EventTypeCheckoutSessionCompleted:
		return s.transition(ctx, orderID, model.OrderPaid)
	case session.Status == stripe.CheckoutSessionStatusExpired:
		return s.transition(ctx, orderID, model.OrderCancelled)
	default:
		return nil
	}
}

func (s *service) transition(ctx context.Context, orderID primitive.ObjectID, status model.OrderStatus) error {
	moved, err := s.or.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return err
	}
	if !moved {
		// Unknown order or already settled; either way there is nothing to redo.
		return fmt.Errorf("order %s not moved to %s", orderID.Hex(), status)
	}
	return nil
}
