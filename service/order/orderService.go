package ordersvc

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/furkanevin/car-rental/model"
	carrepo "github.com/furkanevin/car-rental/repository/car"
	orderrepo "github.com/furkanevin/car-rental/repository/order"
	userrepo "github.com/furkanevin/car-rental/repository/user"
)

// errors used by controllers

type ErrCode string

const (
	ErrBadID    ErrCode = "BAD_ID"
	ErrNotFound ErrCode = "NOT_FOUND"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// View is an order with its linked records resolved for transport.
type View struct {
	ID          primitive.ObjectID `json:"_id"`
	Status      model.OrderStatus  `json:"status"`
	TotalAmount float64            `json:"totalAmount"`
	Currency    string             `json:"currency"`
	Rental      model.Rental       `json:"rental"`
	Product     *model.CarSummary  `json:"product,omitempty"`
	User        *model.UserSummary `json:"user,omitempty"`
	CreatedAt   string             `json:"createdAt"`
}

type Service interface {
	// ListMine returns the user's orders newest-first, each with its car projection.
	ListMine(ctx context.Context, userID string) ([]View, error)
	// Detail returns one order with car and user projections.
	Detail(ctx context.Context, id string) (*View, error)
}

type service struct {
	or orderrepo.Repo
	cr carrepo.Repo
	ur userrepo.Repo
}

func New(or orderrepo.Repo, cr carrepo.Repo, ur userrepo.Repo) Service {
	return &service{or: or, cr: cr, ur: ur}
}

func (s *service) ListMine(ctx context.Context, userID string) ([]View, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, makeErr(ErrBadID)
	}

	orders, err := s.or.ListByUser(ctx, uid)
	if err != nil {
		return nil, err
	}

	carIDs := make([]primitive.ObjectID, 0, len(orders))
	seen := map[primitive.ObjectID]bool{}
	for _, o := range orders {
		if !seen[o.Product] {
			seen[o.Product] = true
			carIDs = append(carIDs, o.Product)
		}
	}

	cars, err := s.cr.SummariesByIDs(ctx, carIDs)
	if err != nil {
		return nil, err
	}

	views := make([]View, 0, len(orders))
	for _, o := range orders {
		v := toView(o)
		if summary, ok := cars[o.Product]; ok {
			c := summary
			v.Product = &c
		}
		views = append(views, v)
	}
	return views, nil
}

func (s *service) Detail(ctx context.Context, id string) (*View, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, makeErr(ErrBadID)
	}

	order, err := s.or.ByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, makeErr(ErrNotFound)
	}

	v := toView(*order)

	cars, err := s.cr.SummariesByIDs(ctx, []primitive.ObjectID{order.Product})
	if err != nil {
		return nil, err
	}
	if summary, ok := cars[order.Product]; ok {
		v.Product = &summary
	}

	user, err := s.ur.SummaryByID(ctx, order.User)
	if err != nil {
		return nil, err
	}
	v.User = user

	return &v, nil
}

func toView(o model.Order) View {
	return View{
		ID:          o.ID,
		Status:      o.Status,
		TotalAmount: o.TotalAmount,
		Currency:    o.Currency,
		Rental:      o.Rental,
		CreatedAt:   o.CreatedAt.String(),
	}
}
