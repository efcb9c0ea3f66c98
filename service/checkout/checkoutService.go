package checkoutsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/furkanevin/car-rental/model"
	carrepo "github.com/furkanevin/car-rental/repository/car"
	orderrepo "github.com/furkanevin/car-rental/repository/order"
	striperepo "github.com/furkanevin/car-rental/repository/stripe"
)

// errors used by controllers

type ErrCode string

const ErrCarNotFound ErrCode = "CAR_NOT_FOUND"

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

const currency = "USD"

type Window struct {
	PickupDate      time.Time
	ReturnDate      time.Time
	PickupTime      string
	ReturnTime      string
	PickupLocation  string
	DropoffLocation string
	AdditionalNotes string
}

type Started struct {
	OrderID primitive.ObjectID
	URL     string
}

type Service interface {
	// Start runs the checkout sequence for an authenticated user and returns
	// the provider-hosted payment page URL.
	Start(ctx context.Context, userID, carID string, w Window) (*Started, error)
}

type service struct {
	cr      carrepo.Repo
	or      orderrepo.Repo
	sp      striperepo.Repo
	baseURL string
	now     func() time.Time
}

func New(cr carrepo.Repo, or orderrepo.Repo, sp striperepo.Repo, baseURL string) Service {
	return &service{cr: cr, or: or, sp: sp, baseURL: baseURL, now: time.Now}
}

func (s *service) Start(ctx context.Context, userID, carID string, w Window) (*Started, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("bad user id in session: %w", err)
	}

	carOID, err := primitive.ObjectIDFromHex(carID)
	if err != nil {
		return nil, makeErr(ErrCarNotFound)
	}
	car, err := s.cr.ByID(ctx, carOID)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, makeErr(ErrCarNotFound)
	}

	// Search before create; the create itself is idempotent per car, so the
	// remaining race collapses provider-side.
	prod, err := s.sp.FindProductByCarID(ctx, car.ID.Hex())
	if err != nil {
		return nil, err
	}
	if prod == nil {
		prod, err = s.sp.CreateProduct(ctx, striperepo.ProductReq{
			CarID:       car.ID.Hex(),
			Name:        car.Make + " " + car.ModelName,
			Description: car.Description,
			Images:      car.Images,
			UnitAmount:  int64(car.PricePerDay * 100),
			Currency:    currency,
		})
		if err != nil {
			return nil, err
		}
	}

	// Day count runs from the checkout instant to the return date, not from
	// the pickup date. Kept as the storefront has always priced it.
	days := ceilDays(w.ReturnDate.Sub(s.now()))

	order := &model.Order{
		Product:     car.ID,
		User:        uid,
		TotalAmount: car.PricePerDay * float64(days),
		Currency:    currency,
		Type:        model.OrderTypeRental,
		Status:      model.OrderPending,
		Rental: model.Rental{
			PickupDate:      w.PickupDate,
			ReturnDate:      w.ReturnDate,
			PickupTime:      w.PickupTime,
			ReturnTime:      w.ReturnTime,
			PickupLocation:  w.PickupLocation,
			DropoffLocation: w.DropoffLocation,
			AdditionalNotes: w.AdditionalNotes,
			Days:            days,
		},
	}
	if err := s.or.Create(ctx, order); err != nil {
		return nil, err
	}

	sess, err := s.sp.CreateCheckoutSession(ctx, striperepo.SessionReq{
		PriceID:    prod.PriceID,
		Quantity:   days,
		UserID:     userID,
		OrderID:    order.ID.Hex(),
		SuccessURL: fmt.Sprintf("%s/success?orderId=%s", s.baseURL, order.ID.Hex()),
		CancelURL:  fmt.Sprintf("%s/cancel?orderId=%s", s.baseURL, order.ID.Hex()),
	})
	if err != nil {
		// The pending order stays behind; cleanup is an operator concern.
		return nil, err
	}

	return &Started{OrderID: order.ID, URL: sess.URL}, nil
}

func ceilDays(d time.Duration) int64 {
	const day = 24 * time.Hour
	days := d / day
	if d%day > 0 {
		days++
	}
	return int64(days)
}
