package orderrepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/furkanevin/car-rental/model"
	"github.com/furkanevin/car-rental/util/database"
)

type Repo interface {
	Create(ctx context.Context, o *model.Order) error
	ByID(ctx context.Context, id primitive.ObjectID) (*model.Order, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status model.OrderStatus) (bool, error)
}

type repo struct{ store *database.Store }

func New(store *database.Store) Repo { return &repo{store} }

func (r *repo) Create(ctx context.Context, o *model.Order) error {
	now := time.Now().UTC()
	o.CreatedAt = now
	o.UpdatedAt = now

	res, err := r.store.Orders().InsertOne(ctx, o)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		o.ID = oid
	}
	return nil
}

func (r *repo) ByID(ctx context.Context, id primitive.ObjectID) (*model.Order, error) {
	o := &model.Order{}
	err := r.store.Orders().FindOne(ctx, bson.M{"_id": id}).Decode(o)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *repo) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]model.Order, error) {
	cur, err := r.store.Orders().Find(ctx, bson.M{"user": userID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	orders := []model.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus moves a pending order to paid or cancelled. Matching on the
// pending status makes the transition one-way; a second webhook for the same
// order matches nothing and reports false.
func (r *repo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status model.OrderStatus) (bool, error) {
	res, err := r.store.Orders().UpdateOne(ctx,
		bson.M{"_id": id, "status": model.OrderPending},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}
