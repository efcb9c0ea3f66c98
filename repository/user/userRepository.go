package userrepo

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
	Create(ctx context.Context, u *model.User) error
	ByEmail(ctx context.Context, email string) (*model.User, error)
	ByEmailWithPassword(ctx context.Context, email string) (*model.User, error)
	SummaryByID(ctx context.Context, id primitive.ObjectID) (*model.UserSummary, error)
}

type repo struct{ store *database.Store }

func New(store *database.Store) Repo { return &repo{store} }

func (r *repo) Create(ctx context.Context, u *model.User) error {
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	res, err := r.store.Users().InsertOne(ctx, u)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = oid
	}
	return nil
}

// ByEmail never returns the password hash; login uses ByEmailWithPassword.
func (r *repo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findByEmail(ctx, email, options.FindOne().SetProjection(bson.M{"password": 0}))
}

func (r *repo) ByEmailWithPassword(ctx context.Context, email string) (*model.User, error) {
	return r.findByEmail(ctx, email)
}

func (r *repo) findByEmail(ctx context.Context, email string, opts ...*options.FindOneOptions) (*model.User, error) {
	u := &model.User{}
	err := r.store.Users().FindOne(ctx, bson.M{"email": email}, opts...).Decode(u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *repo) SummaryByID(ctx context.Context, id primitive.ObjectID) (*model.UserSummary, error) {
	s := &model.UserSummary{}
	err := r.store.Users().FindOne(ctx, bson.M{"_id": id},
		options.FindOne().SetProjection(bson.M{"firstName": 1, "lastName": 1, "email": 1}),
	).Decode(s)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
