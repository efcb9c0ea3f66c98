package carrepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/furkanevin/car-rental/model"
	"github.com/furkanevin/car-rental/util/database"
)

// Filter holds one optional field per supported catalog criterion. A nil/zero
// field is omitted from the query document entirely; set fields are ANDed.
type Filter struct {
	Make         string   // case-insensitive substring
	Model        string   // case-insensitive substring
	CarType      string   // exact
	Location     string   // exact
	Transmission string   // exact
	FuelType     string   // exact
	PriceMin     *float64 // inclusive lower bound
	PriceMax     *float64 // inclusive upper bound
	MinSeats     *int
}

// Query translates the filter into a single bson document.
func (f Filter) Query() bson.M {
	q := bson.M{}
	if f.Make != "" {
		q["make"] = bson.M{"$regex": f.Make, "$options": "i"}
	}
	if f.Model != "" {
		q["modelName"] = bson.M{"$regex": f.Model, "$options": "i"}
	}
	if f.CarType != "" {
		q["carType"] = f.CarType
	}
	if f.Location != "" {
		q["location"] = f.Location
	}
	if f.Transmission != "" {
		q["transmission"] = f.Transmission
	}
	if f.FuelType != "" {
		q["fuelType"] = f.FuelType
	}
	if f.PriceMin != nil || f.PriceMax != nil {
		price := bson.M{}
		if f.PriceMin != nil {
			price["$gte"] = *f.PriceMin
		}
		if f.PriceMax != nil {
			price["$lte"] = *f.PriceMax
		}
		q["pricePerDay"] = price
	}
	if f.MinSeats != nil {
		q["seats"] = bson.M{"$gte": *f.MinSeats}
	}
	return q
}

type Page struct {
	Skip    int64
	Limit   int64
	SortBy  string
	SortAsc bool
}

type Repo interface {
	Search(ctx context.Context, f Filter, p Page) ([]model.Car, int64, error)
	ByID(ctx context.Context, id primitive.ObjectID) (*model.Car, error)
	SummariesByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]model.CarSummary, error)
}

type repo struct{ store *database.Store }

func New(store *database.Store) Repo { return &repo{store} }

func (r *repo) Search(ctx context.Context, f Filter, p Page) ([]model.Car, int64, error) {
	query := f.Query()

	dir := -1
	if p.SortAsc {
		dir = 1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: p.SortBy, Value: dir}}).
		SetSkip(p.Skip).
		SetLimit(p.Limit)

	cur, err := r.store.Cars().Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	cars := []model.Car{}
	if err := cur.All(ctx, &cars); err != nil {
		return nil, 0, err
	}

	total, err := r.store.Cars().CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return cars, total, nil
}

func (r *repo) ByID(ctx context.Context, id primitive.ObjectID) (*model.Car, error) {
	c := &model.Car{}
	err := r.store.Cars().FindOne(ctx, bson.M{"_id": id}).Decode(c)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *repo) SummariesByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]model.CarSummary, error) {
	out := make(map[primitive.ObjectID]model.CarSummary, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	cur, err := r.store.Cars().Find(ctx, bson.M{"_id": bson.M{"$in": ids}},
		options.Find().SetProjection(bson.M{
			"make": 1, "modelName": 1, "images": 1, "pricePerDay": 1, "carType": 1,
		}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []model.CarSummary
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	for _, s := range rows {
		out[s.ID] = s
	}
	return out, nil
}
