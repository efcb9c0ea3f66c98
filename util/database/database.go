package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

// Store is the process-wide collection registry: built once in main and passed
// by reference to the repositories.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

func New(ctx context.Context, uri, dbName string) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return &Store{client: client, db: client.Database(dbName)}, nil
}

func (s *Store) Users() *mongo.Collection  { return s.db.Collection("users") }
func (s *Store) Cars() *mongo.Collection   { return s.db.Collection("cars") }
func (s *Store) Orders() *mongo.Collection { return s.db.Collection("orders") }

// EnsureIndexes creates the unique keys the data model depends on. Safe to
// call on every startup; mongo treats existing identical indexes as a no-op.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.Users().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = s.Cars().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "licensePlate", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "make", Value: 1}, {Key: "modelName", Value: 1}}},
		{Keys: bson.D{{Key: "location", Value: 1}}},
		{Keys: bson.D{{Key: "pricePerDay", Value: 1}}},
		{Keys: bson.D{{Key: "carType", Value: 1}}},
	})
	if err != nil {
		return err
	}

	_, err = s.Orders().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	return err
}

func (s *Store) Close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}
