package catalogsvc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/furkanevin/car-rental/model"
	carrepo "github.com/furkanevin/car-rental/repository/car"
)

type mockRepo struct {
	searchFn    func(ctx context.Context, f carrepo.Filter, p carrepo.Page) ([]model.Car, int64, error)
	byIDFn      func(ctx context.Context, id primitive.ObjectID) (*model.Car, error)
	summariesFn func(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]model.CarSummary, error)
}

var _ carrepo.Repo = (*mockRepo)(nil)

func (m *mockRepo) Search(ctx context.Context, f carrepo.Filter, p carrepo.Page) ([]model.Car, int64, error) {
	return m.searchFn(ctx, f, p)
}

func (m *mockRepo) ByID(ctx context.Context, id primitive.ObjectID) (*model.Car, error) {
	return m.byIDFn(ctx, id)
}

func (m *mockRepo) SummariesByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]model.CarSummary, error) {
	return m.summariesFn(ctx, ids)
}

func TestList_Defaults(t *testing.T) {
	var gotPage carrepo.Page
	m := &mockRepo{
		searchFn: func(ctx context.Context, f carrepo.Filter, p carrepo.Page) ([]model.Car, int64, error) {
			gotPage = p
			return []model.Car{}, 0, nil
		},
	}
	s := New(m)

	out, err := s.List(context.Background(), ListParams{})
	require.NoError(t, err)
	require.Equal(t, int64(0), gotPage.Skip)
	require.Equal(t, int64(12), gotPage.Limit)
	require.Equal(t, "createdAt", gotPage.SortBy)
	require.False(t, gotPage.SortAsc)
	require.Equal(t, 1, out.Pagination.Page)
	require.Equal(t, 12, out.Pagination.Limit)
}

func TestList_PaginationMath(t *testing.T) {
	m := &mockRepo{
		searchFn: func(ctx context.Context, f carrepo.Filter, p carrepo.Page) ([]model.Car, int64, error) {
			return make([]model.Car, 5), 25, nil
		},
	}
	s := New(m)

	out, err := s.List(context.Background(), ListParams{Page: 3, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, int64(25), out.Pagination.Total)
	require.Equal(t, int64(3), out.Pagination.TotalPages) // ceil(25/10)
	require.Equal(t, 3, out.Pagination.Page)

	out, err = s.List(context.Background(), ListParams{Page: 1, Limit: 12})
	require.NoError(t, err)
	require.Equal(t, int64(3), out.Pagination.TotalPages) // ceil(25/12)
}

func TestList_SkipFromPage(t *testing.T) {
	var gotPage carrepo.Page
	m := &mockRepo{
		searchFn: func(ctx context.Context, f carrepo.Filter, p carrepo.Page) ([]model.Car, int64, error) {
			gotPage = p
			return nil, 100, nil
		},
	}
	s := New(m)

	_, err := s.List(context.Background(), ListParams{Page: 4, Limit: 12, SortBy: "pricePerDay", SortOrder: "asc"})
	require.NoError(t, err)
	require.Equal(t, int64(36), gotPage.Skip)
	require.Equal(t, "pricePerDay", gotPage.SortBy)
	require.True(t, gotPage.SortAsc)
}

func TestList_RepoError(t *testing.T) {
	m := &mockRepo{
		searchFn: func(ctx context.Context, f carrepo.Filter, p carrepo.Page) ([]model.Car, int64, error) {
			return nil, 0, errors.New("db down")
		},
	}
	s := New(m)

	_, err := s.List(context.Background(), ListParams{})
	require.Error(t, err)
	require.Equal(t, ErrCode(""), Code(err))
}

func TestDetail_BadIDBeforeQuery(t *testing.T) {
	m := &mockRepo{
		byIDFn: func(ctx context.Context, id primitive.ObjectID) (*model.Car, error) {
			t.Fatal("repo must not be queried for malformed ids")
			return nil, nil
		},
	}
	s := New(m)

	_, err := s.Detail(context.Background(), "not-an-object-id")
	require.Error(t, err)
	require.Equal(t, ErrBadID, Code(err))
}

func TestDetail_NotFound(t *testing.T) {
	m := &mockRepo{
		byIDFn: func(ctx context.Context, id primitive.ObjectID) (*model.Car, error) {
			return nil, nil
		},
	}
	s := New(m)

	_, err := s.Detail(context.Background(), primitive.NewObjectID().Hex())
	require.Error(t, err)
	require.Equal(t, ErrNotFound, Code(err))
}

func TestDetail_Success(t *testing.T) {
	id := primitive.NewObjectID()
	m := &mockRepo{
		byIDFn: func(ctx context.Context, got primitive.ObjectID) (*model.Car, error) {
			require.Equal(t, id, got)
			return &model.Car{ID: id, Make: "Toyota"}, nil
		},
	}
	s := New(m)

	car, err := s.Detail(context.Background(), id.Hex())
	require.NoError(t, err)
	require.Equal(t, "Toyota", car.Make)
}
