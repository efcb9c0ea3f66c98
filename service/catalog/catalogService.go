package catalogsvc

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/furkanevin/car-rental/model"
	carrepo "github.com/furkanevin/car-rental/repository/car"
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

const (
	DefaultLimit  = 12
	DefaultSortBy = "createdAt"
)

// ListParams mirrors the catalog query string. Zero values mean "absent".
type ListParams struct {
	Filter    carrepo.Filter
	Page      int
	Limit     int
	SortBy    string
	SortOrder string // "asc" or "desc"
}

type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int64 `json:"totalPages"`
}

type ListResult struct {
	Cars       []model.Car
	Pagination Pagination
}

type Service interface {
	List(ctx context.Context, p ListParams) (*ListResult, error)
	Detail(ctx context.Context, id string) (*model.Car, error)
}

type service struct{ cr carrepo.Repo }

func New(cr carrepo.Repo) Service { return &service{cr: cr} }

func (s *service) List(ctx context.Context, p ListParams) (*ListResult, error) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.SortBy == "" {
		p.SortBy = DefaultSortBy
	}

	page := carrepo.Page{
		Skip:    int64(p.Page-1) * int64(p.Limit),
		Limit:   int64(p.Limit),
		SortBy:  p.SortBy,
		SortAsc: p.SortOrder == "asc",
	}

	cars, total, err := s.cr.Search(ctx, p.Filter, page)
	if err != nil {
		return nil, err
	}

	totalPages := (total + int64(p.Limit) - 1) / int64(p.Limit)
	return &ListResult{
		Cars: cars,
		Pagination: Pagination{
			Total:      total,
			Page:       p.Page,
			Limit:      p.Limit,
			TotalPages: totalPages,
		},
	}, nil
}

// Detail rejects malformed ids before touching the database, so a bad id is a
// client error rather than a miss.
func (s *service) Detail(ctx context.Context, id string) (*model.Car, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, makeErr(ErrBadID)
	}

	car, err := s.cr.ByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, makeErr(ErrNotFound)
	}
	return car, nil
}
