package authsvc

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/furkanevin/car-rental/model"
	userrepo "github.com/furkanevin/car-rental/repository/user"
	"github.com/furkanevin/car-rental/util/hash"
	jwtutil "github.com/furkanevin/car-rental/util/jwt"
)

// errors used by controllers

type ErrCode string

const (
	ErrEmailTaken   ErrCode = "EMAIL_TAKEN"
	ErrInvalidCreds ErrCode = "INVALID_CREDENTIALS"
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

const defaultAvatarBase = "https://ui-avatars.com/api/?background=3563E9&color=fff&name="

type Service interface {
	Register(ctx context.Context, req model.RegisterReq) (*model.UserSummary, error)
	Login(ctx context.Context, req model.LoginReq) (*model.User, string, error)
}

type service struct {
	ur     userrepo.Repo
	secret string
}

func New(ur userrepo.Repo, secret string) Service {
	return &service{ur: ur, secret: secret}
}

func (s *service) Register(ctx context.Context, req model.RegisterReq) (*model.UserSummary, error) {
	email := normalizeEmail(req.Email)

	existing, err := s.ur.ByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, makeErr(ErrEmailTaken)
	}

	hashed, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		Email:        email,
		PasswordHash: hashed,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Phone:        strings.TrimSpace(req.Phone),
		Image:        avatarURL(req.FirstName, req.LastName),
	}

	if err := s.ur.Create(ctx, u); err != nil {
		// The unique index closes the check-then-insert window.
		if mongo.IsDuplicateKeyError(err) {
			return nil, makeErr(ErrEmailTaken)
		}
		return nil, err
	}

	return &model.UserSummary{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}, nil
}

// Login verifies credentials and mints the session token. Lookup misses and
// hash mismatches are indistinguishable to the caller.
func (s *service) Login(ctx context.Context, req model.LoginReq) (*model.User, string, error) {
	u, err := s.ur.ByEmailWithPassword(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, "", err
	}
	if u == nil || u.PasswordHash == "" {
		return nil, "", makeErr(ErrInvalidCreds)
	}
	if !hash.Check(u.PasswordHash, req.Password) {
		return nil, "", makeErr(ErrInvalidCreds)
	}

	image := u.Image
	if image == "" {
		image = avatarURL(u.FirstName, u.LastName)
	}

	token, err := jwtutil.Issue(s.secret, jwtutil.Principal{
		ID:        u.ID.Hex(),
		Email:     u.Email,
		Name:      u.FirstName + " " + u.LastName,
		Image:     image,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
	}, 24)
	if err != nil {
		return nil, "", err
	}

	u.PasswordHash = ""
	return u, token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func avatarURL(firstName, lastName string) string {
	name := url.QueryEscape(strings.TrimSpace(firstName)) + "+" + url.QueryEscape(strings.TrimSpace(lastName))
	return fmt.Sprintf("%s%s", defaultAvatarBase, name)
}
