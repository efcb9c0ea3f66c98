package authsvc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/furkanevin/car-rental/model"
	userrepo "github.com/furkanevin/car-rental/repository/user"
	"github.com/furkanevin/car-rental/util/hash"
	jwtutil "github.com/furkanevin/car-rental/util/jwt"
)

var _ userrepo.Repo = (*mockRepo)(nil)

type mockRepo struct {
	byEmailFn     func(ctx context.Context, email string) (*model.User, error)
	byEmailPassFn func(ctx context.Context, email string) (*model.User, error)
	createFn      func(ctx context.Context, u *model.User) error
	summaryFn     func(ctx context.Context, id primitive.ObjectID) (*model.UserSummary, error)

	created int
}

func (m *mockRepo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.byEmailFn == nil {
		return nil, nil
	}
	return m.byEmailFn(ctx, email)
}

func (m *mockRepo) ByEmailWithPassword(ctx context.Context, email string) (*model.User, error) {
	if m.byEmailPassFn == nil {
		return nil, nil
	}
	return m.byEmailPassFn(ctx, email)
}

func (m *mockRepo) Create(ctx context.Context, u *model.User) error {
	m.created++
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, u)
}

func (m *mockRepo) SummaryByID(ctx context.Context, id primitive.ObjectID) (*model.UserSummary, error) {
	if m.summaryFn == nil {
		return nil, nil
	}
	return m.summaryFn(ctx, id)
}

func mustHash(t *testing.T, plain string) string {
	t.Helper()
	h, err := hash.HashPassword(plain)
	require.NoError(t, err)
	return h
}

// --- tests ---

func TestRegister_Success(t *testing.T) {
	ctx := context.Background()
	id := primitive.NewObjectID()
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error {
			u.ID = id
			return nil
		},
	}
	svc := New(m, "test-secret")

	out, err := svc.Register(ctx, model.RegisterReq{
		Email:     "USER@Example.COM",
		Password:  "supersecret",
		FirstName: "Halim",
		LastName:  "Iskandar",
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	require.Equal(t, id, out.ID)
	require.Equal(t, "user@example.com", out.Email)
	require.Equal(t, "Halim", out.FirstName)
	require.Equal(t, 1, m.created)
}

func TestRegister_DefaultAvatarFromName(t *testing.T) {
	ctx := context.Background()
	var stored model.User
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error {
			stored = *u
			return nil
		},
	}
	svc := New(m, "test-secret")

	_, err := svc.Register(ctx, model.RegisterReq{
		Email:     "a@b.co",
		Password:  "123456",
		FirstName: "Halim",
		LastName:  "Iskandar",
	})
	require.NoError(t, err)
	require.Equal(t, defaultAvatarBase+"Halim+Iskandar", stored.Image)
	require.NotEqual(t, "123456", stored.PasswordHash)
	require.True(t, hash.Check(stored.PasswordHash, "123456"))
}

func TestRegister_EmailTaken(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{Email: email}, nil
		},
	}
	svc := New(m, "test-secret")

	_, err := svc.Register(ctx, model.RegisterReq{
		Email:     "taken@example.com",
		Password:  "123456",
		FirstName: "A",
		LastName:  "B",
	})
	require.Error(t, err)
	require.Equal(t, ErrEmailTaken, Code(err))
	require.Equal(t, 0, m.created)
}

func TestRegister_CreateError(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error {
			return errors.New("db down")
		},
	}
	svc := New(m, "test-secret")

	_, err := svc.Register(ctx, model.RegisterReq{
		Email:     "ok@example.com",
		Password:  "123456",
		FirstName: "A",
		LastName:  "B",
	})
	require.Error(t, err)
	require.Equal(t, ErrCode(""), Code(err))
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	pw := "supersecret"
	hashed := mustHash(t, pw)
	id := primitive.NewObjectID()

	m := &mockRepo{
		byEmailPassFn: func(ctx context.Context, email string) (*model.User, error) {
			require.Equal(t, "user@example.com", email)
			return &model.User{
				ID:           id,
				Email:        "user@example.com",
				PasswordHash: hashed,
				FirstName:    "Halim",
				LastName:     "Iskandar",
				Phone:        "+905551112233",
			}, nil
		},
	}
	svc := New(m, "test-secret")

	u, tok, err := svc.Login(ctx, model.LoginReq{Email: "User@Example.com", Password: pw})
	require.NoError(t, err)
	require.NotNil(t, u)
	require.Empty(t, u.PasswordHash)

	p, err := jwtutil.ParseAuth(tok, "test-secret")
	require.NoError(t, err)
	require.Equal(t, id.Hex(), p.ID)
	require.Equal(t, "user@example.com", p.Email)
	require.Equal(t, "Halim Iskandar", p.Name)
	require.Equal(t, "Halim", p.FirstName)
	require.Equal(t, "+905551112233", p.Phone)
}

func TestLogin_UserNotFound(t *testing.T) {
	ctx := context.Background()
	svc := New(&mockRepo{}, "test-secret")

	_, _, err := svc.Login(ctx, model.LoginReq{Email: "missing@example.com", Password: "whatever"})
	require.Error(t, err)
	require.Equal(t, ErrInvalidCreds, Code(err))
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	hashed := mustHash(t, "correct-password")

	m := &mockRepo{
		byEmailPassFn: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{Email: email, PasswordHash: hashed}, nil
		},
	}
	svc := New(m, "test-secret")

	_, _, err := svc.Login(ctx, model.LoginReq{Email: "user@example.com", Password: "wrong-password"})
	require.Error(t, err)
	require.Equal(t, ErrInvalidCreds, Code(err))
}

func TestCodeExtractor(t *testing.T) {
	require.Equal(t, ErrEmailTaken, Code(makeErr(ErrEmailTaken)))
	require.Equal(t, ErrCode(""), Code(errors.New("plain")))
}
