package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-pulse-keeper/internal/config"
	"github.com/MKhiriev/go-pulse-keeper/internal/crypto"
	"github.com/MKhiriev/go-pulse-keeper/internal/logger"
	"github.com/MKhiriev/go-pulse-keeper/internal/store"
	"github.com/MKhiriev/go-pulse-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockUserRepository is a func-field stub for store.UserRepository.
type mockUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByIDFn    func(ctx context.Context, userID int64) (models.User, error)
	findUserByEmailFn func(ctx context.Context, email string) (models.User, error)
	findAllUsersFn    func(ctx context.Context) ([]models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFn(ctx, user)
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return m.findUserByIDFn(ctx, userID)
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return m.findUserByEmailFn(ctx, email)
}

func (m *mockUserRepository) FindAllUsers(ctx context.Context) ([]models.User, error) {
	return m.findAllUsersFn(ctx)
}

func testAppConfig() config.App {
	return config.App{
		Env:           config.EnvTest,
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "pulse-keeper",
		TokenDuration: time.Hour,
	}
}

func newTestAuthService(repo store.UserRepository) AuthService {
	return NewAuthService(repo, crypto.NewPasswordHasher(), testAppConfig(), logger.Nop())
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	var stored models.User
	repo := &mockUserRepository{
		createUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			stored = user
			user.UserID = 1
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	registered, err := svc.Register(context.Background(), models.RegisterRequest{
		Username: "ivan",
		Email:    "ivan@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.UserID)

	// The repository must never see the plaintext.
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.True(t, strings.HasPrefix(stored.PasswordHash, "$argon2id$"), "expected an argon2id encoded hash, got %q", stored.PasswordHash)

	ok, err := crypto.NewPasswordHasher().Verify("secret1", stored.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok, "stored hash must verify against the original password")
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	tests := []struct {
		name string
		req  models.RegisterRequest
	}{
		{"empty username", models.RegisterRequest{Email: "ivan@example.com", Password: "secret1"}},
		{"empty email", models.RegisterRequest{Username: "ivan", Password: "secret1"}},
		{"empty password", models.RegisterRequest{Username: "ivan", Email: "ivan@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_Register_DuplicateUser(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, store.ErrUserAlreadyExists
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Username: "ivan",
		Email:    "ivan@example.com",
		Password: "secret1",
	})
	assert.ErrorIs(t, err, store.ErrUserAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	hasher := crypto.NewPasswordHasher()
	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)

	repo := &mockUserRepository{
		findUserByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{UserID: 7, Email: email, PasswordHash: hash}, nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.Login(context.Background(), models.LoginRequest{Email: "ivan@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordIndistinguishable(t *testing.T) {
	hasher := crypto.NewPasswordHasher()
	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)

	unknownRepo := &mockUserRepository{
		findUserByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	knownRepo := &mockUserRepository{
		findUserByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{UserID: 7, Email: email, PasswordHash: hash}, nil
		},
	}

	_, unknownErr := newTestAuthService(unknownRepo).Login(context.Background(), models.LoginRequest{Email: "ghost@example.com", Password: "secret1"})
	_, wrongPassErr := newTestAuthService(knownRepo).Login(context.Background(), models.LoginRequest{Email: "ivan@example.com", Password: "wrong-password"})

	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr, wrongPassErr, "both failure modes must be indistinguishable to the caller")
}

func TestAuthService_Login_CorruptedStoredHash(t *testing.T) {
	repo := &mockUserRepository{
		findUserByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{UserID: 7, Email: email, PasswordHash: "not-a-hash"}, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "ivan@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_RepositoryError(t *testing.T) {
	repo := &mockUserRepository{
		findUserByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{}, errors.New("db network error")
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "ivan@example.com", Password: "secret1"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_CreateAndParseToken_RoundTrip(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.ParseToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_ForeignSignKey(t *testing.T) {
	foreignCfg := testAppConfig()
	foreignCfg.TokenSignKey = "some-other-key"
	foreignSvc := NewAuthService(&mockUserRepository{}, crypto.NewPasswordHasher(), foreignCfg, logger.Nop())

	token, err := foreignSvc.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)

	svc := newTestAuthService(&mockUserRepository{})
	_, err = svc.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
