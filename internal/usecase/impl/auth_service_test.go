package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"recipebox/internal/domain/entity"
	domainerrors "recipebox/internal/domain/errors"
	"recipebox/internal/domain/repository"
	"recipebox/internal/domain/service"
	mockRepo "recipebox/internal/mocks/repository"
	mockSvc "recipebox/internal/mocks/service"
	"recipebox/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	verifier     *mockSvc.MockCredentialVerifier
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	verifier := mockSvc.NewMockCredentialVerifier(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Verifier:     verifier,
		TokenService: tokenService,
		Logger:       logger,
	})

	return authServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		verifier:     verifier,
		tokenService: tokenService,
	}
}

func userFixture(passwordHash string) *entity.User {
	return &entity.User{
		ID:           42,
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: passwordHash,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.verifier.EXPECT().Hash("Password123!").Return("$2a$12$hash", nil).Once()
	fx.userRepo.EXPECT().
		Create(ctx, &entity.User{Name: "Test User", Email: "test@example.com", PasswordHash: "$2a$12$hash"}).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = 42
		}).
		Return(nil).
		Once()

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     " Test User ",
		Email:    " test@example.com ",
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), output.User.ID)
	assert.Equal(t, "$2a$12$hash", output.User.PasswordHash)
}

func TestAuthService_Register_BlankInput(t *testing.T) {
	fx := createTestAuthService(t)

	tests := []struct {
		name  string
		input *usecase.RegisterInput
	}{
		{"missing name", &usecase.RegisterInput{Email: "a@b.c", Password: "pw"}},
		{"missing email", &usecase.RegisterInput{Name: "A", Password: "pw"}},
		{"missing password", &usecase.RegisterInput{Name: "A", Email: "a@b.c"}},
		{"whitespace only", &usecase.RegisterInput{Name: "  ", Email: "  ", Password: "pw"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.Register(context.Background(), tt.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.verifier.EXPECT().Hash("pw").Return("$2a$12$hash", nil).Once()
	fx.userRepo.EXPECT().
		Create(ctx, &entity.User{Name: "A", Email: "a@b.c", PasswordHash: "$2a$12$hash"}).
		Return(domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")).
		Once()

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Name: "A", Email: "a@b.c", Password: "pw"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)

	fx.verifier.EXPECT().Hash("pw").Return("", errors.New("cost out of range")).Once()

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{Name: "A", Email: "a@b.c", Password: "pw"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAuthService_Login_ModernCredential(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := userFixture("$2a$12$storedhash")

	fx.userRepo.EXPECT().FindByEmail(ctx, "test@example.com").Return(user, nil).Once()
	fx.verifier.EXPECT().
		Verify("$2a$12$storedhash", "Password123!").
		Return(service.VerifyResult{Match: true}).
		Once()
	fx.tokenService.EXPECT().GenerateAccessToken(int64(42)).Return("access-token", nil).Once()

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    " test@example.com ",
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, int64(42), output.User.ID)
}

func TestAuthService_Login_LegacyCredentialMigrates(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := userFixture("plaintext-secret")

	fx.userRepo.EXPECT().FindByEmail(ctx, "test@example.com").Return(user, nil).Once()
	fx.verifier.EXPECT().
		Verify("plaintext-secret", "plaintext-secret").
		Return(service.VerifyResult{Match: true, NeedsRehash: true, NewHash: "$2a$12$fresh"}).
		Once()
	fx.userRepo.EXPECT().UpdatePasswordHash(ctx, int64(42), "$2a$12$fresh").Return(nil).Once()
	fx.tokenService.EXPECT().GenerateAccessToken(int64(42)).Return("access-token", nil).Once()

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "plaintext-secret",
	})

	require.NoError(t, err)
	assert.Equal(t, "$2a$12$fresh", output.User.PasswordHash)
}

func TestAuthService_Login_MigrationFailureFailsLogin(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := userFixture("plaintext-secret")

	fx.userRepo.EXPECT().FindByEmail(ctx, "test@example.com").Return(user, nil).Once()
	fx.verifier.EXPECT().
		Verify("plaintext-secret", "plaintext-secret").
		Return(service.VerifyResult{Match: true, NeedsRehash: true, NewHash: "$2a$12$fresh"}).
		Once()
	fx.userRepo.EXPECT().
		UpdatePasswordHash(ctx, int64(42), "$2a$12$fresh").
		Return(errors.New("connection lost")).
		Once()

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "plaintext-secret",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to migrate legacy credential")
	assert.Equal(t, "plaintext-secret", user.PasswordHash)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := userFixture("$2a$12$storedhash")

	fx.userRepo.EXPECT().FindByEmail(ctx, "test@example.com").Return(user, nil).Once()
	fx.verifier.EXPECT().
		Verify("$2a$12$storedhash", "wrong").
		Return(service.VerifyResult{Match: false}).
		Once()

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "test@example.com", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound).
		Once()

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "pw"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_BlankInput(t *testing.T) {
	fx := createTestAuthService(t)

	tests := []struct {
		name  string
		input *usecase.LoginInput
	}{
		{"blank email", &usecase.LoginInput{Password: "pw"}},
		{"blank password", &usecase.LoginInput{Email: "a@b.c"}},
		{"whitespace email", &usecase.LoginInput{Email: "   ", Password: "pw"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.Login(context.Background(), tt.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
		})
	}
}

func TestAuthService_Login_EmptyStoredCredential(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := userFixture("")

	fx.userRepo.EXPECT().FindByEmail(ctx, "test@example.com").Return(user, nil).Once()

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "test@example.com", Password: "pw"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_TokenFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := userFixture("$2a$12$storedhash")

	fx.userRepo.EXPECT().FindByEmail(ctx, "test@example.com").Return(user, nil).Once()
	fx.verifier.EXPECT().
		Verify("$2a$12$storedhash", "pw").
		Return(service.VerifyResult{Match: true}).
		Once()
	fx.tokenService.EXPECT().
		GenerateAccessToken(int64(42)).
		Return("", errors.New("missing secret")).
		Once()

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "test@example.com", Password: "pw"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to generate access token")
}
