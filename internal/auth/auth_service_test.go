package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/BMarcano/dispatcher/internal/auth"
	autherrors "github.com/BMarcano/dispatcher/internal/auth/errors"
	authMock "github.com/BMarcano/dispatcher/internal/auth/mock"
	"github.com/BMarcano/dispatcher/internal/domain"
	"github.com/BMarcano/dispatcher/internal/shared/apperror"
	"github.com/BMarcano/dispatcher/internal/shared/contextutil"
	"github.com/BMarcano/dispatcher/internal/shared/token"
	workerMock "github.com/BMarcano/dispatcher/internal/worker/mock"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

type serviceDeps struct {
	service auth.Service
	repo    *authMock.MockRepository
	workers *workerMock.MockRepository
	issuer  *token.Issuer
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	repo := authMock.NewMockRepository(ctrl)
	workers := workerMock.NewMockRepository(ctrl)
	issuer := token.NewIssuer(testSecret)

	return &serviceDeps{
		service: auth.NewService(repo, workers, issuer),
		repo:    repo,
		workers: workers,
		issuer:  issuer,
	}
}

func workerProfile(t *testing.T, password string) *domain.UserProfile {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	wid := "b3c1f0de-0000-4000-8000-000000000001"
	return &domain.UserProfile{
		ID:           "user-1",
		Email:        "ana@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleWorker,
		WorkerID:     &wid,
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("issues access and refresh tokens", func(t *testing.T) {
		deps := setupServiceTest(t)
		user := workerProfile(t, "secret1")
		deps.repo.EXPECT().GetByEmail(ctx, "ana@example.com").Return(user, nil)

		res, err := deps.service.Login(ctx, auth.LoginRequest{Email: "ana@example.com", Password: "secret1"})

		require.NoError(t, err)
		assert.Equal(t, "/worker/assignments", res.User.HomePath)
		assert.Equal(t, 900, res.ExpiresIn)

		access, err := deps.issuer.Parse(res.AccessToken, token.TypeAccess)
		require.NoError(t, err)
		assert.Equal(t, "user-1", access.UserID)
		assert.Equal(t, domain.RoleWorker, access.Role)
		assert.Equal(t, *user.WorkerID, access.WorkerID)

		_, err = deps.issuer.Parse(res.RefreshToken, token.TypeRefresh)
		assert.NoError(t, err)
		_, err = deps.issuer.Parse(res.RefreshToken, token.TypeAccess)
		assert.ErrorIs(t, err, token.ErrInvalid)
	})

	t.Run("wrong password", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().GetByEmail(ctx, "ana@example.com").Return(workerProfile(t, "secret1"), nil)

		_, err := deps.service.Login(ctx, auth.LoginRequest{Email: "ana@example.com", Password: "nope"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().GetByEmail(ctx, "ghost@example.com").Return(&domain.UserProfile{}, gorm.ErrRecordNotFound)

		_, err := deps.service.Login(ctx, auth.LoginRequest{Email: "ghost@example.com", Password: "x"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("store failure", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().GetByEmail(ctx, gomock.Any()).Return(nil, errors.New("connection reset"))

		_, err := deps.service.Login(ctx, auth.LoginRequest{Email: "ana@example.com", Password: "x"})
		assert.ErrorIs(t, err, apperror.ErrFetch)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("reissues from the stored profile", func(t *testing.T) {
		deps := setupServiceTest(t)
		user := workerProfile(t, "secret1")

		refresh, err := deps.issuer.Sign(token.Claims{UserID: "user-1", Role: domain.RoleWorker, Type: token.TypeRefresh}, token.RefreshTTL)
		require.NoError(t, err)

		promoted := *user
		promoted.Role = domain.RoleSupervisor
		deps.repo.EXPECT().GetByID(ctx, "user-1").Return(&promoted, nil)

		res, err := deps.service.Refresh(ctx, refresh)

		require.NoError(t, err)
		access, err := deps.issuer.Parse(res.AccessToken, token.TypeAccess)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleSupervisor, access.Role)
	})

	t.Run("access token is not a refresh token", func(t *testing.T) {
		deps := setupServiceTest(t)
		access, err := deps.issuer.Sign(token.Claims{UserID: "user-1", Role: domain.RoleWorker, Type: token.TypeAccess}, token.AccessTTL)
		require.NoError(t, err)

		_, err = deps.service.Refresh(ctx, access)
		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})

	t.Run("missing token", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Refresh(ctx, "")
		assert.ErrorIs(t, err, autherrors.ErrTokenNotFound)
	})
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	wid := "b3c1f0de-0000-4000-8000-000000000001"

	t.Run("worker account links an existing worker", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.workers.EXPECT().FindByID(ctx, wid).Return(&domain.Worker{ID: wid, Name: "Ana", DailyRate: decimal.NewFromInt(200)}, nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, u *domain.UserProfile) error {
				assert.Equal(t, "ana@example.com", u.Email)
				assert.Equal(t, domain.RoleWorker, u.Role)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")))
				return nil
			})

		res, err := deps.service.Register(ctx, auth.RegisterRequest{Email: "Ana@Example.com", Password: "secret1", Role: "worker", WorkerID: wid})

		require.NoError(t, err)
		require.NotNil(t, res.Worker)
		assert.Equal(t, "200.00", res.Worker.DailyRate)
	})

	t.Run("worker role needs worker_id", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Register(ctx, auth.RegisterRequest{Email: "a@example.com", Password: "secret1", Role: "worker"})
		assert.ErrorIs(t, err, autherrors.ErrWorkerRequired)
	})

	t.Run("unknown role", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Register(ctx, auth.RegisterRequest{Email: "a@example.com", Password: "secret1", Role: "owner"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidRole)
	})

	t.Run("worker must exist", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.workers.EXPECT().FindByID(ctx, wid).Return(&domain.Worker{}, gorm.ErrRecordNotFound)

		_, err := deps.service.Register(ctx, auth.RegisterRequest{Email: "a@example.com", Password: "secret1", Role: "worker", WorkerID: wid})
		assert.ErrorIs(t, err, autherrors.ErrWorkerNotFound)
	})

	t.Run("duplicate email", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_user_profiles_email"})

		_, err := deps.service.Register(ctx, auth.RegisterRequest{Email: "sup@example.com", Password: "secret1", Role: "supervisor"})
		assert.ErrorIs(t, err, autherrors.ErrEmailAlreadyRegistered)
	})

	t.Run("worker already linked", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.workers.EXPECT().FindByID(ctx, wid).Return(&domain.Worker{ID: wid}, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(&pgconn.PgError{Code: "23505", ConstraintName: "idx_user_profiles_worker_id"})

		_, err := deps.service.Register(ctx, auth.RegisterRequest{Email: "b@example.com", Password: "secret1", Role: "worker", WorkerID: wid})
		assert.ErrorIs(t, err, autherrors.ErrWorkerAlreadyLinked)
	})
}

func TestAuthService_Me(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)

	user := workerProfile(t, "secret1")
	user.Worker = &domain.Worker{ID: *user.WorkerID, Name: "Ana", Email: "ana@example.com", DailyRate: decimal.NewFromInt(180)}
	deps.repo.EXPECT().GetByID(ctx, "user-1").Return(user, nil)

	res, err := deps.service.Me(ctx, contextutil.Session{UserID: "user-1", Role: domain.RoleWorker})

	require.NoError(t, err)
	assert.Equal(t, "worker", res.Role)
	assert.Equal(t, "Ana", res.Worker.Name)
}
