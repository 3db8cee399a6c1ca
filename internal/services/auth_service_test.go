package services

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"inventory_backend/internal/auth"
	"inventory_backend/internal/models"
	"inventory_backend/internal/repositories"
	"inventory_backend/internal/services/dto"
	"inventory_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testBcryptCost - минимальный рабочий фактор, чтобы тесты не тратили
// время на хеширование
const testBcryptCost = 4

// fakeUserRepo - in-memory реализация UserRepository
type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*models.User{}, nextID: 1}
}

func (r *fakeUserRepo) FindActiveByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email && u.Status == models.DocumentStatusActive {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindAccessPublicKey(userID uint) (string, error) {
	u, ok := r.users[userID]
	if !ok || u.Status != models.DocumentStatusActive {
		return "", repositories.ErrUserNotFound
	}
	return u.AccessPublicKey, nil
}

func (r *fakeUserRepo) FindRefreshKeys(userID uint) (*repositories.AuthKeys, error) {
	u, ok := r.users[userID]
	if !ok || u.Status != models.DocumentStatusActive {
		return nil, repositories.ErrUserNotFound
	}
	return &repositories.AuthKeys{
		AccessPrivateKey: u.AccessPrivateKey,
		RefreshPublicKey: u.RefreshPublicKey,
	}, nil
}

func (r *fakeUserRepo) ExistsByEmail(email string) (bool, error) {
	_, err := r.FindActiveByEmail(email)
	if err == nil {
		return true, nil
	}
	return false, nil
}

func (r *fakeUserRepo) Create(user *models.User) error {
	if exists, _ := r.ExistsByEmail(user.Email); exists {
		return repositories.ErrUserAlreadyExists
	}
	user.ID = r.nextID
	r.nextID++
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) UpdatePassword(email, passwordHash string) error {
	for _, u := range r.users {
		if u.Email == email && u.Status == models.DocumentStatusActive {
			u.PasswordHash = passwordHash
			return nil
		}
	}
	return repositories.ErrUserNotFound
}

func (r *fakeUserRepo) RotateKeypairs(userID uint, keys repositories.KeypairUpdate) error {
	u, ok := r.users[userID]
	if !ok || u.Status != models.DocumentStatusActive {
		return repositories.ErrUserNotFound
	}
	u.AccessPrivateKey = keys.AccessPrivateKey
	u.AccessPublicKey = keys.AccessPublicKey
	u.RefreshPrivateKey = keys.RefreshPrivateKey
	u.RefreshPublicKey = keys.RefreshPublicKey
	return nil
}

// genKeyPair генерирует короткую RSA пару: в тестах важна корректность
// подписи, а не стойкость ключа
func genKeyPair(t *testing.T) *auth.KeyPair {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	privBytes, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)
	pubBytes, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	return &auth.KeyPair{
		PrivateKey: string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: privBytes})),
		PublicKey:  string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubBytes})),
	}
}

func newTestTokenService() *auth.TokenService {
	return auth.NewTokenService(auth.TokenConfig{
		AccessTTL:  time.Hour,
		RefreshTTL: 24 * time.Hour,
		Algorithm:  "RS256",
	})
}

// seedUser кладет в репозиторий готового пользователя со своими парами
// ключей, минуя дорогую генерацию 4096-битных ключей в SignUp
func seedUser(t *testing.T, repo *fakeUserRepo, email, password string) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(password, testBcryptCost)
	require.NoError(t, err)

	accessPair := genKeyPair(t)
	refreshPair := genKeyPair(t)

	user := &models.User{
		Email:             email,
		Name:              "Test User",
		PasswordHash:      hash,
		Role:              models.UserRoleUser,
		Status:            models.DocumentStatusActive,
		AccessPrivateKey:  accessPair.PrivateKey,
		AccessPublicKey:   accessPair.PublicKey,
		RefreshPrivateKey: refreshPair.PrivateKey,
		RefreshPublicKey:  refreshPair.PublicKey,
	}
	require.NoError(t, repo.Create(user))
	return repo.users[user.ID]
}

func newTestAuthService(repo *fakeUserRepo) AuthService {
	return NewAuthService(repo, newTestTokenService(), testBcryptCost)
}

func TestSignUp_MissingKeys(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(newFakeUserRepo())
	ctx := context.Background()

	cases := []struct {
		name string
		req  dto.SignUpRequest
		want error
	}{
		{"no email", dto.SignUpRequest{Name: "A", Password: "p", Role: "USER"}, apperrors.ErrKeyMissingEmail},
		{"no name", dto.SignUpRequest{Email: "a@b.com", Password: "p", Role: "USER"}, apperrors.ErrKeyMissingName},
		{"no password", dto.SignUpRequest{Email: "a@b.com", Name: "A", Role: "USER"}, apperrors.ErrKeyMissingPassword},
		{"no role", dto.SignUpRequest{Email: "a@b.com", Name: "A", Password: "p"}, apperrors.ErrKeyMissingRole},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := svc.SignUp(ctx, tc.req, nil)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSignUp_InvalidEmail(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(newFakeUserRepo())

	for _, email := range []string{"not-an-email", "a@b", "a b@c.com", "@c.com"} {
		resp, err := svc.SignUp(context.Background(), dto.SignUpRequest{
			Email: email, Name: "A", Password: "p", Role: "USER",
		}, nil)
		assert.Nil(t, resp, "email %q", email)
		assert.ErrorIs(t, err, apperrors.ErrInvalidEmail, "email %q", email)
	}
}

func TestSignUp_InvalidRole(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(newFakeUserRepo())

	resp, err := svc.SignUp(context.Background(), dto.SignUpRequest{
		Email: "a@b.com", Name: "A", Password: "p", Role: "OVERLORD",
	}, nil)
	assert.Nil(t, resp)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeInvalidRole, appErr.Code)
}

func TestSignUp_EmailAlreadyRegistered(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	seedUser(t, repo, "taken@b.com", "secret")
	svc := newTestAuthService(repo)

	resp, err := svc.SignUp(context.Background(), dto.SignUpRequest{
		Email: "taken@b.com", Name: "A", Password: "p", Role: "USER",
	}, nil)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyRegistered)
}

func TestSignUp_CreatesIndependentKeypairs(t *testing.T) {
	t.Parallel()
	if testing.Short() {
		t.Skip("4096-bit key generation is slow")
	}

	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	resp, err := svc.SignUp(context.Background(), dto.SignUpRequest{
		Email: " New@B.com ", Name: "New", Password: "secret", Role: "admin",
	}, nil)
	require.NoError(t, err)
	// Email обрезается, но регистр сохраняется как прислан
	assert.Equal(t, "New@B.com", resp.Email)
	assert.Equal(t, "ADMIN", resp.Role)

	user := repo.users[resp.UserID]
	require.NotNil(t, user)
	assert.NotEmpty(t, user.AccessPrivateKey)
	assert.NotEmpty(t, user.RefreshPrivateKey)
	assert.NotEqual(t, user.AccessPrivateKey, user.RefreshPrivateKey)
	assert.NotEqual(t, user.AccessPublicKey, user.RefreshPublicKey)
	assert.NotEqual(t, user.PasswordHash, "secret")
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	user := seedUser(t, repo, "u@b.com", "secret")
	svc := newTestAuthService(repo)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Email: " u@b.com ", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.UserID)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	// Каждый токен верифицируется только ключом своего семейства
	tokens := newTestTokenService()
	payload, err := tokens.Verify(resp.AccessToken, user.AccessPublicKey)
	require.NoError(t, err)
	assert.Equal(t, user.ID, payload.UserID)

	_, err = tokens.Verify(resp.AccessToken, user.RefreshPublicKey)
	assert.ErrorIs(t, err, auth.ErrInvalidSignature)

	_, err = tokens.Verify(resp.RefreshToken, user.RefreshPublicKey)
	require.NoError(t, err)
}

func TestLogin_Failures(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	seedUser(t, repo, "u@b.com", "secret")
	svc := newTestAuthService(repo)
	ctx := context.Background()

	_, err := svc.Login(ctx, dto.LoginRequest{Password: "secret"})
	assert.ErrorIs(t, err, apperrors.ErrKeyMissingEmail)

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "u@b.com"})
	assert.ErrorIs(t, err, apperrors.ErrKeyMissingPassword)

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "nobody@b.com", Password: "secret"})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "u@b.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
}

func TestLogin_EmailIsCaseSensitive(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	seedUser(t, repo, "Alice@B.com", "secret")
	svc := newTestAuthService(repo)
	ctx := context.Background()

	// Поиск по email регистрозависим: другой регистр - другой адрес
	_, err := svc.Login(ctx, dto.LoginRequest{Email: "alice@b.com", Password: "secret"})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "Alice@B.com", Password: "secret"})
	assert.NoError(t, err)
}

func TestRefresh_WithExpiredAccessToken(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	user := seedUser(t, repo, "u@b.com", "secret")
	svc := newTestAuthService(repo)

	payload := auth.TokenPayload{UserID: user.ID, Email: user.Email, Role: string(user.Role)}

	// Истекший access токен: именно для этого сценария существует
	// refresh flow
	expiredSigner := auth.NewTokenService(auth.TokenConfig{
		AccessTTL:  -time.Minute,
		RefreshTTL: time.Hour,
	})
	expiredAccess, err := expiredSigner.Sign(payload, auth.TokenFamilyAccess, user.AccessPrivateKey)
	require.NoError(t, err)

	refreshToken, err := newTestTokenService().Sign(payload, auth.TokenFamilyRefresh, user.RefreshPrivateKey)
	require.NoError(t, err)

	resp, err := svc.Refresh(context.Background(), dto.RefreshRequest{
		AccessToken:  expiredAccess,
		RefreshToken: refreshToken,
	})
	require.NoError(t, err)

	got, err := newTestTokenService().Verify(resp.AccessToken, user.AccessPublicKey)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.UserID)
}

func TestRefresh_Failures(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	user := seedUser(t, repo, "u@b.com", "secret")
	intruder := seedUser(t, repo, "evil@b.com", "secret")
	svc := newTestAuthService(repo)
	tokens := newTestTokenService()
	ctx := context.Background()

	payload := auth.TokenPayload{UserID: user.ID, Email: user.Email, Role: string(user.Role)}
	accessToken, err := tokens.Sign(payload, auth.TokenFamilyAccess, user.AccessPrivateKey)
	require.NoError(t, err)
	refreshToken, err := tokens.Sign(payload, auth.TokenFamilyRefresh, user.RefreshPrivateKey)
	require.NoError(t, err)

	t.Run("missing tokens", func(t *testing.T) {
		_, err := svc.Refresh(ctx, dto.RefreshRequest{RefreshToken: refreshToken})
		assert.ErrorIs(t, err, apperrors.ErrKeyMissingAccessToken)

		_, err = svc.Refresh(ctx, dto.RefreshRequest{AccessToken: accessToken})
		assert.ErrorIs(t, err, apperrors.ErrKeyMissingRefreshToken)
	})

	t.Run("malformed access token", func(t *testing.T) {
		_, err := svc.Refresh(ctx, dto.RefreshRequest{
			AccessToken:  "not.a.token",
			RefreshToken: refreshToken,
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidAccessToken)
	})

	t.Run("access token of deleted user", func(t *testing.T) {
		ghost := auth.TokenPayload{UserID: 999, Email: "ghost@b.com", Role: "USER"}
		ghostAccess, err := tokens.Sign(ghost, auth.TokenFamilyAccess, user.AccessPrivateKey)
		require.NoError(t, err)

		_, err = svc.Refresh(ctx, dto.RefreshRequest{
			AccessToken:  ghostAccess,
			RefreshToken: refreshToken,
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidAccessToken)
	})

	t.Run("expired refresh token gives 403", func(t *testing.T) {
		expiredSigner := auth.NewTokenService(auth.TokenConfig{
			AccessTTL:  time.Hour,
			RefreshTTL: -time.Minute,
		})
		expiredRefresh, err := expiredSigner.Sign(payload, auth.TokenFamilyRefresh, user.RefreshPrivateKey)
		require.NoError(t, err)

		_, err = svc.Refresh(ctx, dto.RefreshRequest{
			AccessToken:  accessToken,
			RefreshToken: expiredRefresh,
		})
		assert.ErrorIs(t, err, apperrors.ErrRevokedTokenProvided)
	})

	t.Run("refresh token signed by another user", func(t *testing.T) {
		forged, err := tokens.Sign(payload, auth.TokenFamilyRefresh, intruder.RefreshPrivateKey)
		require.NoError(t, err)

		_, err = svc.Refresh(ctx, dto.RefreshRequest{
			AccessToken:  accessToken,
			RefreshToken: forged,
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
	})

	t.Run("access token used as refresh token", func(t *testing.T) {
		_, err := svc.Refresh(ctx, dto.RefreshRequest{
			AccessToken:  accessToken,
			RefreshToken: accessToken,
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
	})
}

func TestResetPassword(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	seedUser(t, repo, "u@b.com", "old-secret")
	svc := newTestAuthService(repo)
	ctx := context.Background()

	_, err := svc.ResetPassword(ctx, dto.ResetPasswordRequest{
		Email: "nobody@b.com", OldPassword: "old-secret", NewPassword: "new-secret",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailNotFound)

	_, err = svc.ResetPassword(ctx, dto.ResetPasswordRequest{
		Email: "u@b.com", OldPassword: "wrong", NewPassword: "new-secret",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidOldPassword)

	resp, err := svc.ResetPassword(ctx, dto.ResetPasswordRequest{
		Email: "u@b.com", OldPassword: "old-secret", NewPassword: "new-secret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Message)

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "u@b.com", Password: "old-secret"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "u@b.com", Password: "new-secret"})
	assert.NoError(t, err)
}

func TestRotateKeys_RevokesExistingTokens(t *testing.T) {
	t.Parallel()
	if testing.Short() {
		t.Skip("4096-bit key generation is slow")
	}

	repo := newFakeUserRepo()
	user := seedUser(t, repo, "u@b.com", "secret")
	svc := newTestAuthService(repo)
	tokens := newTestTokenService()

	payload := auth.TokenPayload{UserID: user.ID, Email: user.Email, Role: string(user.Role)}
	oldAccess, err := tokens.Sign(payload, auth.TokenFamilyAccess, user.AccessPrivateKey)
	require.NoError(t, err)

	_, err = svc.RotateKeys(context.Background(), user.ID)
	require.NoError(t, err)

	// Старый токен больше не верифицируется новым публичным ключом
	rotated := repo.users[user.ID]
	_, err = tokens.Verify(oldAccess, rotated.AccessPublicKey)
	assert.ErrorIs(t, err, auth.ErrInvalidSignature)
}

func TestRotateKeys_UnknownUser(t *testing.T) {
	t.Parallel()
	if testing.Short() {
		t.Skip("4096-bit key generation is slow")
	}

	svc := newTestAuthService(newFakeUserRepo())

	_, err := svc.RotateKeys(context.Background(), 404)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
