package services

import (
	"context"
	"regexp"
	"strings"

	"inventory_backend/internal/auth"
	"inventory_backend/internal/logger"
	"inventory_backend/internal/models"
	"inventory_backend/internal/repositories"
	"inventory_backend/internal/services/dto"
	"inventory_backend/pkg/apperrors"
)

// Формат email проверяется нестрого: непустые local part и домен с точкой.
// Строгая проверка - задача подтверждения адреса, не регистрации.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService реализует жизненный цикл учетной записи: регистрацию с
// генерацией двух независимых пар ключей, выдачу пары токенов, обновление
// access токена и смену пароля.
type AuthService interface {
	SignUp(ctx context.Context, req dto.SignUpRequest, createdBy *uint) (*dto.SignUpResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, req dto.RefreshRequest) (*dto.RefreshResponse, error)
	ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) (*dto.ResetPasswordResponse, error)
	RotateKeys(ctx context.Context, userID uint) (*dto.RotateKeysResponse, error)
}

type AuthServiceImpl struct {
	userRepo   repositories.UserRepository
	tokens     *auth.TokenService
	bcryptCost int
}

func NewAuthService(userRepo repositories.UserRepository, tokens *auth.TokenService, bcryptCost int) AuthService {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

func (s *AuthServiceImpl) SignUp(ctx context.Context, req dto.SignUpRequest, createdBy *uint) (*dto.SignUpResponse, error) {
	if req.Email == "" {
		return nil, apperrors.ErrKeyMissingEmail
	}
	if req.Name == "" {
		return nil, apperrors.ErrKeyMissingName
	}
	if req.Password == "" {
		return nil, apperrors.ErrKeyMissingPassword
	}
	if req.Role == "" {
		return nil, apperrors.ErrKeyMissingRole
	}

	// Email только обрезается: хранение и поиск регистрозависимы
	email := strings.TrimSpace(req.Email)
	if !emailPattern.MatchString(email) {
		return nil, apperrors.ErrInvalidEmail
	}

	role := models.UserRole(strings.ToUpper(strings.TrimSpace(req.Role)))
	switch role {
	case models.UserRoleAdmin, models.UserRoleSuperAdmin, models.UserRoleUser:
	default:
		return nil, apperrors.ErrInvalidRole.WithDetails(map[string]string{"role": req.Role})
	}

	exists, err := s.userRepo.ExistsByEmail(email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyRegistered
	}

	passwordHash, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Две независимые пары: утечка ключей одного семейства не дает
	// подделывать токены другого
	accessPair, err := auth.GenerateKeyPair()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	refreshPair, err := auth.GenerateKeyPair()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:             email,
		Name:              strings.TrimSpace(req.Name),
		Phone:             strings.TrimSpace(req.Phone),
		PasswordHash:      passwordHash,
		Role:              role,
		Status:            models.DocumentStatusActive,
		AccessPrivateKey:  accessPair.PrivateKey,
		AccessPublicKey:   accessPair.PublicKey,
		RefreshPrivateKey: refreshPair.PrivateKey,
		RefreshPublicKey:  refreshPair.PublicKey,
		CreatedBy:         createdBy,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyRegistered
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user registered", "user_id", user.ID, "role", string(role))

	return &dto.SignUpResponse{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   string(user.Role),
	}, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.Email == "" {
		return nil, apperrors.ErrKeyMissingEmail
	}
	if req.Password == "" {
		return nil, apperrors.ErrKeyMissingPassword
	}

	email := strings.TrimSpace(req.Email)

	user, err := s.userRepo.FindActiveByEmail(email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidPassword
	}

	payload := auth.TokenPayload{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
	}

	accessToken, err := s.tokens.Sign(payload, auth.TokenFamilyAccess, user.AccessPrivateKey)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	refreshToken, err := s.tokens.Sign(payload, auth.TokenFamilyRefresh, user.RefreshPrivateKey)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user logged in", "user_id", user.ID)

	return &dto.LoginResponse{
		UserID:       user.ID,
		Email:        user.Email,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh обменивает валидный refresh токен на новый access токен.
// Access токен из запроса не верифицируется - он может быть истекшим,
// его роль здесь лишь указать, чьими ключами проверять refresh токен.
func (s *AuthServiceImpl) Refresh(ctx context.Context, req dto.RefreshRequest) (*dto.RefreshResponse, error) {
	if req.AccessToken == "" {
		return nil, apperrors.ErrKeyMissingAccessToken
	}
	if req.RefreshToken == "" {
		return nil, apperrors.ErrKeyMissingRefreshToken
	}

	claimed, err := s.tokens.Decode(req.AccessToken)
	if err != nil {
		return nil, apperrors.ErrInvalidAccessToken
	}

	keys, err := s.userRepo.FindRefreshKeys(claimed.UserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			// Токен ссылается на несуществующего или удаленного
			// пользователя - с точки зрения клиента он просто невалиден
			return nil, apperrors.ErrInvalidAccessToken
		}
		return nil, apperrors.InternalError(err)
	}

	verified, err := s.tokens.Verify(req.RefreshToken, keys.RefreshPublicKey)
	if err != nil {
		if apperrors.Is(err, auth.ErrTokenExpired) {
			return nil, apperrors.ErrRevokedTokenProvided
		}
		return nil, apperrors.ErrInvalidRefreshToken
	}

	// Новый access токен подписывается из ВЕРИФИЦИРОВАННОГО payload:
	// личность из недоверенного access токена дальше не используется
	accessToken, err := s.tokens.Sign(*verified, auth.TokenFamilyAccess, keys.AccessPrivateKey)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "access token refreshed", "user_id", verified.UserID)

	return &dto.RefreshResponse{AccessToken: accessToken}, nil
}

func (s *AuthServiceImpl) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) (*dto.ResetPasswordResponse, error) {
	if req.Email == "" {
		return nil, apperrors.ErrKeyMissingEmail
	}
	if req.OldPassword == "" {
		return nil, apperrors.ErrKeyMissingOldPassword
	}
	if req.NewPassword == "" {
		return nil, apperrors.ErrKeyMissingNewPassword
	}

	email := strings.TrimSpace(req.Email)

	user, err := s.userRepo.FindActiveByEmail(email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrEmailNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.OldPassword, user.PasswordHash) {
		return nil, apperrors.ErrInvalidOldPassword
	}

	newHash, err := auth.HashPassword(req.NewPassword, s.bcryptCost)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdatePassword(email, newHash); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrEmailNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	// Смена пароля не трогает ключи: выданные токены остаются валидны
	// до истечения срока. Немедленный отзыв - через rotate keys.
	logger.CtxInfo(ctx, "password reset", "user_id", user.ID)

	return &dto.ResetPasswordResponse{Message: "Password updated successfully"}, nil
}

// RotateKeys заменяет обе пары ключей пользователя. Все ранее выданные
// токены обоих семейств мгновенно перестают верифицироваться - это
// механизм отзыва в схеме без хранения состояния токенов.
func (s *AuthServiceImpl) RotateKeys(ctx context.Context, userID uint) (*dto.RotateKeysResponse, error) {
	accessPair, err := auth.GenerateKeyPair()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	refreshPair, err := auth.GenerateKeyPair()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	update := repositories.KeypairUpdate{
		AccessPrivateKey:  accessPair.PrivateKey,
		AccessPublicKey:   accessPair.PublicKey,
		RefreshPrivateKey: refreshPair.PrivateKey,
		RefreshPublicKey:  refreshPair.PublicKey,
	}

	if err := s.userRepo.RotateKeypairs(userID, update); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "keypairs rotated", "user_id", userID)

	return &dto.RotateKeysResponse{Message: "Keys rotated, all existing tokens are revoked"}, nil
}
