package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenFamily определяет, каким приватным ключом подписывается токен
// и какой срок жизни к нему применяется. Само по себе семейство в токен
// не кодируется: access и refresh токен одного пользователя структурно
// неотличимы, их различает только ключ, которым они верифицируются.
type TokenFamily string

const (
	TokenFamilyAccess  TokenFamily = "ACCESS"
	TokenFamilyRefresh TokenFamily = "REFRESH"
)

// Ошибки верификации. Истечение срока классифицируется отдельно от
// остальных отказов: для клиента это восстановимое состояние (re-login),
// тогда как неверная подпись - событие безопасности.
var (
	ErrTokenExpired     = errors.New("token expired")
	ErrInvalidSignature = errors.New("token signature invalid")
	ErrMalformedPayload = errors.New("token payload malformed")
)

// TokenPayload - полезная нагрузка токена
type TokenPayload struct {
	UserID uint
	Email  string
	Role   string
}

// Claims - структура утверждений: полезная нагрузка плюс стандартные
// утверждения (issued-at и expiry добавляются при подписи)
type Claims struct {
	UserID uint   `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenConfig - явная конфигурация, внедряемая при конструировании
type TokenConfig struct {
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	Algorithm  string
}

// TokenService подписывает, декодирует и верифицирует токены.
// Алгоритм зафиксирован (RS256); соответствие ключа семейству токена -
// контракт вызывающего, сервис его не проверяет.
type TokenService struct {
	cfg    TokenConfig
	method jwt.SigningMethod
}

func NewTokenService(cfg TokenConfig) *TokenService {
	if cfg.Algorithm == "" {
		cfg.Algorithm = "RS256"
	}
	return &TokenService{
		cfg:    cfg,
		method: jwt.GetSigningMethod(cfg.Algorithm),
	}
}

// Sign подписывает payload приватным ключом в токен заданного семейства.
// Срок жизни берется из конфигурации по семейству.
func (s *TokenService) Sign(payload TokenPayload, family TokenFamily, privateKeyPEM string) (string, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return "", err
	}

	ttl := s.cfg.AccessTTL
	if family == TokenFamilyRefresh {
		ttl = s.cfg.RefreshTTL
	}

	now := time.Now()
	claims := Claims{
		UserID: payload.UserID,
		Email:  payload.Email,
		Role:   payload.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(s.method, claims).SignedString(key)
}

// Decode извлекает payload БЕЗ проверки подписи и срока жизни.
// Используется только для bootstrap-поиска личности (чей публичный ключ
// доставать из хранилища) по токену, который мог уже истечь. Доверять
// результату нельзя, пока refresh токен не верифицирован независимо.
func (s *TokenService) Decode(tokenString string) (*TokenPayload, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, ErrMalformedPayload
	}

	if claims.UserID == 0 || claims.Email == "" || claims.Role == "" {
		return nil, ErrMalformedPayload
	}

	return &TokenPayload{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}

// Verify проверяет подпись токена против публичного ключа (только RS256)
// и срок жизни. Истекший токен дает ErrTokenExpired, любой другой отказ
// (чужой ключ, подмененный payload, другой алгоритм) - ErrInvalidSignature.
func (s *TokenService) Verify(tokenString, publicKeyPEM string) (*TokenPayload, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM))
	if err != nil {
		return nil, ErrInvalidSignature
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (interface{}, error) { return key, nil },
		jwt.WithValidMethods([]string{s.cfg.Algorithm}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidSignature
	}
	if !token.Valid {
		return nil, ErrInvalidSignature
	}

	return &TokenPayload{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
