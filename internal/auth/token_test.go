package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService() *TokenService {
	return NewTokenService(TokenConfig{
		AccessTTL:  time.Hour,
		RefreshTTL: 24 * time.Hour,
		Algorithm:  "RS256",
	})
}

func genTestKeyPair(t *testing.T) *KeyPair {
	t.Helper()
	pair, err := generateKeyPair(2048)
	require.NoError(t, err)
	return pair
}

var testPayload = TokenPayload{UserID: 42, Email: "a@b.com", Role: "USER"}

func TestSignAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService()
	pair := genTestKeyPair(t)

	for _, family := range []TokenFamily{TokenFamilyAccess, TokenFamilyRefresh} {
		token, err := svc.Sign(testPayload, family, pair.PrivateKey)
		require.NoError(t, err, "sign %s", family)

		got, err := svc.Verify(token, pair.PublicKey)
		require.NoError(t, err, "verify %s", family)
		assert.Equal(t, testPayload.UserID, got.UserID)
		assert.Equal(t, testPayload.Email, got.Email)
		assert.Equal(t, testPayload.Role, got.Role)
	}
}

func TestVerify_WrongPublicKey(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService()
	pair := genTestKeyPair(t)
	other := genTestKeyPair(t)

	token, err := svc.Sign(testPayload, TokenFamilyAccess, pair.PrivateKey)
	require.NoError(t, err)

	// Токен, подписанный чужим приватным ключом, не проходит
	// верификацию против целевого публичного ключа
	payload, err := svc.Verify(token, other.PublicKey)
	assert.Nil(t, payload)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerify_CrossFamily(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService()
	accKeys := genTestKeyPair(t)
	refrKeys := genTestKeyPair(t)

	// Access и refresh токен структурно неотличимы - их различает
	// только ключ, которым они верифицируются
	accessToken, err := svc.Sign(testPayload, TokenFamilyAccess, accKeys.PrivateKey)
	require.NoError(t, err)

	_, err = svc.Verify(accessToken, accKeys.PublicKey)
	assert.NoError(t, err)

	_, err = svc.Verify(accessToken, refrKeys.PublicKey)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	expired := NewTokenService(TokenConfig{AccessTTL: -time.Second, RefreshTTL: -time.Second})
	svc := newTestTokenService()
	pair := genTestKeyPair(t)

	token, err := expired.Sign(testPayload, TokenFamilyAccess, pair.PrivateKey)
	require.NoError(t, err)

	payload, err := svc.Verify(token, pair.PublicKey)
	assert.Nil(t, payload)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestDecode_ExpiredToken(t *testing.T) {
	t.Parallel()

	expired := NewTokenService(TokenConfig{AccessTTL: -time.Second, RefreshTTL: -time.Second})
	pair := genTestKeyPair(t)

	token, err := expired.Sign(testPayload, TokenFamilyAccess, pair.PrivateKey)
	require.NoError(t, err)

	// Decode не проверяет ни подпись, ни срок жизни - истекший токен
	// все еще раскрывает личность
	got, err := expired.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, testPayload.UserID, got.UserID)
}

func TestDecode_Malformed(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService()

	_, err := svc.Decode("not.a.jwt")
	assert.ErrorIs(t, err, ErrMalformedPayload)

	_, err = svc.Decode("")
	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestDecode_MissingClaims(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService()
	pair := genTestKeyPair(t)

	// Валидно подписанный токен без userId/email/role - malformed payload
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(pair.PrivateKey))
	require.NoError(t, err)

	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(key)
	require.NoError(t, err)

	_, err = svc.Decode(token)
	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService()
	pair := genTestKeyPair(t)

	// HS256 токен, "подписанный" публичным ключом как секретом -
	// классическая попытка подмены алгоритма
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: testPayload.UserID,
		Email:  testPayload.Email,
		Role:   testPayload.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(pair.PublicKey))
	require.NoError(t, err)

	payload, err := svc.Verify(forged, pair.PublicKey)
	assert.Nil(t, payload)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}
