package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
)

// rsaKeyBits - размер ключа подписи. Токены подписываются RS256,
// приватная половина хранится без passphrase.
const rsaKeyBits = 4096

// KeyPair - пара ключей одного семейства токенов в PEM кодировке
// (публичный - PKIX, приватный - PKCS8)
type KeyPair struct {
	PublicKey  string
	PrivateKey string
}

// GenerateKeyPair генерирует RSA пару для одного семейства токенов.
// Вызывается дважды на регистрацию: семейства ACCESS и REFRESH должны
// быть независимы, общий ключ позволил бы подделывать токены одного
// семейства ключом другого.
func GenerateKeyPair() (*KeyPair, error) {
	return generateKeyPair(rsaKeyBits)
}

func generateKeyPair(bits int) (*KeyPair, error) {
	key, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate rsa key: %w", err)
	}

	privBytes, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal private key: %w", err)
	}

	pubBytes, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal public key: %w", err)
	}

	privPEM := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: privBytes})
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubBytes})

	return &KeyPair{
		PublicKey:  string(pubPEM),
		PrivateKey: string(privPEM),
	}, nil
}
