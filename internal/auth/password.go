package auth

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost - рабочий фактор по умолчанию
const DefaultBcryptCost = 10

// HashPassword создает bcrypt хеш пароля с заданным рабочим фактором.
// cost <= 0 означает фактор по умолчанию.
func HashPassword(password string, cost int) (string, error) {
	if cost <= 0 {
		cost = DefaultBcryptCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(bytes), err
}

// CheckPasswordHash проверяет пароль против хеша. Неверный пароль и
// испорченный хеш неразличимы для вызывающего - оба дают false.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
