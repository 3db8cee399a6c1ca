package repositories

import (
	"errors"

	"inventory_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// AuthKeys - подмножество ключей, нужное refresh flow: приватный ключ
// семейства ACCESS (для подписи нового токена) и публичный ключ семейства
// REFRESH (для верификации предъявленного refresh токена)
type AuthKeys struct {
	AccessPrivateKey string
	RefreshPublicKey string
}

// KeypairUpdate - полный набор из четырех ключевых колонок.
// Ротация меняет их только как единое целое.
type KeypairUpdate struct {
	AccessPrivateKey  string
	AccessPublicKey   string
	RefreshPrivateKey string
	RefreshPublicKey  string
}

type UserRepository interface {
	// Чтение для login/reset: активная строка по email
	FindActiveByEmail(email string) (*models.User, error)
	// Чтение для auth gate: публичный ключ ACCESS по id
	FindAccessPublicKey(userID uint) (string, error)
	// Чтение для refresh flow: ключи по id
	FindRefreshKeys(userID uint) (*AuthKeys, error)

	ExistsByEmail(email string) (bool, error)
	Create(user *models.User) error
	UpdatePassword(email, passwordHash string) error
	RotateKeypairs(userID uint, keys KeypairUpdate) error
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindActiveByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.
		Where("email = ? AND document_status = ?", email, models.DocumentStatusActive).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindAccessPublicKey(userID uint) (string, error) {
	var user models.User
	err := r.db.
		Select("access_public_key").
		Where("id = ? AND document_status = ?", userID, models.DocumentStatusActive).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}
	return user.AccessPublicKey, nil
}

func (r *UserRepositoryImpl) FindRefreshKeys(userID uint) (*AuthKeys, error) {
	var user models.User
	err := r.db.
		Select("access_private_key", "refresh_public_key").
		Where("id = ? AND document_status = ?", userID, models.DocumentStatusActive).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &AuthKeys{
		AccessPrivateKey: user.AccessPrivateKey,
		RefreshPublicKey: user.RefreshPublicKey,
	}, nil
}

func (r *UserRepositoryImpl) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("email = ? AND document_status = ?", email, models.DocumentStatusActive).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	var existing models.User
	err := r.db.
		Where("email = ? AND document_status = ?", user.Email, models.DocumentStatusActive).
		First(&existing).Error
	if err == nil {
		return ErrUserAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.Create(user).Error
}

func (r *UserRepositoryImpl) UpdatePassword(email, passwordHash string) error {
	result := r.db.Model(&models.User{}).
		Where("email = ? AND document_status = ?", email, models.DocumentStatusActive).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// RotateKeypairs заменяет все четыре ключевые колонки в одной транзакции.
// Никогда не обновляет половины пар по отдельности: рассинхронизированная
// пара не падает громко, а молча перестает верифицировать токены.
func (r *UserRepositoryImpl) RotateKeypairs(userID uint, keys KeypairUpdate) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.User{}).
			Where("id = ? AND document_status = ?", userID, models.DocumentStatusActive).
			Updates(map[string]interface{}{
				"access_private_key":  keys.AccessPrivateKey,
				"access_public_key":   keys.AccessPublicKey,
				"refresh_private_key": keys.RefreshPrivateKey,
				"refresh_public_key":  keys.RefreshPublicKey,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
}
