package models

// User - учетная запись с парой асимметричных ключей на каждое семейство
// токенов. Четыре ключевых поля мутируются только транзакционно и только
// все вместе: рассинхронизированная пара молча ломает верификацию.
type User struct {
	BaseModel
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	Name         string         `gorm:"not null" json:"name"`
	Phone        string         `json:"phone"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Role         UserRole       `gorm:"type:varchar(20);not null" json:"role"`
	Status       DocumentStatus `gorm:"column:document_status;type:char(1);default:'N'" json:"-"`

	// Ключи семейства ACCESS
	AccessPrivateKey string `gorm:"type:text;not null" json:"-"`
	AccessPublicKey  string `gorm:"type:text;not null" json:"-"`

	// Ключи семейства REFRESH (независимы от ACCESS - утечка одного
	// семейства не позволяет подделывать токены другого)
	RefreshPrivateKey string `gorm:"type:text;not null" json:"-"`
	RefreshPublicKey  string `gorm:"type:text;not null" json:"-"`

	// ID пользователя, создавшего запись (NULL для саморегистрации)
	CreatedBy *uint `gorm:"index" json:"createdBy,omitempty"`
}
