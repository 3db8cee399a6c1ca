package models

type UserRole string
type DocumentStatus string

const (
	UserRoleAdmin      UserRole = "ADMIN"
	UserRoleSuperAdmin UserRole = "SUPER_ADMIN"
	UserRoleUser       UserRole = "USER"

	// Soft-lifecycle флаг документа: для аутентификации и выборок
	// валидны только строки в статусе "active"
	DocumentStatusActive  DocumentStatus = "N"
	DocumentStatusDeleted DocumentStatus = "D"
)
