package validator

import (
	"log"
	"strings"

	"inventory_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Ошибка регистрации правила - критическая ошибка запуска
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-user-role': роль пользователя валидна (регистронезависимо,
	// сервис нормализует к верхнему регистру)
	mustRegister("is-user-role", validateUserRole)

	// 'is-document-status': статус документа валиден
	mustRegister("is-document-status", validateDocumentStatus)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустые значения обрабатывает 'required'
	}

	switch models.UserRole(strings.ToUpper(value)) {
	case models.UserRoleAdmin, models.UserRoleSuperAdmin, models.UserRoleUser:
		return true
	default:
		return false
	}
}

func validateDocumentStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	switch models.DocumentStatus(value) {
	case models.DocumentStatusActive, models.DocumentStatusDeleted:
		return true
	default:
		return false
	}
}
