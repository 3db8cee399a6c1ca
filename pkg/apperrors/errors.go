package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError - основная структура ошибки приложения.
// Каждый flow оборачивает ошибки нижних слоев (БД, крипто) именно в эту
// форму: код, HTTP статус и опциональные структурированные детали.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Конструктор
func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// Wrap - оборачивает существующую ошибку в AppError
func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

// Вспомогательные методы
func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

func (e *AppError) WithError(err error) *AppError {
	clone := *e
	clone.Err = err
	return &clone
}

// Для маршалинга в JSON
func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

// Is - обертка над стандартной функцией errors.Is
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As - обертка над стандартной функцией errors.As
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// InternalError оборачивает неизвестную системную ошибку.
// Неклассифицированные ошибки не должны протекать наружу.
func InternalError(err error) *AppError {
	return Wrap(err, CodeSomethingWentWrong, "Something went wrong", http.StatusInternalServerError)
}

// ValidationError создает ошибку валидации с деталями
func ValidationError(details interface{}) *AppError {
	return New(CodeValidationFailed, "Validation failed", http.StatusBadRequest).WithDetails(details)
}

// NewBadRequestError создает ошибку 400
func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

// Предопределенные ошибки
var (
	// Отсутствующие ключи в теле запроса
	ErrKeyMissingEmail        = New(CodeKeyMissingEmail, "Email is required", http.StatusBadRequest)
	ErrKeyMissingPassword     = New(CodeKeyMissingPassword, "Password is required", http.StatusBadRequest)
	ErrKeyMissingName         = New(CodeKeyMissingName, "Name is required", http.StatusBadRequest)
	ErrKeyMissingRole         = New(CodeKeyMissingRole, "Role is required", http.StatusBadRequest)
	ErrKeyMissingOldPassword  = New(CodeKeyMissingOldPassword, "Old password is required", http.StatusBadRequest)
	ErrKeyMissingNewPassword  = New(CodeKeyMissingNewPassword, "New password is required", http.StatusBadRequest)
	ErrKeyMissingAccessToken  = New(CodeKeyMissingAccessToken, "Access token is required", http.StatusBadRequest)
	ErrKeyMissingRefreshToken = New(CodeKeyMissingRefreshToken, "Refresh token is required", http.StatusBadRequest)
	ErrKeyMissingStockCode    = New(CodeKeyMissingStockCode, "Stock code is required", http.StatusBadRequest)
	ErrKeyMissingStockName    = New(CodeKeyMissingStockName, "Stock name is required", http.StatusBadRequest)
	ErrKeyMissingCategoryCode = New(CodeKeyMissingCategoryCode, "Category code is required", http.StatusBadRequest)
	ErrKeyMissingCategoryName = New(CodeKeyMissingCategoryName, "Category name is required", http.StatusBadRequest)

	// Аутентификация
	ErrInvalidEmail       = New(CodeInvalidEmail, "Email address is not valid", http.StatusBadRequest)
	ErrInvalidRole        = New(CodeInvalidRole, "Role is not allowed", http.StatusForbidden)
	ErrUserNotFound       = New(CodeUserNotFound, "User not found", http.StatusBadRequest)
	ErrEmailNotFound      = New(CodeEmailNotFound, "Email not found", http.StatusBadRequest)
	ErrInvalidPassword    = New(CodeInvalidPassword, "Invalid password", http.StatusBadRequest)
	ErrInvalidOldPassword = New(CodeInvalidOldPassword, "Invalid old password", http.StatusBadRequest)

	// Токены. Истекший токен (403) клиент лечит повторным логином,
	// все остальные отказы верификации - 401.
	ErrNoTokenNoAuthorisation = New(CodeNoTokenNoAuthorisation, "Authorization token missing", http.StatusUnauthorized)
	ErrInvalidTokenFormat     = New(CodeInvalidTokenFormat, "Token must follow the Bearer scheme", http.StatusUnauthorized)
	ErrInvalidToken           = New(CodeInvalidToken, "Invalid token", http.StatusUnauthorized)
	ErrInvalidAccessToken     = New(CodeInvalidAccessToken, "Invalid access token", http.StatusBadRequest)
	ErrInvalidRefreshToken    = New(CodeInvalidRefreshToken, "Invalid refresh token", http.StatusUnauthorized)
	ErrRevokedTokenProvided   = New(CodeRevokedTokenProvided, "Token has expired or was revoked", http.StatusForbidden)
	ErrUserNotAuthorised      = New(CodeUserNotFound, "User not found", http.StatusUnauthorized)

	// Конфликты уникальности
	ErrEmailAlreadyRegistered = New(CodeEmailAlreadyRegistered, "Email already registered", http.StatusBadRequest)
	ErrStockCodeDuplicate     = New(CodeStockCodeDuplicate, "Stock code already exists", http.StatusBadRequest)
	ErrCategoryCodeDuplicate  = New(CodeCategoryCodeDuplicate, "Category code already exists", http.StatusBadRequest)
	ErrCustomerCodeDuplicate  = New(CodeCustomerCodeDuplicate, "Customer code already exists", http.StatusBadRequest)
	ErrCustomerPhoneDuplicate = New(CodeCustomerPhoneDuplicate, "Customer phone already exists", http.StatusBadRequest)
	ErrCustomerGstNoDuplicate = New(CodeCustomerGstNoDuplicate, "Customer GST number already exists", http.StatusBadRequest)
	ErrCustomerEmailDuplicate = New(CodeCustomerEmailDuplicate, "Customer email already exists", http.StatusBadRequest)

	// Ресурсы
	ErrStockNotFound    = New(CodeStockNotFound, "Stock not found", http.StatusNotFound)
	ErrCategoryNotFound = New(CodeCategoryNotFound, "Category not found", http.StatusNotFound)
	ErrCustomerNotFound = New(CodeCustomerNotFound, "Customer not found", http.StatusNotFound)
)
