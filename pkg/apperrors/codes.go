package apperrors

// ErrorCode - тип для кодов ошибок
type ErrorCode string

// Коды ошибок сгруппированные по доменам
const (
	// Валидация входных данных (всегда 400, без ретраев)
	CodeKeyMissingEmail        ErrorCode = "KEY_MISSING_EMAIL"
	CodeKeyMissingPassword     ErrorCode = "KEY_MISSING_PASSWORD"
	CodeKeyMissingName         ErrorCode = "KEY_MISSING_NAME"
	CodeKeyMissingRole         ErrorCode = "KEY_MISSING_ROLE"
	CodeKeyMissingOldPassword  ErrorCode = "KEY_MISSING_OLD_PASSWORD"
	CodeKeyMissingNewPassword  ErrorCode = "KEY_MISSING_NEW_PASSWORD"
	CodeKeyMissingAccessToken  ErrorCode = "KEY_MISSING_ACCESS_TOKEN"
	CodeKeyMissingRefreshToken ErrorCode = "KEY_MISSING_REFRESH_TOKEN"
	CodeKeyMissingStockCode    ErrorCode = "KEY_MISSING_STOCK_CODE"
	CodeKeyMissingStockName    ErrorCode = "KEY_MISSING_STOCK_NAME"
	CodeKeyMissingCategoryCode ErrorCode = "KEY_MISSING_CATEGORY_CODE"
	CodeKeyMissingCategoryName ErrorCode = "KEY_MISSING_CATEGORY_NAME"
	CodeInvalidEmail           ErrorCode = "INVALID_EMAIL"
	CodeInvalidRole            ErrorCode = "INVALID_ROLE"
	CodeValidationFailed       ErrorCode = "VALIDATION_FAILED"

	// Аутентификация
	CodeUserNotFound       ErrorCode = "USER_NOT_FOUND"
	CodeEmailNotFound      ErrorCode = "EMAIL_NOT_FOUND"
	CodeInvalidPassword    ErrorCode = "INVALID_PASSWORD"
	CodeInvalidOldPassword ErrorCode = "INVALID_OLD_PASSWORD"

	// Жизненный цикл токенов (401 против 403 - см. middleware и refresh flow)
	CodeNoTokenNoAuthorisation ErrorCode = "NO_TOKEN_NO_AUTHORISATION"
	CodeInvalidTokenFormat     ErrorCode = "INVALID_TOKEN_FORMAT"
	CodeInvalidToken           ErrorCode = "INVALID_TOKEN"
	CodeInvalidAccessToken     ErrorCode = "INVALID_ACCESS_TOKEN"
	CodeInvalidRefreshToken    ErrorCode = "INVALID_REFRESH_TOKEN"
	CodeRevokedTokenProvided   ErrorCode = "REVOKED_TOKEN_PROVIDED"

	// Конфликты уникальности
	CodeEmailAlreadyRegistered ErrorCode = "EMAIL_ALREADY_REGISTERED"
	CodeStockCodeDuplicate     ErrorCode = "STOCK_CODE_DUPLICATE"
	CodeCategoryCodeDuplicate  ErrorCode = "CATEGORY_CODE_DUPLICATE"
	CodeCustomerCodeDuplicate  ErrorCode = "CUSTOMER_CODE_DUPLICATE"
	CodeCustomerPhoneDuplicate ErrorCode = "CUSTOMER_PHONE_DUPLICATE"
	CodeCustomerGstNoDuplicate ErrorCode = "CUSTOMER_GST_NO_DUPLICATE"
	CodeCustomerEmailDuplicate ErrorCode = "CUSTOMER_EMAIL_DUPLICATE"

	// Ресурсы
	CodeStockNotFound    ErrorCode = "STOCK_NOT_FOUND"
	CodeCategoryNotFound ErrorCode = "CATEGORY_NOT_FOUND"
	CodeCustomerNotFound ErrorCode = "CUSTOMER_NOT_FOUND"

	// Системные и неизвестные ошибки
	CodeSomethingWentWrong ErrorCode = "SOMETHING_WENT_WRONG"
)
