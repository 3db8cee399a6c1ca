package contextkeys

// Используем кастомный тип, чтобы избежать коллизий с другими пакетами
type contextKey string

// Ключи, по которым middleware сохраняет ID и роль аутентифицированного
// пользователя в context запроса
const (
	UserIDContextKey = contextKey("auth_user_id")
	RoleContextKey   = contextKey("auth_user_role")
)
