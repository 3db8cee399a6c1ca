package handlers

// AppHandlers - контейнер всех HTTP обработчиков приложения
type AppHandlers struct {
	AuthHandler     *AuthHandler
	StockHandler    *StockHandler
	CustomerHandler *CustomerHandler
}
