// @title           Inventory API
// @version         1.0
// @description     API управления складом: аутентификация, справочники товаров и клиентов.
// @host            localhost:4000
// @BasePath        /api/v1

package main

import "inventory_backend/internal/app"

func main() {
	app.Run()
}
