package httpserver

import "github.com/labstack/echo/v4"

type Deps struct {
	HealthHandler  *HealthHTTP
	AuthHandler    *AuthHTTP
	CatalogHandler *CatalogHTTP
	CartHandler    *CartHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health", d.HealthHandler.Health)

	api := e.Group("/api/mobile")
	api.GET("/health", d.HealthHandler.Health)
	api.GET("/version", d.HealthHandler.GetVersion)

	api.POST("/auth/login", d.AuthHandler.Login)

	api.GET("/products", d.CatalogHandler.GetProducts)
	api.GET("/products/:id", d.CatalogHandler.GetProduct)
	api.GET("/featured", d.CatalogHandler.GetFeaturedProducts)

	api.POST("/cart", d.CartHandler.AddToCart)
	api.GET("/cart/:user_id", d.CartHandler.GetCart)
}
