package router

import (
	"laptopMart/internal/middleware"
	"laptopMart/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupRecommendRoutes(api *echo.Group, handler *rest.RecommendHandler) {
	reco := api.Group("/recommendations")

	reco.GET("", handler.RecommendByQuery)
	reco.GET("/health", handler.Health)
	reco.GET("/:variation_id", handler.RecommendByPath)
}

func SetupAdminRoutes(api *echo.Group, handler *rest.RecommendHandler) {
	admin := api.Group("/admin/recommendations", middleware.AuthMiddleware(), middleware.AdminOnly())

	admin.POST("/rebuild", handler.Rebuild)
}
