package router

import (
	"github.com/labstack/echo/v4"

	"aipricing/internal/middleware"
	"aipricing/internal/rest"
)

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler) {
	users := api.Group("/users")

	users.POST("/register", handler.Register)
	users.POST("/login", handler.Login)
	users.GET("/me", handler.Me, middleware.AuthMiddleware())
}

func SetupOfferRoutes(api *echo.Group, handler *rest.OfferHandler) {
	offers := api.Group("/offers", middleware.AuthMiddleware())

	offers.POST("", handler.CreateOffer)
	offers.POST("/preview", handler.PreviewOffer)
	offers.GET("", handler.GetAllOffers)
	offers.GET("/:id", handler.GetOfferByID)
}

func SetupCompanyRoutes(api *echo.Group, handler *rest.CompanyHandler) {
	companies := api.Group("/companies", middleware.AuthMiddleware())

	companies.POST("", handler.CreateCompany)
	companies.GET("", handler.GetCompanies)
	companies.GET("/:id", handler.GetCompanyByID)
	companies.DELETE("/:id", handler.DeleteCompany)

	industries := api.Group("/industries", middleware.AuthMiddleware())

	industries.GET("", handler.GetIndustries)
	industries.POST("", handler.CreateIndustry, middleware.AdminOnly())
}

func SetupSimulationRoutes(api *echo.Group, handler *rest.SimulationHandler) {
	sim := api.Group("/simulation", middleware.AuthMiddleware())

	sim.POST("/price", handler.SimulatePrice)
	sim.POST("/scenarios", handler.ScenarioAnalysis)
}

func SetupAdminRoutes(api *echo.Group, handler *rest.AdminHandler) {
	admin := api.Group("/admin", middleware.AuthMiddleware(), middleware.AdminOnly())

	admin.GET("/dashboard", handler.Dashboard)
	admin.POST("/rescore", handler.StartRescore)
	admin.GET("/rescore/:id", handler.RescoreStatus)
	admin.POST("/model/reload", handler.ReloadModel)
}
