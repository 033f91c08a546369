package dashboard

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"foundry.GO/api"
	reportRepo "foundry.GO/model/repository/report"
)

func init() {
	api.RegisterRoute(RegisterDashboardRoutes)
}

func RegisterDashboardRoutes(e *echo.Echo, db *gorm.DB) {
	repo := reportRepo.GetReportRepository(db)

	// GET /dashboard/stats – full snapshot, recomputed per request
	e.GET("/dashboard/stats", func(c echo.Context) error {
		stats, err := repo.Stats(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch dashboard statistics"})
		}
		return c.JSON(http.StatusOK, stats)
	})
}
