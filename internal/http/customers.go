package http

import (
	"net/http"

	"github.com/YevhLyt95/next-dashboard/internal/repository"
	echo "github.com/labstack/echo/v4"
)

func customersHandler(repo *repository.DashboardRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		customers, err := repo.FetchCustomers(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]any{
			"count":   len(customers),
			"results": customers,
		})
	}
}

func customersTableHandler(repo *repository.DashboardRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		customers, err := repo.FetchFilteredCustomers(c.Request().Context(), c.QueryParam("query"))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]any{
			"count":   len(customers),
			"results": customers,
		})
	}
}
