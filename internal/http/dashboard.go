package http

import (
	"net/http"

	"github.com/YevhLyt95/next-dashboard/internal/repository"
	echo "github.com/labstack/echo/v4"
)

func revenueHandler(repo *repository.DashboardRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		series, err := repo.FetchRevenue(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]any{
			"count":   len(series),
			"results": series,
		})
	}
}

func cardsHandler(repo *repository.DashboardRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		cards, err := repo.FetchCardData(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, cards)
	}
}

func latestInvoicesHandler(repo *repository.DashboardRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		latest, err := repo.FetchLatestInvoices(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]any{
			"count":   len(latest),
			"results": latest,
		})
	}
}
