package http

import (
	"net/http"
	"strconv"

	"github.com/YevhLyt95/next-dashboard/internal/repository"
	"github.com/google/uuid"
	echo "github.com/labstack/echo/v4"
)

func listInvoicesHandler(repo *repository.DashboardRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		query := c.QueryParam("query")
		page := 1
		if v := c.QueryParam("page"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				page = n
			}
		}

		invoices, err := repo.FetchFilteredInvoices(c.Request().Context(), query, page)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]any{
			"page":    page,
			"count":   len(invoices),
			"results": invoices,
		})
	}
}

func invoicesPagesHandler(repo *repository.DashboardRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		pages, err := repo.FetchInvoicesPages(c.Request().Context(), c.QueryParam("query"))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]any{"pages": pages})
	}
}

func invoiceByIDHandler(repo *repository.DashboardRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid invoice id"})
		}

		invoice, err := repo.FetchInvoiceByID(c.Request().Context(), id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		if invoice == nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "invoice not found"})
		}
		return c.JSON(http.StatusOK, invoice)
	}
}
