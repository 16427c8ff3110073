package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lromero/ecom-admin/internal/api"
	"github.com/lromero/ecom-admin/internal/category"
	"github.com/lromero/ecom-admin/internal/customer"
	"github.com/lromero/ecom-admin/internal/dashboard"
	"github.com/lromero/ecom-admin/internal/model"
	"github.com/lromero/ecom-admin/internal/order"
	"github.com/lromero/ecom-admin/internal/product"
	"github.com/lromero/ecom-admin/internal/review"
)

// nullable renders "" as JSON null so an untouched error field looks the
// same as the original initial state.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// writeBackendError maps the API client taxonomy onto gateway statuses.
func writeBackendError(c *gin.Context, err error) {
	var se *api.ServerError
	if errors.As(err, &se) {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	var ne *api.NetworkError
	if errors.As(err, &ne) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// ---------- products ----------

func listProductsHandler(products *product.Store, categories *category.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, loading, errMsg := products.State()
		filtered := product.Filtered(items, product.Filter{
			Search:     c.Query("search"),
			CategoryID: c.Query("category"),
			Status:     c.Query("status"),
		})
		c.JSON(http.StatusOK, gin.H{
			"items":   product.Rows(filtered, categories.Items()),
			"loading": loading,
			"error":   nullable(errMsg),
		})
	}
}

func createProductHandler(products *product.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form model.Product
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		if form.Name == "" || form.SKU == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and sku are required"})
			return
		}
		created, err := products.Create(c.Request.Context(), form)
		if err != nil {
			writeBackendError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func updateProductHandler(products *product.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch map[string]any
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		updated, err := products.Update(c.Request.Context(), c.Param("id"), patch)
		if err != nil {
			writeBackendError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// ---------- categories ----------

func listCategoriesHandler(categories *category.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, loading, errMsg := categories.State()
		c.JSON(http.StatusOK, gin.H{
			"items":   category.Filtered(items, c.Query("search")),
			"loading": loading,
			"error":   nullable(errMsg),
		})
	}
}

func createCategoryHandler(categories *category.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form model.Category
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		if form.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}
		created, err := categories.Create(c.Request.Context(), form)
		if err != nil {
			writeBackendError(c, err)
			return
		}
		// The collection is not appended here; refetch to pick up the new
		// row, mirroring the original controller.
		_ = categories.FetchAll(c.Request.Context())
		c.JSON(http.StatusCreated, created)
	}
}

func updateCategoryHandler(categories *category.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch map[string]any
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		updated, err := categories.Update(c.Request.Context(), c.Param("id"), patch)
		if err != nil {
			writeBackendError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// ---------- customers ----------

func listCustomersHandler(customers *customer.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, loading, errMsg := customers.State()
		filtered := customer.Filtered(items, customer.Filter{
			Search: c.Query("search"),
			Tier:   c.Query("tier"),
			Status: c.Query("status"),
		})
		c.JSON(http.StatusOK, gin.H{
			"items":   filtered,
			"loading": loading,
			"error":   nullable(errMsg),
		})
	}
}

func createCustomerHandler(customers *customer.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form model.Customer
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		if form.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
			return
		}
		created, err := customers.Create(c.Request.Context(), form)
		if err != nil {
			writeBackendError(c, err)
			return
		}
		_ = customers.FetchAll(c.Request.Context())
		c.JSON(http.StatusCreated, created)
	}
}

func updateCustomerHandler(customers *customer.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch map[string]any
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		updated, err := customers.Update(c.Request.Context(), c.Param("id"), patch)
		if err != nil {
			writeBackendError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// ---------- orders ----------

func listOrdersHandler(orders *order.Store, customers *customer.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, loading, errMsg := orders.State()
		filtered := order.Filtered(items, order.Filter{
			Search: c.Query("search"),
			Status: c.Query("status"),
		})
		c.JSON(http.StatusOK, gin.H{
			"items":   order.Rows(filtered, customers.Items()),
			"loading": loading,
			"error":   nullable(errMsg),
		})
	}
}

func createOrderHandler(orders *order.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form model.Order
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		if form.CustomerID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "customerId is required"})
			return
		}
		created, err := orders.Create(c.Request.Context(), form)
		if err != nil {
			writeBackendError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func updateOrderHandler(orders *order.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch map[string]any
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		updated, err := orders.Update(c.Request.Context(), c.Param("id"), patch)
		if err != nil {
			writeBackendError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// ---------- reviews ----------

func listReviewsHandler(reviews *review.Store, products *product.Store, customers *customer.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, loading, errMsg := reviews.State()
		rating, _ := strconv.Atoi(c.Query("rating"))
		rows := review.Filtered(
			review.Rows(items, products.Items(), customers.Items()),
			review.Filter{
				Search: c.Query("search"),
				Rating: rating,
				Status: c.Query("status"),
			},
		)
		c.JSON(http.StatusOK, gin.H{
			"items":   rows,
			"loading": loading,
			"error":   nullable(errMsg),
		})
	}
}

// ---------- shared ----------

// deleteHandler serves every resource; deletion is dispatched only after the
// UI's confirmation gate, so this endpoint is the post-confirmation call.
func deleteHandler(del func(c *gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := del(c); err != nil {
			writeBackendError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func refreshHandler(fetch func(c *gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := fetch(c); err != nil {
			writeBackendError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func dashboardHandler(orders *order.Store, products *product.Store, categories *category.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, dashboard.Build(orders.Items(), products.Items(), categories.Items()))
	}
}
