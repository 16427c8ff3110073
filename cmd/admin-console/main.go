package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lromero/ecom-admin/internal/api"
	"github.com/lromero/ecom-admin/internal/category"
	"github.com/lromero/ecom-admin/internal/config"
	"github.com/lromero/ecom-admin/internal/customer"
	"github.com/lromero/ecom-admin/internal/httpx"
	"github.com/lromero/ecom-admin/internal/order"
	"github.com/lromero/ecom-admin/internal/product"
	"github.com/lromero/ecom-admin/internal/review"
)

func buildLogger(cfg config.Config) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.LogEncoding == "console" {
		zcfg = zap.NewDevelopmentConfig()
	}
	if lvl, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	return zcfg.Build()
}

type stores struct {
	products   *product.Store
	categories *category.Store
	customers  *customer.Store
	orders     *order.Store
	reviews    *review.Store
}

func newStores(c *api.Client, logger *zap.Logger) *stores {
	return &stores{
		products:   product.NewStore(c, logger.Named("products")),
		categories: category.NewStore(c, logger.Named("categories")),
		customers:  customer.NewStore(c, logger.Named("customers")),
		orders:     order.NewStore(c, logger.Named("orders")),
		reviews:    review.NewStore(c, logger.Named("reviews")),
	}
}

// warmUp does the initial fetch of every collection. Failures are logged and
// left as store state; the console still starts with stale-empty views.
func (s *stores) warmUp(ctx context.Context, logger *zap.Logger) {
	for name, fetch := range map[string]func(context.Context) error{
		"products":   s.products.FetchAll,
		"categories": s.categories.FetchAll,
		"customers":  s.customers.FetchAll,
		"orders":     s.orders.FetchAll,
		"reviews":    s.reviews.FetchAll,
	} {
		if err := fetch(ctx); err != nil {
			logger.Warn("initial fetch failed", zap.String("resource", name), zap.Error(err))
		}
	}
}

func newRouter(s *stores, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(logger))

	r.GET("/healthz", func(c *gin.Context) { c.String(200, "ok") })

	r.GET("/products", listProductsHandler(s.products, s.categories))
	r.POST("/products", createProductHandler(s.products))
	r.POST("/products/refresh", refreshHandler(func(c *gin.Context) error {
		return s.products.FetchAll(c.Request.Context())
	}))
	r.PATCH("/products/:id", updateProductHandler(s.products))
	r.DELETE("/products/:id", deleteHandler(func(c *gin.Context) error {
		return s.products.Delete(c.Request.Context(), c.Param("id"))
	}))

	r.GET("/categories", listCategoriesHandler(s.categories))
	r.POST("/categories", createCategoryHandler(s.categories))
	r.POST("/categories/refresh", refreshHandler(func(c *gin.Context) error {
		return s.categories.FetchAll(c.Request.Context())
	}))
	r.PATCH("/categories/:id", updateCategoryHandler(s.categories))
	r.DELETE("/categories/:id", deleteHandler(func(c *gin.Context) error {
		return s.categories.Delete(c.Request.Context(), c.Param("id"))
	}))

	r.GET("/customers", listCustomersHandler(s.customers))
	r.POST("/customers", createCustomerHandler(s.customers))
	r.POST("/customers/refresh", refreshHandler(func(c *gin.Context) error {
		return s.customers.FetchAll(c.Request.Context())
	}))
	r.PATCH("/customers/:id", updateCustomerHandler(s.customers))
	r.DELETE("/customers/:id", deleteHandler(func(c *gin.Context) error {
		return s.customers.Delete(c.Request.Context(), c.Param("id"))
	}))

	r.GET("/orders", listOrdersHandler(s.orders, s.customers))
	r.POST("/orders", createOrderHandler(s.orders))
	r.POST("/orders/refresh", refreshHandler(func(c *gin.Context) error {
		return s.orders.FetchAll(c.Request.Context())
	}))
	r.PATCH("/orders/:id", updateOrderHandler(s.orders))
	r.DELETE("/orders/:id", deleteHandler(func(c *gin.Context) error {
		return s.orders.Delete(c.Request.Context(), c.Param("id"))
	}))

	r.GET("/reviews", listReviewsHandler(s.reviews, s.products, s.customers))
	r.POST("/reviews/refresh", refreshHandler(func(c *gin.Context) error {
		return s.reviews.FetchAll(c.Request.Context())
	}))
	r.DELETE("/reviews/:id", deleteHandler(func(c *gin.Context) error {
		return s.reviews.Delete(c.Request.Context(), c.Param("id"))
	}))

	r.GET("/dashboard", dashboardHandler(s.orders, s.products, s.categories))

	return r
}

func main() {
	cfg := config.Load()

	logger, err := buildLogger(cfg)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	client := api.NewClient(cfg.BackendBaseURL, time.Duration(cfg.HTTPTimeoutSec)*time.Second, logger.Named("api"))
	s := newStores(client, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	s.warmUp(ctx, logger)
	cancel()

	r := newRouter(s, logger)
	logger.Info("admin-console listening", zap.String("addr", cfg.AdminAddr))
	if err := r.Run(cfg.AdminAddr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
