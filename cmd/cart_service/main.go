package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	cartAPI "github.com/ridloal/shopping-cart-widget/internal/cart/api"
	"github.com/ridloal/shopping-cart-widget/internal/cart/render"
	cartService "github.com/ridloal/shopping-cart-widget/internal/cart/service"
	"github.com/ridloal/shopping-cart-widget/internal/platform/config"
	"github.com/ridloal/shopping-cart-widget/internal/platform/logger"
	"github.com/ridloal/shopping-cart-widget/internal/platform/metrics"
	"github.com/ridloal/shopping-cart-widget/internal/platform/middleware"
	productAPI "github.com/ridloal/shopping-cart-widget/internal/product/api"
	productService "github.com/ridloal/shopping-cart-widget/internal/product/service"
)

func main() {
	// Load Config
	logCfg := config.LoadLogConfig()
	serverCfg := config.LoadServerConfig("8080")
	catalogCfg := config.LoadCatalogConfig()
	displayCfg := config.LoadDisplayConfig()

	// Setup Logger
	logger.Init(logCfg.Level, logCfg.Format)
	defer logger.Sync()
	logger.Info("Starting Cart Service...")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Setup Catalog
	catalog, source, err := productService.LoadCatalog(ctx, catalogCfg)
	if err != nil {
		logger.Error("Failed to load catalog from %s source", err, source)
		os.Exit(1)
	}

	// Setup Dependencies
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	serverMetrics := metrics.NewServerMetrics(reg)
	cartMetrics := metrics.NewCartMetrics(reg)

	prodService := productService.NewProductService(catalog)
	cartSvc := cartService.NewCartService(catalog, cartMetrics)
	productHandler := productAPI.NewProductHandler(prodService)
	cartHandler := cartAPI.NewCartHandler(cartSvc, displayCfg.CurrencySymbol)

	// Setup Gin Router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog(), middleware.Metrics(serverMetrics))
	router.SetHTMLTemplate(render.Templates())

	router.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/cart") })
	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	router.GET("/metrics", gin.WrapH(metrics.Handler(reg)))
	cartHandler.RegisterPageRoutes(&router.RouterGroup)

	apiV1 := router.Group("/api/v1")
	productHandler.RegisterRoutes(apiV1)
	cartHandler.RegisterAPIRoutes(apiV1)

	server := &http.Server{
		Addr:    serverCfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Cart Service running on port " + serverCfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Failed to run Cart Service server", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down Cart Service...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverCfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Cart Service shutdown failed", err)
	}
}
