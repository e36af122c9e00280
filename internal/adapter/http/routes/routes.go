package routes

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"fieldservice/internal/infrastructure/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Run wires the service from cfg and serves HTTP until ctx is cancelled, then
// drains in-flight requests and pending events.
func Run(ctx context.Context, cfg config.Config) error {
	deps, err := NewDependencies(ctx, cfg)
	if err != nil {
		return err
	}
	defer deps.Close()

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           NewRouter(cfg, deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.S().Infow("[http] listening", "addr", srv.Addr, "store", cfg.StoreDriver, "api_prefix", cfg.APIPrefix)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zap.S().Info("[http] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter builds the gin engine: middlewares, operational endpoints and the API
// group under cfg.APIPrefix.
func NewRouter(cfg config.Config, deps *Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Backend is running"})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz/live", gin.WrapF(deps.Health.LiveEndpoint))
	router.GET("/healthz/ready", gin.WrapF(deps.Health.ReadyEndpoint))

	api := router.Group(cfg.APIPrefix)
	api.Use(newCORS(cfg.CORSAllowedOrigins))
	addPingRoutes(api)
	addRequestRoutes(api, deps.Requests)
	addWorkOrderRoutes(api, deps.WorkOrders)
	addPurchaseOrderRoutes(api, deps.PurchaseOrders)
	addUploadRoutes(api, deps.Uploads)
	addCustomerRoutes(api, deps.Requests)
	return router
}

func setMiddlewares(router *gin.Engine) {
	logger := zap.L()
	router.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(logger, true))
	router.Use(gzip.Gzip(gzip.DefaultCompression))
}

func newCORS(origins []string) gin.HandlerFunc {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
			return cors.New(c)
		}
	}
	c.AllowOrigins = origins
	if len(origins) == 0 {
		c.AllowAllOrigins = true
	}
	return cors.New(c)
}
