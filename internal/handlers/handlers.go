package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/example/smartscale/internal/apperr"
	"github.com/example/smartscale/internal/auth"
	"github.com/example/smartscale/internal/classifier"
	"github.com/example/smartscale/internal/logging"
	"github.com/example/smartscale/internal/pricing"
	"github.com/example/smartscale/internal/repository"
	"github.com/example/smartscale/internal/usecase"
)

// MaxUploadSize is the default limit for decoded image payloads.
const MaxUploadSize = 10 << 20

// Service is the behaviour the HTTP layer needs from the scale use case.
type Service interface {
	Predict(ctx context.Context, image []byte, opts usecase.PredictOptions) (*usecase.PredictResult, error)
	CalculatePrice(ctx context.Context, req usecase.PriceRequest) (*pricing.Result, error)
	ListProducts(ctx context.Context) ([]usecase.ProductSummary, error)
	GetProduct(ctx context.Context, name string) (*usecase.ProductDetails, error)
	RecordTransaction(ctx context.Context, req usecase.TransactionRequest) (*usecase.TransactionReceipt, error)
	RecentTransactions(ctx context.Context, limit int) ([]repository.Transaction, error)
	GetSalesSummary(ctx context.Context) (*usecase.SalesSummary, error)
	ModelInfo(ctx context.Context) (*classifier.ModelInfo, error)
	CheckStore(ctx context.Context) error
}

// Config tunes the routes registered by RegisterRoutes.
type Config struct {
	MaxUploadBytes int64
	AppName        string
	Version        string
	ExposeMetrics  bool
}

type handler struct {
	svc    Service
	logger *zap.Logger
	cfg    Config
}

// RegisterRoutes wires the HTTP handlers to the Gin router. A nil
// authMiddleware leaves POST /api/transaction open.
func RegisterRoutes(router *gin.Engine, svc Service, logger *zap.Logger, authMiddleware gin.HandlerFunc, cfg Config) {
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = MaxUploadSize
	}
	if cfg.AppName == "" {
		cfg.AppName = "AI-Powered Shop Scale"
	}
	h := &handler{svc: svc, logger: logger.Named("http"), cfg: cfg}

	router.Use(RequestID(), AccessLog(h.logger), Recovery(h.logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if cfg.ExposeMetrics {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	api := router.Group("/api")
	api.GET("/health", h.health)
	api.POST("/predict", h.predict)
	api.POST("/calculate_price", h.calculatePrice)
	api.GET("/products", h.listProducts)
	api.GET("/product/:name", h.getProduct)
	if authMiddleware != nil {
		api.POST("/transaction", authMiddleware, h.recordTransaction)
	} else {
		api.POST("/transaction", h.recordTransaction)
	}
	api.GET("/transactions", h.recentTransactions)
	api.GET("/transactions/summary", h.salesSummary)
	api.GET("/model_info", h.modelInfo)

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") || c.Request.URL.Path == "/api" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
}

func (h *handler) health(c *gin.Context) {
	body := gin.H{
		"status":  "running",
		"app":     h.cfg.AppName,
		"version": h.cfg.Version,
	}
	if err := h.svc.CheckStore(c.Request.Context()); err != nil {
		logging.WithOperation(h.logger, "http.health", logging.RequestIDFromContext(c.Request.Context())).
			Warn("store ping failed", zap.Error(err))
		body["status"] = "degraded"
		body["database"] = "unavailable"
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}
	body["database"] = "ok"
	c.JSON(http.StatusOK, body)
}

func (h *handler) predict(c *gin.Context) {
	record, err := strconv.ParseBool(c.DefaultQuery("record", "false"))
	if err != nil {
		h.respondError(c, "http.predict", apperr.InvalidInput("record must be true or false"))
		return
	}

	image, err := readImage(c, h.cfg.MaxUploadBytes)
	if err != nil {
		h.respondError(c, "http.predict", err)
		return
	}

	result, err := h.svc.Predict(c.Request.Context(), image, usecase.PredictOptions{Record: record})
	if err != nil {
		h.respondError(c, "http.predict", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handler) calculatePrice(c *gin.Context) {
	var req usecase.PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, "http.calculate_price", apperr.InvalidInput("Missing product_name or weight_grams"))
		return
	}

	result, err := h.svc.CalculatePrice(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, "http.calculate_price", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handler) listProducts(c *gin.Context) {
	products, err := h.svc.ListProducts(c.Request.Context())
	if err != nil {
		h.respondError(c, "http.list_products", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
}

func (h *handler) getProduct(c *gin.Context) {
	product, err := h.svc.GetProduct(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.respondError(c, "http.get_product", err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *handler) recordTransaction(c *gin.Context) {
	var req usecase.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, "http.record_transaction", apperr.InvalidInput("Missing required fields: product_name and weight_g"))
		return
	}

	receipt, err := h.svc.RecordTransaction(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, "http.record_transaction", err)
		return
	}

	if operator, ok := auth.OperatorFromContext(c.Request.Context()); ok {
		logging.WithOperation(h.logger, "http.record_transaction", logging.RequestIDFromContext(c.Request.Context())).
			Info("transaction recorded", zap.String("operator", operator), zap.Uint("transaction_id", receipt.TransactionID))
	}
	c.JSON(http.StatusOK, receipt)
}

func (h *handler) recentTransactions(c *gin.Context) {
	limit := usecase.DefaultTransactionLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.respondError(c, "http.recent_transactions", apperr.InvalidInput("limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	transactions, err := h.svc.RecentTransactions(c.Request.Context(), limit)
	if err != nil {
		h.respondError(c, "http.recent_transactions", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": transactions, "count": len(transactions)})
}

func (h *handler) salesSummary(c *gin.Context) {
	summary, err := h.svc.GetSalesSummary(c.Request.Context())
	if err != nil {
		h.respondError(c, "http.sales_summary", err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *handler) modelInfo(c *gin.Context) {
	info, err := h.svc.ModelInfo(c.Request.Context())
	if err != nil {
		h.respondError(c, "http.model_info", err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// respondError renders err as {"error": message}. Server-side failures are
// logged with their cause; only the public message reaches the client.
func (h *handler) respondError(c *gin.Context, operation string, err error) {
	status := apperr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		requestID := logging.RequestIDFromContext(c.Request.Context())
		fields := append([]zap.Field{zap.String("kind", apperr.KindOf(err).String())}, logging.ErrorFields(err)...)
		logging.WithOperation(h.logger, operation, requestID).Error("request failed", fields...)
	}
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		err = apperr.Internal(err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": apperr.PublicMessage(err)})
}
