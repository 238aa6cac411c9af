package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/smartscale/internal/apperr"
	"github.com/example/smartscale/internal/classifier"
	"github.com/example/smartscale/internal/logging"
	"github.com/example/smartscale/internal/metrics"
	"github.com/example/smartscale/internal/pricing"
	"github.com/example/smartscale/internal/repository"
	"github.com/example/smartscale/internal/weight"
)

const (
	DefaultTopK             = 5
	DefaultCacheTTL         = 5 * time.Minute
	DefaultTransactionLimit = 10
	MaxTransactionLimit     = 100
)

// ProductStore defines the persistence operations needed by the use case.
type ProductStore interface {
	FindProductByName(ctx context.Context, name string) (*repository.Product, error)
	ListProducts(ctx context.Context) ([]repository.Product, error)
	AppendTransaction(ctx context.Context, tx *repository.Transaction) (uint, error)
	RecentTransactions(ctx context.Context, limit int) ([]repository.Transaction, error)
	AggregateSales(ctx context.Context) (*repository.SalesAggregation, error)
	Ping(ctx context.Context) error
}

// WeightEstimator produces bounded weight guesses for classified products.
type WeightEstimator interface {
	Estimate(productID string) weight.Estimate
	Range(productID string) (weight.Range, bool)
}

// PriceCalculator prices a weight at a per-kilogram rate.
type PriceCalculator interface {
	Calculate(pricePerKg, weightGrams float64) pricing.Result
}

// ScaleUseCase sequences classifier, weight estimation, pricing and recording.
type ScaleUseCase struct {
	store          ProductStore
	cache          Cache
	classifier     classifier.Client
	estimator      WeightEstimator
	calculator     PriceCalculator
	logger         *zap.Logger
	topK           int
	cacheTTL       time.Duration
	now            func() time.Time
	retryAttempts  int
	initialBackoff time.Duration
	maxBackoff     time.Duration
}

// Option customises a ScaleUseCase.
type Option func(*ScaleUseCase)

// WithTopK sets how many ranked labels are requested from the classifier.
func WithTopK(k int) Option {
	return func(uc *ScaleUseCase) {
		if k > 0 {
			uc.topK = k
		}
	}
}

// WithCacheTTL sets the expiry of cached products and model info.
func WithCacheTTL(ttl time.Duration) Option {
	return func(uc *ScaleUseCase) {
		if ttl > 0 {
			uc.cacheTTL = ttl
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(uc *ScaleUseCase) {
		uc.now = now
	}
}

// NewScaleUseCase constructs a new use case instance.
func NewScaleUseCase(store ProductStore, cache Cache, cls classifier.Client, estimator WeightEstimator, calculator PriceCalculator, logger *zap.Logger, opts ...Option) *ScaleUseCase {
	if cache == nil {
		cache = NoopCache{}
	}
	uc := &ScaleUseCase{
		store:          store,
		cache:          cache,
		classifier:     cls,
		estimator:      estimator,
		calculator:     calculator,
		logger:         logger.Named("scale_usecase"),
		topK:           DefaultTopK,
		cacheTTL:       DefaultCacheTTL,
		now:            time.Now,
		retryAttempts:  3,
		initialBackoff: 50 * time.Millisecond,
		maxBackoff:     time.Second,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Classification is the classifier verdict as shown to the operator.
type Classification struct {
	Product string `json:"product"`
	// Confidence is a percentage rounded to two decimals.
	Confidence   float64                 `json:"confidence"`
	Alternatives []classifier.Prediction `json:"alternatives"`
}

// PredictOptions tunes a predict call.
type PredictOptions struct {
	Record bool
}

// PredictResult combines classification, weight and price for one image.
type PredictResult struct {
	Success        bool            `json:"success"`
	RequestID      string          `json:"request_id"`
	Classification Classification  `json:"classification"`
	Weight         weight.Estimate `json:"weight"`
	Price          *pricing.Result `json:"price"`
	PriceError     string          `json:"price_error,omitempty"`
	TransactionID  *uint           `json:"transaction_id,omitempty"`
	Timestamp      time.Time       `json:"timestamp"`
}

// Predict classifies image, estimates its weight and prices it. A product
// missing from the store still yields a result, with PriceError set instead
// of a price.
func (uc *ScaleUseCase) Predict(ctx context.Context, image []byte, opts PredictOptions) (*PredictResult, error) {
	if len(image) == 0 {
		return nil, apperr.InvalidInput("No image provided")
	}

	requestID := requestIDFrom(ctx)
	opLogger := logging.WithOperation(uc.logger, "usecase.predict", requestID)

	result, err := uc.classifier.Classify(ctx, image, uc.topK)
	if err != nil {
		metrics.IncPrediction("failed")
		if errors.Is(err, classifier.ErrUndecodableImage) {
			opLogger.Info("classifier rejected image", zap.Error(err))
			return nil, apperr.InvalidInput("image could not be decoded")
		}
		wrapped := logging.NewOperationError("usecase.classify", requestID, err)
		opLogger.Error("classification failed", zap.Error(wrapped))
		return nil, apperr.Upstream("classifier unavailable", wrapped)
	}

	top, ok := result.Top()
	if !ok {
		metrics.IncPrediction("failed")
		opLogger.Error("classifier returned no predictions")
		return nil, apperr.Upstream("classifier returned no predictions", nil)
	}

	estimate := uc.estimator.Estimate(top.Label)
	metrics.IncWeightEstimate(string(estimate.Confidence))

	resp := &PredictResult{
		Success:   true,
		RequestID: requestID,
		Classification: Classification{
			Product:      top.Label,
			Confidence:   roundTo(top.Confidence*100, 2),
			Alternatives: result.Alternatives(),
		},
		Weight:    estimate,
		Timestamp: uc.now().UTC(),
	}

	price, err := uc.priceProduct(ctx, top.Label, estimate.Grams)
	switch {
	case apperr.KindOf(err) == apperr.KindNotFound:
		metrics.IncPrediction("unpriced")
		resp.PriceError = apperr.PublicMessage(err)
		opLogger.Warn("classified product has no price", zap.String("product", top.Label))
		return resp, nil
	case err != nil:
		metrics.IncPrediction("failed")
		return nil, err
	}
	resp.Price = price
	metrics.IncPrediction("priced")

	if opts.Record {
		confidence := resp.Classification.Confidence
		id, err := uc.store.AppendTransaction(ctx, &repository.Transaction{
			ProductName: price.ProductName,
			WeightG:     price.WeightGrams,
			PricePerKg:  price.PricePerKg,
			TotalPrice:  price.TotalPrice,
			Confidence:  &confidence,
		})
		if err != nil {
			opLogger.Error("failed to record transaction", zap.Error(err))
			return nil, apperr.Upstream("store unavailable", err)
		}
		metrics.IncTransactionRecorded("predict")
		resp.TransactionID = &id
	}

	opLogger.Info("prediction priced",
		zap.String("product", top.Label),
		zap.Float64("confidence", top.Confidence),
		zap.Float64("weight_grams", estimate.Grams),
		zap.Float64("total_price", price.TotalPrice),
	)
	return resp, nil
}

// PriceRequest asks for the price of a product at a given weight.
type PriceRequest struct {
	ProductName string   `json:"product_name"`
	WeightGrams *float64 `json:"weight_grams"`
}

// CalculatePrice validates req and prices it. Unknown products are NotFound;
// a price is never guessed.
func (uc *ScaleUseCase) CalculatePrice(ctx context.Context, req PriceRequest) (*pricing.Result, error) {
	name := strings.TrimSpace(req.ProductName)
	if name == "" || req.WeightGrams == nil {
		return nil, apperr.InvalidInput("Missing product_name or weight_grams")
	}
	if err := validateNonNegative("weight_grams", *req.WeightGrams); err != nil {
		return nil, err
	}
	return uc.priceProduct(ctx, name, *req.WeightGrams)
}

// TransactionRequest records a sale. Missing price fields are derived from
// the product store.
type TransactionRequest struct {
	ProductName string   `json:"product_name"`
	WeightG     *float64 `json:"weight_g"`
	PricePerKg  *float64 `json:"price_per_kg"`
	TotalPrice  *float64 `json:"total_price"`
	Confidence  *float64 `json:"confidence"`
}

// TransactionReceipt acknowledges a recorded sale.
type TransactionReceipt struct {
	Success       bool    `json:"success"`
	TransactionID uint    `json:"transaction_id"`
	TotalPrice    float64 `json:"total_price"`
	Currency      string  `json:"currency"`
}

// RecordTransaction appends a sale to the transaction log.
func (uc *ScaleUseCase) RecordTransaction(ctx context.Context, req TransactionRequest) (*TransactionReceipt, error) {
	name := strings.TrimSpace(req.ProductName)
	if name == "" || req.WeightG == nil {
		return nil, apperr.InvalidInput("Missing required fields: product_name and weight_g")
	}
	if err := validatePositive("weight_g", *req.WeightG); err != nil {
		return nil, err
	}
	if req.PricePerKg != nil {
		if err := validatePositive("price_per_kg", *req.PricePerKg); err != nil {
			return nil, err
		}
	}
	if req.TotalPrice != nil {
		if err := validateNonNegative("total_price", *req.TotalPrice); err != nil {
			return nil, err
		}
	}
	if req.Confidence != nil {
		c := *req.Confidence
		if math.IsNaN(c) || c < 0 || c > 100 {
			return nil, apperr.InvalidInput("confidence must be between 0 and 100")
		}
	}

	tx := &repository.Transaction{
		ProductName: name,
		WeightG:     *req.WeightG,
		Confidence:  req.Confidence,
	}
	switch {
	case req.PricePerKg != nil && req.TotalPrice != nil:
		tx.PricePerKg = *req.PricePerKg
		tx.TotalPrice = *req.TotalPrice
	case req.PricePerKg != nil:
		tx.PricePerKg = *req.PricePerKg
		tx.TotalPrice = uc.calculator.Calculate(*req.PricePerKg, *req.WeightG).TotalPrice
	default:
		priced, err := uc.priceProduct(ctx, name, *req.WeightG)
		if err != nil {
			return nil, err
		}
		tx.ProductName = priced.ProductName
		tx.PricePerKg = priced.PricePerKg
		tx.TotalPrice = priced.TotalPrice
		if req.TotalPrice != nil {
			tx.TotalPrice = *req.TotalPrice
		}
	}

	id, err := uc.store.AppendTransaction(ctx, tx)
	if err != nil {
		return nil, apperr.Upstream("store unavailable", err)
	}
	metrics.IncTransactionRecorded("manual")

	return &TransactionReceipt{
		Success:       true,
		TransactionID: id,
		TotalPrice:    tx.TotalPrice,
		Currency:      pricing.Currency,
	}, nil
}

// RecentTransactions returns the latest sales, most recent first. limit is
// capped at MaxTransactionLimit.
func (uc *ScaleUseCase) RecentTransactions(ctx context.Context, limit int) ([]repository.Transaction, error) {
	if limit < 1 {
		return nil, apperr.InvalidInput("limit must be a positive integer")
	}
	if limit > MaxTransactionLimit {
		limit = MaxTransactionLimit
	}
	transactions, err := uc.store.RecentTransactions(ctx, limit)
	if err != nil {
		return nil, apperr.Upstream("store unavailable", err)
	}
	return transactions, nil
}

// ProductSummary is the catalogue listing shape.
type ProductSummary struct {
	Name       string  `json:"name"`
	NamePolish string  `json:"name_polish"`
	Category   string  `json:"category"`
	PricePerKg float64 `json:"price_per_kg"`
}

// ListProducts returns the catalogue ordered by name.
func (uc *ScaleUseCase) ListProducts(ctx context.Context) ([]ProductSummary, error) {
	products, err := uc.store.ListProducts(ctx)
	if err != nil {
		return nil, apperr.Upstream("store unavailable", err)
	}
	out := make([]ProductSummary, 0, len(products))
	for _, p := range products {
		out = append(out, ProductSummary{
			Name:       p.Name,
			NamePolish: p.NamePolish,
			Category:   p.Category,
			PricePerKg: p.PricePerKg,
		})
	}
	return out, nil
}

// ProductDetails is a product plus its weight profile, when one exists.
type ProductDetails struct {
	repository.Product
	WeightRange *weight.Range `json:"weight_range,omitempty"`
}

// GetProduct returns one product by exact name.
func (uc *ScaleUseCase) GetProduct(ctx context.Context, name string) (*ProductDetails, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.InvalidInput("product name is required")
	}
	product, err := uc.lookupProduct(ctx, name)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, apperr.NotFound("Product not found", err)
	}
	if err != nil {
		return nil, apperr.Upstream("store unavailable", err)
	}

	details := &ProductDetails{Product: *product}
	if r, ok := uc.estimator.Range(product.Name); ok {
		details.WeightRange = &r
	}
	return details, nil
}

// ModelInfo returns the classifier's model description, cached for cacheTTL.
func (uc *ScaleUseCase) ModelInfo(ctx context.Context) (*classifier.ModelInfo, error) {
	requestID := requestIDFrom(ctx)
	const cacheKey = "model_info"

	if cached, err := uc.withRedisGet(ctx, requestID, "cache.get.model_info", cacheKey); err == nil {
		var info classifier.ModelInfo
		decodeErr := json.Unmarshal([]byte(cached), &info)
		if decodeErr == nil {
			metrics.IncCache("model_info", "hit")
			return &info, nil
		}
		logging.WithOperation(uc.logger, "usecase.model_info", requestID).Warn("failed to decode cached model info", zap.Error(decodeErr))
	} else if !errors.Is(err, redis.Nil) {
		metrics.IncCache("model_info", "error")
		logging.WithOperation(uc.logger, "usecase.model_info", requestID).Warn("failed to read cache", zap.Error(err))
	} else {
		metrics.IncCache("model_info", "miss")
	}

	info, err := uc.classifier.ModelInfo(ctx)
	if err != nil {
		return nil, apperr.Upstream("classifier unavailable", err)
	}
	uc.storeInCache(ctx, requestID, "cache.set.model_info", cacheKey, info)
	return info, nil
}

// CheckStore reports whether the product store answers.
func (uc *ScaleUseCase) CheckStore(ctx context.Context) error {
	return uc.store.Ping(ctx)
}

func (uc *ScaleUseCase) priceProduct(ctx context.Context, name string, weightGrams float64) (*pricing.Result, error) {
	product, err := uc.lookupProduct(ctx, name)
	if errors.Is(err, repository.ErrProductNotFound) {
		metrics.IncPriceCalculation("not_found")
		return nil, apperr.NotFound(fmt.Sprintf("Product %s not found", name), err)
	}
	if err != nil {
		metrics.IncPriceCalculation("error")
		return nil, apperr.Upstream("store unavailable", err)
	}

	result := uc.calculator.Calculate(product.PricePerKg, weightGrams)
	result.ProductName = product.Name
	result.ProductNamePolish = product.NamePolish
	metrics.IncPriceCalculation("ok")
	return &result, nil
}

// lookupProduct reads through the cache. Cache failures only cost a store read.
func (uc *ScaleUseCase) lookupProduct(ctx context.Context, name string) (*repository.Product, error) {
	requestID := requestIDFrom(ctx)
	cacheKey := fmt.Sprintf("product:%s", name)

	if cached, err := uc.withRedisGet(ctx, requestID, "cache.get.product", cacheKey); err == nil {
		var product repository.Product
		decodeErr := json.Unmarshal([]byte(cached), &product)
		if decodeErr == nil {
			metrics.IncCache("product", "hit")
			return &product, nil
		}
		logging.WithOperation(uc.logger, "usecase.lookup_product", requestID).Warn("failed to decode cached product", zap.Error(decodeErr))
	} else if !errors.Is(err, redis.Nil) {
		metrics.IncCache("product", "error")
		logging.WithOperation(uc.logger, "usecase.lookup_product", requestID).Warn("failed to read cache", zap.Error(err))
	} else {
		metrics.IncCache("product", "miss")
	}

	product, err := uc.store.FindProductByName(ctx, name)
	if err != nil {
		return nil, err
	}
	uc.storeInCache(ctx, requestID, "cache.set.product", cacheKey, product)
	return product, nil
}

func (uc *ScaleUseCase) storeInCache(ctx context.Context, requestID, operation, key string, value any) {
	serialized, err := json.Marshal(value)
	if err != nil {
		logging.WithOperation(uc.logger, operation, requestID).Warn("failed to serialize cache entry", zap.Error(err))
		return
	}
	if err := uc.withRedisRetry(ctx, requestID, operation, func() error {
		return uc.cache.Set(ctx, key, string(serialized), uc.cacheTTL)
	}); err != nil {
		metrics.IncCache(operation, "error")
		return
	}
	metrics.IncCache(operation, "ok")
}

func (uc *ScaleUseCase) withRedisRetry(ctx context.Context, requestID, operation string, fn func() error) error {
	if uc.retryAttempts <= 1 {
		err := fn()
		return logging.NewOperationError(operation, requestID, err)
	}

	backoff := uc.initialBackoff
	opLogger := logging.WithOperation(uc.logger, operation, requestID)
	var err error
	for attempt := 0; attempt < uc.retryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return logging.NewOperationError(operation, requestID, ctx.Err())
			case <-time.After(backoff):
			}
			if next := backoff * 2; next <= uc.maxBackoff {
				backoff = next
			}
		}

		err = fn()
		if err == nil {
			if attempt > 0 {
				opLogger.Info("redis operation succeeded after retry", zap.Int("attempt", attempt+1))
			}
			return nil
		}
		if errors.Is(err, redis.Nil) {
			return logging.NewOperationError(operation, requestID, err)
		}

		if !isTransientError(err) || attempt == uc.retryAttempts-1 {
			opLogger.Warn("redis operation failed", zap.Error(err), zap.Int("attempt", attempt+1))
			return logging.NewOperationError(operation, requestID, err)
		}

		opLogger.Warn("transient redis error", zap.Error(err), zap.Int("attempt", attempt+1))
	}
	return logging.NewOperationError(operation, requestID, err)
}

func (uc *ScaleUseCase) withRedisGet(ctx context.Context, requestID, operation, cacheKey string) (string, error) {
	var result string
	err := uc.withRedisRetry(ctx, requestID, operation, func() error {
		value, err := uc.cache.Get(ctx, cacheKey)
		if err != nil {
			return err
		}
		result = value
		return nil
	})
	if err != nil {
		return "", err
	}
	return result, nil
}

func isTransientError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var temporary interface{ Temporary() bool }
	if errors.As(err, &temporary) && temporary.Temporary() {
		return true
	}

	return false
}

func requestIDFrom(ctx context.Context) string {
	if id := logging.RequestIDFromContext(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}

func validateNonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return apperr.InvalidInput("%s must be a non-negative number", field)
	}
	return nil
}

func validatePositive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return apperr.InvalidInput("%s must be a positive number", field)
	}
	return nil
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
