package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/example/smartscale/internal/apperr"
	"github.com/example/smartscale/internal/classifier"
	"github.com/example/smartscale/internal/logging"
	"github.com/example/smartscale/internal/pricing"
	"github.com/example/smartscale/internal/repository"
	"github.com/example/smartscale/internal/weight"
)

type stubStore struct {
	products    map[string]repository.Product
	findErr     error
	findCalls   int
	appended    []*repository.Transaction
	appendErr   error
	recent      []repository.Transaction
	recentLimit int
	agg         *repository.SalesAggregation
	pingErr     error
}

func (s *stubStore) FindProductByName(ctx context.Context, name string) (*repository.Product, error) {
	s.findCalls++
	if s.findErr != nil {
		return nil, s.findErr
	}
	product, ok := s.products[name]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return &product, nil
}

func (s *stubStore) ListProducts(ctx context.Context) ([]repository.Product, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	out := []repository.Product{}
	for _, p := range s.products {
		out = append(out, p)
	}
	return out, nil
}

func (s *stubStore) AppendTransaction(ctx context.Context, tx *repository.Transaction) (uint, error) {
	if s.appendErr != nil {
		return 0, s.appendErr
	}
	s.appended = append(s.appended, tx)
	tx.ID = uint(len(s.appended))
	return tx.ID, nil
}

func (s *stubStore) RecentTransactions(ctx context.Context, limit int) ([]repository.Transaction, error) {
	s.recentLimit = limit
	return s.recent, nil
}

func (s *stubStore) AggregateSales(ctx context.Context) (*repository.SalesAggregation, error) {
	if s.agg == nil {
		return &repository.SalesAggregation{}, nil
	}
	return s.agg, nil
}

func (s *stubStore) Ping(ctx context.Context) error { return s.pingErr }

type stubCache struct {
	setErrs   []error
	getErrs   []error
	getValues []string
	setKeys   []string
	getKeys   []string
}

func (s *stubCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	s.setKeys = append(s.setKeys, key)
	if len(s.setErrs) == 0 {
		return nil
	}
	err := s.setErrs[0]
	s.setErrs = s.setErrs[1:]
	return err
}

func (s *stubCache) Get(ctx context.Context, key string) (string, error) {
	s.getKeys = append(s.getKeys, key)
	var value string
	if len(s.getValues) > 0 {
		value = s.getValues[0]
		s.getValues = s.getValues[1:]
	}
	var err error = redis.Nil
	if len(s.getErrs) > 0 {
		err = s.getErrs[0]
		s.getErrs = s.getErrs[1:]
	} else if value != "" {
		err = nil
	}
	return value, err
}

type stubClassifier struct {
	result         *classifier.Result
	err            error
	info           *classifier.ModelInfo
	infoErr        error
	modelInfoCalls int
	lastTopK       int
}

func (s *stubClassifier) Classify(ctx context.Context, image []byte, topK int) (*classifier.Result, error) {
	s.lastTopK = topK
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *stubClassifier) ModelInfo(ctx context.Context) (*classifier.ModelInfo, error) {
	s.modelInfoCalls++
	if s.infoErr != nil {
		return nil, s.infoErr
	}
	return s.info, nil
}

type stubEstimator struct {
	grams  float64
	ranges map[string]weight.Range
}

func (s stubEstimator) Estimate(productID string) weight.Estimate {
	return weight.Estimate{
		ProductID:  productID,
		Grams:      s.grams,
		Kilograms:  s.grams / 1000,
		Confidence: weight.ConfidenceMedium,
	}
}

func (s stubEstimator) Range(productID string) (weight.Range, bool) {
	r, ok := s.ranges[productID]
	return r, ok
}

type transientRedisError struct{}

func (transientRedisError) Error() string   { return "redis transient" }
func (transientRedisError) Timeout() bool   { return true }
func (transientRedisError) Temporary() bool { return true }

func floatPtr(v float64) *float64 { return &v }

func newStubStore() *stubStore {
	return &stubStore{products: map[string]repository.Product{
		"Banana":     {ID: 1, Name: "Banana", NamePolish: "Banan", Category: "fruit", PricePerKg: 5.5, SellByWeight: true},
		"Watermelon": {ID: 2, Name: "Watermelon", NamePolish: "Arbuz", Category: "fruit", PricePerKg: 3.5, SellByWeight: true},
	}}
}

func bananaResult() *classifier.Result {
	return &classifier.Result{Predictions: []classifier.Prediction{
		{Label: "Banana", Confidence: 0.92341, ClassID: 3},
		{Label: "Plantain", Confidence: 0.05, ClassID: 7},
	}}
}

func newTestUseCase(store ProductStore, cache Cache, cls classifier.Client, grams float64) *ScaleUseCase {
	uc := NewScaleUseCase(store, cache, cls, stubEstimator{grams: grams}, pricing.NewCalculator(), zap.NewNop(),
		WithClock(func() time.Time { return time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC) }),
	)
	uc.initialBackoff = time.Millisecond
	return uc
}

func TestPredictPricesTopLabel(t *testing.T) {
	store := newStubStore()
	cls := &stubClassifier{result: bananaResult()}
	uc := newTestUseCase(store, &stubCache{}, cls, 150)

	ctx := logging.ContextWithRequestID(context.Background(), "req-1")
	resp, err := uc.Predict(ctx, []byte("image"), PredictOptions{})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if resp.RequestID != "req-1" {
		t.Fatalf("expected request id from context, got %q", resp.RequestID)
	}
	if cls.lastTopK != DefaultTopK {
		t.Fatalf("expected topK %d, got %d", DefaultTopK, cls.lastTopK)
	}
	if resp.Classification.Product != "Banana" || resp.Classification.Confidence != 92.34 {
		t.Fatalf("unexpected classification: %+v", resp.Classification)
	}
	if len(resp.Classification.Alternatives) != 1 || resp.Classification.Alternatives[0].Label != "Plantain" {
		t.Fatalf("unexpected alternatives: %+v", resp.Classification.Alternatives)
	}
	if resp.Price == nil {
		t.Fatal("expected a price")
	}
	if resp.Price.TotalPrice != 0.83 || resp.Price.ProductNamePolish != "Banan" || resp.Price.Currency != "PLN" {
		t.Fatalf("unexpected price: %+v", resp.Price)
	}
	if resp.TransactionID != nil || len(store.appended) != 0 {
		t.Fatal("expected no transaction without record option")
	}
	if !resp.Timestamp.Equal(time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected timestamp %v", resp.Timestamp)
	}
}

func TestPredictRecordsTransactionWhenRequested(t *testing.T) {
	store := newStubStore()
	uc := newTestUseCase(store, nil, &stubClassifier{result: bananaResult()}, 200)

	resp, err := uc.Predict(context.Background(), []byte("image"), PredictOptions{Record: true})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if resp.TransactionID == nil || *resp.TransactionID != 1 {
		t.Fatalf("expected transaction id 1, got %v", resp.TransactionID)
	}
	if len(store.appended) != 1 {
		t.Fatalf("expected one transaction, got %d", len(store.appended))
	}
	tx := store.appended[0]
	if tx.ProductName != "Banana" || tx.WeightG != 200 || tx.TotalPrice != 1.1 {
		t.Fatalf("unexpected transaction: %+v", tx)
	}
	if tx.Confidence == nil || *tx.Confidence != 92.34 {
		t.Fatalf("expected confidence 92.34, got %v", tx.Confidence)
	}
}

func TestPredictUnknownProductReturnsPriceError(t *testing.T) {
	cls := &stubClassifier{result: &classifier.Result{Predictions: []classifier.Prediction{{Label: "Durian", Confidence: 0.7}}}}
	uc := newTestUseCase(newStubStore(), nil, cls, 150)

	resp, err := uc.Predict(context.Background(), []byte("image"), PredictOptions{Record: true})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if resp.Price != nil {
		t.Fatalf("expected no price, got %+v", resp.Price)
	}
	if resp.PriceError != "Product Durian not found" {
		t.Fatalf("unexpected price error %q", resp.PriceError)
	}
	if resp.TransactionID != nil {
		t.Fatal("unpriced predictions must not be recorded")
	}
	if len(resp.Classification.Alternatives) != 0 || resp.Classification.Alternatives == nil {
		t.Fatalf("expected empty alternatives, got %#v", resp.Classification.Alternatives)
	}
}

func TestPredictErrorKinds(t *testing.T) {
	tests := []struct {
		name  string
		image []byte
		cls   *stubClassifier
		store *stubStore
		kind  apperr.Kind
	}{
		{name: "empty image", image: nil, cls: &stubClassifier{}, store: newStubStore(), kind: apperr.KindInvalidInput},
		{name: "undecodable", image: []byte("x"), cls: &stubClassifier{err: classifier.ErrUndecodableImage}, store: newStubStore(), kind: apperr.KindInvalidInput},
		{name: "classifier down", image: []byte("x"), cls: &stubClassifier{err: errors.New("connection refused")}, store: newStubStore(), kind: apperr.KindUpstream},
		{name: "no predictions", image: []byte("x"), cls: &stubClassifier{result: &classifier.Result{}}, store: newStubStore(), kind: apperr.KindUpstream},
		{name: "store down", image: []byte("x"), cls: &stubClassifier{result: bananaResult()}, store: &stubStore{findErr: errors.New("disk I/O error")}, kind: apperr.KindUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(tt.store, nil, tt.cls, 150)
			_, err := uc.Predict(context.Background(), tt.image, PredictOptions{})
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if got := apperr.KindOf(err); got != tt.kind {
				t.Fatalf("expected kind %v, got %v (%v)", tt.kind, got, err)
			}
		})
	}
}

func TestCalculatePrice(t *testing.T) {
	uc := newTestUseCase(newStubStore(), nil, &stubClassifier{}, 0)

	result, err := uc.CalculatePrice(context.Background(), PriceRequest{ProductName: "Watermelon", WeightGrams: floatPtr(5750)})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if result.TotalPrice != 20.13 || result.WeightKg != 5.75 || result.ProductName != "Watermelon" {
		t.Fatalf("unexpected result: %+v", result)
	}

	zero, err := uc.CalculatePrice(context.Background(), PriceRequest{ProductName: "Banana", WeightGrams: floatPtr(0)})
	if err != nil {
		t.Fatalf("expected zero weight to be accepted, got %v", err)
	}
	if zero.TotalPrice != 0 {
		t.Fatalf("expected zero total, got %v", zero.TotalPrice)
	}
}

type countingCalculator struct {
	calls int
}

func (c *countingCalculator) Calculate(pricePerKg, weightGrams float64) pricing.Result {
	c.calls++
	return pricing.NewCalculator().Calculate(pricePerKg, weightGrams)
}

func TestCalculatePriceRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		req  PriceRequest
		kind apperr.Kind
	}{
		{name: "missing name", req: PriceRequest{WeightGrams: floatPtr(10)}, kind: apperr.KindInvalidInput},
		{name: "missing weight", req: PriceRequest{ProductName: "Banana"}, kind: apperr.KindInvalidInput},
		{name: "negative weight", req: PriceRequest{ProductName: "Banana", WeightGrams: floatPtr(-1)}, kind: apperr.KindInvalidInput},
		{name: "unknown product", req: PriceRequest{ProductName: "Durian", WeightGrams: floatPtr(10)}, kind: apperr.KindNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStubStore()
			cache := &stubCache{}
			calc := &countingCalculator{}
			uc := NewScaleUseCase(store, cache, &stubClassifier{}, stubEstimator{}, calc, zap.NewNop())

			_, err := uc.CalculatePrice(context.Background(), tt.req)
			if got := apperr.KindOf(err); err == nil || got != tt.kind {
				t.Fatalf("expected kind %v, got %v (%v)", tt.kind, got, err)
			}
			if calc.calls != 0 {
				t.Fatalf("calculator must not run on rejected input, got %d calls", calc.calls)
			}
			if tt.kind == apperr.KindInvalidInput && (store.findCalls != 0 || len(cache.getKeys) != 0) {
				t.Fatalf("invalid input must be rejected before lookup, got %d store and %d cache reads", store.findCalls, len(cache.getKeys))
			}
		})
	}
}

func TestRecordTransactionValidatesBeforeLookup(t *testing.T) {
	store := newStubStore()
	cache := &stubCache{}
	calc := &countingCalculator{}
	uc := NewScaleUseCase(store, cache, &stubClassifier{}, stubEstimator{}, calc, zap.NewNop())

	_, err := uc.RecordTransaction(context.Background(), TransactionRequest{ProductName: "Banana", PricePerKg: floatPtr(5)})
	if apperr.KindOf(err) != apperr.KindInvalidInput {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if calc.calls != 0 || store.findCalls != 0 || len(cache.getKeys) != 0 || len(store.appended) != 0 {
		t.Fatalf("expected no work before validation, got calc=%d find=%d cache=%d appended=%d",
			calc.calls, store.findCalls, len(cache.getKeys), len(store.appended))
	}
}

func TestLookupProductServedFromCache(t *testing.T) {
	cached, _ := json.Marshal(repository.Product{Name: "Banana", PricePerKg: 8})
	cache := &stubCache{getValues: []string{string(cached)}}
	store := newStubStore()
	uc := newTestUseCase(store, cache, &stubClassifier{}, 0)

	result, err := uc.CalculatePrice(context.Background(), PriceRequest{ProductName: "Banana", WeightGrams: floatPtr(200)})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if result.TotalPrice != 1.6 {
		t.Fatalf("expected cached price to be used, got %+v", result)
	}
	if store.findCalls != 0 {
		t.Fatalf("expected store not to be queried, got %d calls", store.findCalls)
	}
	if len(cache.getKeys) != 1 || cache.getKeys[0] != "product:Banana" {
		t.Fatalf("unexpected cache keys %v", cache.getKeys)
	}
}

func TestLookupProductRetriesTransientCacheRead(t *testing.T) {
	cached, _ := json.Marshal(repository.Product{Name: "Banana", PricePerKg: 5.5})
	cache := &stubCache{getErrs: []error{transientRedisError{}, nil}, getValues: []string{"", string(cached)}}
	store := newStubStore()
	uc := newTestUseCase(store, cache, &stubClassifier{}, 0)

	if _, err := uc.CalculatePrice(context.Background(), PriceRequest{ProductName: "Banana", WeightGrams: floatPtr(100)}); err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if len(cache.getKeys) != 2 || cache.getKeys[0] != cache.getKeys[1] {
		t.Fatalf("expected retry on the same key, got %v", cache.getKeys)
	}
	if store.findCalls != 0 {
		t.Fatalf("expected retry to avoid the store, got %d calls", store.findCalls)
	}
}

func TestCacheFailuresDoNotFailRequests(t *testing.T) {
	cache := &stubCache{getErrs: []error{errors.New("boom")}, setErrs: []error{errors.New("boom")}}
	store := newStubStore()
	uc := newTestUseCase(store, cache, &stubClassifier{}, 0)

	if _, err := uc.CalculatePrice(context.Background(), PriceRequest{ProductName: "Banana", WeightGrams: floatPtr(100)}); err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if store.findCalls != 1 {
		t.Fatalf("expected store fallback, got %d calls", store.findCalls)
	}
}

func TestWithRedisRetryWrapsOperation(t *testing.T) {
	uc := newTestUseCase(newStubStore(), nil, &stubClassifier{}, 0)

	err := uc.withRedisRetry(context.Background(), "req-9", "cache.set.product", func() error {
		return errors.New("boom")
	})
	var opErr *logging.OperationError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected OperationError, got %T", err)
	}
	if opErr.Operation != "cache.set.product" || opErr.RequestID != "req-9" {
		t.Fatalf("unexpected operation error: %+v", opErr)
	}
}

func TestRecordTransaction(t *testing.T) {
	tests := []struct {
		name      string
		req       TransactionRequest
		wantPrice float64
		wantTotal float64
	}{
		{
			name:      "fills price from catalogue",
			req:       TransactionRequest{ProductName: "Banana", WeightG: floatPtr(182)},
			wantPrice: 5.5,
			wantTotal: 1,
		},
		{
			name:      "derives total from given rate",
			req:       TransactionRequest{ProductName: "Mystery", WeightG: floatPtr(200), PricePerKg: floatPtr(8)},
			wantPrice: 8,
			wantTotal: 1.6,
		},
		{
			name:      "keeps explicit fields",
			req:       TransactionRequest{ProductName: "Banana", WeightG: floatPtr(100), PricePerKg: floatPtr(6), TotalPrice: floatPtr(0.5), Confidence: floatPtr(100)},
			wantPrice: 6,
			wantTotal: 0.5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStubStore()
			uc := newTestUseCase(store, nil, &stubClassifier{}, 0)

			receipt, err := uc.RecordTransaction(context.Background(), tt.req)
			if err != nil {
				t.Fatalf("expected success, got error: %v", err)
			}
			if !receipt.Success || receipt.TransactionID != 1 {
				t.Fatalf("unexpected receipt: %+v", receipt)
			}
			if len(store.appended) != 1 {
				t.Fatalf("expected one transaction, got %d", len(store.appended))
			}
			tx := store.appended[0]
			if tx.PricePerKg != tt.wantPrice || tx.TotalPrice != tt.wantTotal {
				t.Fatalf("expected %v/%v, got %+v", tt.wantPrice, tt.wantTotal, tx)
			}
		})
	}
}

func TestRecordTransactionRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		req  TransactionRequest
		kind apperr.Kind
	}{
		{name: "missing weight", req: TransactionRequest{ProductName: "Banana"}, kind: apperr.KindInvalidInput},
		{name: "zero weight", req: TransactionRequest{ProductName: "Banana", WeightG: floatPtr(0)}, kind: apperr.KindInvalidInput},
		{name: "negative rate", req: TransactionRequest{ProductName: "Banana", WeightG: floatPtr(10), PricePerKg: floatPtr(-2)}, kind: apperr.KindInvalidInput},
		{name: "confidence out of range", req: TransactionRequest{ProductName: "Banana", WeightG: floatPtr(10), Confidence: floatPtr(150)}, kind: apperr.KindInvalidInput},
		{name: "unknown product without rate", req: TransactionRequest{ProductName: "Durian", WeightG: floatPtr(10)}, kind: apperr.KindNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStubStore()
			uc := newTestUseCase(store, nil, &stubClassifier{}, 0)
			_, err := uc.RecordTransaction(context.Background(), tt.req)
			if got := apperr.KindOf(err); err == nil || got != tt.kind {
				t.Fatalf("expected kind %v, got %v (%v)", tt.kind, got, err)
			}
			if len(store.appended) != 0 {
				t.Fatal("rejected requests must not be recorded")
			}
		})
	}
}

func TestRecentTransactionsLimit(t *testing.T) {
	store := newStubStore()
	uc := newTestUseCase(store, nil, &stubClassifier{}, 0)

	if _, err := uc.RecentTransactions(context.Background(), 500); err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if store.recentLimit != MaxTransactionLimit {
		t.Fatalf("expected limit capped to %d, got %d", MaxTransactionLimit, store.recentLimit)
	}

	_, err := uc.RecentTransactions(context.Background(), 0)
	if apperr.KindOf(err) != apperr.KindInvalidInput {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestGetProductIncludesWeightRange(t *testing.T) {
	store := newStubStore()
	uc := NewScaleUseCase(store, nil, &stubClassifier{}, weight.NewEstimator(weight.DefaultTable()), pricing.NewCalculator(), zap.NewNop())

	details, err := uc.GetProduct(context.Background(), "Watermelon")
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if details.NamePolish != "Arbuz" || details.WeightRange == nil {
		t.Fatalf("unexpected details: %+v", details)
	}
	if details.WeightRange.TypicalGrams != 5000 || details.WeightRange.MaxKg != 8 {
		t.Fatalf("unexpected range: %+v", details.WeightRange)
	}

	_, err = uc.GetProduct(context.Background(), "Durian")
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestModelInfoCachedInRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cls := &stubClassifier{info: &classifier.ModelInfo{Name: "fruitnet", NumClasses: 2, Labels: []string{"Apple", "Banana"}}}
	uc := newTestUseCase(newStubStore(), NewRedisCache(client), cls, 0)

	for i := 0; i < 2; i++ {
		info, err := uc.ModelInfo(context.Background())
		if err != nil {
			t.Fatalf("expected success, got error: %v", err)
		}
		if info.Name != "fruitnet" || len(info.Labels) != 2 {
			t.Fatalf("unexpected model info: %+v", info)
		}
	}
	if cls.modelInfoCalls != 1 {
		t.Fatalf("expected one classifier call, got %d", cls.modelInfoCalls)
	}
	if !mr.Exists("model_info") {
		t.Fatal("expected model info to be cached")
	}
	if ttl := mr.TTL("model_info"); ttl != DefaultCacheTTL {
		t.Fatalf("expected ttl %v, got %v", DefaultCacheTTL, ttl)
	}
}

func TestModelInfoClassifierFailure(t *testing.T) {
	uc := newTestUseCase(newStubStore(), nil, &stubClassifier{infoErr: errors.New("unavailable")}, 0)

	_, err := uc.ModelInfo(context.Background())
	if apperr.KindOf(err) != apperr.KindUpstream {
		t.Fatalf("expected upstream failure, got %v", err)
	}
}

func TestGetSalesSummary(t *testing.T) {
	store := newStubStore()
	store.agg = &repository.SalesAggregation{TotalCount: 3, TotalRevenue: 10.005, AverageWeightG: 233.333, AverageConfidence: 87.456}
	uc := newTestUseCase(store, nil, &stubClassifier{}, 0)

	summary, err := uc.GetSalesSummary(context.Background())
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if summary.TotalTransactions != 3 || summary.TotalRevenue != 10.01 || summary.AverageTicket != 3.34 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summary.AverageWeightGrams != 233.3 || summary.AverageConfidence != 87.46 || summary.Currency != "PLN" {
		t.Fatalf("unexpected averages: %+v", summary)
	}

	store.agg = &repository.SalesAggregation{}
	empty, err := uc.GetSalesSummary(context.Background())
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if empty.AverageTicket != 0 {
		t.Fatalf("expected zero average ticket, got %v", empty.AverageTicket)
	}
}
